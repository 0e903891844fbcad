package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperr "github.com/b2bcommerce/payment-method-service/internal/errors"
	"github.com/b2bcommerce/payment-method-service/internal/interfaces"
	"github.com/b2bcommerce/payment-method-service/internal/models"
	"github.com/b2bcommerce/payment-method-service/internal/service"
	"github.com/b2bcommerce/payment-method-service/internal/telemetry"
)

type CheckoutHandler struct {
	orchestrator *service.Orchestrator
	payments     interfaces.PaymentService
}

func NewCheckoutHandler(orchestrator *service.Orchestrator, payments interfaces.PaymentService) *CheckoutHandler {
	return &CheckoutHandler{
		orchestrator: orchestrator,
		payments:     payments,
	}
}

// StageActionRequest is one stage invocation from the host checkout flow.
type StageActionRequest struct {
	Stage string             `json:"stage"`
	Form  models.PaymentForm `json:"form"`
}

func (h *CheckoutHandler) StageAction(c *gin.Context) {
	var req StageActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Error("Error decoding stage action", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stage, err := models.ParseCheckoutStage(req.Stage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Form.CheckoutID = c.Param("id")

	result, err := h.orchestrator.StageAction(c.Request.Context(), stage, &req.Form)
	if err != nil {
		h.writeStageError(c, req.Form.CheckoutID, stage, result, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout_id": req.Form.CheckoutID,
		"stage":       stage,
		"result":      result,
	})
}

func (h *CheckoutHandler) writeStageError(c *gin.Context, checkoutID string, stage models.CheckoutStage, result models.StageResult, err error) {
	telemetry.Logger.Error("Stage action failed",
		zap.String("checkout_id", checkoutID),
		zap.String("stage", string(stage)),
		zap.Error(err),
	)

	status := http.StatusInternalServerError
	code := "INTERNAL"

	var domain *apperr.DomainError
	var remote *apperr.RemoteError
	switch {
	case errors.As(err, &domain):
		code = domain.Code
		switch domain {
		case apperr.ErrRequiredDataMissing:
			status = http.StatusUnprocessableEntity
		case apperr.ErrSubmissionInFlight, apperr.ErrCheckoutNotReady:
			status = http.StatusConflict
		case apperr.ErrMissingOrderReference:
			status = http.StatusBadGateway
		}
	case errors.As(err, &remote):
		status = http.StatusBadGateway
		code = "REMOTE_CALL_FAILED"
	}

	c.JSON(status, gin.H{
		"checkout_id": checkoutID,
		"stage":       stage,
		"result":      result,
		"error":       err.Error(),
		"code":        code,
	})
}

func (h *CheckoutHandler) GetPaymentInfo(c *gin.Context) {
	cartID := c.Param("cartId")

	info, err := h.payments.GetPaymentInfo(c.Request.Context(), cartID)
	if err != nil {
		telemetry.Logger.Error("Error fetching payment info",
			zap.String("cart_id", cartID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch payment info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_id":               cartID,
		"purchase_order_number": info.PurchaseOrderNumber,
		"addresses":             info.Addresses,
	})
}

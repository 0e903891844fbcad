package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b2bcommerce/payment-method-service/internal/interfaces"
)

type SubmissionStateHandler struct {
	recorder interfaces.SubmissionRecorder
}

func NewSubmissionStateHandler(recorder interfaces.SubmissionRecorder) *SubmissionStateHandler {
	return &SubmissionStateHandler{recorder: recorder}
}

func (h *SubmissionStateHandler) GetSubmissionState(c *gin.Context) {
	checkoutID := c.Param("checkoutId")

	info, err := h.recorder.GetByCheckoutID(c.Request.Context(), checkoutID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission state not found"})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submission state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout_id":     checkoutID,
		"attempt_id":      info.AttemptID,
		"state":           info.State,
		"previous_state":  info.PreviousState,
		"order_reference": info.OrderReference,
		"created_at":      info.CreatedAt,
		"updated_at":      info.UpdatedAt,
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b2bcommerce/payment-method-service/internal/models"
	"github.com/b2bcommerce/payment-method-service/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Validation-only stages never reach a collaborator, so nil
	// dependencies are fine for these handler tests.
	orchestrator := service.NewOrchestrator(nil, nil, nil, nil, nil, nil, nil)
	handler := NewCheckoutHandler(orchestrator, nil)

	r := gin.New()
	r.POST("/checkouts/:id/stages", handler.StageAction)
	return r
}

func postStage(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/checkouts/chk-1/stages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStageAction_UnknownStage(t *testing.T) {
	r := newTestRouter()

	w := postStage(t, r, StageActionRequest{Stage: "SHIP_IT"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown checkout stage")
}

func TestStageAction_InvalidBody(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/checkouts/chk-1/stages", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStageAction_ReportValiditySave(t *testing.T) {
	r := newTestRouter()

	form := models.PaymentForm{
		CartID:                 "cart-1",
		SelectedPaymentType:    models.PaymentTypePurchaseOrder,
		PORequired:             true,
		BillingAddressRequired: true,
	}
	w := postStage(t, r, StageActionRequest{Stage: string(models.StageReportValiditySave), Form: form})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		CheckoutID string             `json:"checkout_id"`
		Result     models.StageResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "chk-1", body.CheckoutID)
	assert.False(t, body.Result.Valid)
	assert.True(t, body.Result.ShowError)
	assert.NotEmpty(t, body.Result.POErrorMessage)
}

func TestStageAction_PassThroughStage(t *testing.T) {
	r := newTestRouter()

	w := postStage(t, r, StageActionRequest{Stage: string(models.StageBeforePayment)})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Result models.StageResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Result.Valid)
}

func TestStageAction_PaymentWithInvalidForm(t *testing.T) {
	r := newTestRouter()

	form := models.PaymentForm{
		SelectedPaymentType:    models.PaymentTypePurchaseOrder,
		PORequired:             true,
		BillingAddressRequired: true,
	}
	w := postStage(t, r, StageActionRequest{Stage: string(models.StagePayment), Form: form})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "REQUIRED_DATA_MISSING")
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperr "github.com/b2bcommerce/payment-method-service/internal/errors"
	"github.com/b2bcommerce/payment-method-service/internal/interfaces"
	"github.com/b2bcommerce/payment-method-service/internal/models"
	"github.com/b2bcommerce/payment-method-service/internal/telemetry"
	"github.com/b2bcommerce/payment-method-service/internal/validation"
)

// Orchestrator drives the payment-method stage flow for a checkout:
// validate the form, persist the chosen payment method, request
// authorization or order placement, then signal cart refresh and
// navigation to the order confirmation.
type Orchestrator struct {
	payments  interfaces.PaymentService
	checkout  interfaces.CheckoutService
	cart      interfaces.CartService
	navigator interfaces.OrderNavigator
	guard     interfaces.SubmissionGuard
	recorder  interfaces.SubmissionRecorder
	events    interfaces.EventPublisher
}

func NewOrchestrator(
	payments interfaces.PaymentService,
	checkout interfaces.CheckoutService,
	cart interfaces.CartService,
	navigator interfaces.OrderNavigator,
	guard interfaces.SubmissionGuard,
	recorder interfaces.SubmissionRecorder,
	events interfaces.EventPublisher,
) *Orchestrator {
	return &Orchestrator{
		payments:  payments,
		checkout:  checkout,
		cart:      cart,
		navigator: navigator,
		guard:     guard,
		recorder:  recorder,
		events:    events,
	}
}

// StageAction dispatches one checkout stage. Only REPORT_VALIDITY_SAVE
// and PAYMENT do any work; every other stage passes through as valid.
func (o *Orchestrator) StageAction(ctx context.Context, stage models.CheckoutStage, form *models.PaymentForm) (models.StageResult, error) {
	switch stage {
	case models.StageReportValiditySave:
		return o.ReportValidity(form), nil
	case models.StagePayment:
		return o.ProcessPayment(ctx, form)
	default:
		return models.StageResult{Valid: true}, nil
	}
}

// ReportValidity runs the full form validation for the effective payment
// path and returns the user-visible error state. It never touches the
// network.
func (o *Orchestrator) ReportValidity(form *models.PaymentForm) models.StageResult {
	result := models.StageResult{Valid: true}

	addressRequired := form.BillingAddressRequired && !form.HideBillingAddress
	address := validation.ResolveBillingAddress(form.Addresses, form.SelectedBillingAddressID, addressRequired)
	effective := validation.EffectivePaymentType(form.HidePurchaseOrder, form.HideCreditCard, form.SelectedPaymentType)

	if effective == models.PaymentTypeCardPayment {
		if address.HasError() {
			result.Valid = false
			result.ShowError = true
			result.ErrorMessage = validation.MsgEnterBillingAddress
			result.CardErrorMessage = address.ErrorMessage
		}
		if msg, found := validation.FirstIncomplete(validation.CardFieldRules(form.Card)); found {
			result.Valid = false
			result.CardErrorMessage = msg
		}
		return result
	}

	if address.HasError() {
		result.Valid = false
		result.ShowError = true
		result.ErrorMessage = validation.MsgEnterBillingAddress
		result.POErrorMessage = address.ErrorMessage
	}
	if msg, found := validation.FirstIncomplete(validation.PurchaseOrderFieldRules(form)); found {
		result.Valid = false
		result.POErrorMessage = msg
	}
	return result
}

// ProcessPayment executes the submission procedure. Validation always
// completes before any remote call that mutates state; the persistence
// call is at-most-once with no compensation, so a failed attempt never
// rolls back and the caller decides whether to retry.
func (o *Orchestrator) ProcessPayment(ctx context.Context, form *models.PaymentForm) (models.StageResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "checkout.payment.submit")
	defer span.End()

	result := o.ReportValidity(form)
	if !result.Valid {
		return result, apperr.ErrRequiredDataMissing
	}

	info, err := o.checkout.CheckoutInformation(ctx, form.CheckoutID)
	if err != nil {
		return result, err
	}
	if !info.Ready() {
		return result, apperr.ErrCheckoutNotReady
	}

	acquired, err := o.guard.Acquire(ctx, form.CheckoutID)
	if err != nil {
		return result, err
	}
	if !acquired {
		return result, apperr.ErrSubmissionInFlight
	}
	defer o.guard.Release(ctx, form.CheckoutID)

	effective := validation.EffectivePaymentType(form.HidePurchaseOrder, form.HideCreditCard, form.SelectedPaymentType)

	attemptID := uuid.NewString()
	if err := o.recorder.BeginAttempt(ctx, form.CheckoutID, attemptID); err != nil {
		return result, err
	}
	attempt := submissionAttempt{
		checkoutID:  form.CheckoutID,
		attemptID:   attemptID,
		paymentType: effective,
		state:       models.SubmissionNew,
	}
	if err := o.transition(ctx, &attempt, models.SubmissionValidated); err != nil {
		return result, err
	}

	telemetry.Logger.Info("Processing payment submission",
		zap.String("checkout_id", form.CheckoutID),
		zap.String("attempt_id", attemptID),
		zap.String("payment_type", string(effective)),
	)

	switch effective {
	case models.PaymentTypePurchaseOrder:
		err = o.submitPurchaseOrder(ctx, form, info, &attempt, &result)
	case models.PaymentTypeCardPayment:
		err = o.submitCardPayment(ctx, form, &attempt, &result)
	}
	if err != nil {
		o.fail(ctx, &attempt)
		telemetry.SubmissionsTotal.WithLabelValues(string(effective), "failed").Inc()
		return result, err
	}

	if err := o.recorder.RecordOrderReference(ctx, form.CheckoutID, result.OrderReferenceNumber); err != nil {
		telemetry.Logger.Warn("Failed to record order reference",
			zap.String("checkout_id", form.CheckoutID),
			zap.Error(err),
		)
	}

	if err := o.cart.RefreshCartSummary(ctx, form.CartID); err != nil {
		telemetry.Logger.Warn("Cart summary refresh failed",
			zap.String("cart_id", form.CartID),
			zap.Error(err),
		)
	}
	if err := o.navigator.NavigateToOrder(ctx, form.CheckoutID, result.OrderReferenceNumber); err != nil {
		telemetry.Logger.Warn("Order navigation signal failed",
			zap.String("checkout_id", form.CheckoutID),
			zap.Error(err),
		)
	}

	if err := o.transition(ctx, &attempt, models.SubmissionSucceeded); err != nil {
		return result, err
	}
	telemetry.SubmissionsTotal.WithLabelValues(string(effective), "succeeded").Inc()

	return result, nil
}

// submitPurchaseOrder persists the purchase-order payment and places the
// order. The response must carry an order reference number; a confirmed
// placement without one aborts the attempt.
func (o *Orchestrator) submitPurchaseOrder(ctx context.Context, form *models.PaymentForm, info *models.CheckoutInformation, attempt *submissionAttempt, result *models.StageResult) error {
	poNumber := strings.TrimSpace(form.PurchaseOrderNumber)

	if err := o.checkout.SimplePurchaseOrderPayment(ctx, info.CheckoutID, poNumber, info.ShippingAddress()); err != nil {
		result.POErrorMessage = remoteMessage(err)
		return err
	}
	if err := o.transition(ctx, attempt, models.SubmissionPaymentSet); err != nil {
		return err
	}

	confirmation, err := o.checkout.PlaceOrder(ctx, info.CheckoutID)
	if err != nil {
		result.POErrorMessage = remoteMessage(err)
		return err
	}
	if confirmation == nil || confirmation.OrderReferenceNumber == "" {
		return apperr.ErrMissingOrderReference
	}
	if err := o.transition(ctx, attempt, models.SubmissionOrderPlaced); err != nil {
		return err
	}

	result.OrderReferenceNumber = confirmation.OrderReferenceNumber
	return nil
}

// submitCardPayment normalizes the card data exactly once, persists the
// payment method and requests authorization. An unconfirmed
// authorization aborts the attempt.
func (o *Orchestrator) submitCardPayment(ctx context.Context, form *models.PaymentForm, attempt *submissionAttempt, result *models.StageResult) error {
	card := validation.NormalizeCard(form.Card)
	addressRequired := form.BillingAddressRequired && !form.HideBillingAddress
	address := validation.ResolveBillingAddress(form.Addresses, form.SelectedBillingAddressID, addressRequired)

	err := o.payments.SetPayment(ctx, models.SetPaymentRequest{
		PaymentType:    models.PaymentTypeCardPayment,
		CartID:         form.CartID,
		BillingAddress: address.Address,
		PaymentInfo:    card,
	})
	if err != nil {
		result.CardErrorMessage = remoteMessage(err)
		return err
	}
	if err := o.transition(ctx, attempt, models.SubmissionPaymentSet); err != nil {
		return err
	}

	token, err := o.payments.AuthorizePaymentInfo(ctx, models.AuthorizeRequest{
		CartID:                 form.CartID,
		SelectedBillingAddress: address.Address,
	})
	if err != nil {
		result.CardErrorMessage = remoteMessage(err)
		return err
	}
	if token == "" {
		return apperr.ErrMissingOrderReference
	}
	if err := o.transition(ctx, attempt, models.SubmissionAuthorized); err != nil {
		return err
	}

	result.OrderReferenceNumber = token
	return nil
}

// submissionAttempt tracks the recorded state of the in-flight attempt.
type submissionAttempt struct {
	checkoutID  string
	attemptID   string
	paymentType models.PaymentType
	state       models.SubmissionState
}

func (o *Orchestrator) transition(ctx context.Context, attempt *submissionAttempt, to models.SubmissionState) error {
	from := attempt.state
	rows, err := o.recorder.TransitionState(ctx, attempt.checkoutID, from, to)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("invalid submission transition from %s to %s for checkout %s", from, to, attempt.checkoutID)
	}
	attempt.state = to

	event := models.SubmissionEvent{
		CheckoutID:    attempt.checkoutID,
		AttemptID:     attempt.attemptID,
		PaymentType:   attempt.paymentType,
		State:         to,
		PreviousState: from,
		Timestamp:     time.Now(),
	}
	if err := o.events.PublishSubmissionState(ctx, event); err != nil {
		telemetry.Logger.Warn("Failed to publish submission event",
			zap.String("checkout_id", attempt.checkoutID),
			zap.Error(err),
		)
	}

	telemetry.Logger.Info("Submission state transition",
		zap.String("checkout_id", attempt.checkoutID),
		zap.String("from_state", string(from)),
		zap.String("to_state", string(to)),
	)

	return nil
}

func (o *Orchestrator) fail(ctx context.Context, attempt *submissionAttempt) {
	if err := o.transition(ctx, attempt, models.SubmissionFailed); err != nil {
		telemetry.Logger.Error("Failed to record submission failure",
			zap.String("checkout_id", attempt.checkoutID),
			zap.Error(err),
		)
	}
}

// remoteMessage extracts the collaborator's own error text for display
// on the relevant subform.
func remoteMessage(err error) string {
	var remote *apperr.RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return err.Error()
}

package models

import "fmt"

// CheckoutStage is a named phase of the externally driven checkout flow.
// The host flow controller supplies one per call; stages are never
// persisted by this service.
type CheckoutStage string

const (
	StageCheckValidityUpdate CheckoutStage = "CHECK_VALIDITY_UPDATE"
	StageReportValiditySave  CheckoutStage = "REPORT_VALIDITY_SAVE"
	StageBeforePayment       CheckoutStage = "BEFORE_PAYMENT"
	StagePayment             CheckoutStage = "PAYMENT"
	StageBeforePlaceOrder    CheckoutStage = "BEFORE_PLACE_ORDER"
	StagePlaceOrder          CheckoutStage = "PLACE_ORDER"
)

// ParseCheckoutStage maps the wire value of a stage to its constant.
func ParseCheckoutStage(s string) (CheckoutStage, error) {
	switch CheckoutStage(s) {
	case StageCheckValidityUpdate, StageReportValiditySave, StageBeforePayment,
		StagePayment, StageBeforePlaceOrder, StagePlaceOrder:
		return CheckoutStage(s), nil
	}
	return "", fmt.Errorf("unknown checkout stage %q", s)
}

// Checkout status codes reported by the checkout service. The session
// answers 202 while checkout start is still running and 200 once the
// checkout data is ready to be acted on. Readiness polling stays with
// the host flow; this service only reports not-ready back to it.
const (
	CheckoutStatusReady    = 200
	CheckoutStatusStarting = 202
)

// DeliveryGroup is one shipment of the checkout with its destination.
type DeliveryGroup struct {
	DeliveryAddress Address `json:"delivery_address"`
}

// CheckoutInformation is the per-session checkout snapshot owned by the
// checkout service.
type CheckoutInformation struct {
	CheckoutID     string          `json:"checkout_id"`
	Status         int             `json:"status"`
	DeliveryGroups []DeliveryGroup `json:"delivery_groups"`
}

// Ready reports whether checkout start has completed.
func (ci *CheckoutInformation) Ready() bool {
	return ci.Status == CheckoutStatusReady
}

// ShippingAddress returns the delivery address of the first delivery
// group, or a zero Address when none exists yet.
func (ci *CheckoutInformation) ShippingAddress() Address {
	if len(ci.DeliveryGroups) == 0 {
		return Address{}
	}
	return ci.DeliveryGroups[0].DeliveryAddress
}

// PaymentForm is the full payment-method form state as captured by the
// storefront, sent along with every stage invocation. Hide/required
// flags mirror the storefront's builder configuration and can change
// independently of the stored selection, so the effective payment type
// is always derived fresh from them.
type PaymentForm struct {
	CheckoutID string `json:"checkout_id"`
	CartID     string `json:"cart_id"`

	SelectedPaymentType PaymentType `json:"selected_payment_type"`
	HidePurchaseOrder   bool        `json:"hide_purchase_order"`
	HideCreditCard      bool        `json:"hide_credit_card"`

	PurchaseOrderNumber string `json:"purchase_order_number"`
	PORequired          bool   `json:"po_required"`

	Addresses                []Address `json:"addresses"`
	SelectedBillingAddressID string    `json:"selected_billing_address_id"`
	BillingAddressRequired   bool      `json:"billing_address_required"`
	HideBillingAddress       bool      `json:"hide_billing_address"`

	Card CardFields `json:"card"`
}

// StageResult is what a stage invocation reports back to the host flow.
// ErrorMessage/ShowError carry the form-level error banner; the card and
// purchase-order messages attach to their subforms.
type StageResult struct {
	Valid                bool   `json:"valid"`
	ShowError            bool   `json:"show_error"`
	ErrorMessage         string `json:"error_message,omitempty"`
	CardErrorMessage     string `json:"card_error_message,omitempty"`
	POErrorMessage       string `json:"po_error_message,omitempty"`
	OrderReferenceNumber string `json:"order_reference_number,omitempty"`
}

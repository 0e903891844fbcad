package models

// PaymentType identifies which payment path a checkout uses
type PaymentType string

const (
	PaymentTypePurchaseOrder PaymentType = "PurchaseOrder"
	PaymentTypeCardPayment   PaymentType = "CardPayment"
)

// Address is a billing or delivery address owned by the commerce platform.
// This service only ever holds a reference to one; the address book itself
// lives with the payment service.
type Address struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// CardFields holds the raw card subform exactly as captured from the UI,
// together with the per-field visibility and requiredness configuration.
// CardExpiry carries the combined "MM / YYYY" input when the storefront
// renders a single expiry control instead of separate month/year ones.
type CardFields struct {
	CardHolderName string `json:"card_holder_name"`
	CardType       string `json:"card_type"`
	CardNumber     string `json:"card_number"`
	CVV            string `json:"cvv"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CardExpiry     string `json:"card_expiry"`

	CardHolderNameRequired bool `json:"card_holder_name_required"`
	CardTypeRequired       bool `json:"card_type_required"`
	CVVRequired            bool `json:"cvv_required"`
	ExpiryMonthRequired    bool `json:"expiry_month_required"`
	ExpiryYearRequired     bool `json:"expiry_year_required"`

	HideCardHolderName bool `json:"hide_card_holder_name"`
	HideCardType       bool `json:"hide_card_type"`
	HideCVV            bool `json:"hide_cvv"`
	HideExpiryMonth    bool `json:"hide_expiry_month"`
	HideExpiryYear     bool `json:"hide_expiry_year"`
	HideExpiry         bool `json:"hide_expiry"`
}

// CardPaymentData is the normalized card payload sent to the payment
// service: card number with whitespace stripped and the combined expiry
// split into month and year. Built as a copy so the form-bound values
// stay intact for re-display.
type CardPaymentData struct {
	CardHolderName string `json:"card_holder_name"`
	CardNumber     string `json:"card_number"`
	CVV            string `json:"cvv"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CardType       string `json:"card_type"`
}

// PaymentInfo is the prefill data for the payment form, owned by the
// remote payment service.
type PaymentInfo struct {
	PurchaseOrderNumber string    `json:"purchase_order_number"`
	Addresses           []Address `json:"addresses"`
}

// SetPaymentRequest persists the chosen payment method for a cart.
type SetPaymentRequest struct {
	PaymentType    PaymentType     `json:"payment_type"`
	CartID         string          `json:"cart_id"`
	BillingAddress *Address        `json:"billing_address,omitempty"`
	PaymentInfo    CardPaymentData `json:"payment_info"`
}

// AuthorizeRequest asks the payment service to authorize the tokenized
// card charge for a cart.
type AuthorizeRequest struct {
	CartID                 string   `json:"cart_id"`
	SelectedBillingAddress *Address `json:"selected_billing_address,omitempty"`
}

// OrderConfirmation is returned by the checkout service once an order
// has been placed.
type OrderConfirmation struct {
	OrderReferenceNumber string `json:"order_reference_number"`
}

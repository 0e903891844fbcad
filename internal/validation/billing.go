package validation

import "github.com/b2bcommerce/payment-method-service/internal/models"

// Messages surfaced on the payment form when billing address lookup fails.
const (
	MsgBillingAddressRequired = "Billing Address is required"
	MsgEnterBillingAddress    = "Please enter a billing address."
)

// AddressResult is the outcome of a billing address lookup. At most one
// of Address and ErrorMessage is set; both empty means "nothing selected,
// nothing required" and callers decide whether that matters.
type AddressResult struct {
	Address      *models.Address
	ErrorMessage string
}

// HasError reports whether the lookup produced a validation error.
func (r AddressResult) HasError() bool {
	return r.ErrorMessage != ""
}

// ResolveBillingAddress picks the address matching selectedID from the
// caller-supplied list. An empty list is an error only when a billing
// address is required. A non-empty list with no match returns neither an
// address nor an error; the caller must treat that as no selection made.
func ResolveBillingAddress(addresses []models.Address, selectedID string, required bool) AddressResult {
	if len(addresses) == 0 {
		if required {
			return AddressResult{ErrorMessage: MsgBillingAddressRequired}
		}
		return AddressResult{}
	}
	for i := range addresses {
		if addresses[i].ID == selectedID {
			return AddressResult{Address: &addresses[i]}
		}
	}
	return AddressResult{}
}

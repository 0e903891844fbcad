package validation

import "github.com/b2bcommerce/payment-method-service/internal/models"

// EffectivePaymentType resolves which payment path governs a submission.
// Hiding the purchase-order option forces the card path; otherwise
// hiding the card option forces the purchase-order path; otherwise the
// explicit selection wins. Hide flags come from storefront configuration
// and can change independently of the stored selection, so callers must
// derive the effective type fresh on every access instead of caching it.
func EffectivePaymentType(hidePurchaseOrder, hideCreditCard bool, selected models.PaymentType) models.PaymentType {
	switch {
	case hidePurchaseOrder:
		return models.PaymentTypeCardPayment
	case hideCreditCard:
		return models.PaymentTypePurchaseOrder
	default:
		return selected
	}
}

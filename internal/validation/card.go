package validation

import (
	"strings"
	"unicode"

	"github.com/b2bcommerce/payment-method-service/internal/models"
)

// Per-field error messages for the card subform.
const (
	MsgInvalidCardHolderName = "Enter a valid card holder name"
	MsgInvalidCardType       = "Enter a valid card type"
	MsgInvalidCardNumber     = "Enter a valid credit card number"
	MsgInvalidCVV            = "Enter a valid CVV"
	MsgInvalidExpiryMonth    = "Enter a valid expiry month"
	MsgInvalidExpiryYear     = "Enter a valid expiry year"
	MsgInvalidPONumber       = "Enter a valid purchase order number"
)

// expirySeparator splits a combined "MM / YYYY" expiry input.
const expirySeparator = " / "

// CardFieldRules builds the ordered completeness rules for the card
// subform. The card number is always visible and required; everything
// else follows the storefront configuration. The combined expiry rule is
// checked last and only applies when the single expiry control is shown.
func CardFieldRules(c models.CardFields) []FieldRule {
	return []FieldRule{
		{Hidden: c.HideCardHolderName, Required: c.CardHolderNameRequired, Value: c.CardHolderName, ErrorMessage: MsgInvalidCardHolderName},
		{Hidden: c.HideCardType, Required: c.CardTypeRequired, Value: c.CardType, ErrorMessage: MsgInvalidCardType},
		{Hidden: false, Required: true, Value: c.CardNumber, ErrorMessage: MsgInvalidCardNumber},
		{Hidden: c.HideCVV, Required: c.CVVRequired, Value: c.CVV, ErrorMessage: MsgInvalidCVV},
		{Hidden: c.HideExpiryMonth, Required: c.ExpiryMonthRequired, Value: c.ExpiryMonth, ErrorMessage: MsgInvalidExpiryMonth},
		{Hidden: c.HideExpiryYear, Required: c.ExpiryYearRequired, Value: c.ExpiryYear, ErrorMessage: MsgInvalidExpiryYear},
		{Hidden: c.HideExpiry, Required: true, Value: c.CardExpiry, ErrorMessage: MsgInvalidExpiryYear},
	}
}

// PurchaseOrderFieldRules builds the completeness rules for the
// purchase-order subform.
func PurchaseOrderFieldRules(form *models.PaymentForm) []FieldRule {
	return []FieldRule{
		{Hidden: form.HidePurchaseOrder, Required: form.PORequired, Value: strings.TrimSpace(form.PurchaseOrderNumber), ErrorMessage: MsgInvalidPONumber},
	}
}

// NormalizeCard produces the card payload for submission: whitespace is
// stripped from the card number and a combined "MM / YYYY" expiry is
// split into its month and year parts. The input is never mutated, so
// the form keeps its original values for re-display.
func NormalizeCard(c models.CardFields) models.CardPaymentData {
	data := models.CardPaymentData{
		CardHolderName: c.CardHolderName,
		CardNumber:     stripSpaces(c.CardNumber),
		CVV:            c.CVV,
		ExpiryMonth:    c.ExpiryMonth,
		ExpiryYear:     c.ExpiryYear,
		CardType:       c.CardType,
	}
	if month, year, ok := strings.Cut(c.CardExpiry, expirySeparator); ok {
		data.ExpiryMonth = month
		data.ExpiryYear = year
	}
	return data
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

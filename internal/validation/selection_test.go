package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/b2bcommerce/payment-method-service/internal/models"
)

func TestEffectivePaymentType(t *testing.T) {
	tests := []struct {
		name              string
		hidePurchaseOrder bool
		hideCreditCard    bool
		selected          models.PaymentType
		want              models.PaymentType
	}{
		{
			name:     "explicit card selection governs when nothing is hidden",
			selected: models.PaymentTypeCardPayment,
			want:     models.PaymentTypeCardPayment,
		},
		{
			name:     "explicit purchase order selection governs when nothing is hidden",
			selected: models.PaymentTypePurchaseOrder,
			want:     models.PaymentTypePurchaseOrder,
		},
		{
			name:              "hidden purchase order forces card path",
			hidePurchaseOrder: true,
			selected:          models.PaymentTypePurchaseOrder,
			want:              models.PaymentTypeCardPayment,
		},
		{
			name:           "hidden credit card forces purchase order path",
			hideCreditCard: true,
			selected:       models.PaymentTypeCardPayment,
			want:           models.PaymentTypePurchaseOrder,
		},
		{
			name:              "hidden purchase order wins when both are hidden",
			hidePurchaseOrder: true,
			hideCreditCard:    true,
			selected:          models.PaymentTypePurchaseOrder,
			want:              models.PaymentTypeCardPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectivePaymentType(tt.hidePurchaseOrder, tt.hideCreditCard, tt.selected)
			assert.Equal(t, tt.want, got)

			// Same inputs must always resolve the same way.
			again := EffectivePaymentType(tt.hidePurchaseOrder, tt.hideCreditCard, tt.selected)
			assert.Equal(t, got, again)
		})
	}
}

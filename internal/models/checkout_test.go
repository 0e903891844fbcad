package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCheckoutStage(t *testing.T) {
	for _, valid := range []string{
		"CHECK_VALIDITY_UPDATE",
		"REPORT_VALIDITY_SAVE",
		"BEFORE_PAYMENT",
		"PAYMENT",
		"BEFORE_PLACE_ORDER",
		"PLACE_ORDER",
	} {
		stage, err := ParseCheckoutStage(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, CheckoutStage(valid), stage)
	}

	_, err := ParseCheckoutStage("CHECKOUT")
	assert.Error(t, err)
}

func TestCheckoutInformation(t *testing.T) {
	t.Run("ready only on status 200", func(t *testing.T) {
		assert.True(t, (&CheckoutInformation{Status: CheckoutStatusReady}).Ready())
		assert.False(t, (&CheckoutInformation{Status: CheckoutStatusStarting}).Ready())
	})

	t.Run("shipping address comes from the first delivery group", func(t *testing.T) {
		info := &CheckoutInformation{
			DeliveryGroups: []DeliveryGroup{
				{DeliveryAddress: Address{ID: "ship-1"}},
				{DeliveryAddress: Address{ID: "ship-2"}},
			},
		}
		assert.Equal(t, "ship-1", info.ShippingAddress().ID)
	})

	t.Run("no delivery groups yields zero address", func(t *testing.T) {
		info := &CheckoutInformation{}
		assert.Equal(t, Address{}, info.ShippingAddress())
	})
}

package interfaces

import (
	"context"

	"github.com/b2bcommerce/payment-method-service/internal/models"
)

// PaymentService is the remote payment collaborator. It owns payment
// info for a cart, persists the chosen payment method and authorizes
// tokenized card charges.
type PaymentService interface {
	GetPaymentInfo(ctx context.Context, cartID string) (*models.PaymentInfo, error)
	SetPayment(ctx context.Context, req models.SetPaymentRequest) error
	// AuthorizePaymentInfo returns the confirmation token for the charge.
	// An empty token with a nil error means the authorization was not
	// confirmed; callers decide how to treat that.
	AuthorizePaymentInfo(ctx context.Context, req models.AuthorizeRequest) (string, error)
}

// CheckoutService is the checkout session collaborator. It owns the
// checkout id, delivery addresses and checkout status, and runs the
// purchase-order payment and order placement calls.
type CheckoutService interface {
	CheckoutInformation(ctx context.Context, checkoutID string) (*models.CheckoutInformation, error)
	SimplePurchaseOrderPayment(ctx context.Context, checkoutID, poNumber string, address models.Address) error
	PlaceOrder(ctx context.Context, checkoutID string) (*models.OrderConfirmation, error)
}

// CartService invalidates the external cart summary cache after a
// completed submission. The call is fire-and-forget; failures are
// logged, never propagated.
type CartService interface {
	RefreshCartSummary(ctx context.Context, cartID string) error
}

// OrderNavigator emits the navigation intent that routes the shopper to
// the order confirmation destination.
type OrderNavigator interface {
	NavigateToOrder(ctx context.Context, checkoutID, orderNumber string) error
}

// EventPublisher announces submission state transitions to downstream
// consumers.
type EventPublisher interface {
	PublishSubmissionState(ctx context.Context, event models.SubmissionEvent) error
}

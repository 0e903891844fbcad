package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	apperr "github.com/b2bcommerce/payment-method-service/internal/errors"
	"github.com/b2bcommerce/payment-method-service/internal/models"
)

// NATS subjects served by the checkout session service.
const (
	SubjectCheckoutInfo = "checkout.info"
	SubjectPOPayment    = "checkout.payment.po"
	SubjectPlaceOrder   = "checkout.order.place"
)

// CheckoutGateway talks to the checkout session service over NATS
// request/reply with JSON bodies.
type CheckoutGateway struct {
	nc      *nats.Conn
	timeout time.Duration
}

func NewCheckoutGateway(nc *nats.Conn, timeout time.Duration) *CheckoutGateway {
	return &CheckoutGateway{nc: nc, timeout: timeout}
}

type checkoutRequest struct {
	CheckoutID string `json:"checkout_id"`
}

type checkoutInfoReply struct {
	models.CheckoutInformation
	Error string `json:"error,omitempty"`
}

func (g *CheckoutGateway) CheckoutInformation(ctx context.Context, checkoutID string) (*models.CheckoutInformation, error) {
	var reply checkoutInfoReply
	if err := g.request(ctx, SubjectCheckoutInfo, checkoutRequest{CheckoutID: checkoutID}, &reply); err != nil {
		return nil, apperr.Remote("checkoutInformation", err.Error())
	}
	if reply.Error != "" {
		return nil, apperr.Remote("checkoutInformation", reply.Error)
	}
	return &reply.CheckoutInformation, nil
}

type poPaymentRequest struct {
	CheckoutID          string         `json:"checkout_id"`
	PurchaseOrderNumber string         `json:"purchase_order_number"`
	Address             models.Address `json:"address"`
}

type poPaymentReply struct {
	Error string `json:"error,omitempty"`
}

func (g *CheckoutGateway) SimplePurchaseOrderPayment(ctx context.Context, checkoutID, poNumber string, address models.Address) error {
	req := poPaymentRequest{CheckoutID: checkoutID, PurchaseOrderNumber: poNumber, Address: address}
	var reply poPaymentReply
	if err := g.request(ctx, SubjectPOPayment, req, &reply); err != nil {
		return apperr.Remote("simplePurchaseOrderPayment", err.Error())
	}
	if reply.Error != "" {
		return apperr.Remote("simplePurchaseOrderPayment", reply.Error)
	}
	return nil
}

type placeOrderReply struct {
	models.OrderConfirmation
	Error string `json:"error,omitempty"`
}

func (g *CheckoutGateway) PlaceOrder(ctx context.Context, checkoutID string) (*models.OrderConfirmation, error) {
	var reply placeOrderReply
	if err := g.request(ctx, SubjectPlaceOrder, checkoutRequest{CheckoutID: checkoutID}, &reply); err != nil {
		return nil, apperr.Remote("placeOrder", err.Error())
	}
	if reply.Error != "" {
		return nil, apperr.Remote("placeOrder", reply.Error)
	}
	return &reply.OrderConfirmation, nil
}

func (g *CheckoutGateway) request(ctx context.Context, subject string, req, reply any) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	msg, err := g.nc.RequestWithContext(ctx, subject, payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(msg.Data, reply)
}

package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	apperr "github.com/b2bcommerce/payment-method-service/internal/errors"
	"github.com/b2bcommerce/payment-method-service/internal/models"
)

// NATS subjects served by the remote payment service.
const (
	SubjectPaymentInfoGet = "payment.info.get"
	SubjectPaymentSet     = "payment.set"
	SubjectAuthorize      = "payment.authorize"
)

// PaymentGateway talks to the remote payment service over NATS
// request/reply with JSON bodies.
type PaymentGateway struct {
	nc      *nats.Conn
	timeout time.Duration
}

func NewPaymentGateway(nc *nats.Conn, timeout time.Duration) *PaymentGateway {
	return &PaymentGateway{nc: nc, timeout: timeout}
}

type paymentInfoRequest struct {
	CartID string `json:"cart_id"`
}

type paymentInfoReply struct {
	models.PaymentInfo
	Error string `json:"error,omitempty"`
}

func (g *PaymentGateway) GetPaymentInfo(ctx context.Context, cartID string) (*models.PaymentInfo, error) {
	var reply paymentInfoReply
	if err := g.request(ctx, SubjectPaymentInfoGet, paymentInfoRequest{CartID: cartID}, &reply); err != nil {
		return nil, apperr.Remote("getPaymentInfo", err.Error())
	}
	if reply.Error != "" {
		return nil, apperr.Remote("getPaymentInfo", reply.Error)
	}
	return &reply.PaymentInfo, nil
}

type setPaymentReply struct {
	Error string `json:"error,omitempty"`
}

func (g *PaymentGateway) SetPayment(ctx context.Context, req models.SetPaymentRequest) error {
	var reply setPaymentReply
	if err := g.request(ctx, SubjectPaymentSet, req, &reply); err != nil {
		return apperr.Remote("setPayment", err.Error())
	}
	if reply.Error != "" {
		return apperr.Remote("setPayment", reply.Error)
	}
	return nil
}

type authorizeReply struct {
	ConfirmationToken string `json:"confirmation_token"`
	Error             string `json:"error,omitempty"`
}

func (g *PaymentGateway) AuthorizePaymentInfo(ctx context.Context, req models.AuthorizeRequest) (string, error) {
	var reply authorizeReply
	if err := g.request(ctx, SubjectAuthorize, req, &reply); err != nil {
		return "", apperr.Remote("authorizePaymentInfo", err.Error())
	}
	if reply.Error != "" {
		return "", apperr.Remote("authorizePaymentInfo", reply.Error)
	}
	return reply.ConfirmationToken, nil
}

func (g *PaymentGateway) request(ctx context.Context, subject string, req, reply any) error {
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

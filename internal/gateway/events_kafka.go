package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/b2bcommerce/payment-method-service/internal/models"
	"github.com/b2bcommerce/payment-method-service/internal/telemetry"
)

// Kafka topics written by this service.
const (
	TopicSubmissionState = "checkout.submission.state"
	TopicOrderConfirmed  = "checkout.order.confirmed"
)

// KafkaPublisher writes submission lifecycle events and order-confirmed
// navigation intents, both keyed by checkout id so per-checkout ordering
// is preserved.
type KafkaPublisher struct {
	stateWriter *kafka.Writer
	orderWriter *kafka.Writer
}

func NewKafkaPublisher(brokers string) *KafkaPublisher {
	return &KafkaPublisher{
		stateWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers),
			Topic:    TopicSubmissionState,
			Balancer: &kafka.LeastBytes{},
		},
		orderWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers),
			Topic:    TopicOrderConfirmed,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) PublishSubmissionState(ctx context.Context, event models.SubmissionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.stateWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CheckoutID),
		Value: payload,
	})
}

// NavigateToOrder emits the order-confirmed event consumers use to route
// the shopper to the confirmation page.
func (p *KafkaPublisher) NavigateToOrder(ctx context.Context, checkoutID, orderNumber string) error {
	event := models.OrderConfirmedEvent{
		CheckoutID:           checkoutID,
		OrderReferenceNumber: orderNumber,
		Timestamp:            time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	telemetry.Logger.Info("Navigating to order confirmation",
		zap.String("checkout_id", checkoutID),
		zap.String("order_number", orderNumber),
	)
	return p.orderWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(checkoutID),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	if err := p.stateWriter.Close(); err != nil {
		return err
	}
	return p.orderWriter.Close()
}

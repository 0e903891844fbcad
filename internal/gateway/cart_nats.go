package gateway

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
)

// SubjectCartRefresh carries fire-and-forget cart summary invalidations.
const SubjectCartRefresh = "cart.summary.refresh"

// CartGateway signals the cart service to refresh its summary cache.
type CartGateway struct {
	nc *nats.Conn
}

func NewCartGateway(nc *nats.Conn) *CartGateway {
	return &CartGateway{nc: nc}
}

type cartRefreshEvent struct {
	CartID string `json:"cart_id"`
}

// RefreshCartSummary publishes the invalidation signal. No reply is
// awaited; the cart service picks it up whenever it is ready.
func (g *CartGateway) RefreshCartSummary(_ context.Context, cartID string) error {
	payload, err := json.Marshal(cartRefreshEvent{CartID: cartID})
	if err != nil {
		return err
	}
	return g.nc.Publish(SubjectCartRefresh, payload)
}

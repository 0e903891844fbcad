package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/b2bcommerce/payment-method-service/internal/telemetry"
)

// RedisSubmissionGuard rejects concurrent payment submissions for the
// same checkout with a SetNX lock. The TTL bounds how long a crashed
// submission can block the checkout.
type RedisSubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSubmissionGuard(client *redis.Client, ttl time.Duration) *RedisSubmissionGuard {
	return &RedisSubmissionGuard{client: client, ttl: ttl}
}

func lockKey(checkoutID string) string {
	return fmt.Sprintf("submission_lock:%s", checkoutID)
}

func (g *RedisSubmissionGuard) Acquire(ctx context.Context, checkoutID string) (bool, error) {
	locked := g.client.SetNX(ctx, lockKey(checkoutID), "1", g.ttl)
	if err := locked.Err(); err != nil {
		return false, err
	}
	return locked.Val(), nil
}

func (g *RedisSubmissionGuard) Release(ctx context.Context, checkoutID string) {
	if err := g.client.Del(ctx, lockKey(checkoutID)).Err(); err != nil {
		telemetry.Logger.Warn("Failed to release submission lock",
			zap.String("checkout_id", checkoutID),
			zap.Error(err),
		)
	}
}

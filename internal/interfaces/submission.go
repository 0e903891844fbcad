package interfaces

import (
	"context"

	"github.com/b2bcommerce/payment-method-service/internal/models"
)

// SubmissionGuard serializes payment submissions per checkout. Acquire
// returns false when another submission for the same checkout is still
// in flight; the caller rejects the attempt instead of queueing it.
type SubmissionGuard interface {
	Acquire(ctx context.Context, checkoutID string) (bool, error)
	Release(ctx context.Context, checkoutID string)
}

// SubmissionRecorder is the audit trail of submission attempts and
// their state transitions.
type SubmissionRecorder interface {
	BeginAttempt(ctx context.Context, checkoutID, attemptID string) error
	// TransitionState moves an attempt from one state to the next and
	// returns the number of rows changed; zero means the attempt was no
	// longer in the expected state.
	TransitionState(ctx context.Context, checkoutID string, from, to models.SubmissionState) (int64, error)
	RecordOrderReference(ctx context.Context, checkoutID, orderReference string) error
	GetByCheckoutID(ctx context.Context, checkoutID string) (*models.SubmissionInfo, error)
}

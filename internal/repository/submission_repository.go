package repository

import (
	"context"
	"database/sql"

	"github.com/b2bcommerce/payment-method-service/internal/models"
)

// SubmissionRepository is the Postgres-backed audit trail of payment
// submission attempts. One row per checkout; a new attempt resets the
// row, and state transitions are guarded on the expected current state.
type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS submission_states (
			checkout_id VARCHAR(255) PRIMARY KEY,
			attempt_id VARCHAR(255) NOT NULL,
			state VARCHAR(50) NOT NULL,
			previous_state VARCHAR(50),
			order_reference VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submission_states_state ON submission_states(state)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (r *SubmissionRepository) BeginAttempt(ctx context.Context, checkoutID, attemptID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO submission_states (checkout_id, attempt_id, state, previous_state, order_reference)
		VALUES ($1, $2, $3, '', '')
		ON CONFLICT (checkout_id) DO UPDATE
		SET attempt_id = $2, state = $3, previous_state = '', order_reference = '', updated_at = NOW()
	`, checkoutID, attemptID, models.SubmissionNew)
	return err
}

func (r *SubmissionRepository) TransitionState(ctx context.Context, checkoutID string, from, to models.SubmissionState) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE submission_states
		SET state = $1, previous_state = $2, updated_at = NOW()
		WHERE checkout_id = $3 AND state = $4
	`, to, from, checkoutID, from)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *SubmissionRepository) RecordOrderReference(ctx context.Context, checkoutID, orderReference string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE submission_states SET order_reference = $1, updated_at = NOW() WHERE checkout_id = $2`,
		orderReference, checkoutID)
	return err
}

func (r *SubmissionRepository) GetByCheckoutID(ctx context.Context, checkoutID string) (*models.SubmissionInfo, error) {
	info := models.SubmissionInfo{CheckoutID: checkoutID}
	err := r.db.QueryRowContext(ctx, `
		SELECT attempt_id, state, previous_state, order_reference, created_at, updated_at
		FROM submission_states WHERE checkout_id = $1
	`, checkoutID).Scan(&info.AttemptID, &info.State, &info.PreviousState, &info.OrderReference, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

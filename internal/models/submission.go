package models

import "time"

// SubmissionState tracks a payment submission attempt through its
// lifecycle. Transitions are guarded in the repository so a stale
// attempt cannot overwrite a newer one.
type SubmissionState string

const (
	SubmissionNew         SubmissionState = "NEW"
	SubmissionValidated   SubmissionState = "VALIDATED"
	SubmissionPaymentSet  SubmissionState = "PAYMENT_SET"
	SubmissionOrderPlaced SubmissionState = "ORDER_PLACED"
	SubmissionAuthorized  SubmissionState = "AUTHORIZED"
	SubmissionSucceeded   SubmissionState = "SUCCEEDED"
	SubmissionFailed      SubmissionState = "FAILED"
)

// SubmissionEvent is published on every submission state transition,
// keyed by checkout id.
type SubmissionEvent struct {
	CheckoutID    string          `json:"checkout_id"`
	AttemptID     string          `json:"attempt_id"`
	PaymentType   PaymentType     `json:"payment_type"`
	State         SubmissionState `json:"state"`
	PreviousState SubmissionState `json:"previous_state"`
	Timestamp     time.Time       `json:"timestamp"`
}

// OrderConfirmedEvent is the navigation intent emitted once a submission
// completes. Consumers route the shopper to the order confirmation page.
type OrderConfirmedEvent struct {
	CheckoutID           string      `json:"checkout_id"`
	OrderReferenceNumber string      `json:"order_reference_number"`
	PaymentType          PaymentType `json:"payment_type"`
	Timestamp            time.Time   `json:"timestamp"`
}

// SubmissionInfo is the read model of a submission attempt's current state.
type SubmissionInfo struct {
	CheckoutID     string
	AttemptID      string
	State          string
	PreviousState  string
	OrderReference string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

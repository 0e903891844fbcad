package errors

import "fmt"

// DomainError is a stable, coded error surfaced to callers of the
// checkout payment flow.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// RemoteError wraps a failure reported by an external collaborator.
// Message carries the collaborator's own error text so it can be shown
// on the relevant subform.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Remote builds a RemoteError for the named collaborator call.
func Remote(op, message string) *RemoteError {
	return &RemoteError{Op: op, Message: message}
}

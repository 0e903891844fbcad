package errors

var (
	ErrRequiredDataMissing = &DomainError{
		Code:    "REQUIRED_DATA_MISSING",
		Message: "required data is missing",
	}
	ErrMissingOrderReference = &DomainError{
		Code:    "MISSING_ORDER_REFERENCE",
		Message: "required order reference number is missing",
	}
	ErrBillingAddressRequired = &DomainError{
		Code:    "BILLING_ADDRESS_REQUIRED",
		Message: "Billing Address is required",
	}
	ErrCheckoutNotReady = &DomainError{
		Code:    "CHECKOUT_NOT_READY",
		Message: "checkout session is still starting",
	}
	ErrSubmissionInFlight = &DomainError{
		Code:    "SUBMISSION_IN_FLIGHT",
		Message: "a payment submission for this checkout is already in progress",
	}
)

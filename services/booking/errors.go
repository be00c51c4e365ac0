package booking

import "fmt"

// Error is a coded, user-correctable booking-flow error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrDuplicateCartEntry rejects an exact (service, provider, time)
	// triple already present in the cart.
	ErrDuplicateCartEntry = &Error{
		Code:    "duplicate",
		Message: "This service with the selected provider and time has already been added to the cart.",
	}

	// ErrMissingContactInfo blocks submission when name or email is empty.
	ErrMissingContactInfo = &Error{
		Code:    "missingContactInfo",
		Message: "Please fill in both name and email.",
	}

	// ErrEmptyCart blocks submission of a cart with no items.
	ErrEmptyCart = &Error{
		Code:    "emptyCart",
		Message: "No services added.",
	}

	// ErrSessionNotFound covers expired or unknown session ids.
	ErrSessionNotFound = &Error{
		Code:    "sessionNotFound",
		Message: "Booking session not found or expired.",
	}

	// ErrSubmissionInFlight refuses a second submit while one is pending.
	ErrSubmissionInFlight = &Error{
		Code:    "submissionInFlight",
		Message: "A booking submission is already in progress.",
	}
)

// InvalidSelectionError marks a contract violation: the UI only ever offers
// valid choices, so hitting this path means the caller is broken, not the
// customer.
type InvalidSelectionError struct {
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return "invalid selection: " + e.Reason
}

package deposit

import "errors"

var (
	// ErrNotFound: no request exists with the given id.
	ErrNotFound = errors.New("deposit: request not found")
	// ErrAlreadyConfirmed: the request is terminal and cannot be confirmed again.
	ErrAlreadyConfirmed = errors.New("deposit: request already confirmed")
	// ErrNoneAwaiting: no request is waiting for a payment phone.
	ErrNoneAwaiting = errors.New("deposit: no requests awaiting assignment")
	// ErrNoActiveRequest: the client has no request eligible for a proof.
	ErrNoActiveRequest = errors.New("deposit: no active request for proof")
)

// ValidationError rejects malformed client input. Code feeds the
// handler summary log err_code field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "deposit: invalid " + e.Field + ": " + e.Reason
}

// Code returns a stable machine-readable identifier.
func (e *ValidationError) Code() string {
	return "validation_" + e.Field
}

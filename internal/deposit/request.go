package deposit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status tracks a deposit request through its lifecycle.
type Status string

const (
	// StatusCreated: request registered, waiting for an operator to hand out a payment phone.
	StatusCreated Status = "created"
	// StatusInstructionsSent: a payment phone was assigned and relayed to the client.
	StatusInstructionsSent Status = "instructions_sent"
	// StatusProofSubmitted: the client sent a payment screenshot.
	StatusProofSubmitted Status = "proof_submitted"
	// StatusConfirmed: an operator confirmed the payment. Terminal.
	StatusConfirmed Status = "confirmed"
)

// allowed transitions; confirmation is reachable from any non-terminal state
// so an operator can settle a request even before the proof arrives.
var transitions = map[Status][]Status{
	StatusCreated:          {StatusInstructionsSent, StatusConfirmed},
	StatusInstructionsSent: {StatusProofSubmitted, StatusConfirmed},
	StatusProofSubmitted:   {StatusProofSubmitted, StatusConfirmed},
	StatusConfirmed:        {},
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status accepts no further transitions.
func (s Status) Terminal() bool {
	return s == StatusConfirmed
}

// Awaiting reports whether the request still waits for operator action.
func (s Status) Awaiting() bool {
	return s == StatusCreated
}

// HasInstructions reports whether a payment phone has been handed out.
func (s Status) HasInstructions() bool {
	return s == StatusInstructionsSent || s == StatusProofSubmitted
}

func (s Status) String() string { return string(s) }

// Request is a single client deposit intake.
type Request struct {
	ID            int64
	RequesterID   int64
	RequesterName string
	AccountID     string
	Amount        decimal.Decimal
	Status        Status
	Phone         string
	CreatedAt     time.Time
	ConfirmedBy   string
	ConfirmedAt   time.Time
}

// Confirmed reports whether the request reached its terminal state.
func (r *Request) Confirmed() bool {
	return r.Status.Terminal()
}

package deposit

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Store keeps deposit requests in memory. State is volatile: a restart
// drops all requests by design. All compound read-modify-write
// operations run under a single lock so concurrent operator replies
// cannot double-assign a request.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	requests []*Request
}

// NewStore returns an empty store. Identifiers start at 1000.
func NewStore() *Store {
	return &Store{nextID: 1000}
}

// Create registers a new request in the created state and returns a copy.
func (s *Store) Create(requesterID int64, requesterName, accountID string, amount decimal.Decimal) Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &Request{
		ID:            s.nextID,
		RequesterID:   requesterID,
		RequesterName: requesterName,
		AccountID:     accountID,
		Amount:        amount,
		Status:        StatusCreated,
		CreatedAt:     time.Now(),
	}
	s.nextID++
	s.requests = append(s.requests, r)
	return *r
}

// AssignOldest attaches the phone to the oldest request still awaiting
// assignment and moves it to instructions_sent. Returns ErrNoneAwaiting
// when every request already has instructions or is settled.
func (s *Store) AssignOldest(phone string) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if !r.Status.Awaiting() {
			continue
		}
		r.Phone = phone
		r.Status = StatusInstructionsSent
		return *r, nil
	}
	return Request{}, ErrNoneAwaiting
}

// AttachProof marks the requester's current request as proof_submitted.
// The newest eligible request wins when the client has several open.
// Re-submitting a proof is allowed and keeps the same status.
func (s *Store) AttachProof(requesterID int64) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.requests) - 1; i >= 0; i-- {
		r := s.requests[i]
		if r.RequesterID != requesterID || !r.Status.HasInstructions() {
			continue
		}
		r.Status = StatusProofSubmitted
		return *r, nil
	}
	return Request{}, ErrNoActiveRequest
}

// Confirm settles the request. A second confirmation of the same
// request returns ErrAlreadyConfirmed and leaves the record untouched.
func (s *Store) Confirm(id int64, confirmedBy string) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.ID != id {
			continue
		}
		if r.Status.Terminal() {
			return *r, ErrAlreadyConfirmed
		}
		r.Status = StatusConfirmed
		r.ConfirmedBy = confirmedBy
		r.ConfirmedAt = time.Now()
		return *r, nil
	}
	return Request{}, ErrNotFound
}

// ByID returns a copy of the request with the given id.
func (s *Store) ByID(id int64) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.requests {
		if r.ID == id {
			return *r, nil
		}
	}
	return Request{}, ErrNotFound
}

// Unassigned lists requests still awaiting a payment phone, oldest first.
func (s *Store) Unassigned() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Request
	for _, r := range s.requests {
		if r.Status.Awaiting() {
			out = append(out, *r)
		}
	}
	return out
}

// Len returns the total number of stored requests.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

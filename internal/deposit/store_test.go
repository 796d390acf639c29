package deposit

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStoreIDsStartAt1000(t *testing.T) {
	s := NewStore()
	first := s.Create(1, "alice", "555001", amt("100"))
	second := s.Create(2, "bob", "555002", amt("200"))

	if first.ID != 1000 {
		t.Fatalf("first id = %d, want 1000", first.ID)
	}
	if second.ID != 1001 {
		t.Fatalf("second id = %d, want 1001", second.ID)
	}
	if first.Status != StatusCreated {
		t.Fatalf("status = %s, want %s", first.Status, StatusCreated)
	}
}

func TestAssignOldestIsFIFO(t *testing.T) {
	s := NewStore()
	first := s.Create(1, "alice", "555001", amt("100"))
	second := s.Create(2, "bob", "555002", amt("200"))

	got, err := s.AssignOldest("+993 65 656 565")
	if err != nil {
		t.Fatalf("AssignOldest returned error: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("assigned id = %d, want oldest %d", got.ID, first.ID)
	}
	if got.Status != StatusInstructionsSent {
		t.Fatalf("status = %s, want %s", got.Status, StatusInstructionsSent)
	}

	got, err = s.AssignOldest("+993 61 616 161")
	if err != nil {
		t.Fatalf("second AssignOldest returned error: %v", err)
	}
	if got.ID != second.ID {
		t.Fatalf("assigned id = %d, want %d", got.ID, second.ID)
	}

	if _, err := s.AssignOldest("+993 62 626 262"); !errors.Is(err, ErrNoneAwaiting) {
		t.Fatalf("expected ErrNoneAwaiting, got %v", err)
	}
}

func TestAttachProofRequiresInstructions(t *testing.T) {
	s := NewStore()
	s.Create(7, "carol", "555003", amt("150"))

	if _, err := s.AttachProof(7); !errors.Is(err, ErrNoActiveRequest) {
		t.Fatalf("expected ErrNoActiveRequest before assignment, got %v", err)
	}

	if _, err := s.AssignOldest("+993 65 656 565"); err != nil {
		t.Fatalf("AssignOldest returned error: %v", err)
	}

	got, err := s.AttachProof(7)
	if err != nil {
		t.Fatalf("AttachProof returned error: %v", err)
	}
	if got.Status != StatusProofSubmitted {
		t.Fatalf("status = %s, want %s", got.Status, StatusProofSubmitted)
	}

	// Re-submission keeps the request eligible
	if _, err := s.AttachProof(7); err != nil {
		t.Fatalf("second AttachProof returned error: %v", err)
	}
}

func TestConfirmIsIdempotentGuarded(t *testing.T) {
	s := NewStore()
	req := s.Create(9, "dave", "555004", amt("300"))

	got, err := s.Confirm(req.ID, "operator-1")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if got.Status != StatusConfirmed || got.ConfirmedBy != "operator-1" {
		t.Fatalf("unexpected confirm result: %+v", got)
	}

	again, err := s.Confirm(req.ID, "operator-2")
	if !errors.Is(err, ErrAlreadyConfirmed) {
		t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
	}
	if again.ConfirmedBy != "operator-1" {
		t.Fatalf("record mutated on repeat confirm: %+v", again)
	}
}

func TestConfirmUnknownID(t *testing.T) {
	s := NewStore()
	if _, err := s.Confirm(4242, "operator-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUnassignedListsOldestFirst(t *testing.T) {
	s := NewStore()
	a := s.Create(1, "alice", "555001", amt("100"))
	b := s.Create(2, "bob", "555002", amt("200"))
	if _, err := s.AssignOldest("+993 65 656 565"); err != nil {
		t.Fatalf("AssignOldest returned error: %v", err)
	}

	pending := s.Unassigned()
	if len(pending) != 1 || pending[0].ID != b.ID {
		t.Fatalf("pending = %+v, want only %d", pending, b.ID)
	}
	if _, err := s.ByID(a.ID); err != nil {
		t.Fatalf("ByID(%d) returned error: %v", a.ID, err)
	}
}

func TestCopiesAreDetached(t *testing.T) {
	s := NewStore()
	req := s.Create(1, "alice", "555001", amt("100"))
	req.Status = StatusConfirmed

	stored, err := s.ByID(req.ID)
	if err != nil {
		t.Fatalf("ByID returned error: %v", err)
	}
	if stored.Status != StatusCreated {
		t.Fatalf("mutating a returned copy leaked into the store")
	}
}

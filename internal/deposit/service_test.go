package deposit

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestService() *Service {
	return NewService(NewStore(), decimal.NewFromInt(50))
}

func TestServiceCreateRequest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req, err := svc.CreateRequest(ctx, 100, "alice", "555001", "75,5")
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}
	if req.ID != 1000 {
		t.Fatalf("id = %d, want 1000", req.ID)
	}
	if want := decimal.RequireFromString("75.5"); !req.Amount.Equal(want) {
		t.Fatalf("amount = %s, want %s", req.Amount, want)
	}
	if req.Status != StatusCreated {
		t.Fatalf("status = %s, want %s", req.Status, StatusCreated)
	}
}

func TestServiceCreateRequestRejectsLowAmount(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateRequest(context.Background(), 100, "alice", "555001", "30")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestServiceCreateRequestRejectsEmptyAccount(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateRequest(context.Background(), 100, "alice", "   ", "100")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "account_id" {
		t.Fatalf("field = %q, want account_id", verr.Field)
	}
}

func TestServiceAssignPhoneFormatsNumber(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, 100, "alice", "555001", "100")
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}

	req, err := svc.AssignPhoneToOldest(ctx, "65656565")
	if err != nil {
		t.Fatalf("AssignPhoneToOldest returned error: %v", err)
	}
	if req.ID != created.ID {
		t.Fatalf("assigned id = %d, want %d", req.ID, created.ID)
	}
	if req.Phone != "+993 65 656 565" {
		t.Fatalf("phone = %q, want %q", req.Phone, "+993 65 656 565")
	}
}

func TestServiceAssignPhoneRejectsNonCandidate(t *testing.T) {
	svc := newTestService()
	_, err := svc.AssignPhoneToOldest(context.Background(), "not-a-phone")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestServiceAssignPhoneNoneAwaiting(t *testing.T) {
	svc := newTestService()
	_, err := svc.AssignPhoneToOldest(context.Background(), "65656565")
	if !errors.Is(err, ErrNoneAwaiting) {
		t.Fatalf("expected ErrNoneAwaiting, got %v", err)
	}
}

func TestServiceFullWorkflow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.CreateRequest(ctx, 100, "alice", "555001", "100")
	if err != nil {
		t.Fatalf("CreateRequest(first) returned error: %v", err)
	}
	second, err := svc.CreateRequest(ctx, 200, "bob", "555002", "250")
	if err != nil {
		t.Fatalf("CreateRequest(second) returned error: %v", err)
	}

	// First operator reply serves the oldest request
	assigned, err := svc.AssignPhoneToOldest(ctx, "65656565")
	if err != nil {
		t.Fatalf("AssignPhoneToOldest returned error: %v", err)
	}
	if assigned.ID != first.ID {
		t.Fatalf("assigned id = %d, want %d", assigned.ID, first.ID)
	}

	proofed, err := svc.AttachProof(ctx, 100)
	if err != nil {
		t.Fatalf("AttachProof returned error: %v", err)
	}
	if proofed.Status != StatusProofSubmitted {
		t.Fatalf("status = %s, want %s", proofed.Status, StatusProofSubmitted)
	}

	confirmed, err := svc.Confirm(ctx, first.ID, "777")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if !confirmed.Confirmed() {
		t.Fatalf("request not terminal after confirm: %+v", confirmed)
	}

	if _, err := svc.Confirm(ctx, first.ID, "888"); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
	}

	pending := svc.ListUnassigned(ctx)
	if len(pending) != 1 || pending[0].ID != second.ID {
		t.Fatalf("pending = %+v, want only %d", pending, second.ID)
	}
}

func TestServiceConfirmUnknown(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Confirm(context.Background(), 5555, "777"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

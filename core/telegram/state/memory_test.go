package state

import "testing"

func TestMemoryManagerStateLifecycle(t *testing.T) {
	m := NewMemoryManager()

	if m.HasState(1) {
		t.Fatal("fresh user should have no state")
	}
	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("GetState = %q, want idle", got)
	}

	m.SetState(1, State("awaiting_amount"))
	if !m.InProgress(1) {
		t.Fatal("expected in-progress after SetState")
	}
	if got := m.GetState(1); got != State("awaiting_amount") {
		t.Fatalf("GetState = %q", got)
	}

	// states are independent per user
	if m.InProgress(2) {
		t.Fatal("other user should not be in progress")
	}

	m.ClearState(1)
	if m.InProgress(1) {
		t.Fatal("expected idle after ClearState")
	}
}

func TestMemoryManagerTempData(t *testing.T) {
	m := NewMemoryManager()

	if _, ok := m.GetTemp(5, "account_id"); ok {
		t.Fatal("expected no temp data")
	}

	m.SetTemp(5, "account_id", "AB-1234")
	got, ok := m.GetTempString(5, "account_id")
	if !ok || got != "AB-1234" {
		t.Fatalf("GetTempString = %q, %v", got, ok)
	}

	// wrong type assertion fails cleanly
	m.SetTemp(5, "attempts", 3)
	if _, ok := m.GetTempString(5, "attempts"); ok {
		t.Fatal("expected type mismatch to report not-found")
	}

	m.ClearTemp(5, "account_id")
	if _, ok := m.GetTemp(5, "account_id"); ok {
		t.Fatal("expected temp key removed")
	}

	m.Clear(5)
	if m.HasState(5) {
		t.Fatal("expected session removed")
	}
}

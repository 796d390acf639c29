package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m3rciful/topupbot/internal/deposit"
)

func sampleRequest() deposit.Request {
	return deposit.Request{
		ID:            1000,
		RequesterID:   42,
		RequesterName: "Мария",
		AccountID:     "555001",
		Amount:        decimal.RequireFromString("75.5"),
		Status:        deposit.StatusInstructionsSent,
		Phone:         "+993 65 656 565",
		CreatedAt:     time.Date(2025, 3, 14, 15, 4, 0, 0, time.UTC),
	}
}

func TestNewRequestGroupText(t *testing.T) {
	got := newRequestGroupText(sampleRequest())
	for _, want := range []string{"#1000", "Мария", "555001", "75.5 TMT", "15:04 14.03.2025", "65656565"} {
		if !strings.Contains(got, want) {
			t.Errorf("group text missing %q:\n%s", want, got)
		}
	}
}

func TestPaymentInstructionsText(t *testing.T) {
	got := paymentInstructionsText(sampleRequest())
	if !strings.Contains(got, "`+993 65 656 565`") {
		t.Fatalf("instructions missing formatted phone:\n%s", got)
	}
	if !strings.Contains(got, "75.5 TMT") {
		t.Fatalf("instructions missing amount:\n%s", got)
	}
}

func TestPaymentConfirmedGroupText(t *testing.T) {
	req := sampleRequest()
	req.Status = deposit.StatusConfirmed
	req.ConfirmedBy = "Батыр"

	got := paymentConfirmedGroupText(req)
	for _, want := range []string{"#1000", "Мария", "Батыр"} {
		if !strings.Contains(got, want) {
			t.Errorf("confirmed text missing %q:\n%s", want, got)
		}
	}
}

func TestAccountFundedText(t *testing.T) {
	got := accountFundedText(sampleRequest())
	if !strings.Contains(got, "#1000") || !strings.Contains(got, "75.5 TMT") {
		t.Fatalf("funded text incomplete:\n%s", got)
	}
}

func TestPendingListText(t *testing.T) {
	reqs := []deposit.Request{sampleRequest(), {
		ID:            1001,
		RequesterName: "Иван",
		Amount:        decimal.NewFromInt(200),
	}}
	got := pendingListText(reqs)
	if !strings.Contains(got, "#1000") || !strings.Contains(got, "#1001") {
		t.Fatalf("pending list missing entries:\n%s", got)
	}
}

func TestNamesAreEscapedForMarkdown(t *testing.T) {
	req := sampleRequest()
	req.RequesterName = "ev_il*name"
	got := newRequestGroupText(req)
	if strings.Contains(got, "ev_il*name") {
		t.Fatalf("markdown metacharacters not escaped:\n%s", got)
	}
}

func TestConfirmKeyboardCarriesRequestID(t *testing.T) {
	markup := confirmKeyboard(1234)
	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 1 {
		t.Fatalf("unexpected keyboard shape: %+v", markup.InlineKeyboard)
	}
	btn := markup.InlineKeyboard[0][0]
	if btn.Unique != "confirm" {
		t.Fatalf("button unique = %q, want confirm", btn.Unique)
	}
	if btn.Data != "1234" {
		t.Fatalf("button data = %q, want 1234", btn.Data)
	}
}

package deposit

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmountAcceptsComma(t *testing.T) {
	min := decimal.NewFromInt(50)
	amt, err := ParseAmount("75,5", min)
	if err != nil {
		t.Fatalf("ParseAmount returned error: %v", err)
	}
	if want := decimal.RequireFromString("75.5"); !amt.Equal(want) {
		t.Fatalf("amount = %s, want %s", amt, want)
	}
}

func TestParseAmountBelowMinimum(t *testing.T) {
	min := decimal.NewFromInt(50)
	_, err := ParseAmount("30", min)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "amount" {
		t.Fatalf("field = %q, want amount", verr.Field)
	}
}

func TestParseAmountAtMinimum(t *testing.T) {
	min := decimal.NewFromInt(50)
	amt, err := ParseAmount("50", min)
	if err != nil {
		t.Fatalf("ParseAmount returned error: %v", err)
	}
	if !amt.Equal(min) {
		t.Fatalf("amount = %s, want %s", amt, min)
	}
}

func TestParseAmountGarbage(t *testing.T) {
	min := decimal.NewFromInt(50)
	for _, raw := range []string{"", "abc", "12.3.4", "  "} {
		if _, err := ParseAmount(raw, min); err == nil {
			t.Fatalf("ParseAmount(%q) accepted invalid input", raw)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	if got := FormatPhone("65656565"); got != "+993 65 656 565" {
		t.Fatalf("FormatPhone = %q, want %q", got, "+993 65 656 565")
	}
}

func TestFormatPhonePassThroughOnBadLength(t *testing.T) {
	if got := FormatPhone("123"); got != "123" {
		t.Fatalf("FormatPhone = %q, want pass-through", got)
	}
}

func TestIsPhoneCandidate(t *testing.T) {
	cases := map[string]bool{
		"65656565":  true,
		" 65656565": true,
		"6565656":   false,
		"656565650": false,
		"6565656a":  false,
		"hello":     false,
	}
	for in, want := range cases {
		if got := IsPhoneCandidate(in); got != want {
			t.Errorf("IsPhoneCandidate(%q) = %v, want %v", in, got, want)
		}
	}
}

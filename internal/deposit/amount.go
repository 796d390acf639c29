package deposit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts raw client input into a deposit amount.
// A decimal comma is accepted alongside the decimal point. Amounts
// below min are rejected.
func ParseAmount(raw string, min decimal.Decimal) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "empty"}
	}
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "not a number"}
	}
	if amt.LessThan(min) {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "below minimum " + min.String()}
	}
	return amt, nil
}

// IsPhoneCandidate reports whether the text is exactly eight digits,
// the short form operators use for payment phones.
func IsPhoneCandidate(text string) bool {
	s := strings.TrimSpace(text)
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatPhone renders an eight-digit short number in the national
// format: "65656565" becomes "+993 65 656 565".
func FormatPhone(digits string) string {
	s := strings.TrimSpace(digits)
	if len(s) != 8 {
		return s
	}
	return "+993 " + s[:2] + " " + s[2:5] + " " + s[5:]
}

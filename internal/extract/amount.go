// Package extract implements the per-source heuristics that recover a
// company name, a service type, and a monetary amount from raw page text.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches a monetary token: comma-grouped thousands with an
// optional two-digit fraction, or a plain integer with an optional two-digit
// fraction.
var amountPattern = regexp.MustCompile(`[0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{2})?|[0-9]+(?:\.[0-9]{2})?`)

// ParseAmount converts a raw numeric-looking string into an exact decimal.
// Grouping commas are stripped first. Empty or malformed input yields an
// invalid NullDecimal rather than an error: callers treat it as "no amount
// found" and carry on.
func ParseAmount(raw string) decimal.NullDecimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// LocateAmount finds the first numeric token following the first occurrence
// of marker in text. The marker match is exact and case-sensitive. The token
// is returned verbatim, not yet parsed; ok is false when either the marker or
// a trailing numeric token is absent.
func LocateAmount(text, marker string) (string, bool) {
	if text == "" || marker == "" {
		return "", false
	}
	idx := strings.Index(text, marker)
	if idx < 0 {
		return "", false
	}
	match := amountPattern.FindString(text[idx+len(marker):])
	if match == "" {
		return "", false
	}
	return match, true
}

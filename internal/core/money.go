// Package core holds the domain types shared by the stores and the HTTP layer.
//
// Money is kept as integer cents internally and only converted to a float at
// the serialization boundary, so arithmetic and comparisons stay exact.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a monetary amount in cents.
type Money struct {
	Cents int64
}

// Value returns the amount as a float64 for JSON serialization.
func (m Money) Value() float64 {
	return float64(m.Cents) / 100.0
}

// ParseCents converts a decimal string to signed cents with half-up rounding
// on the third decimal place. It accepts both dot (12.34) and comma (12,34)
// separators and an optional leading sign. Callers enforce their own range
// rules (expenses positive, budgets non-negative) on the result.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ValidationError("Invalid value format")
	}
	s = strings.ReplaceAll(s, ",", ".")

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ValidationError("Invalid value format")
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return 0, ValidationError("Invalid value format")
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ValidationError("Invalid value format")
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ValidationError("Invalid value format")
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ValidationError("Invalid value format")
	}
	// Guard the *100 below.
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ValidationError("Invalid value format")
	}

	// First two fractional digits, half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents, nil
}

// ParseAmountCents parses a strictly positive expense value.
func ParseAmountCents(s string) (int64, error) {
	cents, err := ParseCents(s)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, ValidationError("Value must be positive")
	}
	return cents, nil
}

// ParseBudgetCents parses a non-negative category budget.
func ParseBudgetCents(s string) (int64, error) {
	cents, err := ParseCents(s)
	if err != nil {
		return 0, ValidationError("Invalid budget format")
	}
	if cents < 0 {
		return 0, ValidationError("Budget must be non-negative")
	}
	return cents, nil
}

package core

import (
	"strings"
	"time"
)

// FallbackCategoryName is the reserved catch-all category. Expenses are never
// left pointing at a deleted category: they are reassigned here instead.
const FallbackCategoryName = "Outros"

type (
	// Category is a named spending bucket with an optional monthly budget.
	Category struct {
		ID     int64
		Name   string
		Budget Money
	}

	// Expense is a single dated outflow attributed to exactly one category.
	Expense struct {
		ID          string
		Value       Money
		Date        string // YYYY-MM-DD
		Description string
		CategoryID  int64
		Category    string // resolved category name at read time, empty when the reference is broken
	}

	// ExpenseInput carries the mutable fields of an expense for create/update.
	ExpenseInput struct {
		ValueCents   int64
		Date         string
		Description  string
		CategoryName string
	}

	// ExpenseFilter narrows an expense listing. Zero values mean no filtering.
	ExpenseFilter struct {
		CategoryName string
		Date         string
	}
)

// ValidateDate checks that s is an exact YYYY-MM-DD calendar date.
// Dates are stored and compared as plain strings, so the canonical format is
// what keeps lexicographic order equal to chronological order.
func ValidateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ValidationError("Value, date, and category are required")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ValidationError("Invalid date format, expected YYYY-MM-DD")
	}
	return nil
}

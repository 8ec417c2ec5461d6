// Package core implements the earnings ledger domain: daily entries,
// period aggregation, the progressive tax rule, goal progress and chart
// series derivation. Everything here is pure and deterministic given the
// ledger contents; persistence and transport live elsewhere.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExpenseInput is one raw category/amount pair as it arrives from a form.
type ExpenseInput struct {
	Category string
	Amount   string
}

// EntryInput carries the raw field values for a single day before
// normalization. All numeric fields are text; blank or garbage values
// never cause an error.
type EntryInput struct {
	Hours    string
	Tips     string
	Expenses []ExpenseInput
	Notes    string
}

// NormalizeEntry converts raw input into a well-formed DailyEntry.
// Non-numeric or negative hours/tips become 0. Expense rows survive only
// with a non-empty trimmed category and a positive amount; invalid rows
// are dropped silently rather than failing the whole entry.
func NormalizeEntry(in EntryInput) DailyEntry {
	entry := DailyEntry{
		Hours:    parseNonNegative(in.Hours),
		Tips:     parseNonNegative(in.Tips),
		Expenses: []Expense{},
		Notes:    strings.TrimSpace(in.Notes),
	}
	for _, raw := range in.Expenses {
		category := strings.TrimSpace(raw.Category)
		amount, err := ParseAmount(raw.Amount)
		if category == "" || err != nil || amount <= 0 {
			continue
		}
		entry.Expenses = append(entry.Expenses, Expense{Category: category, Amount: amount})
	}
	return entry
}

// SanitizeEntry applies the normalization rules to an already-typed entry,
// as used when accepting entries from an import. Negative hours/tips are
// zeroed, invalid expense rows dropped, notes trimmed.
func SanitizeEntry(e DailyEntry) DailyEntry {
	out := DailyEntry{
		Hours:    e.Hours,
		Tips:     e.Tips,
		Expenses: []Expense{},
		Notes:    strings.TrimSpace(e.Notes),
	}
	if out.Hours < 0 {
		out.Hours = 0
	}
	if out.Tips < 0 {
		out.Tips = 0
	}
	for _, exp := range e.Expenses {
		category := strings.TrimSpace(exp.Category)
		if category == "" || exp.Amount <= 0 {
			continue
		}
		out.Expenses = append(out.Expenses, Expense{Category: category, Amount: exp.Amount})
	}
	return out
}

// ParseAmount parses a decimal amount from text, accepting both dot
// (12.34) and comma (12,34) separators.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, _ := d.Float64()
	return f, nil
}

func parseNonNegative(s string) float64 {
	v, err := ParseAmount(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

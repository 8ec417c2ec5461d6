package core

import (
	"errors"
)

// Expense is a single itemized cost attached to a day.
type Expense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DailyEntry holds everything recorded for one calendar date. A date with
// no stored entry behaves exactly like DefaultEntry().
type DailyEntry struct {
	Hours    float64   `json:"hours"`
	Tips     float64   `json:"tips"`
	Expenses []Expense `json:"expenses"`
	Notes    string    `json:"notes"`
}

var (
	ErrInvalidDate   = errors.New("invalid date: want YYYY-MM-DD")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrGoalRejected  = errors.New("weekly goal must be a positive amount")
	ErrNoPriorEntry  = errors.New("no entry recorded for the previous day")
	ErrCorruptImport = errors.New("import rejected: corrupt ledger data")
)

// DefaultEntry returns the zero-valued entry implied by a missing ledger key.
// Expenses is an empty slice, not nil, so serialized entries always carry
// an expenses array.
func DefaultEntry() DailyEntry {
	return DailyEntry{Expenses: []Expense{}}
}

// ExpenseTotal sums all itemized expenses of the entry.
func (e DailyEntry) ExpenseTotal() float64 {
	var total float64
	for _, exp := range e.Expenses {
		total += exp.Amount
	}
	return total
}

// Net returns tips minus expenses for the entry.
func (e DailyEntry) Net() float64 {
	return e.Tips - e.ExpenseTotal()
}

// HourlyRate returns tips per worked hour, or 0 when no hours were recorded.
func (e DailyEntry) HourlyRate() float64 {
	if e.Hours <= 0 {
		return 0
	}
	return e.Tips / e.Hours
}

// IsZero reports whether the entry carries no recorded data.
func (e DailyEntry) IsZero() bool {
	return e.Hours == 0 && e.Tips == 0 && len(e.Expenses) == 0 && e.Notes == ""
}

// Clone returns a deep copy. Entries handed out by a store must not share
// the expenses slice with the stored value.
func (e DailyEntry) Clone() DailyEntry {
	out := e
	out.Expenses = make([]Expense, len(e.Expenses))
	copy(out.Expenses, e.Expenses)
	return out
}

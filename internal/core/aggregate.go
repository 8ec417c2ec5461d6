package core

// Source is the read side of a ledger: the set of dates with explicit
// entries plus entry lookup. Get must return DefaultEntry() for dates
// that were never stored so that aggregation can treat missing days as
// zero instead of an error.
type Source interface {
	Keys() []string
	Get(date string) DailyEntry
}

// PeriodSummary holds the derived totals for an inclusive date range.
type PeriodSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Net           float64 `json:"net"`
	EntryCount    int     `json:"entryCount"`
}

// Aggregate computes totals over [start, end], both ends inclusive.
// Only stored keys are visited; dates without an entry contribute zero.
// The function is pure: identical ledger state yields identical results.
func Aggregate(src Source, start, end string) PeriodSummary {
	var sum PeriodSummary
	for _, date := range src.Keys() {
		if date < start || date > end {
			continue
		}
		entry := src.Get(date)
		sum.TotalIncome += entry.Tips
		sum.TotalExpenses += entry.ExpenseTotal()
		sum.EntryCount++
	}
	sum.Net = sum.TotalIncome - sum.TotalExpenses
	return sum
}

package core

import "sort"

// MonthlySummary is the per-month view: period totals plus the tax figures
// that only exist at monthly granularity.
type MonthlySummary struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	PeriodSummary
	Taxable    float64 `json:"taxable"`
	Tax        float64 `json:"tax"`
	NetSavings float64 `json:"netSavings"`
}

// WeeklySummary is the per-week view. No tax applies at this granularity;
// Net is income minus expenses only.
type WeeklySummary struct {
	Year      int    `json:"year"`
	Week      int    `json:"week"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	PeriodSummary
}

// DailySummary is the per-day view, including the hourly rate shown on
// the day form.
type DailySummary struct {
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	Net        float64 `json:"net"`
	HourlyRate float64 `json:"hourlyRate"`
}

// ComputeMonthlySummary aggregates the full calendar month and applies the
// tax rule. NetSavings = TotalIncome - TotalExpenses - Tax.
func ComputeMonthlySummary(src Source, year, month int) MonthlySummary {
	start, end := MonthRange(year, month)
	period := Aggregate(src, start, end)
	tax := ComputeTax(period.TotalIncome)
	return MonthlySummary{
		Year:          year,
		Month:         month,
		PeriodSummary: period,
		Taxable:       TaxableIncome(period.TotalIncome),
		Tax:           tax,
		NetSavings:    period.TotalIncome - period.TotalExpenses - tax,
	}
}

// ComputeWeeklySummary aggregates the 7-day block for the given week
// number under the chosen scheme.
func ComputeWeeklySummary(src Source, year, week int, scheme WeekScheme) WeeklySummary {
	start, end := WeekRange(year, week, scheme)
	return WeeklySummary{
		Year:          year,
		Week:          week,
		StartDate:     start,
		EndDate:       end,
		PeriodSummary: Aggregate(src, start, end),
	}
}

// ComputeDailySummary derives the single-day figures for date. A date
// without a stored entry yields an all-zero summary.
func ComputeDailySummary(src Source, date string) DailySummary {
	entry := src.Get(date)
	return DailySummary{
		Date:       date,
		Hours:      entry.Hours,
		Income:     entry.Tips,
		Expenses:   entry.ExpenseTotal(),
		Net:        entry.Net(),
		HourlyRate: entry.HourlyRate(),
	}
}

// MonthKeys returns the distinct YYYY-MM prefixes of all stored dates,
// newest first. It drives the month-by-month history view.
func MonthKeys(src Source) []string {
	seen := map[string]struct{}{}
	var months []string
	for _, date := range src.Keys() {
		if len(date) < 7 {
			continue
		}
		month := date[:7]
		if _, ok := seen[month]; ok {
			continue
		}
		seen[month] = struct{}{}
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

package core

// ChartPoint is one bar of the monthly income chart.
type ChartPoint struct {
	Day    int     `json:"day"`
	Income float64 `json:"income"`
}

// ChartSeries is the normalized per-day income series for one month.
// MaxIncome is the scale for bar heights; when every day is zero it is
// substituted with 100 so an empty month still renders flat bars instead
// of dividing by zero. It is a display convention, never a financial
// figure.
type ChartSeries struct {
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	Points    []ChartPoint `json:"points"`
	MaxIncome float64      `json:"maxIncome"`
}

// MonthlySeries builds one point per calendar day of the month, income 0
// for days with no entry.
func MonthlySeries(src Source, year, month int) ChartSeries {
	days := DaysInMonth(year, month)
	series := ChartSeries{
		Year:   year,
		Month:  month,
		Points: make([]ChartPoint, 0, days),
	}
	for day := 1; day <= days; day++ {
		income := src.Get(DayKey(year, month, day)).Tips
		series.Points = append(series.Points, ChartPoint{Day: day, Income: income})
		if income > series.MaxIncome {
			series.MaxIncome = income
		}
	}
	if series.MaxIncome == 0 {
		series.MaxIncome = 100
	}
	return series
}

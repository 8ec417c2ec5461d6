package core

import "testing"

func TestMonthlySeriesSingleEntry(t *testing.T) {
	// April has 30 days; one entry on day 15.
	src := mapSource{"2024-04-15": {Tips: 50}}
	series := MonthlySeries(src, 2024, 4)
	if len(series.Points) != 30 {
		t.Fatalf("series length = %d, want 30", len(series.Points))
	}
	if series.MaxIncome != 50 {
		t.Fatalf("maxIncome = %v, want 50", series.MaxIncome)
	}
	for _, p := range series.Points {
		want := 0.0
		if p.Day == 15 {
			want = 50
		}
		if p.Income != want {
			t.Fatalf("day %d income = %v, want %v", p.Day, p.Income, want)
		}
	}
}

func TestMonthlySeriesAllZeroSubstitutesMax(t *testing.T) {
	series := MonthlySeries(mapSource{}, 2024, 2)
	if len(series.Points) != 29 {
		t.Fatalf("leap February length = %d, want 29", len(series.Points))
	}
	if series.MaxIncome != 100 {
		t.Fatalf("empty month maxIncome = %v, want fallback 100", series.MaxIncome)
	}
}

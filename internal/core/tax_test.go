package core

import (
	"math"
	"testing"
)

func TestComputeTaxBoundary(t *testing.T) {
	cases := []struct {
		income float64
		want   float64
	}{
		{0, 0},
		{1049.99, 0},
		{1050, 0}, // exactly at the threshold: no tax
		{2050, 200},
		{1200, 30},
	}
	for _, tc := range cases {
		if got := ComputeTax(tc.income); got != tc.want {
			t.Fatalf("ComputeTax(%v) = %v, want %v", tc.income, got, tc.want)
		}
	}
}

func TestComputeTaxJustAboveThreshold(t *testing.T) {
	got := ComputeTax(1050.01)
	if math.Abs(got-0.002) > 1e-9 {
		t.Fatalf("ComputeTax(1050.01) = %v, want ~0.002", got)
	}
}

func TestTaxableIncome(t *testing.T) {
	if got := TaxableIncome(1050); got != 0 {
		t.Fatalf("TaxableIncome(1050) = %v", got)
	}
	if got := TaxableIncome(1300); got != 250 {
		t.Fatalf("TaxableIncome(1300) = %v", got)
	}
}

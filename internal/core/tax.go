package core

// The tax rule is a monthly exemption threshold with a flat marginal rate
// on the excess. It applies at monthly granularity only; weekly and daily
// figures are always pre-tax.
const (
	TaxThreshold = 1050.0
	TaxRate      = 0.20
)

// TaxableIncome returns the portion of income above the monthly threshold.
// Income exactly at the threshold is not taxable.
func TaxableIncome(income float64) float64 {
	if income <= TaxThreshold {
		return 0
	}
	return income - TaxThreshold
}

// ComputeTax applies the flat marginal rate to the taxable excess.
func ComputeTax(income float64) float64 {
	return TaxableIncome(income) * TaxRate
}

package finguide

import "math"

// Allocation is a three-way asset split, in whole percents summing to 100.
type Allocation struct {
	Equity   int `json:"equity"`
	Debt     int `json:"debt"`
	Balanced int `json:"balanced"`
}

// ComputeAllocation maps age and risk tolerance to an asset split. The split
// always sums to exactly 100: when the risk rules overshoot, equity and debt
// are rescaled and rounded, and balanced takes the residual. Balanced is
// always the residual bucket, never independently rounded.
//
// Out-of-range ages are tolerated (the profile clamps age at update time, but
// nothing here depends on it).
func ComputeAllocation(age int, risk RiskTolerance) Allocation {
	ageEquity := 100 - age
	if ageEquity < 0 {
		ageEquity = 0
	}

	var a Allocation
	switch risk {
	case Conservative:
		a = Allocation{Equity: max(20, ageEquity-20), Debt: 50, Balanced: 30}
	case Moderate:
		a = Allocation{Equity: ageEquity, Debt: 30, Balanced: 20}
	default: // aggressive
		a = Allocation{Equity: min(80, ageEquity+10), Debt: 10, Balanced: 10}
	}

	if sum := a.Equity + a.Debt + a.Balanced; sum != 100 {
		factor := 100 / float64(sum)
		a.Equity = int(math.Round(float64(a.Equity) * factor))
		a.Debt = int(math.Round(float64(a.Debt) * factor))
		a.Balanced = 100 - a.Equity - a.Debt
	}
	return a
}

// RecommendedSIP sizes the monthly SIP from income and savings capacity:
// at most 30% of income and 80% of savings, floored to the nearest thousand
// with an absolute floor of 1000.
//
// The floor applies even when savings are negative: the result is a minimum
// recommendation, not an affordability verdict. Callers that need one must
// check savings and income separately.
func RecommendedSIP(monthlyIncome, monthlySavings float64) int {
	maxSIP := math.Min(monthlyIncome*0.30, monthlySavings*0.80)
	// compare as float: a deeply negative maxSIP must not overflow the int
	sip := math.Floor(maxSIP/1000) * 1000
	if math.IsNaN(sip) || sip < 1000 {
		return 1000
	}
	return int(sip)
}

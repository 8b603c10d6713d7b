package finguide

import "math"

// FundRecommendation is one of the five funds proposed to the user, with its
// share of the portfolio and its monthly SIP contribution.
type FundRecommendation struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	AllocationPct  Percent `json:"allocation_pct"`
	SIPAmount      int     `json:"sip_amount"`
	ExpectedReturn string  `json:"expected_return"`
	RiskLevel      string  `json:"risk_level"`
	TimeHorizon    string  `json:"time_horizon"`
	Description    string  `json:"description"`
	Suitability    string  `json:"suitability"`
	TaxBenefit     string  `json:"tax_benefit"`
}

// fundFacts is the static metadata of a recommended fund. Content only, no
// computation: expected returns and tax notes are indicative text shown to the
// user as-is.
type fundFacts struct {
	name           string
	category       string
	expectedReturn string
	riskLevel      string
	timeHorizon    string
	description    string
	taxBenefit     string
}

const equityTax = "Equity taxation: LTCG 10% above ₹1 lakh after 1 year"
const debtTax = "Debt taxation: gains taxed at your income slab rate"

var (
	largeCapFacts = fundFacts{
		name:           "Large Cap Fund",
		category:       "Equity - Large Cap",
		expectedReturn: "10-12% p.a.",
		riskLevel:      "Moderate",
		timeHorizon:    "5+ years",
		description:    "Invests in the top 100 companies by market capitalisation for steadier equity growth.",
		taxBenefit:     equityTax,
	}
	midCapFacts = fundFacts{
		name:           "Mid Cap Fund",
		category:       "Equity - Mid Cap",
		expectedReturn: "12-15% p.a.",
		riskLevel:      "High",
		timeHorizon:    "7+ years",
		description:    "Targets mid-sized companies with higher growth potential and higher swings.",
		taxBenefit:     equityTax,
	}
	flexiCapFacts = fundFacts{
		name:           "Flexi Cap Fund",
		category:       "Equity - Flexi Cap",
		expectedReturn: "11-14% p.a.",
		riskLevel:      "Moderately High",
		timeHorizon:    "5+ years",
		description:    "Moves freely across large, mid and small caps as the manager sees opportunity.",
		taxBenefit:     equityTax,
	}
	balancedFacts = fundFacts{
		name:           "Balanced Advantage Fund",
		category:       "Hybrid - Balanced Advantage",
		expectedReturn: "9-11% p.a.",
		riskLevel:      "Moderate",
		timeHorizon:    "3+ years",
		description:    "Dynamically shifts between equity and debt to cushion market falls.",
		taxBenefit:     equityTax,
	}
	shortDebtFacts = fundFacts{
		name:           "Short Duration Debt Fund",
		category:       "Debt - Short Duration",
		expectedReturn: "6-8% p.a.",
		riskLevel:      "Low to Moderate",
		timeHorizon:    "1-3 years",
		description:    "Lends to quality issuers for one to three years; a parking spot that beats savings accounts.",
		taxBenefit:     debtTax,
	}
)

// Recommendations expands the profile's asset allocation into the five
// concrete fund recommendations with per-fund SIP sizing.
//
// Each fund's SIP is floored independently at 500, so the five amounts do not
// necessarily add up to the recommended total SIP; that drift is inherited
// behavior the dashboard shows as-is. The output order is fixed.
func Recommendations(p *FinancialProfile) []FundRecommendation {
	alloc := ComputeAllocation(p.User.Age, p.User.RiskTolerance)
	sip := RecommendedSIP(p.Income.Monthly, p.MonthlySavings())
	age := p.User.Age

	recommend := func(f fundFacts, pct float64, suitability string) FundRecommendation {
		return FundRecommendation{
			Name:           f.name,
			Category:       f.category,
			AllocationPct:  Percent(pct),
			SIPAmount:      fundSIP(sip, pct),
			ExpectedReturn: f.expectedReturn,
			RiskLevel:      f.riskLevel,
			TimeHorizon:    f.timeHorizon,
			Description:    f.description,
			Suitability:    suitability,
			TaxBenefit:     f.taxBenefit,
		}
	}

	return []FundRecommendation{
		recommend(largeCapFacts, float64(alloc.Equity)*0.4, suitableUnder(age, 40)),
		recommend(midCapFacts, float64(alloc.Equity)*0.3, suitableUnder(age, 35)),
		recommend(balancedFacts, float64(alloc.Balanced), "High for all ages"),
		recommend(shortDebtFacts, float64(alloc.Debt), suitableOver(age, 50)),
		recommend(flexiCapFacts, float64(alloc.Equity)*0.3, suitableUnder(age, 45)),
	}
}

// fundSIP splits the recommended SIP by allocation percent, floored at 500.
func fundSIP(recommendedSIP int, pct float64) int {
	amount := int(math.Floor(float64(recommendedSIP) * pct / 100))
	if amount < 500 {
		return 500
	}
	return amount
}

func suitableUnder(age, limit int) string {
	if age < limit {
		return "High"
	}
	return "Medium"
}

func suitableOver(age, limit int) string {
	if age > limit {
		return "High"
	}
	return "Medium"
}

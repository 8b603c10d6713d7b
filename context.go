package finguide

import (
	"fmt"
	"math"
	"strings"
)

// contextHeader fixes the assistant persona and the response format the
// dashboard knows how to display. Pure content, interpolation-free.
const contextHeader = `You are FinGuide AI, a Personal Finance Decision Assistant. You provide educational & decision-support guidance only. You are NOT a SEBI-registered advisor.

IMPORTANT: You MUST always respond in this EXACT format (keep it SHORT and CONCISE, no full summaries):

Decision: [YES/NO/MAYBE - brief answer]

Reason:
[2-3 lines explaining the calculation/analysis]

Risk:
[1-2 lines about potential risks]

Recommendation:
- [Action item 1]
- [Action item 2]
- [Action item 3]
`

// contextRules is the rule block the assistant must reason with.
const contextRules = `Key Rules:
- Monthly Savings = Income − Expenses − EMI
- SIP amount ≤ Monthly savings
- SIP should not exceed 30% of income
- Emergency fund target = 6 × monthly expenses
- EMI > 40% of income → High Risk
- Expenses > 80% of income → Lifestyle Risk
- Always use ₹ currency format
- Keep responses SHORT and ACTIONABLE
- Never provide full summaries or lengthy explanations
- Always include: "This guidance is for educational purposes only and not professional financial advice."

Now answer the user's question in the required format above.`

// BuildContext renders the profile into the deterministic grounding context
// prepended to every question sent to the assistant. It never fails: a
// degenerate (zeroed) profile still produces a well-formed context, and every
// percentage is guarded against division by zero.
//
// The savings figure shown here is income minus expenses; only the Key Rules
// block defines savings net of EMI. That mismatch is part of the displayed
// contract, do not "fix" it.
func BuildContext(p *FinancialProfile) string {
	savings := p.Income.Monthly - p.Expenses.Monthly
	savingsPercent := 0
	if p.Income.Monthly > 0 {
		savingsPercent = int(math.Round(savings / p.Income.Monthly * 100))
	}

	sources := make([]string, 0, len(p.Income.Sources))
	for _, s := range p.Income.Sources {
		sources = append(sources, fmt.Sprintf("%s: %s", s.Name, Rupees(s.Amount)))
	}
	categories := make([]string, 0, len(p.Expenses.Categories))
	for _, c := range p.Expenses.Categories {
		categories = append(categories, fmt.Sprintf("%s: %s", c.Name, Rupees(c.Amount)))
	}

	var b strings.Builder
	b.WriteString(contextHeader)
	b.WriteString("\nUser's Financial Data:\n")
	fmt.Fprintf(&b, "Monthly Income: %s\n", Rupees(p.Income.Monthly))
	fmt.Fprintf(&b, "Income Sources: %s\n", strings.Join(sources, ", "))
	fmt.Fprintf(&b, "Monthly Expenses: %s\n", Rupees(p.Expenses.Monthly))
	fmt.Fprintf(&b, "Expense Categories: %s\n", strings.Join(categories, ", "))
	fmt.Fprintf(&b, "Monthly EMI: %s\n", Rupees(p.EMI.Monthly))
	fmt.Fprintf(&b, "Monthly Savings: %s (%d%% of income)\n", Rupees(savings), savingsPercent)
	fmt.Fprintf(&b, "Total Investments: %s\n", Rupees(p.Investments.Total))
	fmt.Fprintf(&b, "Investor Profile: age %d, %s risk tolerance, %s investor\n",
		p.User.Age, p.User.RiskTolerance, p.User.Experience)

	b.WriteString("\nRecommended Funds:\n")
	for _, f := range Recommendations(p) {
		fmt.Fprintf(&b, "- %s (%s): %s allocation, SIP %s, expected return %s, risk %s, horizon %s, suitability %s. %s %s\n",
			f.Name, f.Category, f.AllocationPct, Rupees(f.SIPAmount),
			f.ExpectedReturn, f.RiskLevel, f.TimeHorizon, f.Suitability,
			f.Description, f.TaxBenefit)
	}

	b.WriteString("\n")
	b.WriteString(contextRules)
	return b.String()
}

// BuildPrompt concatenates the grounding context with the user's question into
// the full prompt handed to the model.
func BuildPrompt(p *FinancialProfile, question string) string {
	return fmt.Sprintf("%s\n\nUser Question: %s\n\nProvide a helpful response:", BuildContext(p), question)
}

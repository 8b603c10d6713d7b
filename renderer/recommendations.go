package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/spendx/finguide"
)

// RecommendationsMarkdown renders the asset allocation and the five fund
// recommendations for the profile.
func RecommendationsMarkdown(p *finguide.FinancialProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	alloc := finguide.ComputeAllocation(p.User.Age, p.User.RiskTolerance)
	sip := finguide.RecommendedSIP(p.Income.Monthly, p.MonthlySavings())

	doc.H1("Investment Recommendations")
	doc.PlainText(fmt.Sprintf("For age %d with %s risk tolerance: %d%% equity, %d%% debt, %d%% balanced.",
		p.User.Age, p.User.RiskTolerance, alloc.Equity, alloc.Debt, alloc.Balanced))
	doc.PlainText(fmt.Sprintf("Recommended monthly SIP: %s", finguide.Rupees(sip)))

	funds := finguide.Recommendations(p)

	doc.H2("Suggested Funds")
	rows := make([][]string, 0, len(funds))
	for _, f := range funds {
		rows = append(rows, []string{
			f.Name,
			f.AllocationPct.String(),
			finguide.Rupees(f.SIPAmount).String(),
			f.ExpectedReturn,
			f.RiskLevel,
			f.TimeHorizon,
			f.Suitability,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Fund", "Allocation", "SIP", "Expected Return", "Risk", "Horizon", "Suitability"},
		Rows:   rows,
	})

	for _, f := range funds {
		doc.H3(f.Name)
		doc.PlainText(fmt.Sprintf("%s (%s). %s", f.Description, f.Category, f.TaxBenefit))
	}

	return doc.String()
}

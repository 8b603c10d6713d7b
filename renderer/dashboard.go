// Package renderer turns the financial profile and its recommendations into
// markdown reports for the terminal.
package renderer

import (
	"bytes"
	"fmt"
	"math"

	md "github.com/nao1215/markdown"
	"github.com/spendx/finguide"
)

// essentialCategories are the categories counted as needs in the
// essentials-vs-wants split.
var essentialCategories = map[string]bool{
	"Groceries":         true,
	"Bills & Utilities": true,
	"Transportation":    true,
}

// DashboardMarkdown renders the current month overview: totals, income
// sources, spending by category with the essentials/wants split, and goals.
func DashboardMarkdown(p *finguide.FinancialProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	savings := p.Income.Monthly - p.Expenses.Monthly

	doc.H1("Monthly Overview")
	doc.PlainText(fmt.Sprintf("Income %s · Expenses %s · Savings %s (%s saved) · Invested %s",
		finguide.Rupees(p.Income.Monthly), finguide.Rupees(p.Expenses.Monthly),
		finguide.Rupees(savings), pctOf(savings, p.Income.Monthly),
		finguide.Rupees(p.Investments.Total)))

	doc.H2("Income Sources")
	rows := make([][]string, 0, len(p.Income.Sources))
	for _, s := range p.Income.Sources {
		rows = append(rows, []string{s.Name, string(s.Type), finguide.Rupees(s.Amount).String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Source", "Type", "Amount"},
		Rows:   rows,
	})

	doc.H2("Spending by Category")
	rows = rows[:0]
	var essentials float64
	for _, c := range p.Expenses.Categories {
		if essentialCategories[c.Name] {
			essentials += c.Amount
		}
		rows = append(rows, []string{c.Name, finguide.Rupees(c.Amount).String(), pctOf(c.Amount, p.Expenses.Monthly)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Amount", "Share"},
		Rows:   rows,
	})
	wants := p.Expenses.Monthly - essentials
	doc.PlainText(fmt.Sprintf("Essentials %s (%s of income) · Wants %s (%s of income)",
		finguide.Rupees(essentials), pctOf(essentials, p.Income.Monthly),
		finguide.Rupees(wants), pctOf(wants, p.Income.Monthly)))

	if len(p.Goals) > 0 {
		doc.H2("Goals")
		rows = rows[:0]
		for _, g := range p.Goals {
			status := "in progress"
			if g.Completed {
				status = "done"
			}
			rows = append(rows, []string{g.Name,
				fmt.Sprintf("%s / %s", finguide.Rupees(g.Current), finguide.Rupees(g.Target)), status})
		}
		doc.Table(md.TableSet{
			Header: []string{"Goal", "Progress", "Status"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// pctOf formats part/whole as a whole percent, "0%" when the denominator is
// not positive.
func pctOf(part, whole float64) string {
	if !(whole > 0) {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(part/whole*100)))
}

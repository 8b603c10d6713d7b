package finguide

import (
	"strings"
	"testing"
)

func TestBuildContext(t *testing.T) {
	ctx := BuildContext(NewProfile())

	if !strings.HasPrefix(ctx, "You are FinGuide AI, a Personal Finance Decision Assistant.") {
		t.Errorf("context does not open with the persona:\n%s", ctx[:min(len(ctx), 120)])
	}
	if !strings.HasSuffix(ctx, "Now answer the user's question in the required format above.") {
		t.Errorf("context does not close with the rules block")
	}

	wantLines := []string{
		"Monthly Income: ₹31,600",
		"Income Sources: Full-time Salary: ₹25,000, Interest Income: ₹3,000, Freelance or Side Income: ₹2,000, Shopping: ₹1,600",
		"Monthly Expenses: ₹19,800",
		"Monthly EMI: ₹5,000",
		// displayed savings ignore EMI: 31600 - 19800
		"Monthly Savings: ₹11,800 (37% of income)",
		"Total Investments: ₹2,75,000",
		"Investor Profile: age 28, moderate risk tolerance, beginner investor",
		"Recommended Funds:",
		"- Large Cap Fund (Equity - Large Cap): 23.6% allocation, SIP ₹1,180,",
		"- Short Duration Debt Fund (Debt - Short Duration): 25.0% allocation, SIP ₹1,250,",
		"- Monthly Savings = Income − Expenses − EMI",
		"- EMI > 40% of income → High Risk",
		`Always include: "This guidance is for educational purposes only and not professional financial advice."`,
	}
	for _, want := range wantLines {
		if !strings.Contains(ctx, want) {
			t.Errorf("context is missing %q", want)
		}
	}
}

func TestBuildContext_ZeroProfile(t *testing.T) {
	// A zeroed profile must still render, with the percentage guarded.
	p := &FinancialProfile{}
	p.Recalculate()

	ctx := BuildContext(p)
	if !strings.Contains(ctx, "Monthly Savings: ₹0 (0% of income)") {
		t.Errorf("zero profile savings line is wrong:\n%s", ctx)
	}
	if !strings.Contains(ctx, "Recommended Funds:") {
		t.Errorf("zero profile context is missing the funds block")
	}
}

func TestBuildPrompt(t *testing.T) {
	p := NewProfile()
	prompt := BuildPrompt(p, "Can I afford a car loan?")

	if !strings.HasPrefix(prompt, BuildContext(p)) {
		t.Errorf("prompt does not start with the financial context")
	}
	if !strings.HasSuffix(prompt, "User Question: Can I afford a car loan?\n\nProvide a helpful response:") {
		t.Errorf("prompt does not end with the question scaffold:\n%s", prompt)
	}
}

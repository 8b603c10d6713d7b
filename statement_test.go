package finguide

import (
	"reflect"
	"testing"
)

func TestParseStatement(t *testing.T) {
	data := []byte(`{
		"monthly_income": 42000,
		"monthly_emi": "₹5,500",
		"expense_categories": [
			{"name": "Rent", "amount": 15000},
			{"name": "Groceries", "amount": "4,100.50"}
		],
		"investments": [
			{"name": "SIP Investments", "amount": "₹1,40,000"}
		]
	}`)

	got, err := ParseStatement(data)
	if err != nil {
		t.Fatalf("ParseStatement() error: %v", err)
	}
	want := &ImportedFinancials{
		MonthlyIncome: 42000,
		MonthlyEMI:    5500,
		Categories: []ExpenseCategory{
			{Name: "Rent", Amount: 15000},
			{Name: "Groceries", Amount: 4100.5},
		},
		Investments: []InvestmentItem{
			{Name: "SIP Investments", Amount: 140000},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseStatement() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestParseStatement_OptionalFields(t *testing.T) {
	data := []byte(`{
		"monthly_income": "30 000",
		"expense_categories": [{"name": "Rent", "amount": 15000}]
	}`)

	got, err := ParseStatement(data)
	if err != nil {
		t.Fatalf("ParseStatement() error: %v", err)
	}
	if got.MonthlyIncome != 30000 {
		t.Errorf("MonthlyIncome = %v, want 30000", got.MonthlyIncome)
	}
	if got.MonthlyEMI != 0 {
		t.Errorf("MonthlyEMI = %v, want 0 when omitted", got.MonthlyEMI)
	}
	if got.Investments != nil {
		t.Errorf("Investments = %v, want nil when omitted", got.Investments)
	}
}

func TestParseStatement_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not JSON", data: `statement of account`},
		{name: "missing income", data: `{"expense_categories": [{"name": "Rent", "amount": 1}]}`},
		{name: "missing categories", data: `{"monthly_income": 30000}`},
		{name: "categories not a list", data: `{"monthly_income": 30000, "expense_categories": {"Rent": 1}}`},
		{name: "category without a name", data: `{"monthly_income": 30000, "expense_categories": [{"amount": 1}]}`},
		{name: "unparseable amount", data: `{"monthly_income": 30000, "expense_categories": [{"name": "Rent", "amount": "a lot"}]}`},
		{name: "boolean amount", data: `{"monthly_income": true, "expense_categories": []}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got, err := ParseStatement([]byte(tc.data)); err == nil {
				t.Errorf("ParseStatement() = %+v, want error", got)
			}
		})
	}
}

func TestImportedFinancialsApply(t *testing.T) {
	p := NewProfile()
	imported := &ImportedFinancials{
		MonthlyIncome: 50000,
		MonthlyEMI:    8000,
		Categories:    []ExpenseCategory{{Name: "Rent", Amount: 20000}},
	}
	imported.Apply(p)

	if got := p.Income.Monthly; got != 50000 {
		t.Errorf("Income.Monthly = %v, want 50000", got)
	}
	if got := p.MonthlySavings(); got != 22000 {
		t.Errorf("MonthlySavings() = %v, want 22000", got)
	}
}

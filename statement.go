package finguide

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ImportedFinancials is the structured result of a bank statement import,
// ready to be applied to a profile. The extraction itself (PDF text to JSON)
// is done by the assistant model; this side only parses and validates what
// comes back.
type ImportedFinancials struct {
	MonthlyIncome float64
	Categories    []ExpenseCategory
	Investments   []InvestmentItem
	MonthlyEMI    float64
}

// Apply replaces the profile's financials with the imported ones.
func (f *ImportedFinancials) Apply(p *FinancialProfile) {
	p.ApplyImportedFinancials(f.MonthlyIncome, f.Categories, f.Investments, f.MonthlyEMI)
}

// ParseStatement parses the JSON document the extraction model returns:
//
//	{
//	  "monthly_income": 30000,
//	  "monthly_emi": "5,000",
//	  "expense_categories": [{"name": "Groceries", "amount": "4,100"}],
//	  "investments": [{"name": "SIP Investments", "amount": 140000}]
//	}
//
// monthly_income and expense_categories are required; the rest defaults to
// empty. Amounts may be JSON numbers or grouped strings, models are never
// consistent about that.
func ParseStatement(data []byte) (*ImportedFinancials, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("statement is not valid JSON: %w", err)
	}

	income, err := amountAt(jobj, "$.monthly_income")
	if err != nil {
		return nil, fmt.Errorf("statement has no usable monthly income: %w", err)
	}

	imported := &ImportedFinancials{MonthlyIncome: income}

	// EMI is optional, a statement without loans simply omits it.
	if emi, err := amountAt(jobj, "$.monthly_emi"); err == nil {
		imported.MonthlyEMI = emi
	}

	categories, err := itemsAt(jobj, "$.expense_categories")
	if err != nil {
		return nil, fmt.Errorf("statement has no usable expense categories: %w", err)
	}
	for _, it := range categories {
		imported.Categories = append(imported.Categories, ExpenseCategory{Name: it.Name, Amount: it.Amount})
	}

	if investments, err := itemsAt(jobj, "$.investments"); err == nil {
		for _, it := range investments {
			imported.Investments = append(imported.Investments, InvestmentItem{Name: it.Name, Amount: it.Amount})
		}
	}
	return imported, nil
}

type namedAmount struct {
	Name   string
	Amount float64
}

// amountAt evaluates the jsonpath and coerces the result to an amount.
func amountAt(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return parseAmount(jval)
}

// itemsAt evaluates the jsonpath to a list of {name, amount} objects.
func itemsAt(jobj any, path string) ([]namedAmount, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not a list", path)
	}
	items := make([]namedAmount, 0, len(jlist))
	for i, jitem := range jlist {
		jmap, ok := jitem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%q[%d] is not an object", path, i)
		}
		name, _ := jmap["name"].(string)
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%q[%d] has no name", path, i)
		}
		amount, err := parseAmount(jmap["amount"])
		if err != nil {
			return nil, fmt.Errorf("%q[%d] (%s): %w", path, i, name, err)
		}
		items = append(items, namedAmount{Name: name, Amount: amount})
	}
	return items, nil
}

// parseAmount reads an amount that may be a JSON number or a formatted string
// like "₹1,00,000" or "4 100.50".
func parseAmount(jval any) (float64, error) {
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		s = strings.TrimPrefix(s, "₹")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, " ", "")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, fmt.Errorf("amount is an invalid string %q: %w", v, err)
		}
		return d.InexactFloat64(), nil
	default:
		return 0, fmt.Errorf("amount is neither a number nor a string but %T", jval)
	}
}

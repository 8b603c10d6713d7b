// Package finguide implements the financial model behind the SpendX personal
// finance dashboard: a user's income, expenses, investments, goals and EMI,
// the deterministic investment-recommendation engine derived from them, and
// the financial context handed to the chat assistant.
package finguide

import (
	"log"
	"math"
	"math/rand/v2"
	"strings"
)

// IncomeType classifies an income source.
type IncomeType string

const (
	ActiveIncome  IncomeType = "active"
	PassiveIncome IncomeType = "passive"
)

// RiskTolerance is the user's self-declared appetite for risk.
type RiskTolerance string

const (
	Conservative RiskTolerance = "conservative"
	Moderate     RiskTolerance = "moderate"
	Aggressive   RiskTolerance = "aggressive"
)

// ExperienceLevel is the user's self-declared investment experience.
type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

// IncomeSource is a single stream of monthly income.
type IncomeSource struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Amount      float64    `json:"amount"`
	Type        IncomeType `json:"type"`
	Description string     `json:"description,omitempty"`
}

// MonthlyAmount is one point of the income history, for the dashboard trend.
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// ExpenseCategory accumulates all spending recorded under one name.
type ExpenseCategory struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color,omitempty"` // display only
}

// InvestmentItem is one slice of the investment breakdown.
type InvestmentItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Goal is a savings goal tracked on the dashboard.
type Goal struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Current   float64 `json:"current"`
	Completed bool    `json:"completed"`
}

// UserProfile drives the allocation engine.
type UserProfile struct {
	Age           int             `json:"age"`
	RiskTolerance RiskTolerance   `json:"risk_tolerance"`
	Experience    ExperienceLevel `json:"investment_experience"`
}

// Income groups the income sources with their derived monthly total.
type Income struct {
	Monthly float64         `json:"monthly"`
	Sources []IncomeSource  `json:"sources"`
	History []MonthlyAmount `json:"history,omitempty"`
}

// Expenses groups the expense categories with their derived monthly total.
type Expenses struct {
	Monthly    float64           `json:"monthly"`
	Categories []ExpenseCategory `json:"categories"`
}

// Investments groups the investment breakdown with its derived total.
type Investments struct {
	Total     float64          `json:"total"`
	Breakdown []InvestmentItem `json:"breakdown"`
}

// EMI holds the monthly loan installment, plus the two due amounts shown on
// the EMI page.
type EMI struct {
	Monthly  float64 `json:"monthly"`
	EMIDue   float64 `json:"emi_due,omitempty"`
	BillsDue float64 `json:"bills_due,omitempty"`
}

// FinancialProfile is the complete financial state of one user. It is owned by
// the caller and mutated only through its methods, each of which leaves the
// derived totals consistent. All methods are plain synchronous calls; the
// profile is not safe for concurrent mutation.
type FinancialProfile struct {
	Income      Income      `json:"income"`
	Expenses    Expenses    `json:"expenses"`
	Investments Investments `json:"investments"`
	Goals       []Goal      `json:"goals,omitempty"`
	EMI         EMI         `json:"emi"`
	User        UserProfile `json:"user"`
}

// NewProfile returns the demo profile the dashboard starts with, totals
// already recalculated.
func NewProfile() *FinancialProfile {
	p := &FinancialProfile{
		Income: Income{
			Sources: []IncomeSource{
				{ID: 1, Name: "Full-time Salary", Amount: 25000, Type: ActiveIncome, Description: "Fulltime monthly"},
				{ID: 2, Name: "Interest Income", Amount: 3000, Type: ActiveIncome, Description: "FD interest"},
				{ID: 3, Name: "Freelance or Side Income", Amount: 2000, Type: PassiveIncome, Description: "Graphic designing gig payment"},
				{ID: 4, Name: "Shopping", Amount: 1600, Type: PassiveIncome, Description: "Cashbacks and resale"},
			},
			History: []MonthlyAmount{
				{Month: "Sep", Amount: 26000},
				{Month: "Oct", Amount: 28000},
				{Month: "Nov", Amount: 27000},
				{Month: "Dec", Amount: 29000},
				{Month: "Jan", Amount: 28000},
				{Month: "Apr", Amount: 30000},
			},
		},
		Expenses: Expenses{
			Categories: []ExpenseCategory{
				{Name: "Dining Out", Amount: 7000, Color: "#f97316"},
				{Name: "Groceries", Amount: 4100, Color: "#22c55e"},
				{Name: "Entertainment", Amount: 3000, Color: "#8b5cf6"},
				{Name: "Transportation", Amount: 2200, Color: "#3b82f6"},
				{Name: "Bills & Utilities", Amount: 1900, Color: "#eab308"},
				{Name: "Shopping", Amount: 1600, Color: "#14b8a6"},
			},
		},
		Investments: Investments{
			Breakdown: []InvestmentItem{
				{Name: "SIP Investments", Amount: 140000},
				{Name: "Stocks", Amount: 75000},
				{Name: "FDs", Amount: 50000},
				{Name: "Mutual Funds", Amount: 10000},
			},
		},
		Goals: []Goal{
			{ID: 1, Name: "Monthly SIP", Target: 5000, Current: 5000, Completed: true},
			{ID: 2, Name: "Trip Fund", Target: 22000, Current: 10000},
			{ID: 3, Name: "Emergency Fund", Target: 10000, Current: 12000, Completed: true},
		},
		EMI: EMI{Monthly: 5000, EMIDue: 3500, BillsDue: 1500},
		User: UserProfile{
			Age:           28,
			RiskTolerance: Moderate,
			Experience:    Beginner,
		},
	}
	p.Recalculate()
	return p
}

// MonthlySavings is what remains of the income after expenses and EMI. This is
// the figure the SIP sizing is bounded by; the savings figure displayed on the
// dashboard ignores EMI.
func (p *FinancialProfile) MonthlySavings() float64 {
	return p.Income.Monthly - p.Expenses.Monthly - p.EMI.Monthly
}

// AddIncomeSource validates and appends a new income source. On any validation
// failure the profile is unchanged and a *ValidationError is returned.
func (p *FinancialProfile) AddIncomeSource(name string, amount float64, typ IncomeType, description string) error {
	if err := validateIncomeAmount(amount); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errValidation("income source name is required")
	}
	maxID := 0
	for _, s := range p.Income.Sources {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	p.Income.Sources = append(p.Income.Sources, IncomeSource{
		ID:          maxID + 1,
		Name:        strings.TrimSpace(name),
		Amount:      amount,
		Type:        typ,
		Description: strings.TrimSpace(description),
	})
	p.Recalculate()
	return nil
}

// categoryPalette is the fixed set of colors assigned to new expense
// categories, as the dashboard's charts expect them.
var categoryPalette = []string{
	"#f97316", "#22c55e", "#8b5cf6", "#3b82f6", "#eab308", "#14b8a6", "#ef4444", "#8b5cf6",
}

// AddExpense validates and records an expense. An existing category with the
// exact same name accumulates the amount; otherwise a new category is created
// with a color picked from the palette. On any validation failure the profile
// is unchanged and a *ValidationError is returned.
func (p *FinancialProfile) AddExpense(categoryName string, amount float64) error {
	if err := validateExpenseAmount(amount); err != nil {
		return err
	}
	if err := validateCategoryName(categoryName); err != nil {
		return err
	}
	for i := range p.Expenses.Categories {
		if p.Expenses.Categories[i].Name == categoryName {
			p.Expenses.Categories[i].Amount += amount
			p.Recalculate()
			return nil
		}
	}
	p.Expenses.Categories = append(p.Expenses.Categories, ExpenseCategory{
		Name:   strings.TrimSpace(categoryName),
		Amount: amount,
		Color:  categoryPalette[rand.IntN(len(categoryPalette))],
	})
	p.Recalculate()
	return nil
}

// UpdateUserProfile applies a best-effort partial update: each field is
// validated on its own and an invalid value is silently left unchanged. The
// dashboard relies on this never failing, so there is no error to return.
// Zero values are therefore a natural way to say "keep the current value".
func (p *FinancialProfile) UpdateUserProfile(age int, risk RiskTolerance, experience ExperienceLevel) {
	if age > 0 && age < 100 {
		p.User.Age = age
	}
	switch risk {
	case Conservative, Moderate, Aggressive:
		p.User.RiskTolerance = risk
	}
	switch experience {
	case Beginner, Intermediate, Advanced:
		p.User.Experience = experience
	}
}

// ApplyImportedFinancials replaces the profile's financial data with the
// result of a bank statement import: income collapses to a single synthetic
// source, expense categories and investment breakdown are replaced wholesale.
// Imported categories without a color get one from the palette.
func (p *FinancialProfile) ApplyImportedFinancials(income float64, categories []ExpenseCategory, investments []InvestmentItem, emiMonthly float64) {
	p.Income.Sources = []IncomeSource{{
		ID:          1,
		Name:        "Bank Statement Income",
		Amount:      income,
		Type:        ActiveIncome,
		Description: "Imported from bank statement",
	}}
	for i := range categories {
		if categories[i].Color == "" {
			categories[i].Color = categoryPalette[i%len(categoryPalette)]
		}
	}
	p.Expenses.Categories = categories
	if investments != nil {
		p.Investments.Breakdown = investments
	}
	p.EMI.Monthly = emiMonthly
	p.Recalculate()
}

// Recalculate recomputes the derived totals and self-heals the profile: NaN
// or negative totals are clamped to zero and invalid entries are dropped.
// It is idempotent and must run after every mutation and on initial load.
// Corrections are deliberately silent; only an income/expense imbalance is
// worth a warning.
func (p *FinancialProfile) Recalculate() {
	var income float64
	for _, s := range p.Income.Sources {
		income += s.Amount
	}
	p.Income.Monthly = income

	var expenses float64
	for _, c := range p.Expenses.Categories {
		expenses += c.Amount
	}
	p.Expenses.Monthly = expenses

	var invested float64
	for _, b := range p.Investments.Breakdown {
		invested += b.Amount
	}
	p.Investments.Total = invested

	if p.Expenses.Monthly > p.Income.Monthly {
		log.Println("warning: expenses exceed income, consider reviewing your spending")
	}

	if math.IsNaN(p.Income.Monthly) || p.Income.Monthly < 0 {
		p.Income.Monthly = 0
	}
	if math.IsNaN(p.Expenses.Monthly) || p.Expenses.Monthly < 0 {
		p.Expenses.Monthly = 0
	}
	if math.IsNaN(p.Investments.Total) || p.Investments.Total < 0 {
		p.Investments.Total = 0
	}

	p.Income.Sources = filterValid(p.Income.Sources, func(s IncomeSource) bool {
		return s.Amount >= 0 && !math.IsNaN(s.Amount) && strings.TrimSpace(s.Name) != ""
	})
	p.Expenses.Categories = filterValid(p.Expenses.Categories, func(c ExpenseCategory) bool {
		return c.Amount >= 0 && !math.IsNaN(c.Amount) && strings.TrimSpace(c.Name) != ""
	})
}

func filterValid[T any](in []T, keep func(T) bool) []T {
	out := in[:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

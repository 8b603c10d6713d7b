package finguide

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestNewProfile_DerivedTotals(t *testing.T) {
	p := NewProfile()
	if got := p.Income.Monthly; got != 31600 {
		t.Errorf("Income.Monthly = %v, want 31600", got)
	}
	if got := p.Expenses.Monthly; got != 19800 {
		t.Errorf("Expenses.Monthly = %v, want 19800", got)
	}
	if got := p.Investments.Total; got != 275000 {
		t.Errorf("Investments.Total = %v, want 275000", got)
	}
	if got := p.MonthlySavings(); got != 6800 {
		t.Errorf("MonthlySavings() = %v, want 6800 (31600 - 19800 - 5000)", got)
	}
}

func TestAddIncomeSource(t *testing.T) {
	p := NewProfile()
	if err := p.AddIncomeSource("  Rental  ", 8000, PassiveIncome, " Flat in Pune "); err != nil {
		t.Fatalf("AddIncomeSource() unexpected error: %v", err)
	}

	added := p.Income.Sources[len(p.Income.Sources)-1]
	want := IncomeSource{ID: 5, Name: "Rental", Amount: 8000, Type: PassiveIncome, Description: "Flat in Pune"}
	if added != want {
		t.Errorf("appended source = %+v, want %+v", added, want)
	}
	if got := p.Income.Monthly; got != 39600 {
		t.Errorf("Income.Monthly = %v, want 39600 after adding 8000", got)
	}
}

func TestAddIncomeSource_Rejections(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		amount float64
	}{
		{name: "blank name", source: "   ", amount: 100},
		{name: "negative amount", source: "Rental", amount: -1},
		{name: "NaN amount", source: "Rental", amount: math.NaN()},
		{name: "amount above cap", source: "Rental", amount: 100_000_001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProfile()
			before := *p
			before.Income.Sources = slices.Clone(p.Income.Sources)

			err := p.AddIncomeSource(tc.source, tc.amount, ActiveIncome, "")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("AddIncomeSource(%q, %v) error = %v, want *ValidationError", tc.source, tc.amount, err)
			}
			if !reflect.DeepEqual(*p, before) {
				t.Errorf("profile changed on rejected mutation:\ngot  %+v\nwant %+v", *p, before)
			}
		})
	}
}

func TestAddExpense_AccumulatesExistingCategory(t *testing.T) {
	p := NewProfile()
	count := len(p.Expenses.Categories)

	if err := p.AddExpense("Groceries", 900); err != nil {
		t.Fatalf("AddExpense() unexpected error: %v", err)
	}
	if got := len(p.Expenses.Categories); got != count {
		t.Errorf("category count = %d, want %d (exact name must accumulate, not append)", got, count)
	}
	for _, c := range p.Expenses.Categories {
		if c.Name == "Groceries" {
			if c.Amount != 5000 {
				t.Errorf("Groceries amount = %v, want 5000", c.Amount)
			}
			if c.Color != "#22c55e" {
				t.Errorf("Groceries color = %q, want the original #22c55e", c.Color)
			}
		}
	}
	if got := p.Expenses.Monthly; got != 20700 {
		t.Errorf("Expenses.Monthly = %v, want 20700", got)
	}
}

func TestAddExpense_NewCategory(t *testing.T) {
	p := NewProfile()
	count := len(p.Expenses.Categories)

	if err := p.AddExpense("Health", 1200); err != nil {
		t.Fatalf("AddExpense() unexpected error: %v", err)
	}
	if got := len(p.Expenses.Categories); got != count+1 {
		t.Fatalf("category count = %d, want %d", got, count+1)
	}
	added := p.Expenses.Categories[count]
	if added.Name != "Health" || added.Amount != 1200 {
		t.Errorf("appended category = %+v, want Health/1200", added)
	}
	if !slices.Contains(categoryPalette, added.Color) {
		t.Errorf("appended category color %q is not from the palette", added.Color)
	}
}

func TestAddExpense_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		category string
		amount   float64
	}{
		{name: "negative amount", category: "Groceries", amount: -5},
		{name: "NaN amount", category: "Groceries", amount: math.NaN()},
		{name: "amount above cap", category: "Groceries", amount: 10_000_001},
		{name: "blank category", category: "  ", amount: 100},
		{name: "category name too long", category: strings.Repeat("x", 51), amount: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProfile()
			before := *p
			before.Expenses.Categories = slices.Clone(p.Expenses.Categories)

			err := p.AddExpense(tc.category, tc.amount)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("AddExpense(%q, %v) error = %v, want *ValidationError", tc.category, tc.amount, err)
			}
			if !reflect.DeepEqual(*p, before) {
				t.Errorf("profile changed on rejected mutation:\ngot  %+v\nwant %+v", *p, before)
			}
		})
	}
}

func TestUpdateUserProfile(t *testing.T) {
	testCases := []struct {
		name       string
		age        int
		risk       RiskTolerance
		experience ExperienceLevel
		want       UserProfile
	}{
		{
			name: "full update",
			age:  45, risk: Aggressive, experience: Advanced,
			want: UserProfile{Age: 45, RiskTolerance: Aggressive, Experience: Advanced},
		},
		{
			name: "zero values keep everything",
			want: UserProfile{Age: 28, RiskTolerance: Moderate, Experience: Beginner},
		},
		{
			name: "invalid age is silently ignored, the rest applies",
			age:  150, risk: Conservative, experience: Intermediate,
			want: UserProfile{Age: 28, RiskTolerance: Conservative, Experience: Intermediate},
		},
		{
			name: "unknown enum values are silently ignored",
			age:  30, risk: RiskTolerance("reckless"), experience: ExperienceLevel("guru"),
			want: UserProfile{Age: 30, RiskTolerance: Moderate, Experience: Beginner},
		},
		{
			name: "negative age is silently ignored",
			age:  -1,
			want: UserProfile{Age: 28, RiskTolerance: Moderate, Experience: Beginner},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProfile()
			p.UpdateUserProfile(tc.age, tc.risk, tc.experience)
			if p.User != tc.want {
				t.Errorf("User = %+v, want %+v", p.User, tc.want)
			}
		})
	}
}

func TestRecalculate_SelfHeals(t *testing.T) {
	p := NewProfile()
	p.Income.Sources = append(p.Income.Sources,
		IncomeSource{ID: 5, Name: "Glitch", Amount: math.NaN()},
		IncomeSource{ID: 6, Name: "  ", Amount: 1000},
	)
	p.Expenses.Categories = append(p.Expenses.Categories,
		ExpenseCategory{Name: "Refund", Amount: -200},
	)
	p.Recalculate()
	p.Recalculate() // totals settle once the invalid entries are gone

	for _, s := range p.Income.Sources {
		if math.IsNaN(s.Amount) || strings.TrimSpace(s.Name) == "" {
			t.Errorf("invalid income source survived: %+v", s)
		}
	}
	for _, c := range p.Expenses.Categories {
		if c.Amount < 0 {
			t.Errorf("negative expense category survived: %+v", c)
		}
	}
	if got := p.Income.Monthly; got != 31600 {
		t.Errorf("Income.Monthly = %v, want 31600 once invalid sources are dropped", got)
	}
	if got := p.Expenses.Monthly; got != 19800 {
		t.Errorf("Expenses.Monthly = %v, want 19800 once invalid categories are dropped", got)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	p := NewProfile()
	p.Recalculate()
	before := *p
	before.Income.Sources = slices.Clone(p.Income.Sources)
	before.Expenses.Categories = slices.Clone(p.Expenses.Categories)

	p.Recalculate()
	if !reflect.DeepEqual(*p, before) {
		t.Errorf("Recalculate changed a healthy profile:\ngot  %+v\nwant %+v", *p, before)
	}
}

func TestApplyImportedFinancials(t *testing.T) {
	p := NewProfile()
	categories := []ExpenseCategory{
		{Name: "Rent", Amount: 12000},
		{Name: "Food", Amount: 6000, Color: "#123456"},
	}
	p.ApplyImportedFinancials(40000, categories, nil, 3000)

	if len(p.Income.Sources) != 1 {
		t.Fatalf("len(Income.Sources) = %d, want a single synthetic source", len(p.Income.Sources))
	}
	src := p.Income.Sources[0]
	if src.ID != 1 || src.Name != "Bank Statement Income" || src.Amount != 40000 {
		t.Errorf("synthetic source = %+v", src)
	}
	if got := p.Income.Monthly; got != 40000 {
		t.Errorf("Income.Monthly = %v, want 40000", got)
	}
	if got := p.Expenses.Monthly; got != 18000 {
		t.Errorf("Expenses.Monthly = %v, want 18000", got)
	}
	if got := p.Expenses.Categories[0].Color; !slices.Contains(categoryPalette, got) {
		t.Errorf("uncolored imported category got color %q, want one from the palette", got)
	}
	if got := p.Expenses.Categories[1].Color; got != "#123456" {
		t.Errorf("imported color was overwritten: %q", got)
	}
	// nil investments keep the existing breakdown
	if got := p.Investments.Total; got != 275000 {
		t.Errorf("Investments.Total = %v, want the original 275000", got)
	}
	if got := p.EMI.Monthly; got != 3000 {
		t.Errorf("EMI.Monthly = %v, want 3000", got)
	}

	p.ApplyImportedFinancials(40000, categories, []InvestmentItem{{Name: "PPF", Amount: 90000}}, 3000)
	if got := p.Investments.Total; got != 90000 {
		t.Errorf("Investments.Total = %v, want 90000 after an explicit breakdown", got)
	}
}

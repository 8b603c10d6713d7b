package finguide

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecodeProfile(t *testing.T) {
	p := NewProfile()
	if err := p.AddExpense("Health", 1200); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeProfile(&buf, p); err != nil {
		t.Fatalf("EncodeProfile() error: %v", err)
	}

	got, err := DecodeProfile(&buf)
	if err != nil {
		t.Fatalf("DecodeProfile() error: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip changed the profile:\ngot  %+v\nwant %+v", got, p)
	}
}

func TestDecodeProfile_HealsOnLoad(t *testing.T) {
	// A hand-edited file with stale totals and an out-of-domain user.
	doc := `{
		"income": {"monthly": 1, "sources": [{"id": 1, "name": "Salary", "amount": 30000, "type": "active"}]},
		"expenses": {"monthly": 999999, "categories": [{"name": "Rent", "amount": 12000}]},
		"investments": {"total": -5, "breakdown": []},
		"emi": {"monthly": 2000},
		"user": {"age": 130, "risk_tolerance": "wild", "investment_experience": "advanced"}
	}`

	p, err := DecodeProfile(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeProfile() error: %v", err)
	}
	if got := p.Income.Monthly; got != 30000 {
		t.Errorf("Income.Monthly = %v, want the recomputed 30000", got)
	}
	if got := p.Expenses.Monthly; got != 12000 {
		t.Errorf("Expenses.Monthly = %v, want the recomputed 12000", got)
	}
	if got := p.Investments.Total; got != 0 {
		t.Errorf("Investments.Total = %v, want 0", got)
	}

	want := UserProfile{Age: 28, RiskTolerance: Moderate, Experience: Advanced}
	if p.User != want {
		t.Errorf("User = %+v, want %+v (invalid fields default, valid ones stay)", p.User, want)
	}
}

func TestDecodeProfile_Invalid(t *testing.T) {
	if p, err := DecodeProfile(strings.NewReader("not json")); err == nil {
		t.Errorf("DecodeProfile() = %+v, want error", p)
	}
}

package cmd

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/spendx/finguide"
)

func TestLoadProfile_MissingFileFallsBackToDemo(t *testing.T) {
	*profileFile = filepath.Join(t.TempDir(), "profile.json")

	p, err := LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}
	if p.User.Age != 28 || p.Income.Monthly != 31600 {
		t.Errorf("fallback profile = age %d, income %v, want the demo profile", p.User.Age, p.Income.Monthly)
	}
}

func TestSaveLoadProfile(t *testing.T) {
	*profileFile = filepath.Join(t.TempDir(), "profile.json")

	p := finguide.NewProfile()
	p.UpdateUserProfile(40, finguide.Aggressive, "")
	if err := SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	got, err := LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error: %v", err)
	}
	if got.User.Age != 40 || got.User.RiskTolerance != finguide.Aggressive {
		t.Errorf("loaded user = %+v, want age 40, aggressive", got.User)
	}
}

func TestParseAmount(t *testing.T) {
	if got := parseAmount("1200.50"); got != 1200.5 {
		t.Errorf("parseAmount(1200.50) = %v", got)
	}
	if got := parseAmount("twelve"); !math.IsNaN(got) {
		t.Errorf("parseAmount(twelve) = %v, want NaN", got)
	}
}

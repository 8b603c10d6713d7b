package finguide

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file persists the profile as a single human-readable JSON document,
// suitable for keeping in a private git repo next to the statements it was
// built from.

// EncodeProfile writes the profile as indented JSON.
func EncodeProfile(w io.Writer, p *FinancialProfile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("could not encode profile: %w", err)
	}
	return nil
}

// DecodeProfile reads a profile back and recalculates its derived totals, so
// a hand-edited file heals itself on load.
func DecodeProfile(r io.Reader) (*FinancialProfile, error) {
	var p FinancialProfile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("could not decode profile: %w", err)
	}
	// missing or out-of-domain user fields fall back to the defaults,
	// field by field, mirroring UpdateUserProfile's best-effort semantics.
	if p.User.Age <= 0 || p.User.Age >= 100 {
		p.User.Age = 28
	}
	switch p.User.RiskTolerance {
	case Conservative, Moderate, Aggressive:
	default:
		p.User.RiskTolerance = Moderate
	}
	switch p.User.Experience {
	case Beginner, Intermediate, Advanced:
	default:
		p.User.Experience = Beginner
	}
	p.Recalculate()
	return &p, nil
}

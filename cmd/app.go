// Package cmd implements the CLI application around the financial profile.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/spendx/finguide"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var profileFile = flag.String("profile-file", "profile.json", "Path to the financial profile file (JSON format)")

// Commands is the list a main package registers on its commander.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&addIncomeCmd{},
	&addExpenseCmd{},
	&profileCmd{},
	&recommendCmd{},
	&contextCmd{},
	&assistCmd{},
	&importCmd{},
	&topicCmd{},
}

// LoadProfile decodes the profile from the app profile file. A missing file
// yields the demo profile so every command works out of the box.
func LoadProfile() (*finguide.FinancialProfile, error) {
	f, err := os.Open(*profileFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, profile does not exist, starting from the demo profile instead")
		return finguide.NewProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open profile file %q: %w", *profileFile, err)
	}
	defer f.Close()

	p, err := finguide.DecodeProfile(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode profile file %q: %w", *profileFile, err)
	}
	return p, nil
}

// SaveProfile encodes the profile back into the app profile file.
func SaveProfile(p *finguide.FinancialProfile) error {
	f, err := os.Create(*profileFile)
	if err != nil {
		return fmt.Errorf("could not create profile file %q: %w", *profileFile, err)
	}
	defer f.Close()
	return finguide.EncodeProfile(f, p)
}

// parseAmount reads a user-entered amount. An unparsable value becomes NaN so
// the profile's validation rejects it with its own message, exactly like a
// negative amount.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendx/finguide"
)

// addIncomeCmd holds the flags for the 'add-income' subcommand.
type addIncomeCmd struct {
	name        string
	amount      string
	incomeType  string
	description string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record a new income source" }
func (*addIncomeCmd) Usage() string {
	return `finguide add-income -name <name> -amount <amount> [-type active|passive] [-desc <text>]

  Adds a monthly income source to the profile.
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the income source.")
	f.StringVar(&c.amount, "amount", "", "Monthly amount in rupees.")
	f.StringVar(&c.incomeType, "type", "active", "Income type: active or passive.")
	f.StringVar(&c.description, "desc", "", "Optional description.")
}

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}

	typ := finguide.IncomeType(c.incomeType)
	if typ != finguide.ActiveIncome && typ != finguide.PassiveIncome {
		fmt.Fprintf(os.Stderr, "Error: income type must be active or passive, got %q\n", c.incomeType)
		return subcommands.ExitUsageError
	}

	if err := p.AddIncomeSource(c.name, parseAmount(c.amount), typ, c.description); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveProfile(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Income source added. Monthly income is now %s\n", finguide.Rupees(p.Income.Monthly))
	return subcommands.ExitSuccess
}

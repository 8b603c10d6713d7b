package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendx/finguide"
)

// addExpenseCmd holds the flags for the 'add-expense' subcommand.
type addExpenseCmd struct {
	category string
	amount   string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return `finguide add-expense -category <name> -amount <amount>

  Records an expense. An existing category accumulates the amount, a new one
  is created on the fly.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Expense category, e.g. Groceries.")
	f.StringVar(&c.amount, "amount", "", "Amount in rupees.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := p.AddExpense(c.category, parseAmount(c.amount)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveProfile(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Expense recorded. Monthly expenses are now %s\n", finguide.Rupees(p.Expenses.Monthly))
	return subcommands.ExitSuccess
}

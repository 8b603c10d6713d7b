package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendx/finguide/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the current month overview" }
func (*dashboardCmd) Usage() string {
	return `finguide dashboard

  Displays the month overview: income, spending by category, savings,
  investments and goals.
`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(p))
	return subcommands.ExitSuccess
}

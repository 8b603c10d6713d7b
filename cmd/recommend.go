package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendx/finguide/renderer"
)

type recommendCmd struct{}

func (*recommendCmd) Name() string { return "recommend" }
func (*recommendCmd) Synopsis() string {
	return "display the recommended asset allocation and funds"
}
func (*recommendCmd) Usage() string {
	return `finguide recommend

  Displays the asset allocation for the investor profile, the recommended
  monthly SIP, and the five suggested funds.
`
}

func (*recommendCmd) SetFlags(_ *flag.FlagSet) {}

func (c *recommendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RecommendationsMarkdown(p))
	return subcommands.ExitSuccess
}

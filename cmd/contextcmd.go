package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendx/finguide"
)

// contextCmd prints the grounding context sent to the assistant, mostly for
// inspection and debugging of prompts.
type contextCmd struct{}

func (*contextCmd) Name() string     { return "context" }
func (*contextCmd) Synopsis() string { return "print the assistant's financial context" }
func (*contextCmd) Usage() string {
	return `finguide context

  Prints the financial context block prepended to every assistant question.
`
}

func (*contextCmd) SetFlags(_ *flag.FlagSet) {}

func (c *contextCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(finguide.BuildContext(p))
	return subcommands.ExitSuccess
}

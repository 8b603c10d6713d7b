package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendx/finguide"
	"github.com/spendx/finguide/agent"
	"github.com/spendx/finguide/renderer"
	"google.golang.org/genai"
)

// importCmd replaces the profile's financials with a bank statement import.
type importCmd struct {
	jsonFile string
	textFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import financials from a bank statement" }
func (*importCmd) Usage() string {
	return `finguide import -json <file> | -text <file>

  Imports a month of financials, replacing income, expense categories,
  investments and EMI wholesale. -json takes an already-extracted statement;
  -text takes raw statement text and runs the assistant's extraction first.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.jsonFile, "json", "", "Extracted statement JSON file.")
	f.StringVar(&c.textFile, "text", "", "Raw statement text file, extracted via the model.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.jsonFile == "") == (c.textFile == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -json or -text is required")
		return subcommands.ExitUsageError
	}

	var data []byte
	if c.jsonFile != "" {
		var err error
		data, err = os.ReadFile(c.jsonFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.jsonFile, err)
			return subcommands.ExitFailure
		}
	} else {
		text, err := os.ReadFile(c.textFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.textFile, err)
			return subcommands.ExitFailure
		}
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
			return subcommands.ExitFailure
		}
		data, err = agent.ExtractStatement(ctx, client, string(text))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting statement: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	imported, err := finguide.ParseStatement(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing statement: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}
	imported.Apply(p)

	if err := SaveProfile(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(p))
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/spendx/finguide/cmd"
)

func main() {
	// When invoked by the shell's completion hook this call answers and exits.
	completion().Complete("finguide")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"profile-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"dashboard": {},
			"add-income": {Flags: map[string]complete.Predictor{
				"name":   predict.Something,
				"amount": predict.Something,
				"type":   predict.Set{"active", "passive"},
				"desc":   predict.Something,
			}},
			"add-expense": {Flags: map[string]complete.Predictor{
				"category": predict.Something,
				"amount":   predict.Something,
			}},
			"profile": {Flags: map[string]complete.Predictor{
				"age":        predict.Something,
				"risk":       predict.Set{"conservative", "moderate", "aggressive"},
				"experience": predict.Set{"beginner", "intermediate", "advanced"},
			}},
			"recommend": {},
			"context":   {},
			"assist":    {},
			"import": {Flags: map[string]complete.Predictor{
				"json": predict.Files("*.json"),
				"text": predict.Files("*.txt"),
			}},
			"topic": {Args: predict.Set{"readme", "allocation", "sip", "rules", "disclaimer"}},
		},
	}
}

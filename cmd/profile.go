package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendx/finguide"
)

// profileCmd shows or updates the investor profile.
type profileCmd struct {
	age        int
	risk       string
	experience string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the investor profile" }
func (*profileCmd) Usage() string {
	return `finguide profile [-age <years>] [-risk conservative|moderate|aggressive] [-experience beginner|intermediate|advanced]

  Without flags, shows the current investor profile. With flags, updates it.
  Each field is validated on its own; an invalid value leaves that field
  unchanged.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "Age in years (1-99).")
	f.StringVar(&c.risk, "risk", "", "Risk tolerance: conservative, moderate or aggressive.")
	f.StringVar(&c.experience, "experience", "", "Investment experience: beginner, intermediate or advanced.")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.age != 0 || c.risk != "" || c.experience != "" {
		p.UpdateUserProfile(c.age, finguide.RiskTolerance(c.risk), finguide.ExperienceLevel(c.experience))
		if err := SaveProfile(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Age: %d\nRisk tolerance: %s\nExperience: %s\n",
		p.User.Age, p.User.RiskTolerance, p.User.Experience)
	return subcommands.ExitSuccess
}

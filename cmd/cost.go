package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/costcalc"
	"github.com/google/subcommands"
)

type costCmd struct {
	entry entryFlags
}

func (*costCmd) Name() string     { return "cost" }
func (*costCmd) Synopsis() string { return "compute a single cost without starting a session" }
func (*costCmd) Usage() string {
	return `ccc cost -type <category> [-salary N -people N | -cpu N -users N | -cpm N] -days N -margin N

  Computes the cost of a single entry and prints it:

    monthly / 30 * days * (1 + margin/100)

  where monthly is salary * people for a person_cost, cost per user * users
  for a service_cost, and the cost per month for a direct_cost.

Usage Examples:
$ ccc cost -type person_cost -salary 9000 -people 2 -days 30 -margin 0
INR 18,000

`
}

func (c *costCmd) SetFlags(f *flag.FlagSet) {
	c.entry.SetFlags(f)
}

func (c *costCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	cur, err := Currency()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	basis, days, margin, err := c.entry.Input(cur)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cost := costcalc.CalculateBasis(basis, days, margin)
	fmt.Fprintln(stdout, cost.String())
	return subcommands.ExitSuccess
}

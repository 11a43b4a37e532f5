package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/costcalc"
	"github.com/google/subcommands"
)

type formatCmd struct{}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "print numbers with South-Asian digit grouping" }
func (*formatCmd) Usage() string {
	return `ccc format <number>...

  Prints each number on its own line, its integer part grouped as 12,34,567.
  The fractional part is printed as is, numbers are not rounded.
  Put -- before negative numbers so that they are not read as flags.

Usage Examples:
$ ccc format 1234567
$ ccc format -- -1234567
`
}

func (*formatCmd) SetFlags(f *flag.FlagSet) {}

func (*formatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		d, err := costcalc.ParseDecimal(arg)
		if err != nil || arg == "" {
			fmt.Fprintf(os.Stderr, "Error: %q is not a number\n", arg)
			status = subcommands.ExitUsageError
			continue
		}
		fmt.Fprintln(stdout, costcalc.Format(d))
	}
	return status
}

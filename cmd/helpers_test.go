package cmd

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// setupApp makes the application print plain markdown into the returned buffer,
// with the default currency.
func setupApp(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvPlain, "")

	oldPlain, oldCurrency, oldStdout, oldStdin := *plain, *currencyFlag, stdout, stdin
	t.Cleanup(func() {
		*plain, *currencyFlag, stdout, stdin = oldPlain, oldCurrency, oldStdout, oldStdin
	})

	var out bytes.Buffer
	*plain = true
	*currencyFlag = ""
	stdout = &out
	return &out
}

// execute runs the subcommand c with args.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

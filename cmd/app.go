// Package cmd implements the CLI application to compute campaign costs.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/costcalc"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "ledger")
	c.Register(&costCmd{}, "ledger")

	c.Register(&formatCmd{}, "tools")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	currencyFlag = flag.String("currency", "", "Currency label of amounts. Defaults to $"+EnvCurrency+" or "+costcalc.DefaultCurrency)
	envFile      = flag.String("env-file", ".env", "Optional file of environment variables to load at startup")
	plain        = flag.Bool("plain", false, "Print markdown as is instead of styling it for the terminal")
	logLevel     = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	Verbose      = flag.Bool("v", false, "Verbose output, same as -log-level debug")
)

// stdout and stdin are the streams of the application, tests replace them.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// LoadEnv loads the -env-file into the environment. A missing file is not an
// error, and variables already set are not overridden.
func LoadEnv() error {
	err := godotenv.Load(*envFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not load %q: %w", *envFile, err)
	}
	log.Debug().Str("file", *envFile).Msg("environment loaded")
	return nil
}

// SetupLogging configures the global logger from the command line flags.
// Logs go to stderr so that stdout can be piped.
func SetupLogging() {
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if *Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// Currency returns the currency of the application, and validates it.
func Currency() (string, error) {
	cur := *currencyFlag
	if cur == "" {
		cur = os.Getenv(EnvCurrency)
	}
	if cur == "" {
		cur = costcalc.DefaultCurrency
	}
	if err := costcalc.ValidateCurrency(cur); err != nil {
		return "", err
	}
	return cur, nil
}

// printMarkdown prints md, styled for the terminal unless -plain is set.
func printMarkdown(w io.Writer, md string) {
	if *plain || os.Getenv(EnvPlain) == "true" {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Warn().Err(err).Msg("cannot style markdown")
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warn().Err(err).Msg("cannot style markdown")
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/costcalc"
	"github.com/etnz/costcalc/docs"
	"github.com/etnz/costcalc/renderer"
	"github.com/google/shlex"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// errQuit is returned by Session.Exec when the session must end.
var errQuit = errors.New("quit")

// Session is an interactive cost ledger. Each command line is applied to the
// ledger, then the ledger is displayed again.
type Session struct {
	ledger *costcalc.Ledger
	out    io.Writer
	errOut io.Writer
	json   bool // display the ledger as JSON instead of markdown
}

// NewSession creates a session on ledger that displays to out.
func NewSession(ledger *costcalc.Ledger, out, errOut io.Writer) *Session {
	return &Session{ledger: ledger, out: out, errOut: errOut}
}

// Ledger returns the session's ledger.
func (s *Session) Ledger() *costcalc.Ledger { return s.ledger }

// Run reads command lines from r until the end of input, a quit command or
// the cancellation of ctx. Command errors are reported and do not end the
// session. If prompt is not empty it is printed before each line.
func (s *Session) Run(ctx context.Context, r io.Reader, prompt string) error {
	s.display()
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prompt != "" {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}
	}
}

// Exec applies a single command line to the session.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	name, args := args[0], args[1:]
	logger := log.With().Str("command", name).Logger()
	switch name {
	case "add":
		err = s.add(args)
	case "remove", "rm":
		err = s.remove(args)
	case "clear":
		err = noArgs(name, args)
		if err == nil {
			s.ledger.Clear()
		}
	case "list", "ls":
		err = noArgs(name, args)
	case "total":
		if err = noArgs(name, args); err == nil {
			s.displayTotal()
		}
		return err
	case "help":
		return s.help(args)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try 'help'", name)
	}
	if err != nil {
		logger.Debug().Err(err).Msg("command failed")
		return err
	}
	logger.Debug().Int("entries", s.ledger.Len()).Str("total", s.ledger.Total().Decimal().String()).Msg("command applied")
	s.display()
	return nil
}

func noArgs(name string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%s takes no arguments, got %q", name, args)
	}
	return nil
}

func (s *Session) add(args []string) error {
	f := flag.NewFlagSet("add", flag.ContinueOnError)
	f.SetOutput(s.errOut)
	var entry entryFlags
	entry.SetFlags(f)
	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if f.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q, quote descriptions with spaces", f.Args())
	}

	basis, days, margin, err := entry.Input(s.ledger.Currency())
	if err != nil {
		return err
	}
	e := s.ledger.Add(entry.description, basis, days, margin)
	if !s.json {
		fmt.Fprint(s.out, renderer.RenderEntry(renderer.NewEntry(s.ledger.Len()-1, e)))
	}
	return nil
}

func (s *Session) remove(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: remove <index>")
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}
	if _, err := s.ledger.Remove(index); err != nil {
		return fmt.Errorf("cannot remove: %w", err)
	}
	return nil
}

func (s *Session) help(args []string) error {
	if len(args) == 0 {
		args = []string{"session"}
	}
	doc, err := docs.GetTopics(args...)
	if err != nil {
		return err
	}
	printMarkdown(s.out, doc)
	return nil
}

// display displays the whole ledger.
func (s *Session) display() {
	if s.json {
		if err := costcalc.EncodeLedger(s.out, s.ledger); err != nil {
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}
		return
	}
	printMarkdown(s.out, renderer.RenderLedger(renderer.NewLedger(s.ledger)))
}

// displayTotal displays the total only.
func (s *Session) displayTotal() {
	if s.json {
		s.display()
		return
	}
	printMarkdown(s.out, renderer.RenderTotal(renderer.NewLedger(s.ledger)))
}

// sessionCmd holds the flags for the 'session' subcommand.
type sessionCmd struct {
	json   bool
	script string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive cost ledger" }
func (*sessionCmd) Usage() string {
	return `ccc session [-json] [-script <file>]

  Starts an empty cost ledger and reads commands, one per line, from stdin or
  from a script file. The ledger is displayed after every change.

  Commands: add, remove <index>, clear, list, total, help [topic], quit.
  See 'ccc topic session' for details.

Usage Examples:
$ ccc -plain session
> add -type person_cost -desc developers -salary 9000 -people 2 -days 30 -margin 0
> remove 0
> quit
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Display the ledger as a JSON line instead of markdown")
	f.StringVar(&c.script, "script", "", "Read commands from this file instead of stdin")
}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	cur, err := Currency()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, prompt := stdin, ""
	if c.script != "" {
		file, err := os.Open(c.script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script %q: %v\n", c.script, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	} else if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		prompt = "> "
	}

	s := NewSession(costcalc.NewLedger(cur), stdout, os.Stderr)
	s.json = c.json
	log.Debug().Str("currency", cur).Str("script", c.script).Msg("session started")
	if err := s.Run(ctx, in, prompt); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

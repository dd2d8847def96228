// Package interactive provides the interactive shell for the datekit
// command.
package interactive

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/datekit-go/datekit/pkg/clock"
	"github.com/datekit-go/datekit/pkg/date"
	"github.com/datekit-go/datekit/pkg/duration"
	"github.com/datekit-go/datekit/pkg/format"
)

// Shell handles the interactive mode for datekit.
type Shell struct {
	rl  *readline.Instance
	out io.Writer
	now clock.Clock
	loc *time.Location
}

// New creates a new interactive shell.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "datekit> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	// rl.Stdout() coordinates output with the prompt.
	return &Shell{rl: rl, out: rl.Stdout(), now: clock.System, loc: time.Local}, nil
}

// Run starts a shell and drives it until exit. It is the entry point used
// by the datekit command.
func Run() error {
	s, err := New()
	if err != nil {
		return err
	}
	return s.Loop()
}

// Loop reads and executes commands until EOF or "exit".
func (s *Shell) Loop() error {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if !s.execute(input) {
			return nil
		}
	}
}

// execute runs one command line. It returns false when the shell should
// exit.
func (s *Shell) execute(input string) bool {
	out := s.out

	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "exit", "quit":
		return false
	case "help":
		s.printHelp()
	case "now":
		s.printTimestamp(out, date.Now(s.now))
	case "parse":
		if rest == "" {
			fmt.Fprintln(out, "usage: parse <internet date string>")
			break
		}
		s.printTimestamp(out, format.ParseInternetDate(rest))
	case "format":
		ms, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			fmt.Fprintln(out, "usage: format <epoch millis>")
			break
		}
		s.printTimestamp(out, date.FromMillis(ms))
	case "add", "sub":
		span, err := duration.Parse(rest)
		if err != nil {
			fmt.Fprintf(out, "invalid duration: %v\n", err)
			break
		}
		ts := span.LaterOn(s.now)
		label := "later"
		if cmd == "sub" {
			ts = span.AgoOn(s.now)
			label = "ago"
		}
		fmt.Fprintf(out, "%s %s:\n", span, label)
		s.printTimestamp(out, ts)
	case "days":
		fmt.Fprintln(out, date.DaysSinceEpoch(s.now))
	case "zone":
		if rest == "" {
			fmt.Fprintf(out, "zone: %s\n", s.loc)
			break
		}
		loc, err := time.LoadLocation(rest)
		if err != nil {
			fmt.Fprintf(out, "unknown timezone %q\n", rest)
			break
		}
		s.loc = loc
		fmt.Fprintf(out, "zone set to %s\n", loc)
	default:
		fmt.Fprintf(out, "unknown command %q (try 'help')\n", cmd)
	}
	return true
}

func (s *Shell) printTimestamp(out io.Writer, ts date.Timestamp) {
	fmt.Fprintf(out, "  millis:   %d\n", ts.Millis())
	fmt.Fprintf(out, "  internet: %s\n", format.ToInternetDate(ts))
	fmt.Fprintf(out, "  date:     %s %s\n", format.Date(ts, s.loc), format.HourFormat(ts, s.loc))
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  now                  Show the current instant
  parse <string>       Parse an internet date string
  format <millis>      Show renderings of a timestamp
  add <duration>       Instant one duration from now
  sub <duration>       Instant one duration ago
  days                 Whole days since the epoch
  zone [name]          Show or set the display timezone
  help                 Show this help
  exit                 Leave the shell
`)
}

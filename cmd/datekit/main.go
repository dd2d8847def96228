// Command datekit is a date/time convenience tool built on the datekit
// library.
//
// Usage:
//
//	datekit <command> [flags] [args]
//
// Commands:
//
//	parse    Parse an internet date string and print its fields
//	format   Print the renderings of an epoch-millisecond timestamp
//	add      Apply a duration to now (or a given timestamp)
//	days     Whole days since the epoch
//	shell    Interactive mode
//
// Examples:
//
//	# Parse an internet date
//	datekit parse "Fri, 5 Apr 2024 10:30:15 GMT"
//
//	# Render a timestamp in the Berlin timezone
//	datekit format -zone Europe/Berlin 1712313000000
//
//	# What is two weeks from now?
//	datekit add "2 weeks"
//
//	# Whole days since the epoch
//	datekit days
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/datekit-go/datekit/cmd/datekit/interactive"
	"github.com/datekit-go/datekit/pkg/clock"
	"github.com/datekit-go/datekit/pkg/date"
	"github.com/datekit-go/datekit/pkg/duration"
	"github.com/datekit-go/datekit/pkg/format"
)

const usage = `datekit - date/time convenience tool

Usage:
  datekit <command> [flags] [args]

Commands:
  parse <string>            Parse an internet date string
  format [flags] <millis>   Print renderings of a timestamp
  add <duration> [millis]   Apply a duration to now or a timestamp
  days [millis]             Whole days since the epoch
  shell                     Interactive mode
  help                      Show this help

Run 'datekit <command> -h' for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "parse":
		err = runParse(os.Args[2:])
	case "format":
		err = runFormat(os.Args[2:])
	case "add":
		err = runAdd(os.Args[2:])
	case "days":
		err = runDays(os.Args[2:])
	case "shell":
		err = interactive.Run()
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "datekit: unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "datekit: %v\n", err)
		os.Exit(1)
	}
}

// commonFlags registers the flags shared by the one-shot commands and
// returns the resolved zone after parsing.
func commonFlags(fs *flag.FlagSet) (zone *string, verbose *bool) {
	zone = fs.String("zone", "local", "timezone (IANA name, \"local\", or \"utc\")")
	verbose = fs.Bool("v", false, "enable debug logging")
	return zone, verbose
}

func setupLogging(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func resolveZone(name string) (*time.Location, error) {
	switch strings.ToLower(name) {
	case "", "local":
		return time.Local, nil
	case "utc", "gmt":
		return time.UTC, nil
	default:
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
		}
		return loc, nil
	}
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	zone, verbose := commonFlags(fs)
	_ = fs.Parse(args)
	setupLogging(*verbose)

	if fs.NArg() != 1 {
		return fmt.Errorf("parse: expected one date string argument")
	}
	loc, err := resolveZone(*zone)
	if err != nil {
		return err
	}

	input := fs.Arg(0)
	ts := format.ParseInternetDate(input)
	log.Debug("parsed internet date", "input", input, "millis", ts.Millis())

	printTimestamp(ts, loc)
	return nil
}

func runFormat(args []string) error {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	zone, verbose := commonFlags(fs)
	_ = fs.Parse(args)
	setupLogging(*verbose)

	if fs.NArg() != 1 {
		return fmt.Errorf("format: expected one epoch-millisecond argument")
	}
	loc, err := resolveZone(*zone)
	if err != nil {
		return err
	}
	ms, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("format: invalid millisecond count %q", fs.Arg(0))
	}

	printTimestamp(date.FromMillis(ms), loc)
	return nil
}

func runAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	zone, verbose := commonFlags(fs)
	_ = fs.Parse(args)
	setupLogging(*verbose)

	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("add: expected a duration and an optional timestamp")
	}
	loc, err := resolveZone(*zone)
	if err != nil {
		return err
	}

	span, err := duration.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	c := clock.System
	if fs.NArg() == 2 {
		ms, err := strconv.ParseInt(fs.Arg(1), 10, 64)
		if err != nil {
			return fmt.Errorf("add: invalid millisecond count %q", fs.Arg(1))
		}
		c = clock.Fixed(date.FromMillis(ms).Time())
	}

	ts := span.LaterOn(c)
	log.Debug("applied duration", "span", span.String(), "millis", ts.Millis())

	fmt.Printf("%s later:\n", span)
	printTimestamp(ts, loc)
	return nil
}

func runDays(args []string) error {
	fs := flag.NewFlagSet("days", flag.ExitOnError)
	_, verbose := commonFlags(fs)
	_ = fs.Parse(args)
	setupLogging(*verbose)

	switch fs.NArg() {
	case 0:
		fmt.Println(date.DaysSinceEpoch(clock.System))
	case 1:
		ms, err := strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			return fmt.Errorf("days: invalid millisecond count %q", fs.Arg(0))
		}
		fmt.Println(date.MillisToDays(date.FromMillis(ms)))
	default:
		return fmt.Errorf("days: expected at most one timestamp argument")
	}
	return nil
}

func printTimestamp(ts date.Timestamp, loc *time.Location) {
	fmt.Printf("millis:   %d\n", ts.Millis())
	fmt.Printf("internet: %s\n", format.ToInternetDate(ts))
	fmt.Printf("date:     %s\n", format.Date(ts, loc))
	fmt.Printf("time:     %s\n", format.HourFormat(ts, loc))
	fmt.Printf("day:      %d\n", date.Day(ts, loc))
	fmt.Printf("month:    %d (%s)\n", date.Month(ts, loc), date.Month(ts, loc))
	fmt.Printf("year:     %d\n", date.Year(ts, loc))
}

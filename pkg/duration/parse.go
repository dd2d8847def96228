package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// wordUnits maps unit words accepted by Parse to their millisecond count.
var wordUnits = map[string]int64{
	"ms":           1,
	"milli":        1,
	"millis":       1,
	"millisecond":  1,
	"milliseconds": 1,
	"second":       MillisPerSecond,
	"seconds":      MillisPerSecond,
	"minute":       MillisPerMinute,
	"minutes":      MillisPerMinute,
	"hour":         MillisPerHour,
	"hours":        MillisPerHour,
	"day":          MillisPerDay,
	"days":         MillisPerDay,
	"week":         MillisPerWeek,
	"weeks":        MillisPerWeek,
}

// symbolicWords maps month/year words to their symbolic unit.
var symbolicWords = map[string]Unit{
	"month":  UnitMonths,
	"months": UnitMonths,
	"year":   UnitYears,
	"years":  UnitYears,
}

// Parse parses a duration string. Three syntaxes are accepted, tried in
// order:
//
//   - Go duration syntax: "90m", "1h30m"
//   - Go syntax extended with days and weeks: "7d", "1w2d6h"
//   - word form, as produced by Duration.String: "2 weeks 3 days 1 hour"
//
// The word form also accepts a single month or year component ("3 months"),
// which yields a symbolic duration.
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, fmt.Errorf("empty duration")
	}

	if d, err := time.ParseDuration(s); err == nil {
		return FromStd(d), nil
	}
	// str2duration adds day and week units on top of Go syntax.
	if d, err := str2duration.ParseDuration(s); err == nil {
		return FromStd(d), nil
	}

	return parseWords(s)
}

// parseWords parses the "<amount> <unit> ..." form.
func parseWords(s string) (Duration, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields)%2 != 0 {
		return Duration{}, fmt.Errorf("invalid duration %q", s)
	}

	neg := false
	if strings.HasPrefix(fields[0], "-") {
		neg = true
		fields[0] = strings.TrimPrefix(fields[0], "-")
	}

	var total int64
	for i := 0; i < len(fields); i += 2 {
		amount, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		word := strings.ToLower(fields[i+1])

		if unit, ok := symbolicWords[word]; ok {
			// Month/year only stands alone: it cannot be combined with
			// millisecond-based components.
			if len(fields) != 2 {
				return Duration{}, ErrSymbolicArithmetic
			}
			if neg {
				amount = -amount
			}
			return Duration{unit: unit, amount: amount}, nil
		}

		ms, ok := wordUnits[word]
		if !ok {
			return Duration{}, fmt.Errorf("invalid duration %q: unknown unit %q", s, word)
		}
		total += amount * ms
	}
	if neg {
		total = -total
	}
	return Duration{millis: total}, nil
}

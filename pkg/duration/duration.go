package duration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/datekit-go/datekit/pkg/clock"
	"github.com/datekit-go/datekit/pkg/date"
)

// Duration errors.
var (
	// ErrSymbolicArithmetic is returned when a symbolic month/year duration
	// is used where a millisecond count is required.
	ErrSymbolicArithmetic = errors.New("symbolic month/year duration has no millisecond count")

	// ErrSymbolicEncoding is returned when a symbolic duration is marshaled
	// to a count-based encoding.
	ErrSymbolicEncoding = errors.New("symbolic month/year duration cannot be encoded")
)

// Millisecond counts of the fixed units.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
	MillisPerDay    int64 = 24 * MillisPerHour
	MillisPerWeek   int64 = 7 * MillisPerDay
)

// Unit identifies the symbolic calendar units.
type Unit uint8

const (
	// UnitMonths is the symbolic month unit.
	UnitMonths Unit = iota + 1

	// UnitYears is the symbolic year unit.
	UnitYears
)

// String returns the singular unit name.
func (u Unit) String() string {
	switch u {
	case UnitMonths:
		return "month"
	case UnitYears:
		return "year"
	default:
		return "unknown"
	}
}

// Duration is an immutable span of time. The zero value is a fixed span of
// zero milliseconds.
type Duration struct {
	millis int64

	// Symbolic month/year spans keep the original amount and unit instead
	// of a millisecond count.
	unit   Unit
	amount int64
}

// Millis returns a fixed duration of n milliseconds.
func Millis(n int64) Duration {
	return Duration{millis: n}
}

// Seconds returns a fixed duration of n seconds.
func Seconds(n int64) Duration {
	return Duration{millis: n * MillisPerSecond}
}

// Minutes returns a fixed duration of n minutes.
func Minutes(n int64) Duration {
	return Duration{millis: n * MillisPerMinute}
}

// Hours returns a fixed duration of n hours.
func Hours(n int64) Duration {
	return Duration{millis: n * MillisPerHour}
}

// Days returns a fixed duration of n days of 24 hours.
func Days(n int64) Duration {
	return Duration{millis: n * MillisPerDay}
}

// Weeks returns a fixed duration of n weeks of 7 days.
func Weeks(n int64) Duration {
	return Duration{millis: n * MillisPerWeek}
}

// Months returns a symbolic duration of n calendar months.
func Months(n int64) Duration {
	return Duration{unit: UnitMonths, amount: n}
}

// Years returns a symbolic duration of n calendar years.
func Years(n int64) Duration {
	return Duration{unit: UnitYears, amount: n}
}

// FromStd returns a fixed duration equal to d, truncated to milliseconds.
func FromStd(d time.Duration) Duration {
	return Duration{millis: d.Milliseconds()}
}

// IsSymbolic reports whether d is a symbolic month/year span.
func (d Duration) IsSymbolic() bool {
	return d.unit != 0
}

// Millis returns the millisecond count of a fixed duration, or an error for
// a symbolic one.
func (d Duration) Millis() (int64, error) {
	if d.IsSymbolic() {
		return 0, ErrSymbolicArithmetic
	}
	return d.millis, nil
}

// Std returns a fixed duration as a time.Duration, or an error for a
// symbolic one.
func (d Duration) Std() (time.Duration, error) {
	if d.IsSymbolic() {
		return 0, ErrSymbolicArithmetic
	}
	return time.Duration(d.millis) * time.Millisecond, nil
}

// Amount returns the (amount, unit) pair of a symbolic duration. For fixed
// durations the unit is 0.
func (d Duration) Amount() (int64, Unit) {
	return d.amount, d.unit
}

// Add returns the sum of d and other. Either operand being symbolic is an
// error: month/year spans have no millisecond count to sum.
func (d Duration) Add(other Duration) (Duration, error) {
	if d.IsSymbolic() || other.IsSymbolic() {
		return Duration{}, ErrSymbolicArithmetic
	}
	return Duration{millis: d.millis + other.millis}, nil
}

// Sub returns the difference of d and other, under the same symbolic
// restriction as Add.
func (d Duration) Sub(other Duration) (Duration, error) {
	if d.IsSymbolic() || other.IsSymbolic() {
		return Duration{}, ErrSymbolicArithmetic
	}
	return Duration{millis: d.millis - other.millis}, nil
}

// Equal reports whether d and other denote the same span. Fixed durations
// compare on millisecond count; symbolic durations compare on (amount,
// unit); a fixed duration never equals a symbolic one.
func (d Duration) Equal(other Duration) bool {
	if d.IsSymbolic() != other.IsSymbolic() {
		return false
	}
	if d.IsSymbolic() {
		return d.unit == other.unit && d.amount == other.amount
	}
	return d.millis == other.millis
}

// EqualMillis reports whether d is a fixed duration of exactly ms
// milliseconds. Symbolic durations never match.
func (d Duration) EqualMillis(ms int64) bool {
	return !d.IsSymbolic() && d.millis == ms
}

// LaterOn returns the instant one span after the current time read from c.
func (d Duration) LaterOn(c clock.Clock) date.Timestamp {
	return d.from(c.Now(), 1)
}

// Later returns the instant one span after the current system time.
func (d Duration) Later() date.Timestamp {
	return d.LaterOn(clock.System)
}

// AgoOn returns the instant one span before the current time read from c.
func (d Duration) AgoOn(c clock.Clock) date.Timestamp {
	return d.from(c.Now(), -1)
}

// Ago returns the instant one span before the current system time.
func (d Duration) Ago() date.Timestamp {
	return d.AgoOn(clock.System)
}

func (d Duration) from(now time.Time, sign int64) date.Timestamp {
	if d.IsSymbolic() {
		n := int(sign * d.amount)
		switch d.unit {
		case UnitYears:
			return date.FromTime(now.AddDate(n, 0, 0))
		default:
			return date.FromTime(now.AddDate(0, n, 0))
		}
	}
	return date.FromMillis(now.UnixMilli() + sign*d.millis)
}

// breakdownUnits are the rendering units in descending order.
var breakdownUnits = []struct {
	name   string
	millis int64
}{
	{"week", MillisPerWeek},
	{"day", MillisPerDay},
	{"hour", MillisPerHour},
	{"minute", MillisPerMinute},
	{"second", MillisPerSecond},
	{"milli", 1},
}

// String renders the span as a space-joined descending-unit breakdown, e.g.
// "2 weeks 3 days 1 hour". Units with a zero amount are omitted; unit names
// take an "s" suffix when the amount exceeds 1. The zero span renders
// "0 millis".
func (d Duration) String() string {
	if d.IsSymbolic() {
		return pluralize(d.amount, d.unit.String())
	}
	if d.millis == 0 {
		return "0 millis"
	}

	ms := d.millis
	var sign string
	if ms < 0 {
		sign = "-"
		ms = -ms
	}

	parts := make([]string, 0, len(breakdownUnits))
	for _, u := range breakdownUnits {
		if n := ms / u.millis; n > 0 {
			parts = append(parts, pluralize(n, u.name))
			ms %= u.millis
		}
	}
	return sign + strings.Join(parts, " ")
}

func pluralize(n int64, name string) string {
	if n > 1 || n < -1 {
		return fmt.Sprintf("%d %ss", n, name)
	}
	return fmt.Sprintf("%d %s", n, name)
}

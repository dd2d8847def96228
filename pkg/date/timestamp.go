package date

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/datekit-go/datekit/internal/codec"
	"github.com/datekit-go/datekit/pkg/clock"
)

// millisPerDay is the length of a day in milliseconds.
const millisPerDay = 24 * 60 * 60 * 1000

// Timestamp is an absolute instant, stored as milliseconds since the Unix
// epoch.
type Timestamp int64

// Epoch is the Unix epoch (millisecond count 0).
const Epoch Timestamp = 0

// FromMillis returns the Timestamp for an epoch-millisecond count.
func FromMillis(ms int64) Timestamp {
	return Timestamp(ms)
}

// FromTime returns the Timestamp for t, truncated to millisecond precision.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Now returns the current instant read from c.
func Now(c clock.Clock) Timestamp {
	return FromTime(c.Now())
}

// Millis returns the epoch-millisecond count.
func (ts Timestamp) Millis() int64 {
	return int64(ts)
}

// Time returns the instant as a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// In returns the instant as a time.Time in loc. A nil loc selects time.Local.
func (ts Timestamp) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(int64(ts)).In(loc)
}

// Before reports whether ts is strictly earlier than other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts < other
}

// After reports whether ts is strictly later than other.
func (ts Timestamp) After(other Timestamp) bool {
	return ts > other
}

// String renders the instant in RFC 3339 form with millisecond precision,
// in UTC.
func (ts Timestamp) String() string {
	return ts.Time().Format("2006-01-02T15:04:05.000Z07:00")
}

// Day returns the day of month of ts under loc.
func Day(ts Timestamp, loc *time.Location) int {
	return ts.In(loc).Day()
}

// Month returns the month of ts under loc. Months are 1-based: January is 1,
// April is 4.
func Month(ts Timestamp, loc *time.Location) time.Month {
	return ts.In(loc).Month()
}

// Year returns the year of ts under loc.
func Year(ts Timestamp, loc *time.Location) int {
	return ts.In(loc).Year()
}

// NoTime returns ts with hour, minute, second, and millisecond zeroed,
// keeping the same calendar day under loc. The computation happens entirely
// in loc, so the day never rolls across a boundary.
func NoTime(ts Timestamp, loc *time.Location) Timestamp {
	v := NewView(ts, loc)
	v.Hour, v.Minute, v.Second, v.Millisecond = 0, 0, 0, 0
	return v.Timestamp()
}

// MillisToDays returns the number of whole days between the epoch and ts.
// The epoch itself maps to 0. Division floors, so pre-epoch instants round
// toward negative infinity.
func MillisToDays(ts Timestamp) int64 {
	ms := int64(ts)
	d := ms / millisPerDay
	if ms%millisPerDay < 0 {
		d--
	}
	return d
}

// DaysSinceEpoch returns the number of whole days between the epoch and the
// current instant read from c.
func DaysSinceEpoch(c clock.Clock) int64 {
	return MillisToDays(Now(c))
}

// MarshalJSON encodes the timestamp as its integer millisecond count.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(ts), 10)), nil
}

// UnmarshalJSON decodes an integer millisecond count.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	*ts = Timestamp(ms)
	return nil
}

// MarshalYAML encodes the timestamp as its integer millisecond count.
func (ts Timestamp) MarshalYAML() (any, error) {
	return int64(ts), nil
}

// UnmarshalYAML decodes an integer millisecond count.
func (ts *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	*ts = Timestamp(ms)
	return nil
}

// MarshalCBOR encodes the timestamp as its integer millisecond count.
func (ts Timestamp) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(int64(ts))
}

// UnmarshalCBOR decodes an integer millisecond count.
func (ts *Timestamp) UnmarshalCBOR(data []byte) error {
	var ms int64
	if err := codec.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	*ts = Timestamp(ms)
	return nil
}

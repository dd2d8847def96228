// Package format renders timestamps to the datekit string formats and
// parses internet-standard date strings.
//
// Weekday and month names come from Go's formatter, which always uses the
// fixed English abbreviations, so output and parsing do not depend on the
// platform locale.
package format

import (
	"time"

	"github.com/datekit-go/datekit/pkg/clock"
	"github.com/datekit-go/datekit/pkg/date"
)

// Layouts for the supported string formats.
const (
	// HourLayout is the 24-hour time-of-day format.
	HourLayout = "15:04:05"

	// CompactDateLayout is the compact numeric date format.
	CompactDateLayout = "2006/01/02"

	// TimeWithZoneLayout is the time-of-day format with a zone suffix.
	TimeWithZoneLayout = "15:04:05 MST"
)

// HourFormat renders the time of day of ts under loc as "HH:mm:ss".
func HourFormat(ts date.Timestamp, loc *time.Location) string {
	return ts.In(loc).Format(HourLayout)
}

// Date renders the calendar date of ts under loc as "yyyy/MM/dd".
func Date(ts date.Timestamp, loc *time.Location) string {
	return ts.In(loc).Format(CompactDateLayout)
}

// DateNow renders the current date read from c as "yyyy/MM/dd".
func DateNow(c clock.Clock, loc *time.Location) string {
	return Date(date.Now(c), loc)
}

// TimeNow renders the current time of day read from c with a zone suffix,
// e.g. "14:30:05 UTC".
func TimeNow(c clock.Clock, loc *time.Location) string {
	return date.Now(c).In(loc).Format(TimeWithZoneLayout)
}

package format

import (
	"context"

	"github.com/datekit-go/datekit/pkg/date"
	"github.com/datekit-go/datekit/pkg/tzcontext"
)

// Context-aware variants for callers that carry a scoped timezone and clock
// in a context.Context (see package tzcontext). Unset values fall back to
// time.Local and the system clock.

// DateNowContext renders the current date as "yyyy/MM/dd" using the clock
// and timezone carried by ctx.
func DateNowContext(ctx context.Context) string {
	return DateNow(tzcontext.Clock(ctx), tzcontext.Location(ctx))
}

// TimeNowContext renders the current time of day with a zone suffix using
// the clock and timezone carried by ctx.
func TimeNowContext(ctx context.Context) string {
	return TimeNow(tzcontext.Clock(ctx), tzcontext.Location(ctx))
}

// HourFormatContext renders the time of day of ts as "HH:mm:ss" in the
// timezone carried by ctx.
func HourFormatContext(ctx context.Context, ts date.Timestamp) string {
	return HourFormat(ts, tzcontext.Location(ctx))
}

// Package tzcontext provides context keys for propagating a display
// timezone and a clock through context.Context. Callers with a scoped
// timezone (a per-user or per-request setting) attach it once and the
// context-aware formatting helpers pick it up, instead of relying on a
// process-wide default.
package tzcontext

import (
	"context"
	"time"

	"github.com/datekit-go/datekit/pkg/clock"
)

type locationKey struct{}

// WithLocation returns a new context carrying loc as the display timezone.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, locationKey{}, loc)
}

// Location extracts the display timezone from the context.
// Returns time.Local if not set.
func Location(ctx context.Context) *time.Location {
	if v := ctx.Value(locationKey{}); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}
	return time.Local
}

type clockKey struct{}

// WithClock returns a new context carrying c as the time source.
func WithClock(ctx context.Context, c clock.Clock) context.Context {
	return context.WithValue(ctx, clockKey{}, c)
}

// Clock extracts the time source from the context.
// Returns clock.System if not set.
func Clock(ctx context.Context) clock.Clock {
	if v := ctx.Value(clockKey{}); v != nil {
		if c, ok := v.(clock.Clock); ok && c != nil {
			return c
		}
	}
	return clock.System
}

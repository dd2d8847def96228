package format

import (
	"context"
	"testing"
	"time"

	"github.com/datekit-go/datekit/pkg/clock"
	"github.com/datekit-go/datekit/pkg/date"
	"github.com/datekit-go/datekit/pkg/tzcontext"
)

func TestContextVariants(t *testing.T) {
	c := clock.Fixed(time.Date(2024, time.April, 5, 10, 30, 15, 0, time.UTC))
	east := time.FixedZone("UTC+9", 9*60*60)

	ctx := context.Background()
	ctx = tzcontext.WithClock(ctx, c)
	ctx = tzcontext.WithLocation(ctx, east)

	if got := DateNowContext(ctx); got != "2024/04/05" {
		t.Errorf("DateNowContext() = %q, want %q", got, "2024/04/05")
	}
	if got := TimeNowContext(ctx); got != "19:30:15 UTC+9" {
		t.Errorf("TimeNowContext() = %q, want %q", got, "19:30:15 UTC+9")
	}

	ts := date.FromTime(time.Date(2024, time.April, 5, 1, 0, 0, 0, time.UTC))
	if got := HourFormatContext(ctx, ts); got != "10:00:00" {
		t.Errorf("HourFormatContext() = %q, want %q", got, "10:00:00")
	}
}

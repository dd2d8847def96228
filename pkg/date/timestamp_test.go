package date

import (
	"testing"
	"time"

	"github.com/datekit-go/datekit/pkg/clock"
)

func TestFromTimeTruncatesToMillis(t *testing.T) {
	instant := time.Date(2024, time.April, 5, 10, 30, 15, 123456789, time.UTC)
	ts := FromTime(instant)

	want := instant.UnixMilli()
	if ts.Millis() != want {
		t.Errorf("FromTime().Millis() = %d, want %d", ts.Millis(), want)
	}
	if ns := ts.Time().Nanosecond(); ns != 123000000 {
		t.Errorf("sub-millisecond precision survived: %d ns", ns)
	}
}

func TestFieldAccessors(t *testing.T) {
	ts := FromTime(time.Date(2024, time.April, 5, 10, 30, 0, 0, time.UTC))

	if got := Day(ts, time.UTC); got != 5 {
		t.Errorf("Day() = %d, want 5", got)
	}
	if got := Month(ts, time.UTC); got != time.April {
		t.Errorf("Month() = %v, want April", got)
	}
	if got := int(Month(ts, time.UTC)); got != 4 {
		t.Errorf("int(Month()) = %d, want 4", got)
	}
	if got := Year(ts, time.UTC); got != 2024 {
		t.Errorf("Year() = %d, want 2024", got)
	}
}

func TestFieldAccessorsTimezoneDependent(t *testing.T) {
	// 2024-04-01 01:00 UTC is still 2024-03-31 in a UTC-5 zone.
	ts := FromTime(time.Date(2024, time.April, 1, 1, 0, 0, 0, time.UTC))
	west := time.FixedZone("UTC-5", -5*60*60)

	if got := Day(ts, west); got != 31 {
		t.Errorf("Day() = %d, want 31", got)
	}
	if got := Month(ts, west); got != time.March {
		t.Errorf("Month() = %v, want March", got)
	}
}

func TestViewSingleFieldChange(t *testing.T) {
	ts := FromTime(time.Date(2024, time.January, 15, 8, 45, 30, 0, time.UTC))
	v := NewView(ts, time.UTC)

	got := v.WithMonth(time.April).Timestamp()
	if Month(got, time.UTC) != time.April {
		t.Errorf("Month after WithMonth = %v, want April", Month(got, time.UTC))
	}
	// Every other field is preserved.
	if Day(got, time.UTC) != 15 || Year(got, time.UTC) != 2024 {
		t.Errorf("WithMonth disturbed other fields: %v", got.Time())
	}
	if h := got.In(time.UTC).Hour(); h != 8 {
		t.Errorf("hour after WithMonth = %d, want 8", h)
	}

	if d := Day(v.WithDay(28).Timestamp(), time.UTC); d != 28 {
		t.Errorf("Day after WithDay = %d, want 28", d)
	}
	if y := Year(v.WithYear(1999).Timestamp(), time.UTC); y != 1999 {
		t.Errorf("Year after WithYear = %d, want 1999", y)
	}
}

func TestViewRoundTrip(t *testing.T) {
	ts := FromTime(time.Date(2024, time.June, 30, 23, 59, 59, 999000000, time.UTC))
	if got := NewView(ts, time.UTC).Timestamp(); got != ts {
		t.Errorf("View round trip = %v, want %v", got, ts)
	}
}

func TestViewWithLocationKeepsInstant(t *testing.T) {
	ts := FromTime(time.Date(2024, time.April, 1, 1, 0, 0, 0, time.UTC))
	east := time.FixedZone("UTC+9", 9*60*60)

	v := NewView(ts, time.UTC).WithLocation(east)
	if got := v.Timestamp(); got != ts {
		t.Errorf("WithLocation changed the instant: %v != %v", got, ts)
	}
	if v.Day != 1 || v.Hour != 10 {
		t.Errorf("fields not re-projected: day=%d hour=%d, want day=1 hour=10", v.Day, v.Hour)
	}
}

func TestNoTime(t *testing.T) {
	ts := FromTime(time.Date(2024, time.April, 5, 23, 45, 12, 345000000, time.UTC))
	got := NoTime(ts, time.UTC)

	at := got.In(time.UTC)
	if at.Hour() != 0 || at.Minute() != 0 || at.Second() != 0 || at.Nanosecond() != 0 {
		t.Errorf("NoTime left time-of-day fields: %v", at)
	}
	if at.Day() != 5 || at.Month() != time.April || at.Year() != 2024 {
		t.Errorf("NoTime changed the calendar day: %v", at)
	}
}

func TestNoTimeNearDayBoundary(t *testing.T) {
	// 23:30 in UTC+13 is already the next day in UTC. NoTime must keep the
	// day as seen in the given zone.
	east := time.FixedZone("UTC+13", 13*60*60)
	ts := FromTime(time.Date(2024, time.April, 5, 23, 30, 0, 0, east))

	got := NoTime(ts, east)
	at := got.In(east)
	if at.Day() != 5 || at.Hour() != 0 {
		t.Errorf("NoTime crossed a day boundary: %v", at)
	}
}

func TestMillisToDays(t *testing.T) {
	cases := []struct {
		ms   int64
		want int64
	}{
		{0, 0},
		{1, 0},
		{millisPerDay - 1, 0},
		{millisPerDay, 1},
		{2 * millisPerDay, 2},
		{2*millisPerDay + 12*60*60*1000, 2},
		{-1, -1},
		{-millisPerDay, -1},
	}

	for _, tc := range cases {
		if got := MillisToDays(FromMillis(tc.ms)); got != tc.want {
			t.Errorf("MillisToDays(%d) = %d, want %d", tc.ms, got, tc.want)
		}
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	c := clock.Fixed(time.UnixMilli(2*millisPerDay + 5000).UTC())
	if got := DaysSinceEpoch(c); got != 2 {
		t.Errorf("DaysSinceEpoch() = %d, want 2", got)
	}
}

func TestNowReadsClock(t *testing.T) {
	instant := time.Date(2030, time.December, 25, 0, 0, 0, 0, time.UTC)
	if got := Now(clock.Fixed(instant)); got.Millis() != instant.UnixMilli() {
		t.Errorf("Now() = %d, want %d", got.Millis(), instant.UnixMilli())
	}
}

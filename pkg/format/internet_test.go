package format

import (
	"testing"
	"time"

	"github.com/datekit-go/datekit/pkg/date"
)

func TestToInternetDate(t *testing.T) {
	ts := date.FromTime(time.Date(2024, time.April, 5, 10, 30, 15, 0, time.UTC))
	if got, want := ToInternetDate(ts), "Fri, 5 Apr 2024 10:30:15 GMT"; got != want {
		t.Errorf("ToInternetDate() = %q, want %q", got, want)
	}
}

func TestToInternetDateAlwaysGMT(t *testing.T) {
	// The instant is rendered in GMT regardless of how it was produced.
	east := time.FixedZone("UTC+9", 9*60*60)
	ts := date.FromTime(time.Date(2024, time.April, 5, 19, 30, 15, 0, east))
	if got, want := ToInternetDate(ts), "Fri, 5 Apr 2024 10:30:15 GMT"; got != want {
		t.Errorf("ToInternetDate() = %q, want %q", got, want)
	}
}

func TestParseInternetDate(t *testing.T) {
	want := date.FromTime(time.Date(2024, time.April, 5, 10, 30, 15, 0, time.UTC))

	cases := []string{
		"Fri, 5 Apr 2024 10:30:15 GMT",
		"Fri, 05 Apr 2024 10:30:15 GMT", // RFC 1123 padded day
		"Fri, 05 Apr 2024 10:30:15 +0000",
		"  Fri, 5 Apr 2024 10:30:15 GMT  ",
	}
	for _, in := range cases {
		if got := ParseInternetDate(in); got != want {
			t.Errorf("ParseInternetDate(%q) = %d, want %d", in, got.Millis(), want.Millis())
		}
	}
}

func TestParseInternetDateLenient(t *testing.T) {
	bad := []string{
		"not a date",
		"",
		"2024/04/05",
		"Fri, 5 Apr 10:30:15",
	}
	for _, in := range bad {
		if got := ParseInternetDate(in); got != date.Epoch {
			t.Errorf("ParseInternetDate(%q) = %d, want epoch", in, got.Millis())
		}
	}
}

func TestInternetDateRoundTrip(t *testing.T) {
	// Formatting truncates sub-second precision, so the round trip is exact
	// to the second.
	ts := date.FromTime(time.Date(2024, time.April, 5, 10, 30, 15, 345000000, time.UTC))

	got := ParseInternetDate(ToInternetDate(ts))
	diff := ts.Millis() - got.Millis()
	if diff < 0 {
		diff = -diff
	}
	if diff >= 1000 {
		t.Errorf("round trip drifted %dms: %d -> %d", diff, ts.Millis(), got.Millis())
	}
}

func TestInternetDateRoundTripZoned(t *testing.T) {
	east := time.FixedZone("UTC+5:30", 5*60*60+30*60)
	ts := date.FromTime(time.Date(2031, time.December, 31, 23, 59, 59, 0, east))

	if got := ParseInternetDate(ToInternetDate(ts)); got != ts {
		t.Errorf("round trip = %d, want %d", got.Millis(), ts.Millis())
	}
}

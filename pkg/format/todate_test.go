package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/datekit-go/datekit/pkg/date"
)

func TestToDateAbsent(t *testing.T) {
	ts, ok := ToDate(NoInput())
	assert.False(t, ok)
	assert.Equal(t, date.Epoch, ts)

	// The zero Input is absent.
	_, ok = ToDate(Input{})
	assert.False(t, ok)
}

func TestToDateTimestamp(t *testing.T) {
	want := date.FromTime(time.Date(2024, time.April, 5, 10, 30, 15, 0, time.UTC))

	ts, ok := ToDate(TimestampInput(want))
	assert.True(t, ok)
	assert.Equal(t, want, ts)
}

func TestToDateString(t *testing.T) {
	want := date.FromTime(time.Date(2024, time.April, 5, 10, 30, 15, 0, time.UTC))

	ts, ok := ToDate(StringInput("Fri, 5 Apr 2024 10:30:15 GMT"))
	assert.True(t, ok)
	assert.Equal(t, want, ts)
}

func TestToDateUnparsableString(t *testing.T) {
	// A string is present once it type-matches, even when the lenient
	// parser falls back to the epoch.
	ts, ok := ToDate(StringInput("not a date"))
	assert.True(t, ok)
	assert.Equal(t, date.Epoch, ts)
}

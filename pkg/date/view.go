package date

import "time"

// View is a calendar-field projection of a Timestamp under one location.
// Construct it with NewView, change a field with one of the With methods,
// and convert back with Timestamp. Out-of-range field values normalize the
// way time.Date does (e.g. day 32 rolls into the next month).
type View struct {
	Year        int
	Month       time.Month
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int

	loc *time.Location
}

// NewView projects ts into calendar fields under loc. A nil loc selects
// time.Local.
func NewView(ts Timestamp, loc *time.Location) View {
	if loc == nil {
		loc = time.Local
	}
	t := ts.In(loc)
	return View{
		Year:        t.Year(),
		Month:       t.Month(),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		loc:         loc,
	}
}

// Location returns the location the view's fields are expressed in.
func (v View) Location() *time.Location {
	return v.loc
}

// WithDay returns a copy of v with the day of month set to day.
func (v View) WithDay(day int) View {
	v.Day = day
	return v
}

// WithMonth returns a copy of v with the month set to m.
func (v View) WithMonth(m time.Month) View {
	v.Month = m
	return v
}

// WithYear returns a copy of v with the year set to year.
func (v View) WithYear(year int) View {
	v.Year = year
	return v
}

// WithLocation returns v's instant re-projected into loc. The underlying
// instant is unchanged; the fields are recomputed for the new location.
func (v View) WithLocation(loc *time.Location) View {
	return NewView(v.Timestamp(), loc)
}

// Timestamp converts the view's fields back to an absolute instant.
func (v View) Timestamp() Timestamp {
	loc := v.loc
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second,
		v.Millisecond*int(time.Millisecond), loc)
	return FromTime(t)
}

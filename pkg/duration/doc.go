// Package duration implements an immutable, millisecond-denominated span of
// time with unit constructors, arithmetic, human-readable rendering, and
// relative-date computation.
//
// # Fixed and symbolic units
//
// Seconds, minutes, hours, days, and weeks resolve to a millisecond count at
// construction time; two fixed durations are equal iff their counts are
// equal, regardless of which constructor produced them. Months and years are
// symbolic: their length in milliseconds varies with the calendar, so they
// keep the original (amount, unit) pair and compare on that pair instead.
//
// Mixing a symbolic duration into millisecond arithmetic has no defined
// result and is rejected with ErrSymbolicArithmetic.
//
// # Relative dates
//
// Later and Ago compute "now plus span" and "now minus span" against a
// clock.Clock. Symbolic spans apply through calendar arithmetic
// (time.Time.AddDate), so "1 month later" lands on the same day of the next
// month rather than a fixed 30 days ahead.
package duration

// Package date implements the Timestamp value type and timezone-aware
// calendar field access.
//
// # Timestamp
//
// A Timestamp is an absolute instant stored as a signed millisecond count
// since the Unix epoch. Equality and ordering are defined purely on that
// count. Epoch is the zero value. Negative counts are valid and denote
// instants before 1970.
//
// # Timezones
//
// Field extraction depends on a timezone. Every accessor takes an explicit
// *time.Location; nil selects time.Local, matching the platform default.
// There is no package-level mutable default, so accessors stay deterministic
// when a location is passed.
//
// # Views
//
// A View is a transient projection of a Timestamp into calendar fields
// (year, month, day, time of day) under one location. Views exist only to
// compute a new Timestamp after changing a single field; they are plain
// values and are not persisted.
package date

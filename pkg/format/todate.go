package format

import "github.com/datekit-go/datekit/pkg/date"

// inputKind discriminates the Input variants.
type inputKind uint8

const (
	inputAbsent inputKind = iota
	inputTimestamp
	inputString
)

// Input is the tagged union accepted by ToDate: an absent value, a
// timestamp, or a string to run through the internet date parser. The zero
// value is absent.
type Input struct {
	kind inputKind
	ts   date.Timestamp
	str  string
}

// NoInput returns the absent variant.
func NoInput() Input {
	return Input{}
}

// TimestampInput wraps an already-resolved timestamp.
func TimestampInput(ts date.Timestamp) Input {
	return Input{kind: inputTimestamp, ts: ts}
}

// StringInput wraps a string to be parsed as an internet date.
func StringInput(s string) Input {
	return Input{kind: inputString, str: s}
}

// ToDate coerces in to a timestamp. The second result reports presence:
// absent input yields (Epoch, false); a timestamp is passed through as
// (ts, true).
//
// A string is always present once it type-matches: the lenient internet
// date parser maps unparsable input to the epoch rather than signaling
// failure, so (Epoch, true) is indistinguishable from a parsed epoch
// string. This mirrors the historical contract of the parser.
func ToDate(in Input) (date.Timestamp, bool) {
	switch in.kind {
	case inputTimestamp:
		return in.ts, true
	case inputString:
		return ParseInternetDate(in.str), true
	default:
		return date.Epoch, false
	}
}

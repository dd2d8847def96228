package duration

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datekit-go/datekit/internal/codec"
)

// MarshalText renders the duration in the word form accepted by Parse.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses any form accepted by Parse.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders the duration as a JSON string in word form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts either a number (a millisecond count) or a string in
// any form accepted by Parse.
func (d *Duration) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		return d.UnmarshalText([]byte(unquoted))
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = Millis(ms)
	return nil
}

// MarshalYAML renders the duration as a string in word form.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts either an integer millisecond count or a string in
// any form accepted by Parse.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err == nil {
		*d = Millis(ms)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalCBOR encodes the millisecond count. Symbolic durations have no
// count and return ErrSymbolicEncoding.
func (d Duration) MarshalCBOR() ([]byte, error) {
	if d.IsSymbolic() {
		return nil, ErrSymbolicEncoding
	}
	return codec.Marshal(d.millis)
}

// UnmarshalCBOR decodes a millisecond count.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	var ms int64
	if err := codec.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = Millis(ms)
	return nil
}

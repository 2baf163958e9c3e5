package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// Hexa returns the color as "#RRGGBBAA" with uppercase digits.
func (c Color) Hexa() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Red, c.Green, c.Blue, c.Opacity)
}

// FromHex decodes a 3, 6 or 8 digit hex color with an optional leading '#'.
// Three digit forms double each digit ("F0A" is "FF00AA"). Colors without an
// alpha component are fully opaque.
func FromHex(hex string) (Color, error) {
	digits := strings.ToUpper(strings.TrimPrefix(hex, "#"))

	var channels []string
	switch len(digits) {
	case 3:
		channels = []string{
			strings.Repeat(digits[0:1], 2),
			strings.Repeat(digits[1:2], 2),
			strings.Repeat(digits[2:3], 2),
		}
	case 6:
		channels = []string{digits[0:2], digits[2:4], digits[4:6]}
	case 8:
		channels = []string{digits[0:2], digits[2:4], digits[4:6], digits[6:8]}
	default:
		return Color{}, fmt.Errorf("%w %q: want 3, 6 or 8 hex digits, got %d", ErrInvalidHex, hex, len(digits))
	}

	values := [4]uint8{255, 255, 255, 255}
	for i, ch := range channels {
		v, err := strconv.ParseUint(ch, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: bad digits %q", ErrInvalidHex, hex, ch)
		}
		values[i] = uint8(v)
	}
	return New(values[0], values[1], values[2], values[3]), nil
}

// MustFromHex is like FromHex but panics on malformed input. Intended for
// literals.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText encodes the color as "#RRGGBBAA".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hexa()), nil
}

// UnmarshalText decodes any form accepted by FromHex.
func (c *Color) UnmarshalText(text []byte) error {
	decoded, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

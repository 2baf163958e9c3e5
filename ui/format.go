package ui

import (
	"fmt"

	"github.com/kastheco/color-palette/color"
)

// Format is a textual color representation offered for display and copying.
type Format int

const (
	FormatHex Format = iota
	FormatHexa
	FormatRGB
	FormatRGBA
	FormatHSL
	FormatHSLA
	formatCount
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatHexa:
		return "hexa"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	case FormatHSL:
		return "hsl"
	case FormatHSLA:
		return "hsla"
	default:
		return "unknown"
	}
}

// Next cycles through the formats.
func (f Format) Next() Format {
	return (f + 1) % formatCount
}

// FormatColor renders c in the given format.
func FormatColor(c color.Color, f Format) string {
	switch f {
	case FormatHexa:
		return c.Hexa()
	case FormatRGB:
		return c.RGBString()
	case FormatRGBA:
		return c.RGBAString()
	case FormatHSL:
		h, s, l := c.HSL()
		return fmt.Sprintf("hsl(%g, %g, %g)", h, s, l)
	case FormatHSLA:
		h, s, l, a := c.HSLA()
		return fmt.Sprintf("hsla(%g, %g, %g, %g)", h, s, l, a)
	default:
		return c.Hex()
	}
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(name string) (Format, error) {
	for f := FormatHex; f < formatCount; f++ {
		if f.String() == name {
			return f, nil
		}
	}
	return FormatHex, fmt.Errorf("unknown color format %q", name)
}

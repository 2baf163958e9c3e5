package color

import (
	"errors"
	"fmt"
	imagecolor "image/color"
)

var (
	// ErrInvalidHex is returned when a hex color string has the wrong length or
	// contains non-hex characters.
	ErrInvalidHex = errors.New("invalid hex color")
	// ErrNotImplemented is returned by conversions that are deliberately absent.
	ErrNotImplemented = errors.New("not implemented")
)

// Color is an 8-bit RGBA value. The zero value is transparent black.
type Color struct {
	Red     uint8
	Green   uint8
	Blue    uint8
	Opacity uint8
}

// New returns a color with an explicit opacity. For solid colors use NewSolid.
func New(red, green, blue, opacity uint8) Color {
	return Color{Red: red, Green: green, Blue: blue, Opacity: opacity}
}

// NewSolid returns a fully opaque color.
func NewSolid(red, green, blue uint8) Color {
	return Color{Red: red, Green: green, Blue: blue, Opacity: 255}
}

// FromRGBA is the tuple-shaped counterpart of FromHex.
func FromRGBA(red, green, blue, opacity uint8) Color {
	return New(red, green, blue, opacity)
}

// FromRGB is like FromRGBA with opacity fixed to 255.
func FromRGB(red, green, blue uint8) Color {
	return NewSolid(red, green, blue)
}

// FromHSL is not supported.
func FromHSL(hue, saturation, lightness float64) (Color, error) {
	return Color{}, fmt.Errorf("color from hsl: %w", ErrNotImplemented)
}

// FromHSLA is not supported.
func FromHSLA(hue, saturation, lightness, opacity float64) (Color, error) {
	return Color{}, fmt.Errorf("color from hsla: %w", ErrNotImplemented)
}

func (c Color) RGB() (red, green, blue uint8) {
	return c.Red, c.Green, c.Blue
}

func (c Color) RGBA() (red, green, blue, opacity uint8) {
	return c.Red, c.Green, c.Blue, c.Opacity
}

// RGBString renders the color as "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red, c.Green, c.Blue)
}

// RGBAString renders the color as "rgba(r, g, b, a)" with a in [0,1].
func (c Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.Red, c.Green, c.Blue, roundTo(float64(c.Opacity)/255, Precision))
}

// Opaque returns a copy of c with opacity forced to 255.
func (c Color) Opaque() Color {
	c.Opacity = 255
	return c
}

// NRGBA converts c to the standard library's non-premultiplied color type so it
// can be handed to image/color consumers.
func (c Color) NRGBA() imagecolor.NRGBA {
	return imagecolor.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: c.Opacity}
}

func (c Color) String() string {
	return c.Hexa()
}

package color

import "math"

// Precision is the number of fractional digits kept by HSL and HSLA.
const Precision = 5

// HSL converts the color to hue in degrees [0,360) and saturation and
// lightness in [0,1], each rounded to Precision digits.
func (c Color) HSL() (hue, saturation, lightness float64) {
	r := float64(c.Red) / 255
	g := float64(c.Green) / 255
	b := float64(c.Blue) / 255

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	delta := cmax - cmin

	switch {
	case delta == 0:
		hue = 0
	case cmax == r:
		hue = 60 * math.Mod((g-b)/delta, 6)
	case cmax == g:
		hue = 60 * ((b-r)/delta + 2)
	case cmax == b:
		hue = 60 * ((r-g)/delta + 4)
	default:
		panic("color: no channel matches the maximum")
	}
	if hue < 0 {
		hue += 360
	}

	lightness = (cmax + cmin) / 2

	if delta != 0 {
		saturation = delta / (1 - math.Abs(2*lightness-1))
	}

	return roundTo(hue, Precision), roundTo(saturation, Precision), roundTo(lightness, Precision)
}

// HSLA is HSL plus the opacity scaled to [0,1] and rounded the same way.
func (c Color) HSLA() (hue, saturation, lightness, opacity float64) {
	hue, saturation, lightness = c.HSL()
	opacity = roundTo(float64(c.Opacity)/255, Precision)
	return hue, saturation, lightness, opacity
}

func roundTo(number float64, digits int) float64 {
	precision := math.Pow10(digits)
	return math.Round(number*precision) / precision
}

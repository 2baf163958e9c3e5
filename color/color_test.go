package color

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New(255, 255, 255, 255)
	assert.Equal(t, Color{Red: 255, Green: 255, Blue: 255, Opacity: 255}, c)

	solid := NewSolid(12, 34, 56)
	assert.Equal(t, uint8(255), solid.Opacity)
	assert.Equal(t, solid, FromRGB(12, 34, 56))
	assert.Equal(t, New(1, 2, 3, 4), FromRGBA(1, 2, 3, 4))
}

func TestRGBAReturnsChannels(t *testing.T) {
	for _, tc := range [][4]uint8{{0, 0, 0, 0}, {125, 125, 233, 198}, {255, 1, 128, 7}, {255, 255, 255, 255}} {
		r, g, b, a := New(tc[0], tc[1], tc[2], tc[3]).RGBA()
		assert.Equal(t, tc, [4]uint8{r, g, b, a})
	}

	r, g, b := New(125, 125, 233, 198).RGB()
	assert.Equal(t, [3]uint8{125, 125, 233}, [3]uint8{r, g, b})
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  [3]float64
	}{
		{"black", NewSolid(0, 0, 0), [3]float64{0, 0, 0}},
		{"white", NewSolid(255, 255, 255), [3]float64{0, 0, 1}},
		{"red", NewSolid(255, 0, 0), [3]float64{0, 1, 0.5}},
		{"green", NewSolid(0, 255, 0), [3]float64{120, 1, 0.5}},
		{"blue", NewSolid(0, 0, 255), [3]float64{240, 1, 0.5}},
		{"magenta", NewSolid(255, 0, 255), [3]float64{300, 1, 0.5}},
		{"silver", NewSolid(191, 191, 191), [3]float64{0, 0, 0.74902}},
		{"dark green", NewSolid(0, 128, 0), [3]float64{120, 1, 0.25098}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.color.HSL()
			assert.Equal(t, tt.want, [3]float64{h, s, l})
		})
	}
}

func TestHSLA(t *testing.T) {
	h, s, l, a := New(0, 0, 0, 0).HSLA()
	assert.Equal(t, [4]float64{0, 0, 0, 0}, [4]float64{h, s, l, a})

	h, s, l, a = New(255, 255, 255, 255).HSLA()
	assert.Equal(t, [4]float64{0, 0, 1, 1}, [4]float64{h, s, l, a})

	h, s, l, a = New(255, 0, 0, 125).HSLA()
	assert.Equal(t, [4]float64{0, 1, 0.5, 0.4902}, [4]float64{h, s, l, a})
}

func TestHSLMatchesColorful(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := NewSolid(uint8(r), uint8(g), uint8(b))
				h, s, l := c.HSL()
				wh, ws, wl := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
				assert.InDelta(t, wl, l, 1e-4, "lightness of %s", c.Hex())
				assert.InDelta(t, ws, s, 1e-4, "saturation of %s", c.Hex())
				if ws != 0 {
					assert.InDelta(t, wh, h, 1e-3, "hue of %s", c.Hex())
				}
				assert.GreaterOrEqual(t, h, 0.0)
				assert.Less(t, h, 360.0)
			}
		}
	}
}

func TestFromHSLNotImplemented(t *testing.T) {
	_, err := FromHSL(120, 1, 0.5)
	assert.ErrorIs(t, err, ErrNotImplemented)
	_, err = FromHSLA(120, 1, 0.5, 1)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestOpaque(t *testing.T) {
	c := New(10, 20, 30, 0)
	assert.Equal(t, New(10, 20, 30, 255), c.Opaque())
	assert.Equal(t, uint8(0), c.Opacity, "original must be untouched")
}

func TestStrings(t *testing.T) {
	c := New(235, 111, 146, 255)
	assert.Equal(t, "rgb(235, 111, 146)", c.RGBString())
	assert.Equal(t, "rgba(235, 111, 146, 1)", c.RGBAString())
	assert.Equal(t, "rgba(255, 0, 0, 0.4902)", New(255, 0, 0, 125).RGBAString())
	assert.Equal(t, "#EB6F92FF", c.String())
}

func TestNRGBA(t *testing.T) {
	n := New(1, 2, 3, 4).NRGBA()
	assert.Equal(t, uint8(1), n.R)
	assert.Equal(t, uint8(2), n.G)
	assert.Equal(t, uint8(3), n.B)
	assert.Equal(t, uint8(4), n.A)

	cf, ok := colorful.MakeColor(NewSolid(255, 0, 0).NRGBA())
	require.True(t, ok)
	assert.Equal(t, "#ff0000", cf.Hex())
}

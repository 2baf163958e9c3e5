package ui

import (
	imagecolor "image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/color-palette/color"
	"github.com/kastheco/color-palette/palette"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// Rosé Pine Moon, for chrome that does not follow the viewed palette.
// https://rosepinetheme.com/palette/
var (
	colorBase  = lipgloss.Color("#232136")
	colorMuted = lipgloss.Color("#6e6a86")
	colorText  = lipgloss.Color("#e0def4")
	colorLove  = lipgloss.Color("#eb6f92") // error
	colorFoam  = lipgloss.Color("#9ccfd8") // status, selection
	colorIris  = lipgloss.Color("#c4a7e7") // titles, borders
)

// Theme is the set of terminal colors the views are drawn with.
type Theme struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
}

// DefaultTheme is used when neither the palette nor the settings provide a
// foreground/background pair.
var DefaultTheme = Theme{
	Foreground: colorText,
	Background: colorBase,
	Border:     colorIris,
	Accent:     colorFoam,
}

// NewTheme derives a theme from a scheme. The border is a darkened foreground.
func NewTheme(s palette.Scheme) Theme {
	return Theme{
		Foreground: lipgloss.Color(s.Foreground.Hex()),
		Background: lipgloss.Color(s.Background.Hex()),
		Border:     lipgloss.Color(hexOf(gamut.Darker(s.Foreground.NRGBA(), 0.3))),
		Accent:     colorFoam,
	}
}

// contrastText picks black or white, whichever reads better on c.
func contrastText(c color.Color) lipgloss.Color {
	return lipgloss.Color(hexOf(gamut.Contrast(c.Opaque().NRGBA())))
}

func hexOf(c imagecolor.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

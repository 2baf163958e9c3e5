package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FillBackground pads the view to the full window so the theme background
// covers cells the content does not reach. Without it the alt-screen shows the
// terminal's own background below and to the right of the palette.
func FillBackground(s string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return s
	}

	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

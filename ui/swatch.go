package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/color-palette/color"
	"github.com/kastheco/color-palette/palette"
)

const swatchWidth = 8

// Swatch renders a block filled with c, labelled in a contrasting color.
func Swatch(c color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(swatchWidth).
		Background(lipgloss.Color(c.Opaque().Hex())).
		Foreground(contrastText(c)).
		Render(text)
}

// RenderPalette draws one row per color: swatch, label and the value in the
// chosen format. selected marks a row; pass -1 for none.
func RenderPalette(p *palette.Palette, theme Theme, selected int, format Format) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Foreground).PaddingLeft(1)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Foreground).Faint(true).PaddingLeft(1)
	selectedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).PaddingLeft(1)

	labels := p.Labels()
	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n")

	if len(labels) == 0 {
		b.WriteString(valueStyle.Render("(empty palette)"))
		return b.String()
	}

	i := 0
	p.Each(func(label string, c color.Color) bool {
		marker := "  "
		style := labelStyle
		if i == selected {
			marker = "▸ "
			style = selectedStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			marker,
			Swatch(c, ""),
			style.Width(labelWidth+1).Render(label),
			valueStyle.Render(FormatColor(c, format)),
		)
		b.WriteString(row)
		b.WriteString("\n")
		i++
		return true
	})

	return strings.TrimSuffix(b.String(), "\n")
}

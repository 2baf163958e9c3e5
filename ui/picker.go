package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Picker shows a filterable list of palette names.
type Picker struct {
	title       string
	names       []string
	filtered    []int // indices into names
	selectedIdx int
	searchQuery string
	width       int
	submitted   bool
	cancelled   bool
}

// NewPicker creates a picker over names with initial pre-selected.
func NewPicker(title string, names []string, initial int) *Picker {
	p := &Picker{
		title: title,
		names: append([]string(nil), names...),
		width: 40,
	}
	p.applyFilter()
	if initial >= 0 && initial < len(p.filtered) {
		p.selectedIdx = initial
	}
	return p
}

// HandleKeyPress processes input. Returns true when the picker should close.
func (p *Picker) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc":
		p.cancelled = true
		return true
	case "enter":
		p.submitted = true
		return true
	case "up", "shift+tab":
		if p.selectedIdx > 0 {
			p.selectedIdx--
		}
	case "down", "tab":
		if p.selectedIdx < len(p.filtered)-1 {
			p.selectedIdx++
		}
	case "backspace":
		if len(p.searchQuery) > 0 {
			runes := []rune(p.searchQuery)
			p.searchQuery = string(runes[:len(runes)-1])
			p.applyFilter()
		}
	default:
		if msg.Type == tea.KeyRunes {
			p.searchQuery += string(msg.Runes)
			p.applyFilter()
		}
	}
	return false
}

func (p *Picker) applyFilter() {
	query := strings.ToLower(p.searchQuery)
	p.filtered = p.filtered[:0]
	for i, name := range p.names {
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			p.filtered = append(p.filtered, i)
		}
	}
	if p.selectedIdx >= len(p.filtered) {
		p.selectedIdx = len(p.filtered) - 1
	}
	if p.selectedIdx < 0 {
		p.selectedIdx = 0
	}
}

// Selected returns the index of the chosen name. ok is false if the picker
// was cancelled or nothing matches.
func (p *Picker) Selected() (int, bool) {
	if p.cancelled || !p.submitted || len(p.filtered) == 0 {
		return 0, false
	}
	return p.filtered[p.selectedIdx], true
}

func (p *Picker) SetWidth(width int) {
	p.width = width
}

// Render draws the picker.
func (p *Picker) Render(theme Theme) string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).MarginBottom(1)
	itemStyle := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Foreground)
	selectedStyle := lipgloss.NewStyle().Padding(0, 1).Background(theme.Accent).Foreground(theme.Background)
	hintStyle := lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)

	innerWidth := max(p.width-8, 10)

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n")

	query := p.searchQuery
	if query == "" {
		query = "type to filter..."
	}
	b.WriteString(itemStyle.Width(innerWidth).Render("/ " + query))
	b.WriteString("\n")

	if len(p.filtered) == 0 {
		b.WriteString(hintStyle.Render("  No matches"))
		b.WriteString("\n")
	}
	for i, idx := range p.filtered {
		if i == p.selectedIdx {
			b.WriteString(selectedStyle.Width(innerWidth).Render("▸ " + p.names[idx]))
		} else {
			b.WriteString(itemStyle.Width(innerWidth).Render("  " + p.names[idx]))
		}
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("↑↓ navigate • enter select • esc cancel"))
	return borderStyle.Width(p.width).Render(b.String())
}

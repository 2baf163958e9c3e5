package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/color-palette/color"
	"github.com/kastheco/color-palette/keys"
	"github.com/kastheco/color-palette/log"
	"github.com/kastheco/color-palette/palette"
)

// Browser is the interactive palette viewer. It only reads the palettes it is
// given.
type Browser struct {
	palettes []*palette.Palette
	fallback *palette.Scheme

	current int
	cursor  int
	format  Format
	picker  *Picker
	status  string
	isError bool

	width  int
	height int

	copyFn func(string) error
}

// NewBrowser creates a browser over palettes. fallback themes palettes that
// have no foreground/background pair of their own; it may be nil.
func NewBrowser(palettes []*palette.Palette, fallback *palette.Scheme) *Browser {
	b := &Browser{
		palettes: palettes,
		fallback: fallback,
		copyFn:   clipboard.WriteAll,
	}
	b.selectPalette(0)
	return b
}

// SetClipboard replaces the function used to copy text.
func (b *Browser) SetClipboard(fn func(string) error) {
	b.copyFn = fn
}

// Run starts the browser on the alt screen and blocks until it exits.
func (b *Browser) Run() error {
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		return b, nil
	case tea.KeyMsg:
		if b.picker != nil {
			if b.picker.HandleKeyPress(msg) {
				if idx, ok := b.picker.Selected(); ok {
					b.selectPalette(idx)
				}
				b.picker = nil
			}
			return b, nil
		}
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return b, nil
	}

	switch name {
	case keys.KeyQuit:
		return b, tea.Quit
	case keys.KeyUp:
		if b.cursor > 0 {
			b.cursor--
		}
	case keys.KeyDown:
		if p := b.Current(); p != nil && b.cursor < p.Len()-1 {
			b.cursor++
		}
	case keys.KeyNextPalette:
		if len(b.palettes) > 0 {
			b.selectPalette((b.current + 1) % len(b.palettes))
		}
	case keys.KeyPrevPalette:
		if len(b.palettes) > 0 {
			b.selectPalette((b.current - 1 + len(b.palettes)) % len(b.palettes))
		}
	case keys.KeyCycleFormat:
		b.format = b.format.Next()
		b.setStatus(fmt.Sprintf("format: %s", b.format), false)
	case keys.KeyCopy:
		b.copySelected()
	case keys.KeyPicker:
		if len(b.palettes) > 0 {
			names := make([]string, len(b.palettes))
			for i, p := range b.palettes {
				names[i] = p.Name
			}
			b.picker = NewPicker("Palettes", names, b.current)
		}
	}
	return b, nil
}

func (b *Browser) selectPalette(idx int) {
	b.current = idx
	b.cursor = 0
	p := b.Current()
	if p == nil {
		return
	}
	if _, ok := p.Scheme(); !ok {
		log.WarningLog.Printf("palette %q has no foreground/background pair", p.Name)
	}
}

func (b *Browser) copySelected() {
	c, label, ok := b.Selected()
	if !ok {
		return
	}
	text := FormatColor(c, b.format)
	if err := b.copyFn(text); err != nil {
		log.ErrorLog.Printf("copy %s: %v", text, err)
		b.setStatus(fmt.Sprintf("copy failed: %v", err), true)
		return
	}
	b.setStatus(fmt.Sprintf("copied %s (%s)", text, label), false)
}

func (b *Browser) setStatus(s string, isError bool) {
	b.status = s
	b.isError = isError
}

// Current returns the palette on screen, nil when there are none.
func (b *Browser) Current() *palette.Palette {
	if b.current < 0 || b.current >= len(b.palettes) {
		return nil
	}
	return b.palettes[b.current]
}

// Selected returns the highlighted color and its label.
func (b *Browser) Selected() (color.Color, string, bool) {
	p := b.Current()
	if p == nil {
		return color.Color{}, "", false
	}
	labels := p.Labels()
	if b.cursor >= len(labels) {
		return color.Color{}, "", false
	}
	c, ok := p.Color(labels[b.cursor])
	return c, labels[b.cursor], ok
}

// Status is the last message shown in the footer.
func (b *Browser) Status() string {
	return b.status
}

// Theme returns the palette's own scheme, else the fallback, else
// DefaultTheme.
func (b *Browser) Theme() Theme {
	if p := b.Current(); p != nil {
		if s, ok := p.Scheme(); ok {
			return NewTheme(s)
		}
	}
	if b.fallback != nil {
		return NewTheme(*b.fallback)
	}
	return DefaultTheme
}

func (b *Browser) View() string {
	theme := b.Theme()

	var body string
	switch {
	case len(b.palettes) == 0:
		body = lipgloss.NewStyle().Foreground(theme.Foreground).Render("No palettes found.")
	case b.picker != nil:
		b.picker.SetWidth(min(max(b.width/2, 30), 60))
		body = b.picker.Render(theme)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			b.renderTabs(theme),
			"",
			RenderPalette(b.Current(), theme, b.cursor, b.format),
		)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, body, "", b.renderFooter(theme))
	return FillBackground(lipgloss.NewStyle().Padding(1, 2).Render(view), b.width, b.height, theme.Background)
}

func (b *Browser) renderTabs(theme Theme) string {
	active := lipgloss.NewStyle().Padding(0, 1).Bold(true).Background(theme.Accent).Foreground(theme.Background)
	inactive := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Foreground)

	tabs := make([]string, len(b.palettes))
	for i, p := range b.palettes {
		if i == b.current {
			tabs[i] = active.Render(p.Name)
		} else {
			tabs[i] = inactive.Render(p.Name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (b *Browser) renderFooter(theme Theme) string {
	hints := make([]string, 0, len(keys.HelpOrder))
	for _, name := range keys.HelpOrder {
		h := keys.GlobalkeyBindings[name].Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	footer := lipgloss.NewStyle().Foreground(colorMuted).Render(strings.Join(hints, " • "))
	if b.status == "" {
		return footer
	}
	statusColor := colorFoam
	if b.isError {
		statusColor = colorLove
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(statusColor).Render(b.status),
		footer,
	)
}

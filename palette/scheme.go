package palette

import "github.com/kastheco/color-palette/color"

// Scheme is the foreground/background pair a presentation layer themes itself
// with. Both colors are fully opaque.
type Scheme struct {
	Foreground color.Color
	Background color.Color
}

// Scheme returns the palette's opaque foreground and background. It is
// unavailable unless both resolve.
func (p *Palette) Scheme() (Scheme, bool) {
	bg, ok := p.Background()
	if !ok {
		return Scheme{}, false
	}
	fg, ok := p.Foreground()
	if !ok {
		return Scheme{}, false
	}
	return Scheme{Foreground: fg.Opaque(), Background: bg.Opaque()}, true
}

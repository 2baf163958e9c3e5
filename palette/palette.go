// Package palette holds named collections of labelled colors.
package palette

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/kastheco/color-palette/color"
)

var (
	backgroundAliases = []string{"bg", "background"}
	foregroundAliases = []string{"fg", "foreground", "text"}
)

// Palette is a named set of colors keyed by label. Labels are case-sensitive
// and iterate in ascending lexicographic order.
type Palette struct {
	Name string
	ID   uuid.UUID
	// Filename is the document the palette was loaded from, empty when built
	// in memory.
	Filename string

	colors map[string]color.Color
}

// New creates an empty palette with a fresh ID.
func New(name, filename string) *Palette {
	return &Palette{
		Name:     name,
		ID:       uuid.New(),
		Filename: filename,
		colors:   make(map[string]color.Color),
	}
}

// AddColor stores c under label. When the label was already present the
// previous color is returned with replaced set to true.
func (p *Palette) AddColor(label string, c color.Color) (prev color.Color, replaced bool) {
	if p.colors == nil {
		p.colors = make(map[string]color.Color)
	}
	prev, replaced = p.colors[label]
	p.colors[label] = c
	return prev, replaced
}

// RemoveColor deletes label and returns the color it held.
func (p *Palette) RemoveColor(label string) (color.Color, bool) {
	c, ok := p.colors[label]
	if ok {
		delete(p.colors, label)
	}
	return c, ok
}

// Color looks up a color by its exact label.
func (p *Palette) Color(label string) (color.Color, bool) {
	c, ok := p.colors[label]
	return c, ok
}

// Labels returns all labels in ascending order.
func (p *Palette) Labels() []string {
	keys := make([]string, 0, len(p.colors))
	for k := range p.colors {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (p *Palette) Len() int {
	return len(p.colors)
}

// Each calls fn for every entry in label order until fn returns false.
func (p *Palette) Each(fn func(label string, c color.Color) bool) {
	for _, label := range p.Labels() {
		if !fn(label, p.colors[label]) {
			return
		}
	}
}

// Background resolves the first label (in label order) that names a
// background: "bg" or "background", ignoring case and surrounding space.
func (p *Palette) Background() (color.Color, bool) {
	return p.resolveAlias(backgroundAliases)
}

// Foreground resolves the first label (in label order) that names a
// foreground: "fg", "foreground" or "text", ignoring case and surrounding space.
func (p *Palette) Foreground() (color.Color, bool) {
	return p.resolveAlias(foregroundAliases)
}

func (p *Palette) resolveAlias(aliases []string) (color.Color, bool) {
	for _, label := range p.Labels() {
		if slices.Contains(aliases, strings.ToLower(strings.TrimSpace(label))) {
			return p.colors[label], true
		}
	}
	return color.Color{}, false
}

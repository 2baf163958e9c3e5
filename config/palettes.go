package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/color-palette/color"
	"github.com/kastheco/color-palette/log"
	"github.com/kastheco/color-palette/palette"
)

// ErrNoPalettes reports that no palette was found. It is not a parse failure.
var ErrNoPalettes = errors.New("no palettes found")

const (
	// PalettesDirName is the directory under the config root holding palette
	// documents.
	PalettesDirName = "palettes"
	palettePattern  = "*.toml"
)

// DefaultPalettes is the built-in document palette files are layered over.
const DefaultPalettes = ""

// Discover lists the palette documents directly inside root/palettes. A
// missing directory yields an empty list.
func Discover(root string) ([]string, error) {
	dir := filepath.Join(root, PalettesDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read palette dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(palettePattern, entry.Name()); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// LoadPalettes discovers, merges and decodes every palette document under
// root. Each top-level section becomes one palette and each key one color.
//
// It returns ErrNoPalettes when nothing was found, ErrMalformedDocument when a
// document cannot be parsed and color.ErrInvalidHex when any value is not a
// hex color. Errors abort the whole load.
func LoadPalettes(root string) ([]*palette.Palette, error) {
	files, err := Discover(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoPalettes
	}

	merged, origins, err := layer(DefaultPalettes, files)
	if err != nil {
		return nil, err
	}
	if len(merged) == 0 {
		return nil, ErrNoPalettes
	}

	palettes := make([]*palette.Palette, 0, len(origins))
	for _, origin := range origins {
		p, err := buildPalette(origin, merged[origin.name])
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}

	log.InfoLog.Printf("loaded %d palettes from %d files under %s", len(palettes), len(files), root)
	return palettes, nil
}

func buildPalette(origin sectionOrigin, entries map[string]any) (*palette.Palette, error) {
	p := palette.New(origin.name, origin.path)
	for label, value := range entries {
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("palette %q, color %q: %w %v: not a string", origin.name, label, color.ErrInvalidHex, value)
		}
		c, err := color.FromHex(text)
		if err != nil {
			return nil, fmt.Errorf("palette %q, color %q: %w", origin.name, label, err)
		}
		p.AddColor(label, c)
	}
	return p, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kastheco/color-palette/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePalette(t *testing.T, root, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, PalettesDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPalettes(t *testing.T) {
	root := t.TempDir()
	path := writePalette(t, root, "scheme.toml", "[Scheme]\nbg=\"#000000\"\nfg=\"#FFFFFF\"\n")

	palettes, err := LoadPalettes(root)
	require.NoError(t, err)
	require.Len(t, palettes, 1)

	p := palettes[0]
	assert.Equal(t, "Scheme", p.Name)
	assert.Equal(t, path, p.Filename)
	assert.Equal(t, 2, p.Len())

	bg, ok := p.Color("bg")
	require.True(t, ok)
	assert.Equal(t, "#000000", bg.Hex())
	fg, ok := p.Color("fg")
	require.True(t, ok)
	assert.Equal(t, "#FFFFFF", fg.Hex())
}

func TestLoadPalettesEmptyDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, PalettesDirName), 0o755))

	palettes, err := LoadPalettes(root)
	assert.ErrorIs(t, err, ErrNoPalettes)
	assert.NotErrorIs(t, err, ErrMalformedDocument)
	assert.Nil(t, palettes)
}

func TestLoadPalettesMissingDir(t *testing.T) {
	_, err := LoadPalettes(t.TempDir())
	assert.ErrorIs(t, err, ErrNoPalettes)
}

func TestLoadPalettesDocumentWithoutSections(t *testing.T) {
	root := t.TempDir()
	writePalette(t, root, "empty.toml", "# nothing here\n")

	_, err := LoadPalettes(root)
	assert.ErrorIs(t, err, ErrNoPalettes)
}

func TestLoadPalettesMalformedDocument(t *testing.T) {
	root := t.TempDir()
	writePalette(t, root, "good.toml", "[Good]\nbg=\"#000\"\n")
	writePalette(t, root, "bad.toml", "[Bad\n")

	palettes, err := LoadPalettes(root)
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.NotErrorIs(t, err, ErrNoPalettes)
	assert.Nil(t, palettes)
}

func TestLoadPalettesInvalidColorAbortsLoad(t *testing.T) {
	root := t.TempDir()
	writePalette(t, root, "a.toml", "[Fine]\nbg=\"#000\"\n")
	writePalette(t, root, "b.toml", "[Broken]\nbg=\"#000\"\nfg=\"#FFFF\"\n")

	palettes, err := LoadPalettes(root)
	assert.ErrorIs(t, err, color.ErrInvalidHex)
	assert.Nil(t, palettes)
}

func TestLoadPalettesNonStringValue(t *testing.T) {
	root := t.TempDir()
	writePalette(t, root, "a.toml", "[Scheme]\ntest = false\n")

	_, err := LoadPalettes(root)
	assert.ErrorIs(t, err, color.ErrInvalidHex)
}

func TestLoadPalettesIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	writePalette(t, root, "notes.txt", "[NotAPalette]\nbg=\"#000\"\n")
	writePalette(t, root, "scheme.toml", "[Scheme]\nbg=\"#000\"\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, PalettesDirName, "nested.toml"), 0o755))

	palettes, err := LoadPalettes(root)
	require.NoError(t, err)
	require.Len(t, palettes, 1)
	assert.Equal(t, "Scheme", palettes[0].Name)
}

func TestLoadPalettesMergesAcrossFiles(t *testing.T) {
	root := t.TempDir()
	first := writePalette(t, root, "a.toml", "[Zeta]\nbg=\"#000\"\n[Shared]\nbg=\"#111\"\ncolor0=\"#222\"\n")
	second := writePalette(t, root, "b.toml", "[Shared]\nbg=\"#FFF\"\n[Alpha]\nfg=\"#EEE\"\n")

	palettes, err := LoadPalettes(root)
	require.NoError(t, err)

	var names []string
	for _, p := range palettes {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Shared", "Zeta", "Alpha"}, names)

	shared := palettes[0]
	assert.Equal(t, first, shared.Filename)
	bg, _ := shared.Color("bg")
	assert.Equal(t, "#FFFFFF", bg.Hex(), "later document wins per key")
	c0, ok := shared.Color("color0")
	require.True(t, ok, "keys only in the earlier document survive")
	assert.Equal(t, "#222222", c0.Hex())

	assert.Equal(t, second, palettes[2].Filename)
}

func TestLoadPalettesRoundTripsHex(t *testing.T) {
	root := t.TempDir()
	writePalette(t, root, "wal.toml", `["Color Scheme Title"]
background = "#0000017D"
foreground = "#FFFFFF"
color0 = "#110F1E"
color1 = "#C14039"
`)

	palettes, err := LoadPalettes(root)
	require.NoError(t, err)
	require.Len(t, palettes, 1)

	p := palettes[0]
	assert.Equal(t, []string{"background", "color0", "color1", "foreground"}, p.Labels())
	bg, _ := p.Color("background")
	assert.Equal(t, "#0000017D", bg.Hexa())
	c1, _ := p.Color("color1")
	assert.Equal(t, "#C14039", c1.Hex())

	scheme, ok := p.Scheme()
	require.True(t, ok)
	assert.Equal(t, "#000001FF", scheme.Background.Hexa())
}

func TestDiscoverMissingDir(t *testing.T) {
	files, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

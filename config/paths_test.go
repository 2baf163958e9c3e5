package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRootUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	root, err := DefaultRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", ProgramName), root)
}

func TestEnsureLayoutCreatesEverything(t *testing.T) {
	root := filepath.Join(t.TempDir(), "config", ProgramName)

	l, err := EnsureLayout(root)
	require.NoError(t, err)
	assert.Equal(t, NewLayout(root), l)

	info, err := os.Stat(l.PalettesDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(l.SettingsFile)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))
}

func TestEnsureLayoutKeepsExistingSettings(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("[General]\nfont = \"x\"\n"), 0o644))

	_, err := EnsureLayout(root)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "font")
}

func TestEnsureLayoutRejectsFileInPlaceOfDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, PalettesDirName), nil, 0o644))

	_, err := EnsureLayout(root)
	assert.Error(t, err)
}

func TestEnsureLayoutRejectsDirInPlaceOfSettings(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, SettingsFileName), 0o755))

	_, err := EnsureLayout(root)
	assert.Error(t, err)
}

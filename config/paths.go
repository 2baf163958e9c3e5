package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ProgramName names the config directory and the settings file.
	ProgramName      = "color-palette"
	SettingsFileName = ProgramName + ".toml"
)

// Layout is the on-disk shape of a config root.
type Layout struct {
	Root         string
	SettingsFile string
	PalettesDir  string
}

// NewLayout returns the layout for root without touching the filesystem.
func NewLayout(root string) Layout {
	return Layout{
		Root:         root,
		SettingsFile: filepath.Join(root, SettingsFileName),
		PalettesDir:  filepath.Join(root, PalettesDirName),
	}
}

// DefaultRoot returns $XDG_CONFIG_HOME/color-palette, falling back to
// ~/.config/color-palette.
func DefaultRoot() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, ProgramName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", ProgramName), nil
}

// EnsureLayout creates the config root, an empty settings file and the
// palettes directory when they are missing.
func EnsureLayout(root string) (Layout, error) {
	l := NewLayout(root)
	if err := ensureDir(l.Root); err != nil {
		return l, err
	}
	if err := ensureFile(l.SettingsFile, []byte("\n")); err != nil {
		return l, err
	}
	if err := ensureDir(l.PalettesDir); err != nil {
		return l, err
	}
	return l, nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("there is a file at %s, expected a directory", path)
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

func ensureFile(path string, content []byte) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("there is a directory at %s, expected a file", path)
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

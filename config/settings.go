package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// DefaultSettings is the built-in General section the settings file is
// layered over.
const DefaultSettings = `
[General]
test = false
font = "CaskaydiaCove NF"
fontsize = "14px"
foreground = "#FFF"
background = "#000"
`

// Well-known settings keys.
const (
	KeyTest       = "General.test"
	KeyFont       = "General.font"
	KeyFontSize   = "General.fontsize"
	KeyForeground = "General.foreground"
	KeyBackground = "General.background"
)

// Settings is the merged program settings document, flattened to
// "Section.key" -> string. Values are not interpreted.
type Settings struct {
	Path   string
	values map[string]string
}

// LoadSettings reads the settings file at path over DefaultSettings. A missing
// file is not an error: the defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	var paths []string
	if _, err := os.Stat(path); err == nil {
		paths = append(paths, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	merged, _, err := layer(DefaultSettings, paths)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	values := make(map[string]string)
	for section, entries := range merged {
		for key, value := range entries {
			values[section+"."+key] = stringify(value)
		}
	}
	return &Settings{Path: path, values: values}, nil
}

// Get returns the setting stored under "Section.key".
func (s *Settings) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns every "Section.key" in ascending order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Section returns a copy of one section's keys and values.
func (s *Settings) Section(name string) map[string]string {
	prefix := name + "."
	out := make(map[string]string)
	for k, v := range s.values {
		if key, ok := strings.CutPrefix(k, prefix); ok {
			out[key] = v
		}
	}
	return out
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// ErrMalformedDocument is returned when a settings or palette document cannot
// be read or parsed.
var ErrMalformedDocument = errors.New("malformed document")

// Document is a parsed TOML document: top-level sections of key/value pairs.
type Document map[string]map[string]any

// ParseDocument parses TOML text. Every top-level entry must be a table.
func ParseDocument(text string) (Document, error) {
	var raw map[string]any
	if err := toml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	doc := make(Document, len(raw))
	for name, value := range raw {
		section, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: top-level key %q is not a section", ErrMalformedDocument, name)
		}
		doc[name] = section
	}
	return doc, nil
}

// ReadDocument reads and parses the TOML file at path.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return ParseDocument(string(data))
}

// Sections returns the section names in ascending order.
func (d Document) Sections() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Merge layers override on top of base, section by section. Keys present in
// override win; all other keys of base survive. Neither input is modified.
func Merge(base, override Document) Document {
	merged := make(Document, len(base)+len(override))
	for name, section := range base {
		merged[name] = maps.Clone(section)
	}
	for name, section := range override {
		dst := merged[name]
		if dst == nil {
			dst = make(map[string]any, len(section))
			merged[name] = dst
		}
		maps.Copy(dst, section)
	}
	return merged
}

// source is a document together with where it came from.
type source struct {
	path string
	doc  Document
}

// layer parses defaults, then each file in order, and merges them into one
// document. It also reports, per section, the first file that defined it, in
// discovery order.
func layer(defaults string, paths []string) (Document, []sectionOrigin, error) {
	merged, err := ParseDocument(defaults)
	if err != nil {
		return nil, nil, fmt.Errorf("parse defaults: %w", err)
	}

	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		doc, err := ReadDocument(path)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, source{path: path, doc: doc})
	}

	var origins []sectionOrigin
	seen := make(map[string]bool)
	for _, name := range merged.Sections() {
		seen[name] = true
		origins = append(origins, sectionOrigin{name: name})
	}
	for _, src := range sources {
		for _, name := range src.doc.Sections() {
			if !seen[name] {
				seen[name] = true
				origins = append(origins, sectionOrigin{name: name, path: src.path})
			}
		}
		merged = Merge(merged, src.doc)
	}
	return merged, origins, nil
}

type sectionOrigin struct {
	name string
	path string
}

// Package metadata reads project descriptors: small TOML or JSON documents
// carrying a project's name, version, and related fields. A Watcher can
// follow a descriptor file on disk and publish reloads through an observe
// emitter.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Descriptor holds project metadata.
type Descriptor struct {
	Name        string            `toml:"name" json:"name"`
	Version     string            `toml:"version" json:"version"`
	Description string            `toml:"description,omitempty" json:"description,omitempty"`
	License     string            `toml:"license,omitempty" json:"license,omitempty"`
	Authors     []string          `toml:"authors,omitempty" json:"authors,omitempty"`
	Properties  map[string]string `toml:"properties,omitempty" json:"properties,omitempty"`
}

// Validate checks that the required descriptor fields are present.
func (d *Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDescriptor)
	}
	if strings.TrimSpace(d.Version) == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidDescriptor)
	}
	return nil
}

// Property returns a custom property value and whether it is present.
func (d *Descriptor) Property(key string) (string, bool) {
	v, ok := d.Properties[key]
	return v, ok
}

// ParseTOML parses a TOML descriptor document.
func ParseTOML(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, &ParseError{Source: "<data>", Message: err.Error(), Err: err}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadTOML reads and parses a TOML descriptor file.
func LoadTOML(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}
	d, err := ParseTOML(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Source = path
		}
		return nil, err
	}
	return d, nil
}

// Load reads a descriptor file, choosing the format by extension:
// .toml for TOML, .json for JSON.
func Load(path string) (*Descriptor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ParseError represents a descriptor parse failure.
type ParseError struct {
	Source  string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Source, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

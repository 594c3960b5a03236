package memmap

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML description of a node map.
type Document struct {
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display,omitempty"`
	ToolTip     string `yaml:"tooltip,omitempty"`
	Kind        string `yaml:"kind"`
	Visibility  string `yaml:"visibility,omitempty"`
	Access      string `yaml:"access,omitempty"`

	// Unavailable marks the node as not available on the device.
	Unavailable bool `yaml:"unavailable,omitempty"`

	// Locked declares a locked-by dependency.
	Locked bool `yaml:"locked,omitempty"`

	// NoSelector strips the selector capability from a value node.
	NoSelector bool `yaml:"no_selector,omitempty"`

	// Hidden marks the node as an implementation node, not a feature.
	Hidden bool `yaml:"hidden,omitempty"`

	Selectors []string    `yaml:"selectors,omitempty"`
	Features  []string    `yaml:"features,omitempty"`
	Entries   []EntrySpec `yaml:"entries,omitempty"`

	Min any `yaml:"min,omitempty"`
	Max any `yaml:"max,omitempty"`

	// Value is the initial value. Enumerations use the symbolic entry name.
	Value any `yaml:"value,omitempty"`

	// Values holds initial values per selector entry for selected features.
	Values map[string]any `yaml:"values,omitempty"`
}

// EntrySpec describes one enumeration entry.
type EntrySpec struct {
	Name     string `yaml:"name"`
	Value    int64  `yaml:"value"`
	ToolTip  string `yaml:"tooltip,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Load decodes a YAML node map description.
func Load(r io.Reader) (*Map, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	return Build(doc.Nodes...)
}

// LoadFile decodes a YAML node map description from a file.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build creates a map from node specs and validates cross references.
func Build(specs ...NodeSpec) (*Map, error) {
	m := New()
	for i, spec := range specs {
		if err := m.Add(spec); err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", i, spec.Name, err)
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustBuild is like Build but panics on error. Intended for fixtures.
func MustBuild(specs ...NodeSpec) *Map {
	m, err := Build(specs...)
	if err != nil {
		panic(err)
	}
	return m
}

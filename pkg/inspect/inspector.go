package inspect

import (
	"errors"
	"fmt"

	"github.com/genprop/genprop-go/pkg/property"
)

// ErrPropertyNotFound is returned for names that resolve to no property.
var ErrPropertyNotFound = errors.New("property not found")

// Target is the property surface an Inspector works on.
type Target interface {
	Schema() *property.Schema
	Get(name string) (any, error)
	Set(name string, value any) error
}

// Inspector provides inspection and mutation of a target's properties.
type Inspector struct {
	target Target
	format *Formatter
}

// NewInspector creates a new Inspector for the given target.
func NewInspector(target Target, format *Formatter) *Inspector {
	if format == nil {
		format = NewFormatter()
	}
	return &Inspector{target: target, format: format}
}

// Formatter returns the formatter used for output.
func (i *Inspector) Formatter() *Formatter {
	return i.format
}

// Resolve returns the descriptor for a case-insensitive property name.
func (i *Inspector) Resolve(name string) (*property.Descriptor, error) {
	schema := i.target.Schema()
	resolved, ok := ResolveName(schema, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, name)
	}
	desc, _ := schema.Lookup(resolved)
	return desc, nil
}

// List reads every property matching pattern and returns display rows.
// Properties that cannot be read show their error instead of a value.
func (i *Inspector) List(pattern string) []PropertyRow {
	schema := i.target.Schema()
	var rows []PropertyRow
	for _, name := range Match(schema, pattern) {
		desc, _ := schema.Lookup(name)
		var row PropertyRow
		if !desc.Flags.CanRead() {
			row = i.format.Row(desc, nil)
			row.Value = "(write-only)"
		} else if v, err := i.target.Get(name); err != nil {
			row = i.format.Row(desc, nil)
			row.Value = "error: " + err.Error()
		} else {
			row = i.format.Row(desc, v)
		}
		rows = append(rows, row)
	}
	return rows
}

// Read reads a property and returns its formatted value.
func (i *Inspector) Read(name string) (string, error) {
	desc, err := i.Resolve(name)
	if err != nil {
		return "", err
	}
	v, err := i.target.Get(desc.Name)
	if err != nil {
		return "", err
	}
	return i.format.FormatValue(desc, v), nil
}

// Write parses text for a property and writes it.
func (i *Inspector) Write(name, text string) error {
	desc, err := i.Resolve(name)
	if err != nil {
		return err
	}
	v, err := ParseValue(desc, text)
	if err != nil {
		return err
	}
	return i.target.Set(desc.Name, v)
}

// Describe returns the full description of a property.
func (i *Inspector) Describe(name string) (string, error) {
	desc, err := i.Resolve(name)
	if err != nil {
		return "", err
	}
	return i.format.FormatDescriptor(desc), nil
}

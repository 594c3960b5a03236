package property

import "fmt"

// Schema is the ordered collection of descriptors produced by one
// discovery pass. A Schema is not safe for concurrent mutation; once
// published it is only read.
type Schema struct {
	descriptors []*Descriptor
	index       map[string]int
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{index: make(map[string]int)}
}

// Add appends descriptors in order. Either all are added or none: a name
// that is already present, or repeated within descs, fails the whole call.
func (s *Schema) Add(descs ...*Descriptor) error {
	seen := make(map[string]struct{}, len(descs))
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return err
		}
		if _, exists := s.index[d.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateProperty, d.Name)
		}
		if _, exists := seen[d.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateProperty, d.Name)
		}
		seen[d.Name] = struct{}{}
	}

	for _, d := range descs {
		s.index[d.Name] = len(s.descriptors)
		s.descriptors = append(s.descriptors, d)
	}
	return nil
}

// Lookup returns the descriptor with the given name.
func (s *Schema) Lookup(name string) (*Descriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.descriptors[i], true
}

// Descriptors returns the descriptors in installation order.
func (s *Schema) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Names returns the property names in installation order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.descriptors))
	for i, d := range s.descriptors {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of descriptors.
func (s *Schema) Len() int {
	return len(s.descriptors)
}

// Features returns the distinct device features covered by the schema, in
// first-seen order.
func (s *Schema) Features() []string {
	var features []string
	seen := make(map[string]struct{})
	for _, d := range s.descriptors {
		if _, ok := seen[d.Feature]; ok {
			continue
		}
		seen[d.Feature] = struct{}{}
		features = append(features, d.Feature)
	}
	return features
}

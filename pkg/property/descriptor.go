package property

import (
	"errors"
	"fmt"
)

// Property errors.
var (
	ErrUnsupportedValueKind = errors.New("unsupported value kind")
	ErrDuplicateProperty    = errors.New("duplicate property name")
)

// Kind is the generic value kind of a property.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInteger
	KindBoolean
	KindFloat
	KindString
	KindEnumeration
)

// String returns the kind name.
func (k Kind) String() string {
	names := []string{"unknown", "int64", "bool", "double", "string", "enum"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Flags describe how a property may be accessed.
type Flags uint8

const (
	// FlagReadable allows reading the property.
	FlagReadable Flags = 1 << iota

	// FlagWritable allows writing the property.
	FlagWritable

	// FlagMutableReady restricts writes to when the device is idle.
	FlagMutableReady

	// FlagMutablePlaying allows writes while the device is capturing.
	FlagMutablePlaying

	// FlagReadWrite is read and write.
	FlagReadWrite = FlagReadable | FlagWritable
)

// CanRead returns true if reading is allowed.
func (f Flags) CanRead() bool { return f&FlagReadable != 0 }

// CanWrite returns true if writing is allowed.
func (f Flags) CanWrite() bool { return f&FlagWritable != 0 }

// MutableWhileCapturing returns true if the property may change while the
// device is capturing.
func (f Flags) MutableWhileCapturing() bool { return f&FlagMutablePlaying != 0 }

// String returns the flags as a compact string, e.g. "RW ready".
func (f Flags) String() string {
	var s string
	if f.CanRead() {
		s += "R"
	}
	if f.CanWrite() {
		s += "W"
	}
	if s == "" {
		s = "-"
	}
	switch {
	case f&FlagMutablePlaying != 0:
		s += " playing"
	case f&FlagMutableReady != 0:
		s += " ready"
	}
	return s
}

// IntRange is the inclusive range of an integer property.
type IntRange struct {
	Min int64
	Max int64
}

// Contains reports whether v lies within the range.
func (r IntRange) Contains(v int64) bool { return v >= r.Min && v <= r.Max }

// FloatRange is the inclusive range of a float property.
type FloatRange struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range.
func (r FloatRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// SelectorBinding ties a multiplexed property to one selector entry.
type SelectorBinding struct {
	// Feature is the name of the selected feature.
	Feature string

	// Selector is the name of the enumeration selector.
	Selector string

	// Entry is the symbolic selector entry name.
	Entry string

	// Value is the integer code written to the selector.
	Value int64
}

// Descriptor describes one configurable value.
type Descriptor struct {
	// Name is the unique property name. Multiplexed properties use
	// "<feature>-<entry>".
	Name string

	// Label is the human-readable name.
	Label string

	// ToolTip is a human-readable description.
	ToolTip string

	// Kind is the value kind.
	Kind Kind

	// Flags define the allowed operations.
	Flags Flags

	// Feature is the device feature the property reads and writes.
	Feature string

	// Int holds bounds for integer properties.
	Int *IntRange

	// Float holds bounds for float properties.
	Float *FloatRange

	// Enum is the enumeration type for enum properties.
	Enum *EnumType

	// Settable lists the enum entries the device accepted at discovery time.
	// It may be narrower than Enum, which is shared across discoveries.
	Settable []string

	// Default is the value observed on the device at discovery time.
	Default any

	// Selector is set when the property is bound to a selector entry.
	Selector *SelectorBinding
}

// IsSelected returns true if the property is bound to a selector entry.
func (d *Descriptor) IsSelected() bool {
	return d.Selector != nil
}

// Validate checks that the descriptor is internally consistent.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return errors.New("property has no name")
	}
	switch d.Kind {
	case KindInteger:
		if d.Int == nil {
			return fmt.Errorf("%s: integer property without range", d.Name)
		}
	case KindFloat:
		if d.Float == nil {
			return fmt.Errorf("%s: float property without range", d.Name)
		}
	case KindEnumeration:
		if d.Enum == nil {
			return fmt.Errorf("%s: enum property without type", d.Name)
		}
	case KindBoolean, KindString:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedValueKind, d.Kind)
	}
	return nil
}

// QualifiedName derives the name of a property bound to a selector entry.
func QualifiedName(feature, entry string) string {
	return feature + "-" + entry
}

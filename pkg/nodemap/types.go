package nodemap

import "errors"

// RootName is the name of the top-level category of every node map.
const RootName = "Root"

// ModelNameFeature is the string feature holding the device model name.
const ModelNameFeature = "DeviceModelName"

// Node map errors.
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNotAvailable = errors.New("node not available")
	ErrKindMismatch = errors.New("node kind mismatch")
)

// Kind is the principal value kind of a node.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInteger
	KindBoolean
	KindFloat
	KindString
	KindEnumeration
	KindCategory
	KindCommand
	KindRegister
)

// String returns the kind name.
func (k Kind) String() string {
	names := []string{
		"unknown", "integer", "boolean", "float", "string",
		"enumeration", "category", "command", "register",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindInteger; k <= KindRegister; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KindUnknown, false
}

// Visibility is the audience tier a node is intended for.
type Visibility uint8

const (
	VisibilityBeginner Visibility = iota
	VisibilityExpert
	VisibilityGuru
	VisibilityInvisible
)

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityBeginner:
		return "beginner"
	case VisibilityExpert:
		return "expert"
	case VisibilityGuru:
		return "guru"
	case VisibilityInvisible:
		return "invisible"
	default:
		return "unknown"
	}
}

// ParseVisibility converts a visibility name back to a Visibility.
// The empty string maps to VisibilityBeginner.
func ParseVisibility(s string) (Visibility, bool) {
	switch s {
	case "", "beginner":
		return VisibilityBeginner, true
	case "expert":
		return VisibilityExpert, true
	case "guru":
		return VisibilityGuru, true
	case "invisible":
		return VisibilityInvisible, true
	default:
		return VisibilityBeginner, false
	}
}

// EnumEntry is one defined entry of an enumeration node.
type EnumEntry struct {
	// NodeName is the raw entry node name, e.g. "EnumEntry_GainSelector_All".
	NodeName string

	// Symbolic is the short entry name, e.g. "All".
	Symbolic string

	// Value is the integer code written to the device.
	Value int64

	// ToolTip is the entry description.
	ToolTip string
}

// Node is a single node of the capability tree.
type Node interface {
	Name() string
	DisplayName() string
	ToolTip() string
	Visibility() Visibility
	Kind() Kind

	// IsFeature reports whether the node is a user-facing feature.
	IsFeature() bool

	// IsAvailable reports whether the node is currently available.
	IsAvailable() bool

	IsReadable() bool
	IsWritable() bool

	// IsLockable reports whether the node declares a locked-by dependency,
	// i.e. its value freezes while the device is capturing.
	IsLockable() bool

	// Selector returns the selector capability if the node implements it.
	Selector() (Selector, bool)

	// Category returns the category capability if the node implements it.
	Category() (Category, bool)

	// Enumeration returns the enumeration capability if the node implements it.
	Enumeration() (Enumeration, bool)
}

// Selector is the selector capability of a node.
type Selector interface {
	// IsSelector reports whether other features are selected by this node.
	IsSelector() bool

	// SelectingFeatures returns the nodes that select this node's active value.
	SelectingFeatures() []Node
}

// Category is the category capability of a node.
type Category interface {
	// Features returns the child features in device order.
	Features() []Node
}

// Enumeration is the enumeration capability of a node.
type Enumeration interface {
	// Entries returns every defined entry in device order.
	Entries() []EnumEntry

	// SettableValues returns the symbolic names of the entries that may be
	// written in the current device state.
	SettableValues() []string

	// EntryByName looks up an entry by its symbolic name.
	EntryByName(symbolic string) (EnumEntry, bool)
}

// Values provides typed access to feature values by name.
type Values interface {
	Integer(name string) (int64, error)
	IntegerRange(name string) (min, max int64, err error)
	SetInteger(name string, value int64) error

	Boolean(name string) (bool, error)
	SetBoolean(name string, value bool) error

	Float(name string) (float64, error)
	FloatRange(name string) (min, max float64, err error)
	SetFloat(name string, value float64) error

	String(name string) (string, error)
	SetString(name string, value string) error

	EnumValue(name string) (int64, error)
	SetEnumValue(name string, value int64) error
}

// NodeMap is a device capability tree with typed value access.
type NodeMap interface {
	Values

	// Root returns the top-level category node.
	Root() (Node, error)

	// Node looks up a node by name.
	Node(name string) (Node, error)
}

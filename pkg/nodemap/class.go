package nodemap

// Class is the closed set of node shapes the discovery engine handles.
type Class uint8

const (
	ClassUnsupported Class = iota
	ClassCategory
	ClassSelector
	ClassInteger
	ClassBoolean
	ClassFloat
	ClassString
	ClassEnumeration
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassCategory:
		return "category"
	case ClassSelector:
		return "selector"
	case ClassInteger:
		return "integer"
	case ClassBoolean:
		return "boolean"
	case ClassFloat:
		return "float"
	case ClassString:
		return "string"
	case ClassEnumeration:
		return "enumeration"
	default:
		return "unsupported"
	}
}

// IsLeaf returns true for classes that carry a value of their own.
func (c Class) IsLeaf() bool {
	return c >= ClassInteger && c <= ClassEnumeration
}

// Classify decides the class of a node from its capability queries.
// Categories win over selectors, selectors over value kinds.
func Classify(n Node) Class {
	if _, ok := n.Category(); ok || n.Kind() == KindCategory {
		return ClassCategory
	}
	if sel, ok := n.Selector(); ok && sel.IsSelector() {
		return ClassSelector
	}
	switch n.Kind() {
	case KindInteger:
		return ClassInteger
	case KindBoolean:
		return ClassBoolean
	case KindFloat:
		return ClassFloat
	case KindString:
		return ClassString
	case KindEnumeration:
		if _, ok := n.Enumeration(); ok {
			return ClassEnumeration
		}
	}
	return ClassUnsupported
}

// ModelName returns the device model name, or "" when the node map does not
// expose one.
func ModelName(m NodeMap) string {
	name, err := m.String(ModelNameFeature)
	if err != nil {
		return ""
	}
	return name
}

package property

// EnumValue is one symbolic value of an enumeration type.
type EnumValue struct {
	Value       int64
	Name        string
	Description string
}

// EnumType is a named set of symbolic values. Once registered it is never
// mutated.
type EnumType struct {
	Name   string
	Values []EnumValue
}

// ByName looks up a value by its symbolic name.
func (t *EnumType) ByName(name string) (EnumValue, bool) {
	for _, v := range t.Values {
		if v.Name == name {
			return v, true
		}
	}
	return EnumValue{}, false
}

// ByValue looks up a value by its integer code.
func (t *EnumType) ByValue(value int64) (EnumValue, bool) {
	for _, v := range t.Values {
		if v.Value == value {
			return v, true
		}
	}
	return EnumValue{}, false
}

// Names returns the symbolic names in declaration order.
func (t *EnumType) Names() []string {
	names := make([]string, len(t.Values))
	for i, v := range t.Values {
		names[i] = v.Name
	}
	return names
}

package introspect

import (
	"fmt"

	"github.com/genprop/genprop-go/pkg/nodemap"
	"github.com/genprop/genprop-go/pkg/property"
)

// Factory builds property descriptors from node map features.
type Factory struct {
	values nodemap.Values
	enums  *EnumRegistry
}

// NewFactory creates a factory reading from values and registering
// enumeration types in enums. A nil enums uses DefaultEnumRegistry.
func NewFactory(values nodemap.Values, enums *EnumRegistry) *Factory {
	if enums == nil {
		enums = DefaultEnumRegistry()
	}
	return &Factory{values: values, enums: enums}
}

// Enums returns the registry the factory registers types in.
func (f *Factory) Enums() *EnumRegistry {
	return f.enums
}

// Build creates the descriptor for node. When sel is non-nil the selector is
// first set to sel.Value so bounds and the current value are read for that
// entry, and the descriptor is named after the entry.
func (f *Factory) Build(node nodemap.Node, sel *property.SelectorBinding) (*property.Descriptor, error) {
	kind := propertyKind(node.Kind())
	if kind == property.KindUnknown {
		return nil, fmt.Errorf("%w: %s", property.ErrUnsupportedValueKind, node.Kind())
	}

	d := &property.Descriptor{
		Name:    node.Name(),
		Label:   node.DisplayName(),
		ToolTip: node.ToolTip(),
		Kind:    kind,
		Flags:   QueryAccess(node),
		Feature: node.Name(),
	}

	if sel != nil {
		if err := f.values.SetEnumValue(sel.Selector, sel.Value); err != nil {
			return nil, fmt.Errorf("select %s=%s: %w", sel.Selector, sel.Entry, err)
		}
		binding := *sel
		d.Selector = &binding
		d.Name = property.QualifiedName(node.Name(), sel.Entry)
		d.Label = node.DisplayName() + " " + sel.Entry
	}

	var err error
	switch kind {
	case property.KindInteger:
		err = f.makeInteger(d)
	case property.KindBoolean:
		err = f.makeBoolean(d)
	case property.KindFloat:
		err = f.makeFloat(d)
	case property.KindString:
		err = f.makeString(d)
	case property.KindEnumeration:
		err = f.makeEnum(node, d)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// QueryAccess derives property flags from the device access of node.
func QueryAccess(node nodemap.Node) property.Flags {
	var flags property.Flags
	if node.IsReadable() {
		flags |= property.FlagReadable
	}
	if node.IsWritable() {
		flags |= property.FlagWritable
	}
	if node.IsLockable() {
		flags |= property.FlagMutableReady
	} else {
		flags |= property.FlagMutablePlaying
	}
	return flags
}

func propertyKind(k nodemap.Kind) property.Kind {
	switch k {
	case nodemap.KindInteger:
		return property.KindInteger
	case nodemap.KindBoolean:
		return property.KindBoolean
	case nodemap.KindFloat:
		return property.KindFloat
	case nodemap.KindString:
		return property.KindString
	case nodemap.KindEnumeration:
		return property.KindEnumeration
	default:
		return property.KindUnknown
	}
}

func (f *Factory) makeInteger(d *property.Descriptor) error {
	min, max, err := f.values.IntegerRange(d.Feature)
	if err != nil {
		return fmt.Errorf("read range of %s: %w", d.Feature, err)
	}
	v, err := f.values.Integer(d.Feature)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Feature, err)
	}
	d.Int = &property.IntRange{Min: min, Max: max}
	d.Default = v
	return nil
}

func (f *Factory) makeBoolean(d *property.Descriptor) error {
	v, err := f.values.Boolean(d.Feature)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Feature, err)
	}
	d.Default = v
	return nil
}

func (f *Factory) makeFloat(d *property.Descriptor) error {
	min, max, err := f.values.FloatRange(d.Feature)
	if err != nil {
		return fmt.Errorf("read range of %s: %w", d.Feature, err)
	}
	v, err := f.values.Float(d.Feature)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Feature, err)
	}
	d.Float = &property.FloatRange{Min: min, Max: max}
	d.Default = v
	return nil
}

func (f *Factory) makeString(d *property.Descriptor) error {
	v, err := f.values.String(d.Feature)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Feature, err)
	}
	d.Default = v
	return nil
}

func (f *Factory) makeEnum(node nodemap.Node, d *property.Descriptor) error {
	enum, ok := node.Enumeration()
	if !ok {
		return fmt.Errorf("%w: %s has no entries", property.ErrUnsupportedValueKind, node.Name())
	}

	settable := enum.SettableValues()
	if len(settable) == 0 {
		return fmt.Errorf("%s: no settable entries", node.Name())
	}

	t, _, err := f.enums.LookupOrRegister(SanitizeName(node.Name()), func() (*property.EnumType, error) {
		t := &property.EnumType{Values: make([]property.EnumValue, 0, len(settable))}
		for _, name := range settable {
			e, ok := enum.EntryByName(name)
			if !ok {
				return nil, fmt.Errorf("%s: settable value %q has no entry", node.Name(), name)
			}
			t.Values = append(t.Values, property.EnumValue{
				Value:       e.Value,
				Name:        name,
				Description: e.ToolTip,
			})
		}
		return t, nil
	})
	if err != nil {
		return err
	}

	v, err := f.values.EnumValue(d.Feature)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Feature, err)
	}
	d.Enum = t
	d.Settable = settable
	d.Default = v
	return nil
}

package dispatch

import (
	"fmt"
	"math"

	"github.com/genprop/genprop-go/pkg/nodemap"
	"github.com/genprop/genprop-go/pkg/property"
)

// Dispatcher performs property reads and writes against a node map.
// It does no locking of its own.
type Dispatcher struct {
	values    nodemap.Values
	schema    *property.Schema
	capturing bool
}

// New creates a dispatcher for the properties in schema.
func New(values nodemap.Values, schema *property.Schema) *Dispatcher {
	return &Dispatcher{values: values, schema: schema}
}

// Schema returns the schema the dispatcher serves.
func (d *Dispatcher) Schema() *property.Schema {
	return d.schema
}

// SetCapturing records whether the device is capturing. While capturing,
// properties that are only mutable when idle reject writes.
func (d *Dispatcher) SetCapturing(capturing bool) {
	d.capturing = capturing
}

// Capturing returns the recorded capture state.
func (d *Dispatcher) Capturing() bool {
	return d.capturing
}

// Get reads the current value of a property. The result is an int64,
// bool, float64 or string; enumerations return the integer code.
func (d *Dispatcher) Get(name string) (any, error) {
	desc, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	if !desc.Flags.CanRead() {
		return nil, fmt.Errorf("%w: %s", ErrNotReadable, name)
	}
	if err := d.selectEntry(desc, OpGet); err != nil {
		return nil, err
	}

	var v any
	switch desc.Kind {
	case property.KindInteger:
		v, err = d.values.Integer(desc.Feature)
	case property.KindBoolean:
		v, err = d.values.Boolean(desc.Feature)
	case property.KindFloat:
		v, err = d.values.Float(desc.Feature)
	case property.KindString:
		v, err = d.values.String(desc.Feature)
	case property.KindEnumeration:
		v, err = d.values.EnumValue(desc.Feature)
	default:
		return nil, fmt.Errorf("%w: %s", property.ErrUnsupportedValueKind, desc.Kind)
	}
	if err != nil {
		return nil, &AccessError{Property: name, Feature: desc.Feature, Op: OpGet, Err: err}
	}
	return v, nil
}

// Set writes a property. Integer properties accept any Go integer type,
// float properties any integer or float type, and enumerations either
// the integer code or a symbolic value name.
func (d *Dispatcher) Set(name string, value any) error {
	desc, err := d.lookup(name)
	if err != nil {
		return err
	}
	if !desc.Flags.CanWrite() {
		return fmt.Errorf("%w: %s", ErrNotWritable, name)
	}
	if d.capturing && !desc.Flags.MutableWhileCapturing() {
		return fmt.Errorf("%w: %s", ErrLockedWhileCapturing, name)
	}

	// Convert before touching the device so a bad value never moves the
	// selector.
	var write func() error
	switch desc.Kind {
	case property.KindInteger:
		v, ok := toInt64(value)
		if !ok {
			return typeError(desc, value)
		}
		write = func() error { return d.values.SetInteger(desc.Feature, v) }
	case property.KindBoolean:
		v, ok := value.(bool)
		if !ok {
			return typeError(desc, value)
		}
		write = func() error { return d.values.SetBoolean(desc.Feature, v) }
	case property.KindFloat:
		v, ok := toFloat64(value)
		if !ok {
			return typeError(desc, value)
		}
		write = func() error { return d.values.SetFloat(desc.Feature, v) }
	case property.KindString:
		v, ok := value.(string)
		if !ok {
			return typeError(desc, value)
		}
		write = func() error { return d.values.SetString(desc.Feature, v) }
	case property.KindEnumeration:
		v, err := enumCode(desc, value)
		if err != nil {
			return err
		}
		write = func() error { return d.values.SetEnumValue(desc.Feature, v) }
	default:
		return fmt.Errorf("%w: %s", property.ErrUnsupportedValueKind, desc.Kind)
	}

	if err := d.selectEntry(desc, OpSet); err != nil {
		return err
	}
	if err := write(); err != nil {
		return &AccessError{Property: name, Feature: desc.Feature, Op: OpSet, Err: err}
	}
	return nil
}

func (d *Dispatcher) lookup(name string) (*property.Descriptor, error) {
	desc, ok := d.schema.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return desc, nil
}

// selectEntry points the selector of a bound property at its entry.
func (d *Dispatcher) selectEntry(desc *property.Descriptor, op Op) error {
	sel := desc.Selector
	if sel == nil {
		return nil
	}
	if err := d.values.SetEnumValue(sel.Selector, sel.Value); err != nil {
		return &AccessError{Property: desc.Name, Feature: sel.Selector, Op: op, Err: err}
	}
	return nil
}

func enumCode(desc *property.Descriptor, value any) (int64, error) {
	if name, ok := value.(string); ok {
		if desc.Enum == nil {
			return 0, typeError(desc, value)
		}
		ev, ok := desc.Enum.ByName(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s has no value %q", ErrValueType, desc.Name, name)
		}
		return ev.Value, nil
	}
	v, ok := toInt64(value)
	if !ok {
		return 0, typeError(desc, value)
	}
	return v, nil
}

func typeError(desc *property.Descriptor, value any) error {
	return fmt.Errorf("%w: %s is %s, got %T", ErrValueType, desc.Name, desc.Kind, value)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uintptr:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		i, ok := toInt64(v)
		return float64(i), ok
	}
}

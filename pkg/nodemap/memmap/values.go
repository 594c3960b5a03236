package memmap

import (
	"fmt"

	"github.com/genprop/genprop-go/pkg/nodemap"
)

// Integer reads an integer feature.
func (m *Map) Integer(name string) (int64, error) {
	v, err := m.read(name, nodemap.KindInteger)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// IntegerRange returns the bounds of an integer feature.
func (m *Map) IntegerRange(name string) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.access(name, nodemap.KindInteger, false)
	if err != nil {
		return 0, 0, err
	}
	return n.imin, n.imax, nil
}

// SetInteger writes an integer feature.
func (m *Map) SetInteger(name string, value int64) error {
	return m.write(name, nodemap.KindInteger, value)
}

// Boolean reads a boolean feature.
func (m *Map) Boolean(name string) (bool, error) {
	v, err := m.read(name, nodemap.KindBoolean)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// SetBoolean writes a boolean feature.
func (m *Map) SetBoolean(name string, value bool) error {
	return m.write(name, nodemap.KindBoolean, value)
}

// Float reads a float feature.
func (m *Map) Float(name string) (float64, error) {
	v, err := m.read(name, nodemap.KindFloat)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// FloatRange returns the bounds of a float feature.
func (m *Map) FloatRange(name string) (float64, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.access(name, nodemap.KindFloat, false)
	if err != nil {
		return 0, 0, err
	}
	return n.fmin, n.fmax, nil
}

// SetFloat writes a float feature.
func (m *Map) SetFloat(name string, value float64) error {
	return m.write(name, nodemap.KindFloat, value)
}

// String reads a string feature.
func (m *Map) String(name string) (string, error) {
	v, err := m.read(name, nodemap.KindString)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// SetString writes a string feature.
func (m *Map) SetString(name string, value string) error {
	return m.write(name, nodemap.KindString, value)
}

// EnumValue reads the integer code of the current enumeration entry.
func (m *Map) EnumValue(name string) (int64, error) {
	v, err := m.read(name, nodemap.KindEnumeration)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// SetEnumValue selects an enumeration entry by integer code.
func (m *Map) SetEnumValue(name string, value int64) error {
	return m.write(name, nodemap.KindEnumeration, value)
}

// access looks up a node for a typed operation. Caller holds m.mu.
func (m *Map) access(name string, kind nodemap.Kind, write bool) (*node, error) {
	n, ok := m.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", nodemap.ErrNodeNotFound, name)
	}
	if n.kind != kind {
		return nil, fmt.Errorf("%w: %s is %s, not %s", nodemap.ErrKindMismatch, name, n.kind, kind)
	}
	if err, ok := m.faults[faultKey{name: name, write: write}]; ok {
		return nil, err
	}
	if !n.available {
		return nil, fmt.Errorf("%w: %s", nodemap.ErrNotAvailable, name)
	}
	return n, nil
}

func (m *Map) read(name string, kind nodemap.Kind) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.access(name, kind, false)
	if err != nil {
		return nil, err
	}
	if !n.readable {
		return nil, fmt.Errorf("%w: %s", ErrNotReadable, name)
	}
	if key, ok := m.slot(n); ok {
		if v, ok := n.selected[key]; ok {
			return v, nil
		}
	}
	return n.value, nil
}

func (m *Map) write(name string, kind nodemap.Kind, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.access(name, kind, true)
	if err != nil {
		return err
	}
	if !n.writable {
		return fmt.Errorf("%w: %s", ErrNotWritable, name)
	}
	if err := n.check(value); err != nil {
		return err
	}

	if key, ok := m.slot(n); ok {
		if n.selected == nil {
			n.selected = make(map[int64]any)
		}
		n.selected[key] = value
	} else {
		n.value = value
	}
	m.journal = append(m.journal, Write{Name: name, Value: value})
	return nil
}

// slot returns the current value of the single enumeration selector of n.
// Caller holds m.mu.
func (m *Map) slot(n *node) (int64, bool) {
	if len(n.selectors) != 1 {
		return 0, false
	}
	sel, ok := m.nodes[n.selectors[0]]
	if !ok || sel.kind != nodemap.KindEnumeration {
		return 0, false
	}
	v, ok := sel.value.(int64)
	return v, ok
}

// check validates a value against bounds and settable entries.
// Caller holds m.mu.
func (n *node) check(value any) error {
	switch n.kind {
	case nodemap.KindInteger:
		v := value.(int64)
		if v < n.imin || v > n.imax {
			return fmt.Errorf("%w: %s: %d not in [%d, %d]", ErrOutOfRange, n.name, v, n.imin, n.imax)
		}
	case nodemap.KindFloat:
		v := value.(float64)
		if v < n.fmin || v > n.fmax {
			return fmt.Errorf("%w: %s: %g not in [%g, %g]", ErrOutOfRange, n.name, v, n.fmin, n.fmax)
		}
	case nodemap.KindEnumeration:
		v := value.(int64)
		e, ok := n.entryByValue(v)
		if !ok || e.disabled {
			return fmt.Errorf("%w: %s: %d", ErrInvalidEntry, n.name, v)
		}
	}
	return nil
}

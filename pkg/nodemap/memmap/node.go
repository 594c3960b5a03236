package memmap

import (
	"fmt"
	"math"

	"github.com/genprop/genprop-go/pkg/nodemap"
)

type entry struct {
	nodemap.EnumEntry
	disabled bool
}

// node is a single in-memory node. Mutable state is guarded by m.mu.
type node struct {
	m *Map

	name    string
	display string
	tooltip string
	kind    nodemap.Kind
	vis     nodemap.Visibility

	available bool
	readable  bool
	writable  bool
	locked    bool
	feature   bool

	selectorCap bool
	selectors   []string
	features    []string
	entries     []entry

	imin, imax int64
	fmin, fmax float64

	value    any
	selected map[int64]any
	pending  map[string]any
}

func (n *node) Name() string                   { return n.name }
func (n *node) DisplayName() string            { return n.display }
func (n *node) ToolTip() string                { return n.tooltip }
func (n *node) Visibility() nodemap.Visibility { return n.vis }
func (n *node) Kind() nodemap.Kind             { return n.kind }
func (n *node) IsFeature() bool                { return n.feature }
func (n *node) IsLockable() bool               { return n.locked }

func (n *node) IsAvailable() bool {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	return n.available
}

func (n *node) IsReadable() bool {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	return n.available && n.readable
}

func (n *node) IsWritable() bool {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	return n.available && n.writable
}

func (n *node) Selector() (nodemap.Selector, bool) {
	if !n.selectorCap {
		return nil, false
	}
	return selectorView{n}, true
}

func (n *node) Category() (nodemap.Category, bool) {
	if n.kind != nodemap.KindCategory {
		return nil, false
	}
	return categoryView{n}, true
}

func (n *node) Enumeration() (nodemap.Enumeration, bool) {
	if n.kind != nodemap.KindEnumeration {
		return nil, false
	}
	return enumView{n}, true
}

// entry looks up an entry by symbolic name. Caller holds m.mu or the node
// is not yet shared.
func (n *node) entry(symbolic string) (entry, bool) {
	for _, e := range n.entries {
		if e.Symbolic == symbolic {
			return e, true
		}
	}
	return entry{}, false
}

func (n *node) entryByValue(v int64) (entry, bool) {
	for _, e := range n.entries {
		if e.Value == v {
			return e, true
		}
	}
	return entry{}, false
}

func (n *node) initBounds(min, max any) error {
	switch n.kind {
	case nodemap.KindInteger:
		n.imin, n.imax = math.MinInt64, math.MaxInt64
		if min != nil {
			v, ok := toInt64(min)
			if !ok {
				return fmt.Errorf("%w: %s: min must be an integer", ErrInvalidSpec, n.name)
			}
			n.imin = v
		}
		if max != nil {
			v, ok := toInt64(max)
			if !ok {
				return fmt.Errorf("%w: %s: max must be an integer", ErrInvalidSpec, n.name)
			}
			n.imax = v
		}
		if n.imin > n.imax {
			return fmt.Errorf("%w: %s: min > max", ErrInvalidSpec, n.name)
		}
	case nodemap.KindFloat:
		n.fmin, n.fmax = -math.MaxFloat64, math.MaxFloat64
		if min != nil {
			v, ok := toFloat64(min)
			if !ok {
				return fmt.Errorf("%w: %s: min must be a number", ErrInvalidSpec, n.name)
			}
			n.fmin = v
		}
		if max != nil {
			v, ok := toFloat64(max)
			if !ok {
				return fmt.Errorf("%w: %s: max must be a number", ErrInvalidSpec, n.name)
			}
			n.fmax = v
		}
		if n.fmin > n.fmax {
			return fmt.Errorf("%w: %s: min > max", ErrInvalidSpec, n.name)
		}
	}
	return nil
}

// zero returns the initial value used when a spec has none.
func (n *node) zero() any {
	switch n.kind {
	case nodemap.KindInteger:
		if n.imin > 0 {
			return n.imin
		}
		return int64(0)
	case nodemap.KindBoolean:
		return false
	case nodemap.KindFloat:
		if n.fmin > 0 {
			return n.fmin
		}
		return float64(0)
	case nodemap.KindString:
		return ""
	case nodemap.KindEnumeration:
		if len(n.entries) > 0 {
			return n.entries[0].Value
		}
		return int64(0)
	default:
		return nil
	}
}

// convert turns a YAML scalar into the stored representation for the kind.
func (n *node) convert(raw any) (any, error) {
	switch n.kind {
	case nodemap.KindInteger:
		if v, ok := toInt64(raw); ok {
			return v, nil
		}
	case nodemap.KindBoolean:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	case nodemap.KindFloat:
		if v, ok := toFloat64(raw); ok {
			return v, nil
		}
	case nodemap.KindString:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case nodemap.KindEnumeration:
		if s, ok := raw.(string); ok {
			if e, ok := n.entry(s); ok {
				return e.Value, nil
			}
			return nil, fmt.Errorf("%w: %s: unknown entry %q", ErrInvalidSpec, n.name, s)
		}
		if v, ok := toInt64(raw); ok {
			return v, nil
		}
	default:
		return nil, fmt.Errorf("%w: %s: %s nodes carry no value", ErrInvalidSpec, n.name, n.kind)
	}
	return nil, fmt.Errorf("%w: %s: value %v does not fit %s", ErrInvalidSpec, n.name, raw, n.kind)
}

type selectorView struct{ n *node }

func (s selectorView) IsSelector() bool {
	s.n.m.mu.Lock()
	defer s.n.m.mu.Unlock()
	return len(s.n.m.selecting[s.n.name]) > 0
}

func (s selectorView) SelectingFeatures() []nodemap.Node {
	s.n.m.mu.Lock()
	defer s.n.m.mu.Unlock()

	nodes := make([]nodemap.Node, 0, len(s.n.selectors))
	for _, name := range s.n.selectors {
		if sel, ok := s.n.m.nodes[name]; ok {
			nodes = append(nodes, sel)
		}
	}
	return nodes
}

type categoryView struct{ n *node }

func (c categoryView) Features() []nodemap.Node {
	c.n.m.mu.Lock()
	defer c.n.m.mu.Unlock()

	nodes := make([]nodemap.Node, 0, len(c.n.features))
	for _, name := range c.n.features {
		if child, ok := c.n.m.nodes[name]; ok {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

type enumView struct{ n *node }

func (e enumView) Entries() []nodemap.EnumEntry {
	e.n.m.mu.Lock()
	defer e.n.m.mu.Unlock()

	entries := make([]nodemap.EnumEntry, len(e.n.entries))
	for i, en := range e.n.entries {
		entries[i] = en.EnumEntry
	}
	return entries
}

func (e enumView) SettableValues() []string {
	e.n.m.mu.Lock()
	defer e.n.m.mu.Unlock()

	var values []string
	for _, en := range e.n.entries {
		if !en.disabled {
			values = append(values, en.Symbolic)
		}
	}
	return values
}

func (e enumView) EntryByName(symbolic string) (nodemap.EnumEntry, bool) {
	e.n.m.mu.Lock()
	defer e.n.m.mu.Unlock()

	en, ok := e.n.entry(symbolic)
	return en.EnumEntry, ok
}

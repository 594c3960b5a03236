package memmap

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/genprop/genprop-go/pkg/nodemap"
)

// Map errors.
var (
	ErrDuplicateNode = errors.New("duplicate node name")
	ErrInvalidSpec   = errors.New("invalid node spec")
	ErrNotReadable   = errors.New("node is not readable")
	ErrNotWritable   = errors.New("node is not writable")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidEntry  = errors.New("enumeration entry not settable")
)

// Write records one successful value write.
type Write struct {
	Name  string
	Value any
}

type faultKey struct {
	name  string
	write bool
}

// Map is an in-memory node map. It is safe for concurrent use.
type Map struct {
	mu sync.Mutex

	nodes map[string]*node
	order []string

	// selecting maps a selector name to the features it selects.
	selecting map[string][]string

	faults  map[faultKey]error
	journal []Write
}

// New creates an empty map. Use Add to populate it.
func New() *Map {
	return &Map{
		nodes:     make(map[string]*node),
		selecting: make(map[string][]string),
		faults:    make(map[faultKey]error),
	}
}

// Add adds a node described by spec.
func (m *Map) Add(spec NodeSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSpec)
	}
	kind, ok := nodemap.ParseKind(spec.Kind)
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, spec.Kind)
	}
	vis, ok := nodemap.ParseVisibility(spec.Visibility)
	if !ok {
		return fmt.Errorf("%w: unknown visibility %q", ErrInvalidSpec, spec.Visibility)
	}
	readable, writable, err := parseAccess(spec.Access)
	if err != nil {
		return err
	}

	n := &node{
		m:           m,
		name:        spec.Name,
		display:     spec.DisplayName,
		tooltip:     spec.ToolTip,
		kind:        kind,
		vis:         vis,
		available:   !spec.Unavailable,
		readable:    readable,
		writable:    writable,
		locked:      spec.Locked,
		feature:     !spec.Hidden,
		selectorCap: !spec.NoSelector && kind != nodemap.KindCategory,
		selectors:   append([]string(nil), spec.Selectors...),
		features:    append([]string(nil), spec.Features...),
		pending:     spec.Values,
	}
	if n.display == "" {
		n.display = spec.Name
	}

	for _, e := range spec.Entries {
		n.entries = append(n.entries, entry{
			EnumEntry: nodemap.EnumEntry{
				NodeName: "EnumEntry_" + spec.Name + "_" + e.Name,
				Symbolic: e.Name,
				Value:    e.Value,
				ToolTip:  e.ToolTip,
			},
			disabled: e.Disabled,
		})
	}

	if err := n.initBounds(spec.Min, spec.Max); err != nil {
		return err
	}
	if spec.Value != nil {
		v, err := n.convert(spec.Value)
		if err != nil {
			return err
		}
		n.value = v
	} else {
		n.value = n.zero()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.nodes[n.name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, n.name)
	}
	m.nodes[n.name] = n
	m.order = append(m.order, n.name)
	for _, sel := range n.selectors {
		m.selecting[sel] = append(m.selecting[sel], n.name)
	}
	return nil
}

// Validate checks that every referenced node exists, that categories form
// a tree below Root, and resolves per selector initial values.
func (m *Map) Validate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.nodes[nodemap.RootName]; !ok {
		return fmt.Errorf("%w: %s", nodemap.ErrNodeNotFound, nodemap.RootName)
	}

	for _, name := range m.order {
		n := m.nodes[name]
		for _, child := range n.features {
			if _, ok := m.nodes[child]; !ok {
				return fmt.Errorf("%s: feature %w: %s", name, nodemap.ErrNodeNotFound, child)
			}
		}
		for _, sel := range n.selectors {
			if _, ok := m.nodes[sel]; !ok {
				return fmt.Errorf("%s: selector %w: %s", name, nodemap.ErrNodeNotFound, sel)
			}
		}
		if len(n.pending) == 0 {
			continue
		}
		if len(n.selectors) != 1 {
			return fmt.Errorf("%w: %s: per-selector values need exactly one selector", ErrInvalidSpec, name)
		}
		sel := m.nodes[n.selectors[0]]
		n.selected = make(map[int64]any, len(n.pending))
		for symbolic, raw := range n.pending {
			e, ok := sel.entry(symbolic)
			if !ok {
				return fmt.Errorf("%w: %s: unknown selector entry %q", ErrInvalidSpec, name, symbolic)
			}
			v, err := n.convert(raw)
			if err != nil {
				return fmt.Errorf("%s[%s]: %w", name, symbolic, err)
			}
			n.selected[e.Value] = v
		}
		n.pending = nil
	}
	return m.checkTree()
}

// checkTree rejects category graphs that are not a tree: Root listed as a
// feature, or a node listed under more than one category. Either is needed
// for a cycle reachable from Root.
func (m *Map) checkTree() error {
	parent := make(map[string]string, len(m.nodes))
	for _, name := range m.order {
		for _, child := range m.nodes[name].features {
			if child == nodemap.RootName {
				return fmt.Errorf("%w: %s lists %s as a feature", ErrInvalidSpec, name, nodemap.RootName)
			}
			if prev, ok := parent[child]; ok {
				return fmt.Errorf("%w: %s is listed under both %s and %s", ErrInvalidSpec, child, prev, name)
			}
			parent[child] = name
		}
	}
	return nil
}

// Root returns the Root category.
func (m *Map) Root() (nodemap.Node, error) {
	return m.Node(nodemap.RootName)
}

// Node looks up a node by name.
func (m *Map) Node(name string) (nodemap.Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", nodemap.ErrNodeNotFound, name)
	}
	return n, nil
}

// Names returns all node names in insertion order.
func (m *Map) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

// SetAvailable changes the availability of a node.
func (m *Map) SetAvailable(name string, available bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %s", nodemap.ErrNodeNotFound, name)
	}
	n.available = available
	return nil
}

// SetEntryEnabled enables or disables one enumeration entry.
func (m *Map) SetEntryEnabled(name, symbolic string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %s", nodemap.ErrNodeNotFound, name)
	}
	for i := range n.entries {
		if n.entries[i].Symbolic == symbolic {
			n.entries[i].disabled = !enabled
			return nil
		}
	}
	return fmt.Errorf("%w: %s.%s", nodemap.ErrNodeNotFound, name, symbolic)
}

// FailReads makes every read of the named feature return err.
// A nil err clears the fault.
func (m *Map) FailReads(name string, err error) {
	m.setFault(faultKey{name: name}, err)
}

// FailWrites makes every write of the named feature return err.
// A nil err clears the fault.
func (m *Map) FailWrites(name string, err error) {
	m.setFault(faultKey{name: name, write: true}, err)
}

func (m *Map) setFault(key faultKey, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.faults, key)
		return
	}
	m.faults[key] = err
}

// Writes returns the successful writes in the order they happened.
func (m *Map) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Write(nil), m.journal...)
}

// ResetWrites clears the write journal.
func (m *Map) ResetWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal = nil
}

func parseAccess(s string) (readable, writable bool, err error) {
	switch s {
	case "", "rw":
		return true, true, nil
	case "ro":
		return true, false, nil
	case "wo":
		return false, true, nil
	case "na":
		return false, false, nil
	default:
		return false, false, fmt.Errorf("%w: unknown access %q", ErrInvalidSpec, s)
	}
}

// Compile-time interface satisfaction check.
var _ nodemap.NodeMap = (*Map)(nil)

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

package introspect

import (
	"sync"

	"github.com/genprop/genprop-go/pkg/property"
)

// EnumRegistry maps sanitized type names to enumeration types.
//
// The first registration of a name wins; later lookups return the cached
// type even if the device now reports a different set of settable entries.
// Registered types are immutable. A registry lives as long as its owner;
// the one returned by DefaultEnumRegistry lives for the process.
type EnumRegistry struct {
	mu    sync.Mutex
	types map[string]*property.EnumType
}

// NewEnumRegistry creates an empty registry.
func NewEnumRegistry() *EnumRegistry {
	return &EnumRegistry{types: make(map[string]*property.EnumType)}
}

var defaultRegistry = sync.OnceValue(NewEnumRegistry)

// DefaultEnumRegistry returns the process-wide registry shared by all
// device sessions that do not bring their own.
func DefaultEnumRegistry() *EnumRegistry {
	return defaultRegistry()
}

// LookupOrRegister returns the type registered under name. If there is none,
// build is called and its result registered. The whole operation runs under
// one lock, so concurrent discoveries register a name exactly once.
// The boolean reports whether the type was already present.
func (r *EnumRegistry) LookupOrRegister(name string, build func() (*property.EnumType, error)) (*property.EnumType, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.types[name]; ok {
		return t, true, nil
	}

	t, err := build()
	if err != nil {
		return nil, false, err
	}
	t.Name = name
	r.types[name] = t
	return t, false, nil
}

// Lookup returns the type registered under name.
func (r *EnumRegistry) Lookup(name string) (*property.EnumType, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.types[name]
	return t, ok
}

// Len returns the number of registered types.
func (r *EnumRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.types)
}

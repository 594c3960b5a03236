package camera

import (
	"sync"

	"github.com/genprop/genprop-go/pkg/introspect"
	"github.com/genprop/genprop-go/pkg/property"
)

// SchemaCache maps sanitized device names to discovered schemas. Entries
// are never evicted.
type SchemaCache struct {
	mu      sync.Mutex
	schemas map[string]*property.Schema
}

// NewSchemaCache creates an empty cache.
func NewSchemaCache() *SchemaCache {
	return &SchemaCache{schemas: make(map[string]*property.Schema)}
}

var defaultSchemas = sync.OnceValue(NewSchemaCache)

// DefaultSchemaCache returns the process-wide cache.
func DefaultSchemaCache() *SchemaCache {
	return defaultSchemas()
}

// LookupOrInstall returns the schema cached for device, running install
// when there is none. A failed install caches nothing.
func (c *SchemaCache) LookupOrInstall(device string, install func() (*property.Schema, error)) (*property.Schema, bool, error) {
	key := introspect.SanitizeName(device)

	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.schemas[key]; ok {
		return s, true, nil
	}
	s, err := install()
	if err != nil {
		return nil, false, err
	}
	c.schemas[key] = s
	return s, false, nil
}

// Len returns the number of cached schemas.
func (c *SchemaCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.schemas)
}

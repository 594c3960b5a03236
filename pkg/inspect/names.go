package inspect

import (
	"sort"
	"strings"

	"github.com/genprop/genprop-go/pkg/property"
)

// ResolveName resolves a property name case-insensitively.
func ResolveName(schema *property.Schema, name string) (string, bool) {
	if _, ok := schema.Lookup(name); ok {
		return name, true
	}
	for _, n := range schema.Names() {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// Complete returns the property names starting with prefix
// (case-insensitive), sorted.
func Complete(schema *property.Schema, prefix string) []string {
	lp := strings.ToLower(prefix)
	var out []string
	for _, n := range schema.Names() {
		if strings.HasPrefix(strings.ToLower(n), lp) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// Match returns the property names containing pattern (case-insensitive),
// in schema order. An empty pattern matches all.
func Match(schema *property.Schema, pattern string) []string {
	if pattern == "" {
		return schema.Names()
	}
	lp := strings.ToLower(pattern)
	var out []string
	for _, n := range schema.Names() {
		if strings.Contains(strings.ToLower(n), lp) {
			out = append(out, n)
		}
	}
	return out
}

package camera

import (
	"log/slog"

	"github.com/genprop/genprop-go/pkg/introspect"
	plog "github.com/genprop/genprop-go/pkg/log"
	"github.com/genprop/genprop-go/pkg/walker"
)

// Config configures a Camera.
type Config struct {
	// DeviceName is the device full name. It keys the schema cache and is
	// copied into log output. Empty uses the device model name and
	// disables schema caching.
	DeviceName string

	// Logger is the optional logger for debug output and access failures.
	Logger *slog.Logger

	// EventLogger captures discovery, access and state events.
	EventLogger plog.Logger

	// Enums is the enumeration type registry. Nil uses the process-wide one.
	Enums *introspect.EnumRegistry

	// Schemas shares schemas between cameras with the same device name.
	// Nil uses the process-wide cache.
	Schemas *SchemaCache

	// Denylist holds features left to the media pipeline.
	Denylist walker.Denylist
}

// DefaultConfig returns a Config with the default denylist and the
// process-wide registries.
func DefaultConfig() Config {
	return Config{
		Denylist: walker.DefaultDenylist,
	}
}

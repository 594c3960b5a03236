package camera

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/genprop/genprop-go/pkg/dispatch"
	plog "github.com/genprop/genprop-go/pkg/log"
	"github.com/genprop/genprop-go/pkg/nodemap"
	"github.com/genprop/genprop-go/pkg/property"
	"github.com/genprop/genprop-go/pkg/walker"
)

// ErrClosed is returned by operations on a closed camera.
var ErrClosed = errors.New("camera is closed")

// State is the session state of a camera.
type State string

const (
	StateOpen      State = "OPEN"
	StateCapturing State = "CAPTURING"
	StateClosed    State = "CLOSED"
)

// Camera is an opened device with a discovered property schema.
// It is safe for concurrent use; reads and writes are serialized.
type Camera struct {
	mu sync.Mutex

	id     string
	name   string
	model  string
	state  State
	cached bool

	dispatcher *dispatch.Dispatcher
	skipped    []*walker.NodeError

	logger *slog.Logger
	events plog.Logger
}

// Open runs discovery on nodes, or reuses the schema cached for the same
// device name, and returns the ready camera.
func Open(nodes nodemap.NodeMap, config Config) (*Camera, error) {
	c := &Camera{
		id:     uuid.New().String(),
		model:  nodemap.ModelName(nodes),
		state:  StateOpen,
		logger: config.Logger,
		events: plog.OrNoop(config.EventLogger),
	}
	c.name = config.DeviceName
	if c.name == "" {
		c.name = c.model
	}

	w := walker.New(walker.Config{
		Enums:       config.Enums,
		Denylist:    config.Denylist,
		Logger:      config.Logger,
		EventLogger: c.events,
		SessionID:   c.id,
		Device:      c.name,
	})
	install := func() (*property.Schema, error) {
		result, err := w.Install(nodes)
		if err != nil {
			return nil, err
		}
		c.skipped = result.Skipped
		return result.Schema, nil
	}

	var schema *property.Schema
	var err error
	if config.DeviceName == "" {
		schema, err = install()
	} else {
		schemas := config.Schemas
		if schemas == nil {
			schemas = DefaultSchemaCache()
		}
		schema, c.cached, err = schemas.LookupOrInstall(config.DeviceName, install)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.name, err)
	}

	c.dispatcher = dispatch.New(nodes, schema)
	c.debugLog("camera opened",
		"session", c.id,
		"device", c.name,
		"properties", schema.Len(),
		"skipped", len(c.skipped),
		"cached", c.cached)
	c.logState("", StateOpen, "")
	return c, nil
}

// ID returns the session ID.
func (c *Camera) ID() string { return c.id }

// Name returns the device name.
func (c *Camera) Name() string { return c.name }

// Model returns the device model name, or "" if the device has none.
func (c *Camera) Model() string { return c.model }

// Schema returns the property schema.
func (c *Camera) Schema() *property.Schema { return c.dispatcher.Schema() }

// Cached reports whether the schema came from the schema cache.
func (c *Camera) Cached() bool { return c.cached }

// Skipped returns the features that discovery skipped. It is empty when
// the schema came from the cache.
func (c *Camera) Skipped() []*walker.NodeError { return c.skipped }

// Describe returns the descriptor of a property.
func (c *Camera) Describe(name string) (*property.Descriptor, bool) {
	return c.Schema().Lookup(name)
}

// State returns the session state.
func (c *Camera) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Get reads a property.
func (c *Camera) Get(name string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return nil, ErrClosed
	}

	start := time.Now()
	v, err := c.dispatcher.Get(name)
	c.logAccess(plog.OpGet, name, v, err, time.Since(start))
	if err != nil {
		c.warn("failed to get property", name, err)
		return nil, err
	}
	return v, nil
}

// Set writes a property.
func (c *Camera) Set(name string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return ErrClosed
	}

	start := time.Now()
	err := c.dispatcher.Set(name, value)
	c.logAccess(plog.OpSet, name, value, err, time.Since(start))
	if err != nil {
		c.warn("failed to set property", name, err)
		return err
	}
	return nil
}

// SetCapturing moves the camera between the open and capturing states.
// Properties mutable only while idle reject writes while capturing.
func (c *Camera) SetCapturing(capturing bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return ErrClosed
	}

	next := StateOpen
	if capturing {
		next = StateCapturing
	}
	if next == c.state {
		return nil
	}

	prev := c.state
	c.state = next
	c.dispatcher.SetCapturing(capturing)
	c.logState(prev, next, "")
	return nil
}

// Close ends the session. Further reads and writes fail with ErrClosed.
// Closing twice is a no-op.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return nil
	}
	prev := c.state
	c.state = StateClosed
	c.logState(prev, StateClosed, "closed by host")
	c.debugLog("camera closed", "session", c.id, "device", c.name)
	return nil
}

func (c *Camera) logAccess(op plog.Op, name string, value any, err error, d time.Duration) {
	ev := &plog.AccessEvent{
		Op:       op,
		Property: name,
		Value:    value,
		Duration: d,
	}
	if desc, ok := c.dispatcher.Schema().Lookup(name); ok {
		ev.Feature = desc.Feature
		if desc.Selector != nil {
			sel := desc.Selector.Value
			ev.Selector = desc.Selector.Selector
			ev.SelectorValue = &sel
		}
	}
	if err != nil {
		ev.Error = err.Error()
	}

	c.events.Log(plog.Event{
		Timestamp: time.Now(),
		SessionID: c.id,
		Device:    c.name,
		Category:  plog.CategoryAccess,
		Access:    ev,
	})
}

func (c *Camera) logState(prev, next State, reason string) {
	c.events.Log(plog.Event{
		Timestamp: time.Now(),
		SessionID: c.id,
		Device:    c.name,
		Category:  plog.CategoryState,
		StateChange: &plog.StateChangeEvent{
			OldState: string(prev),
			NewState: string(next),
			Reason:   reason,
		},
	})
}

func (c *Camera) warn(msg, property string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, "property", property, "device", c.name, "error", err)
	}
}

func (c *Camera) debugLog(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

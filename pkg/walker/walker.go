package walker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/genprop/genprop-go/pkg/introspect"
	plog "github.com/genprop/genprop-go/pkg/log"
	"github.com/genprop/genprop-go/pkg/nodemap"
	"github.com/genprop/genprop-go/pkg/property"
)

// ErrNoDescriptorsProduced is returned for an eligible node that yielded no
// descriptors.
var ErrNoDescriptorsProduced = errors.New("no descriptors were produced")

// Config configures a Walker.
type Config struct {
	// Enums is the enumeration type registry. Nil uses the process-wide one.
	Enums *introspect.EnumRegistry

	// Denylist holds feature names never installed. Nil uses DefaultDenylist.
	Denylist Denylist

	// Logger is the optional logger for skipped nodes.
	Logger *slog.Logger

	// EventLogger receives one discovery event per handled feature.
	EventLogger plog.Logger

	// SessionID and Device are copied into discovery events.
	SessionID string
	Device    string
}

// DefaultConfig returns a configuration using the process-wide enum
// registry and the default denylist.
func DefaultConfig() Config {
	return Config{
		Denylist: DefaultDenylist,
	}
}

// NodeError records a feature skipped during discovery.
type NodeError struct {
	Feature     string
	DisplayName string
	Err         error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("feature %q: %v", e.DisplayName, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one discovery pass.
type Result struct {
	// Schema holds the installed descriptors in traversal order.
	Schema *property.Schema

	// Skipped lists the eligible features that could not be installed.
	Skipped []*NodeError
}

// Walker installs the properties of a node map into a schema.
type Walker struct {
	enums     *introspect.EnumRegistry
	denylist  Denylist
	logger    *slog.Logger
	events    plog.Logger
	sessionID string
	device    string
}

// New creates a walker.
func New(config Config) *Walker {
	denylist := config.Denylist
	if denylist == nil {
		denylist = DefaultDenylist
	}
	enums := config.Enums
	if enums == nil {
		enums = introspect.DefaultEnumRegistry()
	}
	return &Walker{
		enums:     enums,
		denylist:  denylist,
		logger:    config.Logger,
		events:    plog.OrNoop(config.EventLogger),
		sessionID: config.SessionID,
		device:    config.Device,
	}
}

// Install walks m breadth first from its Root and returns the discovered
// schema. Per-feature failures are collected in Result.Skipped; the only
// error returned is a missing Root.
func (w *Walker) Install(m nodemap.NodeMap) (*Result, error) {
	root, err := m.Root()
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", nodemap.RootName, err)
	}

	factory := introspect.NewFactory(m, w.enums)
	model := nodemap.ModelName(m)
	result := &Result{Schema: property.NewSchema()}

	queue := []nodemap.Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if w.eligible(node) {
			descs, err := w.handleNode(m, factory, node)
			if err == nil {
				err = result.Schema.Add(descs...)
			}
			if err != nil {
				w.skip(result, model, node, err)
			} else {
				w.logDiscovery(node, descs, nil)
			}
		}

		if cat, ok := node.Category(); ok {
			queue = append(queue, cat.Features()...)
		}
	}

	return result, nil
}

func (w *Walker) eligible(node nodemap.Node) bool {
	if !node.IsFeature() || node.Visibility() == nodemap.VisibilityInvisible {
		return false
	}
	if nodemap.Classify(node) == nodemap.ClassCategory {
		return false
	}
	sel, ok := node.Selector()
	if !ok || !node.IsAvailable() || sel.IsSelector() {
		return false
	}
	return !w.denylist.Contains(node.Name())
}

// handleNode builds every descriptor for one eligible node.
func (w *Walker) handleNode(values nodemap.Values, factory *introspect.Factory, node nodemap.Node) ([]*property.Descriptor, error) {
	binding, err := ResolveSelector(node)
	if err != nil {
		return nil, err
	}

	if binding.IsDirect() {
		if len(binding.Entries) == 0 {
			return nil, ErrNoDescriptorsProduced
		}
		d, err := factory.Build(node, nil)
		if err != nil {
			return nil, err
		}
		return []*property.Descriptor{d}, nil
	}

	selector := binding.Selector
	enum, _ := selector.Enumeration()

	// Building a bound descriptor moves the selector; put it back afterwards.
	if orig, err := values.EnumValue(selector.Name()); err == nil {
		defer func() {
			if err := values.SetEnumValue(selector.Name(), orig); err != nil {
				w.debugLog("failed to restore selector",
					"selector", selector.Name(), "value", orig, "error", err)
			}
		}()
	}

	descs := make([]*property.Descriptor, 0, len(binding.Entries))
	for _, entry := range binding.Entries {
		e, ok := enum.EntryByName(entry)
		if !ok {
			return nil, fmt.Errorf("selector %s has no entry %q", selector.Name(), entry)
		}
		d, err := factory.Build(node, &property.SelectorBinding{
			Feature:  node.Name(),
			Selector: selector.Name(),
			Entry:    entry,
			Value:    e.Value,
		})
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}

	if len(descs) == 0 {
		return nil, ErrNoDescriptorsProduced
	}
	return descs, nil
}

func (w *Walker) skip(result *Result, model string, node nodemap.Node, err error) {
	nerr := &NodeError{
		Feature:     node.Name(),
		DisplayName: node.DisplayName(),
		Err:         err,
	}
	result.Skipped = append(result.Skipped, nerr)

	if w.logger != nil {
		w.logger.Warn("unable to install property",
			"feature", node.DisplayName(),
			"device", model,
			"error", err)
	}
	w.logDiscovery(node, nil, err)
}

func (w *Walker) logDiscovery(node nodemap.Node, descs []*property.Descriptor, err error) {
	ev := &plog.DiscoveryEvent{
		Feature:     node.Name(),
		DisplayName: node.DisplayName(),
	}
	for _, d := range descs {
		ev.Properties = append(ev.Properties, d.Name)
		if d.Selector != nil {
			ev.Selector = d.Selector.Selector
		}
	}
	if err != nil {
		ev.Error = err.Error()
	}

	w.events.Log(plog.Event{
		Timestamp: time.Now(),
		SessionID: w.sessionID,
		Device:    w.device,
		Category:  plog.CategoryDiscovery,
		Discovery: ev,
	})
}

func (w *Walker) debugLog(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Debug(msg, args...)
	}
}

// Install walks m with the default configuration.
func Install(m nodemap.NodeMap) (*Result, error) {
	return New(DefaultConfig()).Install(m)
}

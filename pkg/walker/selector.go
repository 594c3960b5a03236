package walker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genprop/genprop-go/pkg/nodemap"
)

// DirectFeature is the single entry reported for a feature without a
// selector.
const DirectFeature = "direct-feature"

// Resolver errors.
var (
	ErrInvalidNode              = errors.New("node has no selector capability")
	ErrUnsupportedSelectorArity = errors.New("more than one selector is not supported")
	ErrUnsupportedSelectorKind  = errors.New("only enumeration selectors are supported")
)

// Binding relates a feature to the selector multiplexing it.
type Binding struct {
	// Selector is the selector node, nil when the feature is direct.
	Selector nodemap.Node

	// Entries are the short selector entry names in device order, or
	// [DirectFeature] when the feature is direct.
	Entries []string
}

// IsDirect returns true if the feature is not multiplexed.
func (b Binding) IsDirect() bool {
	return b.Selector == nil
}

// ResolveSelector determines whether node is direct or gated by exactly one
// enumeration selector, and lists the selector entries that multiplex it.
// A selector with a single entry carries no information, so the node is
// then reported as direct with that one entry.
func ResolveSelector(node nodemap.Node) (Binding, error) {
	sel, ok := node.Selector()
	if !ok {
		return Binding{}, fmt.Errorf("%w: %s", ErrInvalidNode, node.Name())
	}

	selectors := sel.SelectingFeatures()
	switch {
	case len(selectors) == 0:
		return Binding{Entries: []string{DirectFeature}}, nil
	case len(selectors) > 1:
		return Binding{}, fmt.Errorf("%w: %q has %d selectors",
			ErrUnsupportedSelectorArity, node.DisplayName(), len(selectors))
	}

	selector := selectors[0]
	enum, ok := selector.Enumeration()
	if !ok || selector.Kind() != nodemap.KindEnumeration {
		return Binding{}, fmt.Errorf("%w: %q is selected by %s (%s)",
			ErrUnsupportedSelectorKind, node.DisplayName(), selector.Name(), selector.Kind())
	}

	prefix := "EnumEntry_" + selector.Name() + "_"
	raw := enum.Entries()
	entries := make([]string, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, strings.TrimPrefix(e.NodeName, prefix))
	}

	b := Binding{Entries: entries}
	if len(entries) > 1 {
		b.Selector = selector
	}
	return b, nil
}

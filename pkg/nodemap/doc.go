// Package nodemap defines the view of a device capability tree that the
// property discovery engine needs.
//
// # Node Map
//
// A camera describes its configurable features as a tree of nodes rooted at
// a category named "Root":
//
//	Root (category)
//	├── ImageFormatControl (category)
//	│   ├── Width          (integer, denylisted)
//	│   └── ReverseX       (boolean)
//	└── AnalogControl (category)
//	    ├── GainSelector   (enumeration, selector)
//	    └── Gain           (float, selected by GainSelector)
//
// Nodes carry metadata (name, display name, tooltip, visibility,
// availability, access) and a principal value kind. Optional capabilities
// are exposed through explicit queries rather than type assertions:
//
//   - Selector(): the node can answer "am I a selector" and "which features
//     select me".
//   - Category(): the node groups child features.
//   - Enumeration(): the node has named entries with integer codes.
//
// Classify folds these queries into a closed Class so callers can switch
// over a fixed set of node shapes.
//
// # Values
//
// Typed reads and writes go through the Values interface keyed by feature
// name. Implementations surface device communication problems as plain
// errors; callers decide how to wrap them.
package nodemap

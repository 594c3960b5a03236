// Package walker discovers the configurable properties of a device by
// walking its node map.
//
// Discovery is a single breadth-first pass starting at the Root category.
// Every eligible feature is resolved against its selector (if any) and
// turned into one descriptor per selector entry by an introspect.Factory:
//
//	Root
//	├── ImageFormatControl      (category, walked)
//	│   ├── Width               (denylisted)
//	│   └── ReverseX            → "ReverseX"
//	└── AnalogControl
//	    ├── GainSelector        (selector, never installed)
//	    └── Gain                → "Gain-All", "Gain-DigitalAll"
//
// A node that fails to resolve or build is logged and skipped; the rest of
// the walk continues. Install only fails when the node map has no Root.
package walker

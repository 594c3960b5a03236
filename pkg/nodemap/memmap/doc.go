// Package memmap implements an in-memory node map.
//
// It backs the simulated cameras in pkg/examples, the genprop CLI when run
// against a YAML description, and the tests of the discovery engine. Values
// of features that are selected by exactly one enumeration selector are
// stored per selector value, so writing "GainSelector" really changes which
// value "Gain" reads.
//
// # YAML format
//
//	nodes:
//	  - name: Root
//	    kind: category
//	    features: [AnalogControl]
//	  - name: AnalogControl
//	    kind: category
//	    features: [GainSelector, Gain]
//	  - name: GainSelector
//	    kind: enumeration
//	    value: All
//	    entries:
//	      - {name: All, value: 0}
//	      - {name: Red, value: 1}
//	  - name: Gain
//	    kind: float
//	    min: 0
//	    max: 24
//	    selectors: [GainSelector]
//	    values: {All: 0, Red: 1.5}
//
// Access is "rw" (default), "ro", "wo" or "na".
package memmap

// Package dispatch routes generic property reads and writes to typed node
// map accesses.
//
// A Dispatcher looks a property up in its schema and switches on the
// descriptor kind. Properties bound to a selector entry first write the
// selector and then access the feature:
//
//	Set("Gain-DigitalAll", 12)
//	  → SetEnumValue("GainSelector", 1)
//	  → SetInteger("Gain", 12)
//
// The two writes are not atomic with respect to other users of the same
// node map. Callers serialize access to one device.
package dispatch

// Package property defines the generic, host-consumable description of a
// device feature.
//
// A Descriptor is produced once per discovery pass for every concrete
// configurable value. Features that are multiplexed by a selector yield one
// Descriptor per selector entry, each carrying a SelectorBinding:
//
//	Gain (selected by GainSelector: All, Red)
//	  -> Gain-All  {Feature: Gain, Selector: GainSelector, Value: 0}
//	  -> Gain-Red  {Feature: Gain, Selector: GainSelector, Value: 1}
//
// Descriptors are collected in a Schema, which keeps discovery order and
// enforces unique names.
//
// # Access Control
//
// Flags mirror what the device reports:
//   - Readable / Writable: device-side access
//   - MutableReady: may only change while the device is idle
//   - MutablePlaying: may change at any time, including while capturing
package property

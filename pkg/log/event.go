package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents one captured property event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the device session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Device is the device model or full name.
	Device string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Discovery   *DiscoveryEvent   `cbor:"10,keyasint,omitempty"`
	Access      *AccessEvent      `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
}

// Failed returns true if the event reports an error.
func (e Event) Failed() bool {
	switch {
	case e.Discovery != nil:
		return e.Discovery.Error != ""
	case e.Access != nil:
		return e.Access.Error != ""
	default:
		return false
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDiscovery indicates a feature handled during discovery.
	CategoryDiscovery Category = 0
	// CategoryAccess indicates a property get or set.
	CategoryAccess Category = 1
	// CategoryState indicates a session state change.
	CategoryState Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDiscovery:
		return "DISCOVERY"
	case CategoryAccess:
		return "ACCESS"
	case CategoryState:
		return "STATE"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "discovery":
		return CategoryDiscovery, nil
	case "access":
		return CategoryAccess, nil
	case "state":
		return CategoryState, nil
	default:
		return 0, fmt.Errorf("invalid category %q (valid: discovery, access, state)", s)
	}
}

// Op is a property access operation.
type Op uint8

const (
	// OpGet reads a property.
	OpGet Op = 0
	// OpSet writes a property.
	OpSet Op = 1
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpGet:
		return "GET"
	case OpSet:
		return "SET"
	default:
		return "UNKNOWN"
	}
}

// ParseOp parses an operation name, case-insensitively.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(s) {
	case "get":
		return OpGet, nil
	case "set":
		return OpSet, nil
	default:
		return 0, fmt.Errorf("invalid op %q (valid: get, set)", s)
	}
}

// DiscoveryEvent captures the outcome of handling one feature.
type DiscoveryEvent struct {
	// Feature is the node name.
	Feature string `cbor:"1,keyasint"`

	// DisplayName is the node display name.
	DisplayName string `cbor:"2,keyasint,omitempty"`

	// Properties lists the installed property names (empty on failure).
	Properties []string `cbor:"3,keyasint,omitempty"`

	// Selector is the selector multiplexing the feature, if any.
	Selector string `cbor:"4,keyasint,omitempty"`

	// Error is the reason the feature was skipped.
	Error string `cbor:"5,keyasint,omitempty"`
}

// AccessEvent captures one property get or set.
type AccessEvent struct {
	// Op is the operation performed.
	Op Op `cbor:"1,keyasint"`

	// Property is the property name.
	Property string `cbor:"2,keyasint"`

	// Feature is the device feature accessed.
	Feature string `cbor:"3,keyasint,omitempty"`

	// Selector and SelectorValue are set for selector-bound properties.
	Selector      string `cbor:"4,keyasint,omitempty"`
	SelectorValue *int64 `cbor:"5,keyasint,omitempty"`

	// Value is the value read or written.
	Value any `cbor:"6,keyasint,omitempty"`

	// Error is the failure text, if the operation failed.
	Error string `cbor:"7,keyasint,omitempty"`

	// Duration is the time spent talking to the device.
	Duration time.Duration `cbor:"8,keyasint,omitempty"`
}

// StateChangeEvent captures session lifecycle changes.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

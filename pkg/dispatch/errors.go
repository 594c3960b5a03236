package dispatch

import (
	"errors"
	"fmt"
)

// Dispatch errors.
var (
	ErrUnknownProperty      = errors.New("unknown property")
	ErrNotReadable          = errors.New("property is not readable")
	ErrNotWritable          = errors.New("property is not writable")
	ErrLockedWhileCapturing = errors.New("property is locked while capturing")
	ErrValueType            = errors.New("value does not match property type")

	// ErrDeviceAccess matches every *AccessError.
	ErrDeviceAccess = errors.New("device access failed")
)

// Op is the attempted operation.
type Op string

const (
	OpGet Op = "get"
	OpSet Op = "set"
)

// AccessError reports a failed device read or write.
type AccessError struct {
	// Property is the property being accessed.
	Property string

	// Feature is the device feature whose access failed. For a failed
	// selector write this is the selector.
	Feature string

	Op  Op
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %s %s: %v", e.Op, e.Property, ErrDeviceAccess, e.Feature, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDeviceAccess.
func (e *AccessError) Is(target error) bool {
	return target == ErrDeviceAccess
}

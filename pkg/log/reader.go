package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for filtering events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// SessionID filters by exact session ID match.
	SessionID string

	// Device filters by exact device name match.
	Device string

	// Category filters by event category.
	Category *Category

	// Op filters access events by operation. Non-access events never match.
	Op *Op

	// Property filters by property name (access events) or installed
	// property name (discovery events).
	Property string

	// ErrorsOnly keeps only failed events.
	ErrorsOnly bool

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// Matches returns true if the event matches all filter criteria.
func (f *Filter) Matches(event Event) bool {
	if f.SessionID != "" && event.SessionID != f.SessionID {
		return false
	}
	if f.Device != "" && event.Device != f.Device {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.Op != nil && (event.Access == nil || event.Access.Op != *f.Op) {
		return false
	}
	if f.Property != "" && !mentionsProperty(event, f.Property) {
		return false
	}
	if f.ErrorsOnly && !event.Failed() {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

func mentionsProperty(event Event, name string) bool {
	switch {
	case event.Access != nil:
		return event.Access.Property == name
	case event.Discovery != nil:
		if event.Discovery.Feature == name {
			return true
		}
		for _, p := range event.Discovery.Properties {
			if p == name {
				return true
			}
		}
	}
	return false
}

// Reader reads events from a CBOR-encoded file.
// It provides an iterator interface for streaming large files.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that reads all events from the specified file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads events matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next event that matches the filter.
// Returns io.EOF when no more events are available.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/genprop/genprop-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output     string
	SessionID  string
	Device     string
	Property   string
	TimeStart  string
	TimeEnd    string
	Category   string
	Op         string
	ErrorsOnly bool
}

// BuildFilter converts options into a log filter.
func (opts FilterOptions) BuildFilter() (log.Filter, error) {
	filter := log.Filter{
		SessionID:  opts.SessionID,
		Device:     opts.Device,
		Property:   opts.Property,
		ErrorsOnly: opts.ErrorsOnly,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Category != "" {
		c, err := log.ParseCategory(opts.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}

	if opts.Op != "" {
		o, err := log.ParseOp(opts.Op)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Op = &o
	}

	return filter, nil
}

// RunFilter filters the log file and writes matching events to a new file.
// It returns the number of events written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	filter, err := opts.BuildFilter()
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return logger.Written(), fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}
	if err := logger.Err(); err != nil {
		return logger.Written(), fmt.Errorf("failed to write event: %w", err)
	}
	return logger.Written(), nil
}

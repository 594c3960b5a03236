// Package commands implements the genprop-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/genprop/genprop-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category   *log.Category
	Op         *log.Op
	Property   string
	ErrorsOnly bool
}

func (f ViewFilter) toFilter() log.Filter {
	return log.Filter{
		Category:   f.Category,
		Op:         f.Op,
		Property:   f.Property,
		ErrorsOnly: f.ErrorsOnly,
	}
}

// RunView reads the log file and writes every matching event to w.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.toFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenSessionID(event.SessionID)

	var typeLabel string
	switch {
	case event.Discovery != nil:
		typeLabel = event.Discovery.Feature
	case event.Access != nil:
		typeLabel = event.Access.Op.String() + " " + event.Access.Property
	case event.StateChange != nil:
		typeLabel = event.StateChange.NewState
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] %-9s %s\n", ts, session, event.Category.String(), typeLabel)
	if event.Device != "" {
		fmt.Fprintf(w, "  Device: %s\n", event.Device)
	}

	switch {
	case event.Discovery != nil:
		formatDiscoveryDetails(w, event.Discovery)
	case event.Access != nil:
		formatAccessDetails(w, event.Access)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	}

	fmt.Fprintln(w)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatDiscoveryDetails(w io.Writer, d *log.DiscoveryEvent) {
	if d.DisplayName != "" && d.DisplayName != d.Feature {
		fmt.Fprintf(w, "  Display: %s\n", d.DisplayName)
	}
	if d.Selector != "" {
		fmt.Fprintf(w, "  Selector: %s\n", d.Selector)
	}
	if len(d.Properties) > 0 {
		fmt.Fprintf(w, "  Properties: %s\n", strings.Join(d.Properties, ", "))
	}
	if d.Error != "" {
		fmt.Fprintf(w, "  Skipped: %s\n", d.Error)
	}
}

func formatAccessDetails(w io.Writer, a *log.AccessEvent) {
	if a.Feature != "" && a.Feature != a.Property {
		fmt.Fprintf(w, "  Feature: %s\n", a.Feature)
	}
	if a.Selector != "" && a.SelectorValue != nil {
		fmt.Fprintf(w, "  Selector: %s=%d\n", a.Selector, *a.SelectorValue)
	}
	if a.Value != nil {
		fmt.Fprintf(w, "  Value: %v\n", a.Value)
	}
	if a.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(a.Duration))
	}
	if a.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", a.Error)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	old := sc.OldState
	if old == "" {
		old = "-"
	}
	fmt.Fprintf(w, "  %s -> %s\n", old, sc.NewState)
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatDuration formats d with a unit suited to its magnitude.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return d.Round(time.Millisecond).String()
	}
}

// ParseCategoryFlag parses a category flag value.
func ParseCategoryFlag(s string) (log.Category, error) {
	return log.ParseCategory(s)
}

// ParseOpFlag parses an operation flag value.
func ParseOpFlag(s string) (log.Op, error) {
	return log.ParseOp(s)
}

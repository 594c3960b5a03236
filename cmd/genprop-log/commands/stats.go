package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/genprop/genprop-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Sessions         map[string]*SessionStats
	Properties       map[string]*PropertyStats
	Skipped          int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single camera session.
type SessionStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Device     string
	Discovered int
}

// PropertyStats holds access statistics for one property.
type PropertyStats struct {
	Gets   int
	Sets   int
	Errors int
	Total  time.Duration
}

// CollectStats reads the log file and aggregates statistics.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Sessions:         make(map[string]*SessionStats),
		Properties:       make(map[string]*PropertyStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Device != "" && sess.Device == "" {
			sess.Device = event.Device
		}

		switch {
		case event.Discovery != nil:
			if event.Discovery.Error != "" {
				stats.Skipped++
			} else {
				sess.Discovered += len(event.Discovery.Properties)
			}
		case event.Access != nil:
			ps, ok := stats.Properties[event.Access.Property]
			if !ok {
				ps = &PropertyStats{}
				stats.Properties[event.Access.Property] = ps
			}
			if event.Access.Op == log.OpSet {
				ps.Sets++
			} else {
				ps.Gets++
			}
			ps.Total += event.Access.Duration
			if event.Access.Error != "" {
				ps.Errors++
				stats.Errors++
			}
		}
	}
	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Property Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryDiscovery, log.CategoryAccess, log.CategoryState} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenSessionID(s.id), s.stats.Events, duration)
			if s.stats.Device != "" {
				fmt.Fprintf(w, "           Device: %s\n", s.stats.Device)
			}
			if s.stats.Discovered > 0 {
				fmt.Fprintf(w, "           Properties: %d\n", s.stats.Discovered)
			}
		}
	}

	if len(stats.Properties) > 0 {
		names := make([]string, 0, len(stats.Properties))
		for name := range stats.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Property Access:")
		for _, name := range names {
			ps := stats.Properties[name]
			n := ps.Gets + ps.Sets
			avg := time.Duration(0)
			if n > 0 {
				avg = ps.Total / time.Duration(n)
			}
			fmt.Fprintf(w, "  %-32s get %d, set %d, avg %s", name, ps.Gets, ps.Sets, formatDuration(avg))
			if ps.Errors > 0 {
				fmt.Fprintf(w, ", errors %d", ps.Errors)
			}
			fmt.Fprintln(w)
		}
	}

	if stats.Skipped > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Skipped Features: %d\n", stats.Skipped)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/genprop/genprop-go/pkg/log"
)

var baseTime = time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.plog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func sampleEvents() []log.Event {
	sel := int64(1)
	return []log.Event{
		{
			Timestamp: baseTime,
			SessionID: "sess-aaaa-1111",
			Device:    "a2A1920-51gcBAS",
			Category:  log.CategoryState,
			StateChange: &log.StateChangeEvent{
				NewState: "OPEN",
			},
		},
		{
			Timestamp: baseTime.Add(time.Millisecond),
			SessionID: "sess-aaaa-1111",
			Device:    "a2A1920-51gcBAS",
			Category:  log.CategoryDiscovery,
			Discovery: &log.DiscoveryEvent{
				Feature:    "Gain",
				Selector:   "GainSelector",
				Properties: []string{"Gain-All", "Gain-DigitalAll"},
			},
		},
		{
			Timestamp: baseTime.Add(2 * time.Millisecond),
			SessionID: "sess-aaaa-1111",
			Device:    "a2A1920-51gcBAS",
			Category:  log.CategoryDiscovery,
			Discovery: &log.DiscoveryEvent{
				Feature: "TriggerSoftware",
				Error:   "unsupported node kind",
			},
		},
		{
			Timestamp: baseTime.Add(3 * time.Millisecond),
			SessionID: "sess-aaaa-1111",
			Device:    "a2A1920-51gcBAS",
			Category:  log.CategoryAccess,
			Access: &log.AccessEvent{
				Op:            log.OpSet,
				Property:      "Gain-DigitalAll",
				Feature:       "Gain",
				Selector:      "GainSelector",
				SelectorValue: &sel,
				Value:         12.5,
				Duration:      250 * time.Microsecond,
			},
		},
		{
			Timestamp: baseTime.Add(4 * time.Millisecond),
			SessionID: "sess-aaaa-1111",
			Device:    "a2A1920-51gcBAS",
			Category:  log.CategoryAccess,
			Access: &log.AccessEvent{
				Op:       log.OpGet,
				Property: "ExposureTime",
				Feature:  "ExposureTime",
				Error:    "device access: timeout",
				Duration: 2 * time.Millisecond,
			},
		},
		{
			Timestamp: baseTime.Add(5 * time.Millisecond),
			SessionID: "sess-bbbb-2222",
			Device:    "Emulation",
			Category:  log.CategoryAccess,
			Access: &log.AccessEvent{
				Op:       log.OpGet,
				Property: "Gain",
				Feature:  "Gain",
				Value:    1.0,
			},
		},
	}
}

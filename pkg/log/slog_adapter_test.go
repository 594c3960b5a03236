package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := NewSlogAdapter(logger)

	sel := int64(1)
	a.Log(Event{
		Timestamp: time.Now(),
		SessionID: "sess-1",
		Device:    "cam",
		Category:  CategoryAccess,
		Access: &AccessEvent{
			Op:            OpGet,
			Property:      "Gain-AnalogAll",
			Selector:      "GainSelector",
			SelectorValue: &sel,
			Value:         int64(12),
		},
	})

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "session_id=sess-1", "op=GET", "property=Gain-AnalogAll", "selector_value=1", "value=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestSlogAdapterFailureLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := NewSlogAdapter(logger)

	a.Log(Event{
		SessionID: "sess-1",
		Category:  CategoryDiscovery,
		Discovery: &DiscoveryEvent{Feature: "LightSourcePreset", Error: "no settable entries"},
	})

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("expected WARN level: %s", out)
	}
	if !strings.Contains(out, "feature=LightSourcePreset") {
		t.Errorf("expected feature attr: %s", out)
	}
}

package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger.
// Useful during development to see discovery and access in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn level for failures.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
	}
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}

	switch {
	case event.Discovery != nil:
		d := event.Discovery
		attrs = append(attrs, slog.String("feature", d.Feature))
		if d.Selector != "" {
			attrs = append(attrs, slog.String("selector", d.Selector))
		}
		if len(d.Properties) > 0 {
			attrs = append(attrs, slog.Any("properties", d.Properties))
		}
		if d.Error != "" {
			attrs = append(attrs, slog.String("error", d.Error))
		}
	case event.Access != nil:
		ac := event.Access
		attrs = append(attrs,
			slog.String("op", ac.Op.String()),
			slog.String("property", ac.Property),
		)
		if ac.Selector != "" && ac.SelectorValue != nil {
			attrs = append(attrs,
				slog.String("selector", ac.Selector),
				slog.Int64("selector_value", *ac.SelectorValue),
			)
		}
		if ac.Value != nil {
			attrs = append(attrs, slog.Any("value", ac.Value))
		}
		if ac.Duration > 0 {
			attrs = append(attrs, slog.Duration("duration", ac.Duration))
		}
		if ac.Error != "" {
			attrs = append(attrs, slog.String("error", ac.Error))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	}

	level := slog.LevelDebug
	if event.Failed() {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "property", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)

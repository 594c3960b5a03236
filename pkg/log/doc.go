// Package log provides structured event capture for property discovery and
// property access.
//
// It is separate from operational logging (slog): the event log is a
// complete machine-readable trace of which properties a discovery pass
// installed or skipped and of every get/set dispatched to a device.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For analysis: write to a CBOR file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/genprop/camera.plog")
//
//	// Both
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Discovery: one event per feature the walker handled (DiscoveryEvent)
//   - Access: one event per get or set (AccessEvent)
//   - State: session state changes such as idle/capturing (StateChangeEvent)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys, by
// convention with a .plog extension. The genprop-log tool views, filters and
// summarizes them.
package log

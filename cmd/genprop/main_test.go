package main

import (
	"errors"
	"flag"
	"io"
	"path/filepath"
	"testing"

	plog "github.com/genprop/genprop-go/pkg/log"
)

func runWith(t *testing.T, cfg Config, args ...string) int {
	t.Helper()
	saved := config
	t.Cleanup(func() { config = saved })
	config = cfg

	if err := flag.CommandLine.Parse(args); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	return run()
}

func lastEvent(t *testing.T, path string) (plog.Event, int) {
	t.Helper()
	r, err := plog.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	var last plog.Event
	n := 0
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return last, n
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		last = e
		n++
	}
}

func TestRunFailedCommandClosesSession(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.plog")
	cfg := Config{Example: "emulator", LogLevel: "error", EventLog: logPath}

	if code := runWith(t, cfg, "get", "Brightness"); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	last, n := lastEvent(t, logPath)
	if n == 0 {
		t.Fatal("event log is empty")
	}
	if last.StateChange == nil || last.StateChange.NewState != "CLOSED" {
		t.Errorf("last event = %+v, want CLOSED state change", last)
	}
}

func TestRunCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.plog")
	cfg := Config{Example: "emulator", LogLevel: "error", EventLog: logPath}

	if code := runWith(t, cfg, "set", "Gain", "12"); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	last, _ := lastEvent(t, logPath)
	if last.StateChange == nil || last.StateChange.NewState != "CLOSED" {
		t.Errorf("last event = %+v, want CLOSED state change", last)
	}
}

func TestRunRejectsBadSetup(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"log level", Config{Example: "emulator", LogLevel: "loud"}},
		{"example", Config{Example: "linescan", LogLevel: "error"}},
		{"node map file", Config{NodeMapFile: filepath.Join(t.TempDir(), "missing.yaml"), LogLevel: "error"}},
		{"event log", Config{Example: "emulator", LogLevel: "error", EventLog: filepath.Join(t.TempDir(), "no", "dir.plog")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := runWith(t, tt.cfg, "status"); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
		})
	}
}

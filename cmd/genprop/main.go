// Command genprop discovers the properties of a camera node map and reads
// or writes them.
//
// The node map comes from a YAML description (-nodemap) or from one of the
// built-in example cameras (-example). Without a command genprop starts an
// interactive shell.
//
// Usage:
//
//	genprop [flags] [command [args]]
//
// Commands:
//
//	list [pattern]       List properties and current values
//	get <name>...        Read properties
//	set <name> <value>   Write a property
//	describe <name>      Show everything known about a property
//	skipped              Show features discovery could not install
//	status               Show camera status
//
// Flags:
//
//	-nodemap string      Node map YAML file
//	-example string      Built-in example camera (default "areascan")
//	-device-name string  Device full name (defaults to the model name)
//	-log-level string    Log level: debug, info, warn, error (default "info")
//	-event-log string    Write captured events to this file
//	-metadata            Show kind, access and range in listings
//
// Examples:
//
//	# Browse the example camera
//	genprop
//
//	# List gain properties of a described camera
//	genprop -nodemap camera.yaml list gain
//
//	# Switch auto exposure on and capture events
//	genprop -event-log camera.plog set ExposureAuto Continuous
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/genprop/genprop-go/cmd/genprop/interactive"
	"github.com/genprop/genprop-go/pkg/camera"
	"github.com/genprop/genprop-go/pkg/examples"
	plog "github.com/genprop/genprop-go/pkg/log"
	"github.com/genprop/genprop-go/pkg/nodemap/memmap"
)

// Config holds the command configuration.
type Config struct {
	NodeMapFile string
	Example     string
	DeviceName  string
	LogLevel    string
	EventLog    string
	Metadata    bool
}

var config Config

func init() {
	flag.StringVar(&config.NodeMapFile, "nodemap", "", "Node map YAML file")
	flag.StringVar(&config.Example, "example", "areascan", "Built-in example camera: "+strings.Join(examples.Names(), ", "))
	flag.StringVar(&config.DeviceName, "device-name", "", "Device full name (defaults to the model name)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.EventLog, "event-log", "", "Write captured events to this file")
	flag.BoolVar(&config.Metadata, "metadata", false, "Show kind, access and range in listings")
}

func main() {
	flag.Parse()
	os.Exit(run())
}

// run executes the command and returns the process exit code. Deferred
// closes run before the process exits.
func run() int {
	logger, err := setupLogging(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	nodes, err := loadNodeMap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	camCfg := camera.DefaultConfig()
	camCfg.DeviceName = config.DeviceName
	camCfg.Logger = logger

	events := []plog.Logger{plog.NewSlogAdapter(logger)}
	if config.EventLog != "" {
		fileLogger, err := plog.NewFileLogger(config.EventLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer closeEventLog(logger, fileLogger)
		events = append(events, fileLogger)
	}
	camCfg.EventLogger = plog.NewMultiLogger(events...)

	cam, err := camera.Open(nodes, camCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cam.Close()

	logger.Info("camera opened",
		"device", cam.Name(),
		"properties", cam.Schema().Len(),
		"skipped", len(cam.Skipped()))

	shell := interactive.New(cam, os.Stdout)
	shell.Formatter().ShowMetadata = config.Metadata

	if flag.NArg() > 0 {
		shell.Execute(strings.Join(flag.Args(), " "))
		if shell.LastError() != nil {
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := shell.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func closeEventLog(logger *slog.Logger, l *plog.FileLogger) {
	if err := l.Err(); err != nil {
		logger.Warn("event log is incomplete", "error", err)
	}
	if err := l.Close(); err != nil {
		logger.Warn("failed to close event log", "error", err)
	}
	logger.Debug("event log closed", "events", l.Written())
}

func setupLogging(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}

func loadNodeMap() (*memmap.Map, error) {
	if config.NodeMapFile != "" {
		return memmap.LoadFile(config.NodeMapFile)
	}
	return examples.ByName(config.Example)
}

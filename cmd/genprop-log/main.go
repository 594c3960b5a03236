// Command genprop-log views and analyzes property event logs.
//
// Log files are written by genprop when it runs with the -event-log flag.
//
// Usage:
//
//	genprop-log <command> [flags] <file.plog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSONL or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View only failed events
//	genprop-log view -errors camera.plog
//
//	# View every write to a property
//	genprop-log view -op set -property Gain-All camera.plog
//
//	# Export to CSV
//	genprop-log export -format csv -o camera.csv camera.plog
//
//	# Keep one session in a new file
//	genprop-log filter -session 6f1c2a3b-... -o session.plog camera.plog
//
//	# Show statistics
//	genprop-log stats camera.plog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/genprop/genprop-go/cmd/genprop-log/commands"
)

const usage = `genprop-log - Property Event Log Analyzer

Usage:
  genprop-log <command> [flags] <file.plog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSONL or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "genprop-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// requirePath exits unless the flag set holds a log file argument.
func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `genprop-log view - View log file in human-readable format

Usage:
  genprop-log view [flags] <file.plog>

Flags:
`)
		fs.PrintDefaults()
	}

	category := fs.String("category", "", "Filter by category (discovery, access, state)")
	op := fs.String("op", "", "Filter access events by operation (get, set)")
	property := fs.String("property", "", "Filter by property name")
	errorsOnly := fs.Bool("errors", false, "Show only failed events")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter := commands.ViewFilter{
		Property:   *property,
		ErrorsOnly: *errorsOnly,
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if *op != "" {
		o, err := commands.ParseOpFlag(*op)
		if err != nil {
			fail(err)
		}
		filter.Op = &o
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `genprop-log export - Export log file to JSONL or CSV format

Usage:
  genprop-log export [flags] <file.plog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `genprop-log filter - Filter log file and write to new file

Usage:
  genprop-log filter [flags] <file.plog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	session := fs.String("session", "", "Filter by session ID")
	device := fs.String("device", "", "Filter by device name")
	property := fs.String("property", "", "Filter by property name")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	category := fs.String("category", "", "Filter by category (discovery, access, state)")
	op := fs.String("op", "", "Filter access events by operation (get, set)")
	errorsOnly := fs.Bool("errors", false, "Keep only failed events")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:     *output,
		SessionID:  *session,
		Device:     *device,
		Property:   *property,
		TimeStart:  *timeStart,
		TimeEnd:    *timeEnd,
		Category:   *category,
		Op:         *op,
		ErrorsOnly: *errorsOnly,
	}

	count, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", count, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `genprop-log stats - Show statistics about the log file

Usage:
  genprop-log stats <file.plog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}

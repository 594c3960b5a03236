// Package interactive provides the interactive command-line interface
// for genprop.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/genprop/genprop-go/pkg/camera"
	"github.com/genprop/genprop-go/pkg/inspect"
)

// Commands lists the shell commands, in help order.
var Commands = []string{"list", "get", "set", "describe", "skipped", "capture", "status", "help", "quit"}

var errUsage = errors.New("invalid arguments")

// Shell runs property commands against an open camera.
type Shell struct {
	cam       *camera.Camera
	inspector *inspect.Inspector
	out       io.Writer
	lastErr   error
}

// New creates a shell writing its output to out.
func New(cam *camera.Camera, out io.Writer) *Shell {
	return &Shell{
		cam:       cam,
		inspector: inspect.NewInspector(cam, inspect.NewFormatter()),
		out:       out,
	}
}

// Formatter returns the formatter used for property output.
func (s *Shell) Formatter() *inspect.Formatter {
	return s.inspector.Formatter()
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "camera> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    &completer{shell: s},
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	prev := s.out
	s.out = rl.Stdout()
	defer func() { s.out = prev }()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		if quit := s.Execute(line); quit {
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
	}
}

// LastError returns the error reported by the most recent command, if any.
func (s *Shell) LastError() error {
	return s.lastErr
}

func (s *Shell) fail(err error) {
	s.lastErr = err
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

// Execute runs one command line and reports whether the user asked to quit.
func (s *Shell) Execute(line string) bool {
	s.lastErr = nil
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "list", "ls", "l":
		s.cmdList(args)
	case "get", "g":
		s.cmdGet(args)
	case "set", "s":
		s.cmdSet(args)
	case "describe", "desc", "d":
		s.cmdDescribe(args)
	case "skipped":
		s.cmdSkipped()
	case "capture":
		s.cmdCapture(args)
	case "status":
		s.cmdStatus()
	case "quit", "exit", "q":
		return true
	default:
		s.lastErr = fmt.Errorf("unknown command: %s", cmd)
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Camera Commands:
  Properties:
    list [pattern]         - List properties and current values
    get <name>             - Read a property
    set <name> <value>     - Write a property
    describe <name>        - Show everything known about a property
    skipped                - Show features discovery could not install

  Session:
    capture start|stop     - Enter or leave the capturing state
    status                 - Show camera status

  General:
    help                   - Show this help
    quit                   - Exit

  Names are case-insensitive; press TAB to complete them.
  Enumerations accept a symbolic name or an integer code.`)
}

func (s *Shell) cmdList(args []string) {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}
	rows := s.inspector.List(pattern)
	fmt.Fprint(s.out, s.inspector.Formatter().FormatPropertyTable(rows))
}

func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		s.lastErr = errUsage
		fmt.Fprintln(s.out, "Usage: get <name>")
		fmt.Fprintln(s.out, "  Example: get Gain-All")
		return
	}
	for _, name := range args {
		value, err := s.inspector.Read(name)
		if err != nil {
			s.fail(err)
			continue
		}
		fmt.Fprintf(s.out, "%s = %s\n", name, value)
	}
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		s.lastErr = errUsage
		fmt.Fprintln(s.out, "Usage: set <name> <value>")
		fmt.Fprintln(s.out, "  Example: set GainAuto Continuous")
		return
	}
	name := args[0]
	if err := s.inspector.Write(name, strings.Join(args[1:], " ")); err != nil {
		s.fail(err)
		return
	}
	if value, err := s.inspector.Read(name); err == nil {
		fmt.Fprintf(s.out, "%s = %s\n", name, value)
	} else {
		fmt.Fprintf(s.out, "%s written\n", name)
	}
}

func (s *Shell) cmdDescribe(args []string) {
	if len(args) < 1 {
		s.lastErr = errUsage
		fmt.Fprintln(s.out, "Usage: describe <name>")
		return
	}
	text, err := s.inspector.Describe(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprint(s.out, text)
}

func (s *Shell) cmdSkipped() {
	skipped := s.cam.Skipped()
	if len(skipped) == 0 {
		fmt.Fprintln(s.out, "No skipped features")
		return
	}
	for _, e := range skipped {
		fmt.Fprintf(s.out, "  %s: %v\n", e.Feature, e.Err)
	}
}

func (s *Shell) cmdCapture(args []string) {
	if len(args) != 1 {
		s.lastErr = errUsage
		fmt.Fprintln(s.out, "Usage: capture start|stop")
		return
	}
	var capturing bool
	switch strings.ToLower(args[0]) {
	case "start", "on":
		capturing = true
	case "stop", "off":
	default:
		s.lastErr = errUsage
		fmt.Fprintln(s.out, "Usage: capture start|stop")
		return
	}
	if err := s.cam.SetCapturing(capturing); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "State: %s\n", s.cam.State())
}

func (s *Shell) cmdStatus() {
	fmt.Fprintf(s.out, "Device:     %s\n", s.cam.Name())
	fmt.Fprintf(s.out, "Model:      %s\n", s.cam.Model())
	fmt.Fprintf(s.out, "Session:    %s\n", s.cam.ID())
	fmt.Fprintf(s.out, "State:      %s\n", s.cam.State())
	fmt.Fprintf(s.out, "Properties: %d\n", s.cam.Schema().Len())
	fmt.Fprintf(s.out, "Skipped:    %d\n", len(s.cam.Skipped()))
	fmt.Fprintf(s.out, "Cached:     %t\n", s.cam.Cached())
}

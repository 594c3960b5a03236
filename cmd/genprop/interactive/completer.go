package interactive

import (
	"strings"

	"github.com/genprop/genprop-go/pkg/inspect"
)

// completer completes command names and property names for readline.
type completer struct {
	shell *Shell
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	head := string(line[:pos])
	fields := strings.Fields(head)
	endsWithSpace := strings.HasSuffix(head, " ")

	// Completing the command itself.
	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}
		return suffixes(matchPrefix(Commands, prefix), prefix)
	}

	multi := true
	switch strings.ToLower(fields[0]) {
	case "get", "g":
	case "set", "s", "describe", "desc", "d":
		multi = false
	default:
		return nil, 0
	}

	argIndex := len(fields) - 1
	if endsWithSpace {
		argIndex++
	}
	if !multi && argIndex > 1 {
		return nil, 0
	}

	prefix := ""
	if !endsWithSpace {
		prefix = fields[len(fields)-1]
	}
	return suffixes(inspect.Complete(c.shell.cam.Schema(), prefix), prefix)
}

func matchPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, strings.ToLower(prefix)) {
			out = append(out, c)
		}
	}
	return out
}

// suffixes returns what each candidate adds after prefix, plus a trailing
// space, and the length readline should treat as already typed.
func suffixes(candidates []string, prefix string) ([][]rune, int) {
	n := len([]rune(prefix))
	out := make([][]rune, 0, len(candidates))
	for _, c := range candidates {
		r := []rune(c)
		out = append(out, append(r[n:], ' '))
	}
	return out, n
}

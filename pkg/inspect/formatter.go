package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/genprop/genprop-go/pkg/property"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes kind, access and range information.
	ShowMetadata bool

	// ShowToolTips includes the property tooltip on its own line.
	ShowToolTips bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatValue formats a property value for display. Enumeration codes are
// shown with their symbolic name when the descriptor knows it.
func (f *Formatter) FormatValue(desc *property.Descriptor, value any) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int64:
		if desc != nil && desc.Kind == property.KindEnumeration && desc.Enum != nil {
			if ev, ok := desc.Enum.ByValue(v); ok {
				return fmt.Sprintf("%s (%d)", ev.Name, v)
			}
			return fmt.Sprintf("UNKNOWN(%d)", v)
		}
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatRange formats the bounds or choices of a property.
func FormatRange(desc *property.Descriptor) string {
	switch {
	case desc.Int != nil:
		return fmt.Sprintf("[%d, %d]", desc.Int.Min, desc.Int.Max)
	case desc.Float != nil:
		return fmt.Sprintf("[%s, %s]",
			strconv.FormatFloat(desc.Float.Min, 'g', -1, 64),
			strconv.FormatFloat(desc.Float.Max, 'g', -1, 64))
	case desc.Enum != nil:
		names := desc.Settable
		if len(names) == 0 {
			names = desc.Enum.Names()
		}
		return "{" + strings.Join(names, ", ") + "}"
	default:
		return ""
	}
}

// PropertyRow represents a formatted property for display.
type PropertyRow struct {
	Name   string
	Label  string
	Value  string
	Kind   string
	Access string
	Range  string
	Tip    string
}

// Row builds the display row of a descriptor with the given current value.
func (f *Formatter) Row(desc *property.Descriptor, value any) PropertyRow {
	return PropertyRow{
		Name:   desc.Name,
		Label:  desc.Label,
		Value:  f.FormatValue(desc, value),
		Kind:   desc.Kind.String(),
		Access: desc.Flags.String(),
		Range:  FormatRange(desc),
		Tip:    desc.ToolTip,
	}
}

// FormatPropertyTable formats a list of properties as a table.
func (f *Formatter) FormatPropertyTable(rows []PropertyRow) string {
	if len(rows) == 0 {
		return f.Indent(1, "(no properties)")
	}

	width := 0
	for _, row := range rows {
		if len(row.Name) > width {
			width = len(row.Name)
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(f.Indent(1, fmt.Sprintf("%-*s = %s", width, row.Name, row.Value)))
		if f.ShowMetadata {
			meta := row.Kind + ", " + row.Access
			if row.Range != "" {
				meta += ", " + row.Range
			}
			sb.WriteString(" (" + meta + ")")
		}
		sb.WriteString("\n")
		if f.ShowToolTips && row.Tip != "" {
			sb.WriteString(f.Indent(2, row.Tip))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FormatDescriptor formats every attribute of a descriptor, one per line.
func (f *Formatter) FormatDescriptor(desc *property.Descriptor) string {
	var sb strings.Builder
	line := func(k, v string) {
		if v != "" {
			sb.WriteString(f.Indent(1, fmt.Sprintf("%-9s %s\n", k+":", v)))
		}
	}

	sb.WriteString(desc.Name + "\n")
	line("label", desc.Label)
	line("tooltip", desc.ToolTip)
	line("kind", desc.Kind.String())
	line("access", desc.Flags.String())
	line("range", FormatRange(desc))
	line("default", f.FormatValue(desc, desc.Default))
	line("feature", desc.Feature)
	if desc.Selector != nil {
		line("selector", fmt.Sprintf("%s=%s (%d)", desc.Selector.Selector, desc.Selector.Entry, desc.Selector.Value))
	}
	if desc.Enum != nil {
		line("type", desc.Enum.Name)
		for _, ev := range desc.Enum.Values {
			entry := fmt.Sprintf("%d %s", ev.Value, ev.Name)
			if ev.Description != "" {
				entry += "  " + ev.Description
			}
			sb.WriteString(f.Indent(2, entry+"\n"))
		}
	}
	return sb.String()
}

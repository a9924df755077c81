// Package render writes structured payloads to the output sink as
// two-space-indented JSON with null fields pruned. When the sink is an
// interactive terminal the JSON is syntax highlighted; otherwise it is
// emitted as plain text. The rendering style is a property of the sink, not
// of the caller.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const indentStep = "  "

var (
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	stringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	boolStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	nullStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer serializes structured payloads to a writer.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer for the given writer, highlighting output
// when the writer is an interactive terminal.
func NewPrinter(out io.Writer) *Printer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{out: out, color: color}
}

// NewPlainPrinter creates a printer that never highlights.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print serializes one payload followed by a newline. The payload may be any
// JSON-marshalable value, including json.RawMessage.
func (p *Printer) Print(v interface{}) error {
	normalized, err := normalize(v)
	if err != nil {
		return fmt.Errorf("failed to serialize payload: %w", err)
	}

	var text string
	if p.color {
		var b strings.Builder
		writeValue(&b, normalized, "")
		text = b.String()
	} else {
		out, err := json.MarshalIndent(normalized, "", indentStep)
		if err != nil {
			return fmt.Errorf("failed to serialize payload: %w", err)
		}
		text = string(out)
	}

	_, err = fmt.Fprintln(p.out, text)
	return err
}

// normalize round-trips the payload through JSON into generic values and
// prunes null object members, preserving all present values and nesting.
func normalize(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	decoder.UseNumber()
	var generic interface{}
	if err := decoder.Decode(&generic); err != nil {
		return nil, err
	}
	return prune(generic), nil
}

// prune removes null-valued object members recursively. Array elements are
// kept as-is: only absent fields are omitted, not null list entries.
func prune(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		pruned := make(map[string]interface{}, len(value))
		for key, member := range value {
			if member == nil {
				continue
			}
			pruned[key] = prune(member)
		}
		return pruned
	case []interface{}:
		pruned := make([]interface{}, len(value))
		for i, element := range value {
			pruned[i] = prune(element)
		}
		return pruned
	default:
		return v
	}
}

// writeValue renders a normalized value with syntax highlighting, matching
// the layout of json.MarshalIndent (sorted keys, two-space indent).
func writeValue(b *strings.Builder, v interface{}, indent string) {
	switch value := v.(type) {
	case map[string]interface{}:
		if len(value) == 0 {
			b.WriteString("{}")
			return
		}
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteString("{\n")
		inner := indent + indentStep
		for i, key := range keys {
			b.WriteString(inner)
			b.WriteString(keyStyle.Render(strconv.Quote(key)))
			b.WriteString(": ")
			writeValue(b, value[key], inner)
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteByte('}')
	case []interface{}:
		if len(value) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		inner := indent + indentStep
		for i, element := range value {
			b.WriteString(inner)
			writeValue(b, element, inner)
			if i < len(value)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteByte(']')
	case string:
		b.WriteString(stringStyle.Render(strconv.Quote(value)))
	case json.Number:
		b.WriteString(numberStyle.Render(value.String()))
	case bool:
		b.WriteString(boolStyle.Render(strconv.FormatBool(value)))
	case nil:
		b.WriteString(nullStyle.Render("null"))
	default:
		// Unreachable for values produced by normalize.
		out, _ := json.Marshal(value)
		b.Write(out)
	}
}

package report

import (
	"fmt"
	"io"
	"strings"
)

// Table renders build output as an aligned human-readable text table, one
// line per layer with its thickness and cumulative radius or height.
type Table struct {
	w io.Writer
}

// NewTable returns a table writer emitting to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// Header implements Sink.
func (t *Table) Header(title string) {
	fmt.Fprintf(t.w, "\n# %s #\n%s\n\n", title, strings.Repeat("=", len(title)+4))
}

// Comment implements Sink.
func (t *Table) Comment(text string) {
	fmt.Fprintln(t.w, text)
}

// Layer implements Sink.
func (t *Table) Layer(desc, symbol string, thickness, cum float64) {
	if symbol != "" {
		symbol = "(" + symbol + ")"
	}
	fmt.Fprintf(t.w, "%-45s %10.3f %10.3f   %s\n", desc, thickness, cum, symbol)
}

// Value implements Sink.
func (t *Table) Value(label, symbol string, v float64) {
	fmt.Fprintf(t.w, "%-56s %-30s %14.6e\n", label, "("+symbol+")", v)
}

// IntValue implements Sink.
func (t *Table) IntValue(label, symbol string, v int) {
	fmt.Fprintf(t.w, "%-56s %-30s %14d\n", label, "("+symbol+")", v)
}

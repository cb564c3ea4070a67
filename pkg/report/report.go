// Package report receives the structured output of the build calculators.
//
// Two kinds of entry exist. Layers carry a thickness and a running
// cumulative radius or height and appear in strict physical stacking order.
// Values are scalar results keyed by a symbol. Synthetic dividers such as
// "Gap" or "Midplane" are layers with an empty symbol; they appear in the
// human-readable table but are skipped when the machine-readable record is
// enumerated by symbol.
package report

// Sink consumes build output in emission order. Implementations must not
// reorder entries: insertion order is the physical layer order.
type Sink interface {
	// Header starts a new titled section.
	Header(title string)

	// Comment adds free-form explanatory text.
	Comment(text string)

	// Layer records one build layer. symbol may be empty for synthetic
	// dividers.
	Layer(desc, symbol string, thickness, cumulative float64)

	// Value records a named scalar result.
	Value(label, symbol string, v float64)

	// IntValue records a named integer result.
	IntValue(label, symbol string, v int)
}

// Null discards all output. Useful when a solver runs inside an iteration
// loop and only the final pass should report.
var Null Sink = nullSink{}

type nullSink struct{}

func (nullSink) Header(string)                        {}
func (nullSink) Comment(string)                       {}
func (nullSink) Layer(string, string, float64, float64) {}
func (nullSink) Value(string, string, float64)        {}
func (nullSink) IntValue(string, string, int)         {}

// Tee duplicates output to several sinks, e.g. a human table and a machine
// record in one pass.
func Tee(sinks ...Sink) Sink { return teeSink(sinks) }

type teeSink []Sink

func (t teeSink) Header(title string) {
	for _, s := range t {
		s.Header(title)
	}
}

func (t teeSink) Comment(text string) {
	for _, s := range t {
		s.Comment(text)
	}
}

func (t teeSink) Layer(desc, symbol string, thickness, cum float64) {
	for _, s := range t {
		s.Layer(desc, symbol, thickness, cum)
	}
}

func (t teeSink) Value(label, symbol string, v float64) {
	for _, s := range t {
		s.Value(label, symbol, v)
	}
}

func (t teeSink) IntValue(label, symbol string, v int) {
	for _, s := range t {
		s.IntValue(label, symbol, v)
	}
}

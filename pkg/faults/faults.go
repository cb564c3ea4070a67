// Package faults provides the numbered diagnostic codes raised by the build
// calculators.
//
// Faults are fire-and-forget: a solver reports a fault and continues with a
// corrected or substituted value. Nothing in this package aborts a
// computation. Codes are stable integers so downstream tooling can match on
// them across releases.
//
// # Usage
//
//	rec := faults.NewCollector()
//	rec.Report(faults.CodeTopRadiusBelowMin, []float64{rTop, rOut}, nil)
//	if f, ok := rec.Last(faults.CodeTopRadiusBelowMin); ok {
//	    // inspect f.Floats
//	}
package faults

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Code is a stable numeric fault identifier.
type Code int

// Fault codes raised by the build calculators.
const (
	// CodeOutboardAreaCollapse: first-wall outboard area is non-positive
	// after the divertor/heating coverage reduction.
	CodeOutboardAreaCollapse Code = 61

	// CodeRippleFitExceeded: the ripple fit was evaluated outside its range
	// of applicability. One of the three specific codes below follows.
	CodeRippleFitExceeded Code = 62

	// CodeBeamDuctTooNarrow: the gap between adjacent outboard TF coil legs
	// is narrower than the neutral beam duct.
	CodeBeamDuctTooNarrow Code = 63

	// CodeRippleWPRatioOutOfRange: winding-pack width ratio x outside the
	// fitted range.
	CodeRippleWPRatioOutOfRange Code = 141

	// CodeRippleCoilCountOutOfRange: TF coil count outside the fitted range.
	CodeRippleCoilCountOutOfRange Code = 142

	// CodeRippleEdgeRatioOutOfRange: plasma-edge to outboard-leg radius
	// ratio outside the fitted range.
	CodeRippleEdgeRatioOutOfRange Code = 143

	// CodeTopRadiusAboveShapeLimit: user-set centrepost top radius exceeds
	// the radius allowed by the plasma shape.
	CodeTopRadiusAboveShapeLimit Code = 256

	// CodeTopRadiusBelowMin: centrepost top radius fell below 1.01x the
	// midplane outer radius and was clamped.
	CodeTopRadiusBelowMin Code = 268
)

// Fault is one recorded diagnostic.
type Fault struct {
	Code   Code
	Floats []float64 // up to two float payload fields
	Ints   []int     // up to two int payload fields
}

// String renders a fault for logs and error summaries.
func (f Fault) String() string {
	return fmt.Sprintf("fault %d floats=%v ints=%v", f.Code, f.Floats, f.Ints)
}

// Reporter receives diagnostics from the solvers. Implementations must not
// block; reporting is on the hot path of every evaluation.
type Reporter interface {
	Report(code Code, floats []float64, ints []int)
}

// Collector records every reported fault in order. It is safe for
// concurrent use so one collector can serve parallel UQ evaluations.
type Collector struct {
	mu     sync.Mutex
	faults []Fault
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report implements Reporter.
func (c *Collector) Report(code Code, floats []float64, ints []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.faults = append(c.faults, Fault{Code: code, Floats: floats, Ints: ints})
}

// All returns the recorded faults in report order.
func (c *Collector) All() []Fault {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Fault, len(c.faults))
	copy(out, c.faults)
	return out
}

// Last returns the most recent fault with the given code. Later reports of
// the same code shadow earlier ones, matching the solver's last-wins
// diagnostic convention.
func (c *Collector) Last(code Code) (Fault, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.faults) - 1; i >= 0; i-- {
		if c.faults[i].Code == code {
			return c.faults[i], true
		}
	}
	return Fault{}, false
}

// Count returns the number of recorded faults.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.faults)
}

// Reset discards all recorded faults.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.faults = c.faults[:0]
}

// LogReporter forwards faults to a structured logger as warnings.
type LogReporter struct {
	Logger *log.Logger
}

// Report implements Reporter.
func (r LogReporter) Report(code Code, floats []float64, ints []int) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Warn("build diagnostic", "code", int(code), "floats", floats, "ints", ints)
}

// Tee duplicates faults to several reporters, e.g. a collector and a log.
func Tee(reporters ...Reporter) Reporter { return teeReporter(reporters) }

type teeReporter []Reporter

func (t teeReporter) Report(code Code, floats []float64, ints []int) {
	for _, r := range t {
		r.Report(code, floats, ints)
	}
}

// Discard is a Reporter that drops every fault.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Code, []float64, []int) {}

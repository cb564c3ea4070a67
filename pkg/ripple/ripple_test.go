package ripple

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/fusionkit/torus/pkg/params"
)

func testModel() Model {
	return Model{Logger: log.New(io.Discard)}
}

// referenceMachine mirrors the built-in baseline after the radial solver has
// placed the TF inboard leg.
func referenceMachine() *params.Machine {
	m := params.Defaults()
	m.Geometry.RTFInboardIn = 2.5
	return m
}

func TestComputeReferenceCase(t *testing.T) {
	m := referenceMachine()

	res := testModel().Compute(m, m.TF.MaxRipple, 13.79)

	// Fit variable x = t_wp_max*n/rmajor for the baseline winding pack.
	if math.Abs(res.WPRatio-2.0908613979462682) > 1e-9 {
		t.Errorf("WPRatio = %v", res.WPRatio)
	}
	if math.Abs(res.RipplePct-1.577550404902011) > 1e-6 {
		t.Errorf("RipplePct = %v", res.RipplePct)
	}
	if math.Abs(res.MinOutboardRadius-14.760840545521916) > 1e-6 {
		t.Errorf("MinOutboardRadius = %v", res.MinOutboardRadius)
	}
	if res.Flag != OK {
		t.Errorf("Flag = %v, want OK", res.Flag)
	}
}

func TestComputeAtMinRadiusMeetsLimit(t *testing.T) {
	m := referenceMachine()
	md := testModel()

	res := md.Compute(m, m.TF.MaxRipple, 13.79)
	res2 := md.Compute(m, m.TF.MaxRipple, res.MinOutboardRadius)

	if math.Abs(res2.RipplePct-m.TF.MaxRipple) > 1e-6 {
		t.Errorf("ripple at minimum radius = %v, want %v", res2.RipplePct, m.TF.MaxRipple)
	}
}

func TestComputePictureFrame(t *testing.T) {
	m := referenceMachine()
	m.TF.Shape = params.ShapePicture

	res := testModel().Compute(m, 1.0, 14.0)

	edge := m.EdgeRadius()
	n := m.TF.N
	want := 100.0 * math.Pow(edge/14.0, n)
	if math.Abs(res.RipplePct-want) > 1e-9 {
		t.Errorf("RipplePct = %v, want %v", res.RipplePct, want)
	}

	// Exact inversion: ripple at the minimum radius equals the limit.
	rip := 100.0 * math.Pow(edge/res.MinOutboardRadius, n)
	if math.Abs(rip-1.0) > 1e-9 {
		t.Errorf("ripple at minimum radius = %v, want 1.0", rip)
	}

	// The analytical form has no applicability limits.
	if res.Flag != OK {
		t.Errorf("Flag = %v, want OK", res.Flag)
	}
	if res.WPRatio != 0 {
		t.Errorf("WPRatio = %v, want 0 for picture-frame coils", res.WPRatio)
	}
}

func TestComputeFlagCoilCount(t *testing.T) {
	m := referenceMachine()
	m.TF.N = 12 // below the fitted range of 16..20

	res := testModel().Compute(m, m.TF.MaxRipple, 14.0)
	if res.Flag != CoilCountOutOfRange {
		t.Errorf("Flag = %v, want CoilCountOutOfRange", res.Flag)
	}
}

func TestComputeFlagEdgeRatio(t *testing.T) {
	m := referenceMachine()

	// Leg far outside the machine: edge ratio below 0.70.
	res := testModel().Compute(m, m.TF.MaxRipple, 30.0)
	if res.Flag != EdgeRatioOutOfRange {
		t.Errorf("Flag = %v, want EdgeRatioOutOfRange", res.Flag)
	}
}

func TestComputeFlagLastCheckWins(t *testing.T) {
	m := referenceMachine()
	m.TF.N = 12 // coil count violation

	// Edge ratio violation too; the later check shadows the earlier one.
	res := testModel().Compute(m, m.TF.MaxRipple, 30.0)
	if res.Flag != EdgeRatioOutOfRange {
		t.Errorf("Flag = %v, want EdgeRatioOutOfRange to shadow CoilCountOutOfRange", res.Flag)
	}
}

func TestComputeInversionBaseClamp(t *testing.T) {
	m := referenceMachine()

	// A vanishing ripple limit drives the power-law base to the clamp; the
	// minimum radius must stay finite and positive.
	res := testModel().Compute(m, 1e-9, 14.0)
	if math.IsInf(res.MinOutboardRadius, 0) || math.IsNaN(res.MinOutboardRadius) {
		t.Fatalf("MinOutboardRadius = %v, want finite", res.MinOutboardRadius)
	}
	if res.MinOutboardRadius <= 0 {
		t.Errorf("MinOutboardRadius = %v, want positive", res.MinOutboardRadius)
	}
}

func TestApplicabilityString(t *testing.T) {
	cases := map[Applicability]string{
		OK:                  "ok",
		OutOfFitRange:       "wp-ratio-out-of-range",
		CoilCountOutOfRange: "coil-count-out-of-range",
		EdgeRatioOutOfRange: "edge-ratio-out-of-range",
	}
	for flag, want := range cases {
		if got := flag.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", flag, got, want)
		}
	}
}

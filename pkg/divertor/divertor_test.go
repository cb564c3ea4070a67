package divertor

import (
	"math"
	"testing"

	"github.com/fusionkit/torus/pkg/params"
)

func TestComputeReferenceCase(t *testing.T) {
	m := params.Defaults()

	res := Compute(m)

	if res.Simplified {
		t.Fatal("conventional device should use the full geometry")
	}

	approx := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	approx("ArcRadiusOut", res.ArcRadiusOut, 4.330357142857143)
	approx("ArcRadiusIn", res.ArcRadiusIn, 6.770833333333332)
	approx("ThetaOut", res.ThetaOut, 0.8922110978868072)
	approx("ThetaIn", res.ThetaIn, 0.19294755036517391)
	approx("XPoint.R", res.XPoint.R, 7.0)
	approx("XPoint.Z", res.XPoint.Z, -4.25)
	approx("StrikeIn.R", res.StrikeIn.R, 6.018556701030928)
	approx("StrikeIn.Z", res.StrikeIn.Z, -4.441752577319588)
	approx("StrikeOut.R", res.StrikeOut.R, 7.941538461538462)
	approx("StrikeOut.Z", res.StrikeOut.Z, -5.417692307692308)
	approx("Height", res.Height, 1.9150646541573022)
}

func TestComputeGeometryInvariants(t *testing.T) {
	m := params.Defaults()
	res := Compute(m)

	// The X-point sits below the midplane at the plasma bottom.
	if res.XPoint.Z != -m.Plasma.HalfHeight() {
		t.Errorf("XPoint.Z = %v, want %v", res.XPoint.Z, -m.Plasma.HalfHeight())
	}

	// Both strike points lie below the X-point.
	if res.StrikeIn.Z >= res.XPoint.Z {
		t.Errorf("inner strike point %v not below X-point %v", res.StrikeIn.Z, res.XPoint.Z)
	}
	if res.StrikeOut.Z >= res.XPoint.Z {
		t.Errorf("outer strike point %v not below X-point %v", res.StrikeOut.Z, res.XPoint.Z)
	}

	// Inner leg goes inward, outer leg outward.
	if res.StrikeIn.R >= res.XPoint.R {
		t.Errorf("inner strike point R %v not inside X-point R %v", res.StrikeIn.R, res.XPoint.R)
	}
	if res.StrikeOut.R <= res.XPoint.R {
		t.Errorf("outer strike point R %v not outside X-point R %v", res.StrikeOut.R, res.XPoint.R)
	}

	// Each strike point sits at the midpoint of its plate.
	midIR := 0.5 * (res.PlateInTop.R + res.PlateInBottom.R)
	midIZ := 0.5 * (res.PlateInTop.Z + res.PlateInBottom.Z)
	if math.Abs(midIR-res.StrikeIn.R) > 1e-9 || math.Abs(midIZ-res.StrikeIn.Z) > 1e-9 {
		t.Errorf("inner plate midpoint (%v, %v) != strike point (%v, %v)",
			midIR, midIZ, res.StrikeIn.R, res.StrikeIn.Z)
	}

	if res.Height <= 0 {
		t.Errorf("Height = %v, want positive", res.Height)
	}
}

func TestComputeTightAspectRatio(t *testing.T) {
	m := params.Defaults()
	m.Plasma.Tight = true

	res := Compute(m)

	if !res.Simplified {
		t.Fatal("tight-aspect-ratio device should use the simplified envelope")
	}
	want := 1.75 * m.Plasma.RMinor
	if res.Height != want {
		t.Errorf("Height = %v, want %v", res.Height, want)
	}
	if res.XPoint != (Point{}) || res.StrikeOut != (Point{}) {
		t.Error("simplified result should leave the leg geometry zero")
	}
}

func TestComputeNaNPropagation(t *testing.T) {
	// Triangularity above one pushes the outer-leg arcsine argument past 1;
	// the NaN must reach the output rather than being clamped.
	m := params.Defaults()
	m.Plasma.Triang = 1.5

	res := Compute(m)

	if !math.IsNaN(res.ThetaOut) {
		t.Fatalf("expected NaN outer leg angle, got %v", res.ThetaOut)
	}
	if !math.IsNaN(res.Height) {
		t.Errorf("Height = %v, want NaN propagated from the leg angles", res.Height)
	}
}

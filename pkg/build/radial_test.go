package build

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/fusionkit/torus/pkg/faults"
	"github.com/fusionkit/torus/pkg/params"
	"github.com/fusionkit/torus/pkg/report"
)

func testSolver() (*Solver, *faults.Collector) {
	collector := faults.NewCollector()
	return New(log.New(io.Discard), collector), collector
}

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestRadialReferenceCase(t *testing.T) {
	s, collector := testSolver()
	m := params.Defaults()

	s.Radial(m, nil)

	g := m.Geometry
	approx(t, "r_tf_inboard_in", g.RTFInboardIn, 2.5, 1e-12)
	approx(t, "r_tf_inboard_mid", g.RTFInboardMid, 3.125, 1e-12)
	approx(t, "r_tf_inboard_out", g.RTFInboardOut, 3.75, 1e-12)
	approx(t, "dr_tf_wp", m.TF.WPThickness, 0.597944801512114, 1e-9)
	approx(t, "r_vv_inboard_out", g.RVVInboardOut, 4.17, 1e-12)
	approx(t, "r_sh_inboard_out", g.RShInboardOut, 4.57, 1e-12)
	approx(t, "rsldo", g.RShieldOuter, 12.535, 1e-12)

	// The baseline inboard stack closes exactly on the plasma centre.
	approx(t, "rbld", g.RBuild, m.Plasma.RMajor, 1e-9)

	// Ripple feedback pushes the outboard leg out to the 0.6% limit.
	approx(t, "r_tf_outboard_mid", g.RTFOutboardMid, 14.760840545521916, 1e-6)
	approx(t, "ripple", m.TF.Ripple, 0.6, 1e-6)
	approx(t, "gapsto", m.Build.OutboardGap, 1.1808405455219146, 1e-6)

	// First-wall areas for the two-ellipse model with divertor coverage.
	approx(t, "fwareaib", g.FWAreaIn, 540.6684773072135, 1e-6)
	approx(t, "fwareaob", g.FWAreaOut, 856.2085825931885, 1e-6)
	approx(t, "fwarea", g.FWArea, 1396.877059900402, 1e-6)

	if n := collector.Count(); n != 0 {
		t.Errorf("reference case raised %d faults: %v", n, collector.All())
	}
}

func TestRadialNoRippleFeedback(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.TF.MaxRipple = 5.0 // generous limit, first estimate stands

	s.Radial(m, nil)

	approx(t, "r_tf_outboard_mid", m.Geometry.RTFOutboardMid, 13.79, 1e-9)
	if m.Build.OutboardGap != m.Build.OutboardGapMin {
		t.Errorf("gapsto = %v, want gapomin %v", m.Build.OutboardGap, m.Build.OutboardGapMin)
	}
}

func TestRadialLayerTableClosure(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	rec := report.NewRecord()

	s.Radial(m, rec)

	layers := rec.NamedLayers()
	if len(layers) == 0 {
		t.Fatal("no layers recorded")
	}

	// Cumulative radii are the running sum of the thicknesses.
	sum := 0.0
	for _, l := range layers {
		sum += l.Thickness
		if math.Abs(l.Cumulative-sum) > 1e-9 {
			t.Fatalf("layer %q cumulative %v, want running sum %v", l.Desc, l.Cumulative, sum)
		}
	}

	// The table ends at the outer edge of the TF outboard leg.
	last := layers[len(layers)-1]
	want := m.Geometry.RTFOutboardMid + 0.5*m.TF.OutboardThickness
	approx(t, "last cumulative radius", last.Cumulative, want, 1e-9)
}

func TestRadialPrecompression(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.Build.Precomp = true

	s.Radial(m, nil)

	b := m.Build
	want := b.PrecompForce / (2.0 * math.Pi * b.PrecompFraction * b.PrecompStress *
		(b.Bore + b.Bore + b.CSThickness))
	approx(t, "dr_cs_precomp", b.PrecompThickness, want, 1e-12)

	// The precompression layer shifts the whole coil outward.
	approx(t, "r_tf_inboard_in", m.Geometry.RTFInboardIn, 2.5+want, 1e-12)
}

func TestRadialTFInsideCS(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.Build.TFInsideCS = true

	s.Radial(m, nil)

	want := m.Build.Bore - m.TF.InboardThickness - m.Build.CSTFGap
	approx(t, "r_tf_inboard_in", m.Geometry.RTFInboardIn, want, 1e-12)
}

func TestRadialVGapTopFloor(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.Build.VGapTop = 0.1 // below the mean midplane scrape-off gap

	s.Radial(m, nil)

	approx(t, "vgaptop", m.Build.VGapTop, 0.5*(0.200+0.225), 1e-12)
}

func TestRadialDetailedBlanketModel(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.Build.BlanketModel = 1
	m.Build.BlanketUnitIn = 0.3
	m.Build.BlanketManifoldIn = 0.2
	m.Build.BlanketBackIn = 0.2
	m.Build.BlanketUnitOut = 0.4
	m.Build.BlanketManifoldOut = 0.3
	m.Build.BlanketBackOut = 0.3

	s.Radial(m, nil)

	approx(t, "dr_blkt_inboard", m.Build.BlanketIn, 0.7, 1e-12)
	approx(t, "dr_blkt_outboard", m.Build.BlanketOut, 1.0, 1e-12)
	approx(t, "shldtth", m.Build.ShieldTop, 0.5*(0.40+0.80), 1e-12)
}

func TestRadialOutboardAreaCollapseFault(t *testing.T) {
	s, collector := testSolver()
	m := params.Defaults()
	m.Build.DivCoverage = 0.6
	m.Build.HCDCoverage = 0.5 // total coverage above one

	s.Radial(m, nil)

	if _, ok := collector.Last(faults.CodeOutboardAreaCollapse); !ok {
		t.Error("expected outboard area collapse fault")
	}
}

func TestCentrepostTopClamp(t *testing.T) {
	s, collector := testSolver()
	m := params.Defaults()
	m.Plasma.Tight = true
	m.TF.Tech = params.TechResistive
	m.TF.TopMode = params.TopUser
	m.TF.TopRadius = 0.1 // far below 1.01x the midplane outer radius

	s.Radial(m, nil)

	f, ok := collector.Last(faults.CodeTopRadiusBelowMin)
	if !ok {
		t.Fatal("expected top radius clamp fault")
	}
	if len(f.Floats) != 2 {
		t.Fatalf("fault payload = %v, want two floats", f.Floats)
	}
	approx(t, "clamped r_cp_top", m.TF.TopRadius, 1.01*m.Geometry.RTFInboardOut, 1e-12)
}

func TestCentrepostTopFraction(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.Plasma.Tight = true
	m.TF.Tech = params.TechResistive
	m.TF.TopMode = params.TopFraction
	m.TF.TopFractionValue = 1.4

	s.Radial(m, nil)

	approx(t, "r_cp_top", m.TF.TopRadius, 1.4*m.Geometry.RTFInboardOut, 1e-12)
}

func TestCentrepostTopConventionalDevice(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults() // not tight: top radius equals the midplane radius

	s.Radial(m, nil)

	if m.TF.TopRadius != m.Geometry.RTFInboardOut {
		t.Errorf("r_cp_top = %v, want %v", m.TF.TopRadius, m.Geometry.RTFInboardOut)
	}
}

func TestRadialResistiveOutboardLeg(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.TF.Tech = params.TechResistive
	m.TF.WPThickness = 0.4
	m.TF.WPFree = true

	s.Radial(m, nil)

	// Resistive coil thickness is a plain sum, and the outboard leg is
	// footprint-scaled.
	want := 0.4 + m.TF.CaseFront + m.TF.CaseNose
	approx(t, "dr_tf_inboard", m.TF.InboardThickness, want, 1e-12)
	approx(t, "dr_tf_outboard", m.TF.OutboardThickness, m.TF.FootprintRatio*want, 1e-12)
}

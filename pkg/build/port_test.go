package build

import (
	"testing"

	"github.com/fusionkit/torus/pkg/faults"
	"github.com/fusionkit/torus/pkg/params"
	"github.com/fusionkit/torus/pkg/report"
)

func TestPortSizeReferenceCase(t *testing.T) {
	s, collector := testSolver()
	m := params.Defaults()
	s.Radial(m, nil)

	rec := report.NewRecord()
	s.PortSize(m, rec)

	approx(t, "rtanbeam", m.Beam.TangencyRadius, 8.4, 1e-12)
	approx(t, "rtanmax", m.Beam.MaxTangencyRadius, 13.013729267600166, 1e-9)

	if v, ok := rec.Lookup("g"); !ok || v == 0 {
		t.Errorf("clear width g = %v ok=%v, want recorded", v, ok)
	} else {
		approx(t, "g", v, 4.318764655610544, 1e-9)
	}
	if v, _ := rec.Lookup("beamwd+2*nbshield"); v != 0.58+2*0.50 {
		t.Errorf("duct width = %v, want %v", v, 0.58+2*0.50)
	}

	if n := collector.Count(); n != 0 {
		t.Errorf("reference case raised %d faults: %v", n, collector.All())
	}
}

func TestPortSizeTangencyFraction(t *testing.T) {
	s, _ := testSolver()
	m := params.Defaults()
	m.Beam.TangencyFraction = 0.8
	s.Radial(m, nil)

	s.PortSize(m, nil)

	approx(t, "rtanbeam", m.Beam.TangencyRadius, 0.8*m.Plasma.RMajor, 1e-12)
}

func TestPortSizeDuctTooNarrow(t *testing.T) {
	s, collector := testSolver()
	m := params.Defaults()
	s.Radial(m, nil)

	// Duct wider than the clear opening between adjacent legs.
	m.Beam.Width = 4.0
	m.Beam.ShieldThickness = 0.5

	s.PortSize(m, nil)

	f, ok := collector.Last(faults.CodeBeamDuctTooNarrow)
	if !ok {
		t.Fatal("expected beam duct fault")
	}
	if len(f.Floats) != 2 {
		t.Fatalf("fault payload = %v, want clear width and duct width", f.Floats)
	}
	if f.Floats[0] >= f.Floats[1] {
		t.Errorf("fault payload %v, want clear width below duct width", f.Floats)
	}
	if m.Beam.MaxTangencyRadius != 0 {
		t.Errorf("rtanmax = %v, want 0 for a blocked duct", m.Beam.MaxTangencyRadius)
	}
}

func TestPortSizeMoreCoilsNarrowerOpening(t *testing.T) {
	s, _ := testSolver()

	wide := params.Defaults()
	s.Radial(wide, nil)
	s.PortSize(wide, nil)

	narrow := params.Defaults()
	narrow.TF.N = 20
	s.Radial(narrow, nil)
	s.PortSize(narrow, nil)

	if narrow.Beam.MaxTangencyRadius >= wide.Beam.MaxTangencyRadius {
		t.Errorf("rtanmax with 20 coils = %v, want below 16-coil value %v",
			narrow.Beam.MaxTangencyRadius, wide.Beam.MaxTangencyRadius)
	}
}

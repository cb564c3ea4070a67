package params

import "testing"

func TestFieldBySymbol(t *testing.T) {
	m := Defaults()

	p, ok := m.FieldBySymbol("rmajor")
	if !ok {
		t.Fatal("rmajor not resolvable")
	}
	*p = 9.5
	if m.Plasma.RMajor != 9.5 {
		t.Errorf("write through pointer did not land: rmajor = %v", m.Plasma.RMajor)
	}

	// A pointer into each subsystem.
	for _, sym := range []string{"ripmax", "dr_bore", "divfix", "dz_tf_cryostat", "beamwd"} {
		if _, ok := m.FieldBySymbol(sym); !ok {
			t.Errorf("%s not resolvable", sym)
		}
	}

	// Switches and solved outputs are not exposed.
	for _, sym := range []string{"i_tf_sup", "gapsto", "r_tf_outboard_mid", "nope"} {
		if _, ok := m.FieldBySymbol(sym); ok {
			t.Errorf("%s should not be resolvable", sym)
		}
	}
}

func TestEnumTextRoundTrip(t *testing.T) {
	null := NullDouble
	b, err := null.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "double" {
		t.Errorf("marshal = %q, want double", b)
	}
	var back NullConfig = NullSingle
	if err := back.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if back != NullDouble {
		t.Errorf("round trip = %v, want double", back)
	}

	var tech MagnetTech
	if err := tech.UnmarshalText([]byte(" Superconducting ")); err != nil {
		t.Errorf("spellings should be trimmed and case-folded: %v", err)
	}
	if tech != TechSuperconducting {
		t.Errorf("tech = %v", tech)
	}

	var shape CoilShape
	if err := shape.UnmarshalText([]byte("hexagon")); err == nil {
		t.Error("expected error for unknown shape")
	}
}

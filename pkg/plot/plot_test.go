package plot

import (
	"strings"
	"testing"

	"github.com/fusionkit/torus/pkg/report"
)

func sampleRecord() *report.Record {
	rec := report.NewRecord()
	rec.Header("Radial Build")
	rec.Layer("Device centreline", "", 0.0, 0.0)
	rec.Layer("Machine bore", "dr_bore", 1.9, 1.9)
	rec.Layer("Central solenoid", "dr_cs", 0.55, 2.45)
	rec.Layer("CS precompression", "dr_cs_precomp", 0.0, 2.45)
	rec.Layer("TF coil inboard leg", "dr_tf_inboard", 1.25, 3.70)
	rec.Layer("Plasma geometric centre", "rminor", 2.5, 6.20)
	rec.Layer("Plasma outboard edge", "rminor", 2.5, 8.70)
	rec.Layer("TF coil outboard leg", "dr_tf_outboard", 1.25, 9.95)
	return rec
}

func TestRadialBuild(t *testing.T) {
	out, err := RadialBuild(sampleRecord(), Options{Width: 40})
	if err != nil {
		t.Fatalf("RadialBuild: %v", err)
	}

	for _, want := range []string{"Machine bore", "Central solenoid", "TF coil outboard leg", "0 m", "9.95 m"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Zero-thickness layers are dropped from the legend.
	if strings.Contains(out, "CS precompression") {
		t.Error("zero-thickness layer should not be rendered")
	}
}

func TestRadialBuildInboardOnly(t *testing.T) {
	out, err := RadialBuild(sampleRecord(), Options{Width: 40, InboardOnly: true})
	if err != nil {
		t.Fatalf("RadialBuild: %v", err)
	}

	// The cut lands just after the plasma centre; the outboard half is gone.
	if !strings.Contains(out, "Plasma geometric centre") {
		t.Error("inboard cut should keep the plasma centre")
	}
	for _, gone := range []string{"Plasma outboard edge", "TF coil outboard leg"} {
		if strings.Contains(out, gone) {
			t.Errorf("inboard cut should drop %q", gone)
		}
	}
	if !strings.Contains(out, "6.20 m") {
		t.Error("axis should end at the plasma centre radius")
	}
}

func TestRadialBuildShowWidths(t *testing.T) {
	out, err := RadialBuild(sampleRecord(), Options{Width: 40, ShowWidths: true})
	if err != nil {
		t.Fatalf("RadialBuild: %v", err)
	}
	if !strings.Contains(out, "1.900 m") {
		t.Error("legend should carry layer thicknesses")
	}
}

func TestRadialBuildErrors(t *testing.T) {
	if _, err := RadialBuild(report.NewRecord(), Options{}); err == nil {
		t.Error("expected error for a record without a radial section")
	}

	rec := report.NewRecord()
	rec.Header("Radial Build")
	rec.Layer("Machine bore", "dr_bore", 0.0, 0.0)
	if _, err := RadialBuild(rec, Options{}); err == nil {
		t.Error("expected error for a zero-extent stack")
	}
}

package uq

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, "fwarea", Summary{
		Mean: 1396.9, StdDev: 12.3, Min: 1360.0, Max: 1420.0,
		P05: 1370.0, Median: 1397.0, P95: 1415.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Figure of merit: fwarea", "mean", "p95", "1396.9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// No failed line when nothing failed.
	if strings.Contains(out, "failed") {
		t.Errorf("output should omit the failed row:\n%s", out)
	}

	buf.Reset()
	if err := WriteSummary(&buf, "fwarea", Summary{Failed: 3}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "failed") {
		t.Error("output should carry the failed row")
	}
}

func TestWriteMorris(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMorris(&buf, []MorrisIndex{
		{Name: "dr_blkt_outboard", Mu: 2.0, MuStar: 2.0, Sigma: 0.0, MuStarCI: 0.1},
	})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header + 1", len(lines))
	}
	if lines[0] != "Parameter mu mu_star sigma mu_star_conf" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "dr_blkt_outboard 2.000000") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteSobol(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSobol(&buf, []SobolIndex{
		{Name: "rmajor", S1: 0.9, ST: 0.95},
		{Name: "kappa", S1: 0.05, ST: 0.08},
	})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Parameter S1 ST\n") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "kappa 0.050000 0.080000") {
		t.Errorf("row missing:\n%s", out)
	}
}

func TestWriteRuns(t *testing.T) {
	cfg := twoParamConfig(MonteCarlo, 1)
	s := &Study{Config: cfg, Runs: []Run{
		{ID: "run-1", Inputs: []float64{1.0, 0.8}, FoM: 1400.5, Faults: 2},
	}}

	var buf bytes.Buffer
	if err := WriteRuns(&buf, s); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "run dr_blkt_outboard dr_shld_outboard fwarea faults\n") {
		t.Errorf("header wrong:\n%s", out)
	}
	if !strings.Contains(out, "run-1 1 0.8 1400.5 2") {
		t.Errorf("row wrong:\n%s", out)
	}
}

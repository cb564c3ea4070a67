package uq

import (
	"math"
	"testing"
)

func twoParamConfig(method Method, samples int) *Config {
	return &Config{
		Method:        method,
		Samples:       samples,
		Seed:          42,
		FigureOfMerit: "fwarea",
		MorrisLevels:  4,
		Parameters: []Parameter{
			{Name: "dr_blkt_outboard", Dist: Uniform, Lower: 0.8, Upper: 1.2},
			{Name: "dr_shld_outboard", Dist: Uniform, Lower: 0.6, Upper: 1.0},
		},
	}
}

func inBounds(t *testing.T, cfg *Config, rows [][]float64) {
	t.Helper()
	for j, row := range rows {
		for i, v := range row {
			p := cfg.Parameters[i]
			if v < p.Lower || v > p.Upper {
				t.Fatalf("row %d parameter %s = %v outside [%v, %v]", j, p.Name, v, p.Lower, p.Upper)
			}
		}
	}
}

func TestSampleMonteCarlo(t *testing.T) {
	cfg := twoParamConfig(MonteCarlo, 50)
	rows := cfg.Sample()

	if len(rows) != 50 {
		t.Fatalf("rows = %d, want 50", len(rows))
	}
	inBounds(t, cfg, rows)

	// The same seed reproduces the matrix.
	again := cfg.Sample()
	for j := range rows {
		for i := range rows[j] {
			if rows[j][i] != again[j][i] {
				t.Fatalf("row %d not reproducible", j)
			}
		}
	}
}

func TestSampleMonteCarloDistributionClamp(t *testing.T) {
	cfg := &Config{
		Method:  MonteCarlo,
		Samples: 500,
		Seed:    7,
		Parameters: []Parameter{
			// Wide normal, tight bounds: clamping must hold every draw.
			{Name: "rmajor", Dist: Normal, Mean: 8.0, StdDev: 5.0, Lower: 7.5, Upper: 8.5},
			{Name: "kappa", Dist: HalfNormal, Mean: 1.7, StdDev: 0.2, Lower: 1.7, Upper: 2.0},
			{Name: "triang", Dist: Triangular, Lower: 0.3, Upper: 0.5, Mode: 0.4},
		},
	}
	rows := cfg.Sample()
	inBounds(t, cfg, rows)

	// Half-normal perturbs upward only.
	for _, row := range rows {
		if row[1] < 1.7 {
			t.Fatalf("halfnormal draw %v below the mean", row[1])
		}
	}
}

func TestSampleMorrisStructure(t *testing.T) {
	cfg := twoParamConfig(Morris, 10)
	rows := cfg.Sample()

	k := len(cfg.Parameters)
	if len(rows) != 10*(k+1) {
		t.Fatalf("rows = %d, want %d", len(rows), 10*(k+1))
	}
	inBounds(t, cfg, rows)

	// Within each trajectory consecutive points differ in exactly one
	// coordinate, and every coordinate moves exactly once.
	for tr := 0; tr+k+1 <= len(rows); tr += k + 1 {
		moved := make([]bool, k)
		for j := 0; j < k; j++ {
			prev, next := rows[tr+j], rows[tr+j+1]
			diffs := 0
			for i := range prev {
				if prev[i] != next[i] {
					diffs++
					moved[i] = true
				}
			}
			if diffs != 1 {
				t.Fatalf("trajectory %d step %d changes %d coordinates", tr/(k+1), j, diffs)
			}
		}
		for i, m := range moved {
			if !m {
				t.Fatalf("trajectory %d never moves parameter %d", tr/(k+1), i)
			}
		}
	}
}

func TestSampleSaltelliStructure(t *testing.T) {
	cfg := twoParamConfig(Sobol, 8)
	rows := cfg.Sample()

	k := len(cfg.Parameters)
	block := k + 2
	if len(rows) != 8*block {
		t.Fatalf("rows = %d, want %d", len(rows), 8*block)
	}
	inBounds(t, cfg, rows)

	for base := 0; base+block <= len(rows); base += block {
		a, b := rows[base], rows[base+block-1]
		for i := 0; i < k; i++ {
			ab := rows[base+1+i]
			for c := range ab {
				want := a[c]
				if c == i {
					want = b[c]
				}
				if math.Abs(ab[c]-want) > 1e-12 {
					t.Fatalf("block %d AB_%d column %d = %v, want %v", base/block, i, c, ab[c], want)
				}
			}
		}
	}
}

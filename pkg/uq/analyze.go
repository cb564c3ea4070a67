package uq

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// Monte Carlo Summary
// =============================================================================

// Summary describes the figure-of-merit distribution of a Monte Carlo study.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P05    float64
	Median float64
	P95    float64
	Failed int
}

// Summarize computes the figure-of-merit summary statistics.
func Summarize(s *Study) Summary {
	foms := make([]float64, 0, len(s.Runs))
	failed := 0
	for _, r := range s.Runs {
		foms = append(foms, r.FoM)
		if r.Failed {
			failed++
		}
	}
	sort.Float64s(foms)
	return Summary{
		Mean:   stat.Mean(foms, nil),
		StdDev: stat.StdDev(foms, nil),
		Min:    foms[0],
		Max:    foms[len(foms)-1],
		P05:    stat.Quantile(0.05, stat.Empirical, foms, nil),
		Median: stat.Quantile(0.50, stat.Empirical, foms, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, foms, nil),
		Failed: failed,
	}
}

// =============================================================================
// Morris Elementary Effects
// =============================================================================

// MorrisIndex holds the elementary-effect statistics of one parameter.
type MorrisIndex struct {
	Name     string
	Mu       float64 // mean elementary effect
	MuStar   float64 // mean absolute elementary effect
	Sigma    float64 // elementary-effect standard deviation
	MuStarCI float64 // 95% normal-approximation interval on MuStar
}

// AnalyzeMorris computes the elementary effects from a Morris study. The
// run list must keep sampler order: blocks of k+1 points, consecutive
// points differing in exactly one parameter.
func AnalyzeMorris(s *Study) ([]MorrisIndex, error) {
	if s.Config.Method != Morris {
		return nil, fmt.Errorf("study method is %q, not morris", s.Config.Method)
	}
	k := len(s.Config.Parameters)
	block := k + 1
	if len(s.Runs)%block != 0 {
		return nil, fmt.Errorf("run count %d is not a multiple of %d", len(s.Runs), block)
	}

	effects := make([][]float64, k)
	for t := 0; t+block <= len(s.Runs); t += block {
		for j := 0; j < k; j++ {
			prev, next := s.Runs[t+j], s.Runs[t+j+1]
			// The one perturbed parameter identifies itself by the input
			// delta; normalize the effect to the parameter span.
			for i := 0; i < k; i++ {
				di := next.Inputs[i] - prev.Inputs[i]
				if di == 0 {
					continue
				}
				span := s.Config.Parameters[i].Upper - s.Config.Parameters[i].Lower
				effects[i] = append(effects[i], (next.FoM-prev.FoM)/(di/span))
				break
			}
		}
	}

	out := make([]MorrisIndex, k)
	for i, p := range s.Config.Parameters {
		ee := effects[i]
		abs := make([]float64, len(ee))
		for j, e := range ee {
			abs[j] = math.Abs(e)
		}
		idx := MorrisIndex{
			Name:   p.Name,
			Mu:     stat.Mean(ee, nil),
			MuStar: stat.Mean(abs, nil),
		}
		if len(ee) > 1 {
			idx.Sigma = stat.StdDev(ee, nil)
			idx.MuStarCI = 1.96 * stat.StdDev(abs, nil) / math.Sqrt(float64(len(abs)))
		}
		out[i] = idx
	}
	return out, nil
}

// =============================================================================
// Sobol Indices
// =============================================================================

// SobolIndex holds the first-order and total-order sensitivity of one
// parameter.
type SobolIndex struct {
	Name string
	S1   float64 // first-order index
	ST   float64 // total-order index
}

// AnalyzeSobol computes Sobol indices from a Saltelli study using the
// Jansen estimators. The run list must keep sampler order: blocks of k+2
// evaluations (A, AB_1..AB_k, B).
func AnalyzeSobol(s *Study) ([]SobolIndex, error) {
	if s.Config.Method != Sobol {
		return nil, fmt.Errorf("study method is %q, not sobol", s.Config.Method)
	}
	k := len(s.Config.Parameters)
	block := k + 2
	if len(s.Runs)%block != 0 {
		return nil, fmt.Errorf("run count %d is not a multiple of %d", len(s.Runs), block)
	}
	n := len(s.Runs) / block

	fA := make([]float64, n)
	fB := make([]float64, n)
	fAB := make([][]float64, k)
	for i := range fAB {
		fAB[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		base := j * block
		fA[j] = s.Runs[base].FoM
		for i := 0; i < k; i++ {
			fAB[i][j] = s.Runs[base+1+i].FoM
		}
		fB[j] = s.Runs[base+block-1].FoM
	}

	// Centre the responses on the pooled mean; the estimators lose most of
	// their sampling noise when the mean is removed first.
	all := append(append([]float64(nil), fA...), fB...)
	mean := stat.Mean(all, nil)
	variance := stat.Variance(all, nil)
	for j := 0; j < n; j++ {
		fA[j] -= mean
		fB[j] -= mean
		for i := 0; i < k; i++ {
			fAB[i][j] -= mean
		}
	}

	out := make([]SobolIndex, k)
	for i, p := range s.Config.Parameters {
		var s1, st float64
		for j := 0; j < n; j++ {
			s1 += fB[j] * (fAB[i][j] - fA[j])
			d := fA[j] - fAB[i][j]
			st += d * d
		}
		out[i] = SobolIndex{Name: p.Name}
		if variance > 0 {
			out[i].S1 = s1 / float64(n) / variance
			out[i].ST = st / (2.0 * float64(n)) / variance
		}
	}
	return out, nil
}

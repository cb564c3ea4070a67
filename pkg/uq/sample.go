package uq

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample generates the run matrix for the configured method, one row per
// evaluation, one column per uncertain parameter. Row counts per method:
// Monte Carlo N, Morris N*(k+1), Saltelli N*(k+2).
func (c *Config) Sample() [][]float64 {
	src := rand.NewPCG(c.Seed, c.Seed)
	switch c.Method {
	case Morris:
		return c.sampleMorris(src)
	case Sobol:
		return c.sampleSaltelli(src)
	default:
		return c.sampleMonteCarlo(src)
	}
}

// sampleMonteCarlo draws each parameter independently from its distribution.
func (c *Config) sampleMonteCarlo(src rand.Source) [][]float64 {
	rows := make([][]float64, c.Samples)
	draws := make([]func() float64, len(c.Parameters))
	for i, p := range c.Parameters {
		draws[i] = p.sampler(src)
	}
	for j := range rows {
		row := make([]float64, len(c.Parameters))
		for i := range row {
			row[i] = draws[i]()
		}
		rows[j] = row
	}
	return rows
}

// sampler returns a draw function for one parameter, clamped to its bounds.
func (p Parameter) sampler(src rand.Source) func() float64 {
	clamp := func(v float64) float64 {
		if v < p.Lower {
			return p.Lower
		}
		if v > p.Upper {
			return p.Upper
		}
		return v
	}
	switch p.Dist {
	case Normal:
		d := distuv.Normal{Mu: p.Mean, Sigma: p.StdDev, Src: src}
		return func() float64 { return clamp(d.Rand()) }
	case HalfNormal:
		// One-sided perturbation above the mean.
		d := distuv.Normal{Mu: 0, Sigma: p.StdDev, Src: src}
		return func() float64 {
			v := d.Rand()
			if v < 0 {
				v = -v
			}
			return clamp(p.Mean + v)
		}
	case Triangular:
		mode := p.Mode
		if mode < p.Lower || mode > p.Upper {
			mode = 0.5 * (p.Lower + p.Upper)
		}
		d := distuv.NewTriangle(p.Lower, p.Upper, mode, src)
		return d.Rand
	default:
		d := distuv.Uniform{Min: p.Lower, Max: p.Upper, Src: src}
		return d.Rand
	}
}

// sampleMorris builds N random trajectories through a k-dimensional grid of
// the configured number of levels. Each trajectory starts at a random grid
// point and perturbs one parameter at a time by delta = l/(2(l-1)) in unit
// space, giving k+1 points per trajectory with consecutive points differing
// in exactly one coordinate.
func (c *Config) sampleMorris(src rand.Source) [][]float64 {
	k := len(c.Parameters)
	levels := c.MorrisLevels
	delta := float64(levels) / (2.0 * float64(levels-1))
	rng := rand.New(src)

	var rows [][]float64
	for t := 0; t < c.Samples; t++ {
		// Base point on the lower half of the grid so +delta stays inside
		// the unit box.
		point := make([]float64, k)
		for i := range point {
			point[i] = float64(rng.IntN(levels/2+levels%2)) / float64(levels-1)
		}

		rows = append(rows, c.scale(point))
		for _, i := range rng.Perm(k) {
			next := append([]float64(nil), point...)
			next[i] += delta
			if next[i] > 1 {
				next[i] = point[i] - delta
			}
			point = next
			rows = append(rows, c.scale(point))
		}
	}
	return rows
}

// sampleSaltelli builds the Saltelli design for first-order and total-order
// indices: two independent matrices A and B, then for each parameter i a
// matrix AB_i equal to A with column i taken from B. Rows are emitted in
// blocks of k+2 per sample: A_j, AB_1..AB_k, B_j.
func (c *Config) sampleSaltelli(src rand.Source) [][]float64 {
	k := len(c.Parameters)
	rng := rand.New(src)

	unit := func() []float64 {
		row := make([]float64, k)
		for i := range row {
			row[i] = rng.Float64()
		}
		return row
	}

	var rows [][]float64
	for j := 0; j < c.Samples; j++ {
		a := unit()
		b := unit()
		rows = append(rows, c.scale(a))
		for i := 0; i < k; i++ {
			ab := append([]float64(nil), a...)
			ab[i] = b[i]
			rows = append(rows, c.scale(ab))
		}
		rows = append(rows, c.scale(b))
	}
	return rows
}

// scale maps a unit-box point onto the parameter bounds.
func (c *Config) scale(unit []float64) []float64 {
	out := make([]float64, len(unit))
	for i, p := range c.Parameters {
		out[i] = p.Lower + unit[i]*(p.Upper-p.Lower)
	}
	return out
}

package uq

import (
	"fmt"
	"io"
)

// WriteSummary writes the Monte Carlo summary as aligned text.
func WriteSummary(w io.Writer, fom string, sum Summary) error {
	rows := []struct {
		label string
		value float64
	}{
		{"mean", sum.Mean},
		{"std dev", sum.StdDev},
		{"min", sum.Min},
		{"p05", sum.P05},
		{"median", sum.Median},
		{"p95", sum.P95},
		{"max", sum.Max},
	}
	if _, err := fmt.Fprintf(w, "Figure of merit: %s\n", fom); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-10s %14.6g\n", r.label, r.value); err != nil {
			return err
		}
	}
	if sum.Failed > 0 {
		if _, err := fmt.Fprintf(w, "%-10s %14d\n", "failed", sum.Failed); err != nil {
			return err
		}
	}
	return nil
}

// WriteMorris writes the elementary-effect indices in the classic
// morris_method.txt column layout.
func WriteMorris(w io.Writer, indices []MorrisIndex) error {
	if _, err := fmt.Fprintln(w, "Parameter mu mu_star sigma mu_star_conf"); err != nil {
		return err
	}
	for _, idx := range indices {
		_, err := fmt.Fprintf(w, "%s %f %f %f %f\n",
			idx.Name, idx.Mu, idx.MuStar, idx.Sigma, idx.MuStarCI)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSobol writes the sensitivity indices in the classic sobol.txt column
// layout.
func WriteSobol(w io.Writer, indices []SobolIndex) error {
	if _, err := fmt.Fprintln(w, "Parameter S1 ST"); err != nil {
		return err
	}
	for _, idx := range indices {
		if _, err := fmt.Fprintf(w, "%s %f %f\n", idx.Name, idx.S1, idx.ST); err != nil {
			return err
		}
	}
	return nil
}

// WriteRuns writes the per-run table: run ID, sampled inputs, figure of
// merit and diagnostic count.
func WriteRuns(w io.Writer, s *Study) error {
	if _, err := fmt.Fprint(w, "run"); err != nil {
		return err
	}
	for _, p := range s.Config.Parameters {
		if _, err := fmt.Fprintf(w, " %s", p.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, " %s faults\n", s.Config.FigureOfMerit); err != nil {
		return err
	}
	for _, r := range s.Runs {
		if _, err := fmt.Fprint(w, r.ID); err != nil {
			return err
		}
		for _, v := range r.Inputs {
			if _, err := fmt.Fprintf(w, " %g", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " %g %d\n", r.FoM, r.Faults); err != nil {
			return err
		}
	}
	return nil
}

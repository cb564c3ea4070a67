package uq

import (
	"context"
	"fmt"
	"io"
	"math"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fusionkit/torus/pkg/build"
	"github.com/fusionkit/torus/pkg/faults"
	"github.com/fusionkit/torus/pkg/observability"
	"github.com/fusionkit/torus/pkg/params"
	"github.com/fusionkit/torus/pkg/report"
)

// Run is one completed evaluation of the study.
type Run struct {
	ID     string    // unique run identifier
	Inputs []float64 // sampled parameter values, config order
	FoM    float64   // figure of merit from the machine record
	Faults int       // diagnostics raised during the evaluation
	Failed bool      // FoM missing or non-finite; OutputMean substituted
}

// Study is the outcome of a full sampling campaign. Runs keep sample-matrix
// order so the analyses can reconstruct trajectory and Saltelli block
// structure.
type Study struct {
	Config *Config
	Runs   []Run
}

// Runner evaluates a study against a base design point. Each run works on
// its own copy of the base record, so a Runner is safe for the parallel
// evaluation it performs internally.
type Runner struct {
	Base   *params.Machine
	Logger *log.Logger
}

// Run samples the configured design and evaluates every row, in parallel.
// Failed evaluations are kept with the configured substitute figure of
// merit, matching sensitivity-analysis practice for unconverged points.
func (r *Runner) Run(ctx context.Context, cfg *Config) (*Study, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	// Resolve symbols once against a scratch copy; unknown names fail the
	// whole study before any evaluation.
	scratch := *r.Base
	for _, p := range cfg.Parameters {
		if _, ok := scratch.FieldBySymbol(p.Name); !ok {
			return nil, fmt.Errorf("uq: unknown parameter symbol %q", p.Name)
		}
	}

	rows := cfg.Sample()
	runs := make([]Run, len(rows))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	observability.Study().OnStudyStart(ctx, string(cfg.Method), len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for j, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runs[j] = r.evaluate(cfg, row)
			observability.Study().OnRunComplete(ctx, runs[j].ID, runs[j].Failed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("uq: %w", err)
	}

	failed := 0
	for _, run := range runs {
		if run.Failed {
			failed++
		}
	}
	observability.Study().OnStudyComplete(ctx, string(cfg.Method), time.Since(start), failed)
	logger.Info("uq study complete", "runs", len(runs), "failed", failed)

	return &Study{Config: cfg, Runs: runs}, nil
}

// evaluate runs the build calculators on one perturbed copy of the base
// design point.
func (r *Runner) evaluate(cfg *Config, row []float64) Run {
	m := *r.Base
	for i, p := range cfg.Parameters {
		f, _ := m.FieldBySymbol(p.Name)
		*f = row[i]
	}

	// Per-run solver warnings would swamp the console; only faults are
	// kept, as counts.
	collector := faults.NewCollector()
	solver := build.New(log.New(io.Discard), collector)
	rec := report.NewRecord()

	solver.Radial(&m, rec)
	solver.Vertical(&m, rec)
	solver.PortSize(&m, rec)

	run := Run{
		ID:     uuid.NewString(),
		Inputs: row,
		Faults: collector.Count(),
	}
	fom, ok := rec.Lookup(cfg.FigureOfMerit)
	if !ok || math.IsNaN(fom) || math.IsInf(fom, 0) {
		run.FoM = cfg.OutputMean
		run.Failed = true
	} else {
		run.FoM = fom
	}
	return run
}

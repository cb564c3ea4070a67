package cli

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusionkit/torus/pkg/observability"
	"github.com/fusionkit/torus/pkg/uq"
)

// uqCommand creates the uq command: sampling-based uncertainty analysis of
// a design point.
func (c *CLI) uqCommand() *cobra.Command {
	var (
		paramsFile string
		configFile string
		output     string
		runsOut    string
	)

	cmd := &cobra.Command{
		Use:   "uq",
		Short: "Evaluate parameter uncertainty around a design point",
		Long: `Evaluate parameter uncertainty around a design point.

The uq command samples perturbed copies of the base parameter set
according to a study configuration, evaluates the build calculators on
every sample in parallel, and analyses the spread of the chosen figure of
merit. Three methods are available: monte_carlo (summary statistics),
morris (elementary-effects screening) and sobol (first-order and
total-order sensitivity indices).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUQ(cmd.Context(), paramsFile, configFile, output, runsOut)
		},
	}

	cmd.Flags().StringVarP(&paramsFile, "params", "f", "", "base device parameter file (TOML)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "uq.toml", "study configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the analysis to this path instead of stdout")
	cmd.Flags().StringVar(&runsOut, "runs", "", "write the per-run table to this path")

	return cmd
}

// spinnerProgress streams study progress into the spinner line.
type spinnerProgress struct {
	spinner *Spinner
	method  string
	total   int
	done    atomic.Int64
}

func (p *spinnerProgress) OnStudyStart(_ context.Context, _ string, runCount int) {
	p.total = runCount
	p.spinner.SetMessage(fmt.Sprintf("Running %s study... 0/%d runs", p.method, runCount))
}

func (p *spinnerProgress) OnRunComplete(_ context.Context, _ string, _ bool) {
	n := p.done.Add(1)
	p.spinner.SetMessage(fmt.Sprintf("Running %s study... %d/%d runs", p.method, n, p.total))
}

func (p *spinnerProgress) OnStudyComplete(context.Context, string, time.Duration, int) {}

func (c *CLI) runUQ(ctx context.Context, paramsFile, configFile, output, runsOut string) error {
	cfg, err := uq.LoadConfig(configFile)
	if err != nil {
		return err
	}
	base, err := loadParams(paramsFile)
	if err != nil {
		return err
	}

	runner := &uq.Runner{Base: base, Logger: c.Logger}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %s study...", cfg.Method))
	observability.SetStudyHooks(&spinnerProgress{spinner: spinner, method: string(cfg.Method)})
	defer observability.Reset()

	spinner.Start()
	study, err := runner.Run(ctx, cfg)
	if err != nil {
		spinner.StopWithError("Study failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("%d runs evaluated", len(study.Runs)))

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	switch cfg.Method {
	case uq.Morris:
		indices, err := uq.AnalyzeMorris(study)
		if err != nil {
			return err
		}
		if err := uq.WriteMorris(out, indices); err != nil {
			return err
		}
	case uq.Sobol:
		indices, err := uq.AnalyzeSobol(study)
		if err != nil {
			return err
		}
		if err := uq.WriteSobol(out, indices); err != nil {
			return err
		}
	default:
		if err := uq.WriteSummary(out, cfg.FigureOfMerit, uq.Summarize(study)); err != nil {
			return err
		}
	}
	if output != "" {
		printFile(output)
	}

	if runsOut != "" {
		f, err := os.Create(runsOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", runsOut, err)
		}
		defer f.Close()
		if err := uq.WriteRuns(f, study); err != nil {
			return err
		}
		printFile(runsOut)
	}
	return nil
}

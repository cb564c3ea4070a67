package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusionkit/torus/pkg/build"
	"github.com/fusionkit/torus/pkg/faults"
	"github.com/fusionkit/torus/pkg/observability"
	"github.com/fusionkit/torus/pkg/params"
	"github.com/fusionkit/torus/pkg/report"
)

// buildCommand creates the build command, the primary entry point: evaluate
// the full machine build from a parameter file.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		paramsFile string
		jsonOut    string
		msgpackOut string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compute the radial and vertical build of a device",
		Long: `Compute the radial and vertical build of a device.

The build command loads a TOML parameter file (or the built-in reference
baseline when no file is given), runs the radial build, vertical build and
port-size calculators, and prints the ordered layer tables. The machine
record can additionally be written as JSON or msgpack for downstream
tooling such as 'torus plot' and the uncertainty drivers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), paramsFile, jsonOut, msgpackOut, quiet)
		},
	}

	cmd.Flags().StringVarP(&paramsFile, "params", "f", "", "device parameter file (TOML); defaults to the reference baseline")
	cmd.Flags().StringVar(&jsonOut, "json", "", "write the machine record as JSON to this path")
	cmd.Flags().StringVar(&msgpackOut, "msgpack", "", "write the machine record as msgpack to this path")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the layer tables")

	return cmd
}

// runBuild loads parameters, evaluates the build and writes the outputs.
func (c *CLI) runBuild(ctx context.Context, paramsFile, jsonOut, msgpackOut string, quiet bool) error {
	m, err := loadParams(paramsFile)
	if err != nil {
		return err
	}

	rec, collector := evaluate(ctx, c, m, !quiet)

	if n := collector.Count(); n > 0 {
		printWarning("%d diagnostic(s) raised; see log output", n)
	}
	printKeyValue("rmajor", fmt.Sprintf("%.3f m", m.Plasma.RMajor))
	printKeyValue("ripple", fmt.Sprintf("%.3f %%", m.TF.Ripple))
	printKeyValue("fwarea", fmt.Sprintf("%.2f m2", m.Geometry.FWArea))

	values := 0
	for _, s := range rec.Sections {
		values += len(s.Layers) + len(s.Values)
	}
	printStats(len(rec.Sections), values)
	if jsonOut == "" && msgpackOut == "" {
		printNextStep("Plot the radial build", "torus plot")
	}

	if jsonOut != "" {
		if err := writeRecordFile(rec, jsonOut, false); err != nil {
			return err
		}
		printFile(jsonOut)
	}
	if msgpackOut != "" {
		if err := writeRecordFile(rec, msgpackOut, true); err != nil {
			return err
		}
		printFile(msgpackOut)
	}
	return nil
}

// loadParams loads the given parameter file, or the baseline when path is
// empty.
func loadParams(path string) (*params.Machine, error) {
	if path == "" {
		return params.Defaults(), nil
	}
	m, err := params.Load(path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// evaluate runs all three calculators on m, producing the machine record
// and the collected diagnostics. When table is set, the layer tables are
// printed to stdout as they are computed.
func evaluate(ctx context.Context, c *CLI, m *params.Machine, table bool) (*report.Record, *faults.Collector) {
	collector := faults.NewCollector()
	solver := build.New(c.Logger, faults.Tee(collector, faults.LogReporter{Logger: c.Logger}))

	rec := report.NewRecord()
	var sink report.Sink = rec
	if table {
		sink = report.Tee(report.NewTable(os.Stdout), rec)
	}

	passes := []struct {
		name string
		run  func(*params.Machine, report.Sink)
	}{
		{"radial", solver.Radial},
		{"vertical", solver.Vertical},
		{"port", solver.PortSize},
	}
	for _, p := range passes {
		before := collector.Count()
		start := time.Now()
		observability.Solver().OnEvaluateStart(ctx, p.name)
		p.run(m, sink)
		observability.Solver().OnEvaluateComplete(ctx, p.name, time.Since(start), collector.Count()-before)
	}
	return rec, collector
}

// writeRecordFile writes the record to path in the selected framing.
func writeRecordFile(rec *report.Record, path string, msgpack bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if msgpack {
		return rec.WriteMsgpack(f)
	}
	return rec.WriteJSON(f)
}

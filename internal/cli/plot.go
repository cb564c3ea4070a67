package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fusionkit/torus/pkg/plot"
	"github.com/fusionkit/torus/pkg/report"
)

// plotCommand creates the plot command: a terminal bar rendering of the
// radial build.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		paramsFile string
		recordFile string
		inboard    bool
		numbers    bool
		width      int
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the radial build as a terminal bar chart",
		Long: `Render the radial build as a terminal bar chart.

The stack is drawn as one proportional bar from the machine centreline to
the outer edge of the TF coil outboard leg, with a legend mapping colors
to components. Input is either a parameter file (evaluated on the fly) or
a machine record previously written by 'torus build --json'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := c.plotRecord(cmd, paramsFile, recordFile)
			if err != nil {
				return err
			}
			out, err := plot.RadialBuild(rec, plot.Options{
				Width:       width,
				InboardOnly: inboard,
				ShowWidths:  numbers,
			})
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&paramsFile, "params", "f", "", "device parameter file (TOML)")
	cmd.Flags().StringVar(&recordFile, "record", "", "machine record JSON written by 'torus build --json'")
	cmd.Flags().BoolVar(&inboard, "inboard", false, "show the inboard build only")
	cmd.Flags().BoolVar(&numbers, "numbers", false, "show component widths in the legend")
	cmd.Flags().IntVar(&width, "width", 0, "bar width in cells (default 72)")

	return cmd
}

// plotRecord resolves the record to plot: load it from a file, or evaluate
// the parameter set quietly.
func (c *CLI) plotRecord(cmd *cobra.Command, paramsFile, recordFile string) (*report.Record, error) {
	if recordFile != "" {
		f, err := os.Open(recordFile)
		if err != nil {
			return nil, fmt.Errorf("open record %s: %w", recordFile, err)
		}
		defer f.Close()
		return report.ReadJSON(f)
	}

	m, err := loadParams(paramsFile)
	if err != nil {
		return nil, err
	}
	rec, _ := evaluate(cmd.Context(), c, m, false)
	return rec, nil
}

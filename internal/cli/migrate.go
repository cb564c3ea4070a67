package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fusionkit/torus/pkg/params"
)

// migrateCommand creates the migrate command: rewrite obsolete parameter
// names in a TOML input file to their current spellings.
func (c *CLI) migrateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "migrate <params.toml>",
		Short: "Rewrite obsolete parameter names in an input file",
		Long: `Rewrite obsolete parameter names in an input file.

Parameter symbols have been renamed over the years (bore to dr_bore, tfcth
to dr_tf_inboard, ...). The migrate command rewrites a TOML parameter file
to the current names and lists every change. Symbols that were split or
removed cannot be rewritten automatically and are reported instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMigrate(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: rewrite in place)")

	return cmd
}

func (c *CLI) runMigrate(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	migrated, changes, err := params.MigrateTOML(data)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", input, err)
	}

	if len(changes) == 0 {
		printInfo("no obsolete parameters in %s", input)
		return nil
	}

	if output == "" {
		output = input
	}
	if err := os.WriteFile(output, migrated, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	for _, ch := range changes {
		printDetail("line %d: %s %s %s", ch.Line, ch.Old, iconArrow, ch.New)
	}
	printSuccess("%d parameter(s) renamed", len(changes))
	printFile(output)
	return nil
}

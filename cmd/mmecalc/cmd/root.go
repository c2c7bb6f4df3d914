package cmd

import (
	"fmt"
	"os"

	"MMECalc/internal/config"
	"MMECalc/internal/menu"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

type options struct {
	precision int
}

// NewRootCmd builds the command tree. Without a subcommand it runs the
// interactive menu.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "mmecalc",
		Short: "Materials & metallurgical engineering calculator",
		Long: `mmecalc evaluates closed-form materials engineering formulas:
hardness conversions, tensile and fatigue relations, heat transfer,
phase diagrams, corrosion, casting, crystallography, composites and
stress analysis.

Examples:
  mmecalc                                   # interactive menu
  mmecalc list --category thermal
  mmecalc eval brinell_to_tensile hb=200
  mmecalc eval composite_slab_heat_flux delta_t=100 layers=0.1:0.5,0.05:0.1`,
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("precision") {
				return nil
			}
			c, err := config.Load()
			if err != nil {
				return err
			}
			opts.precision = c.Precision
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts.precision).Run()
		},
	}
	root.PersistentFlags().IntVarP(&opts.precision, "precision", "p", 6, "significant digits in results")

	root.AddCommand(newListCmd(), newEvalCmd(opts), newMetalsCmd())
	return root
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

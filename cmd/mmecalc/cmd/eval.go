package cmd

import (
	"encoding/json"
	"fmt"

	"MMECalc/internal/calc/catalog"

	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "eval <formula> [name=value ...]",
		Short: "Evaluate one formula",
		Long: `Evaluates a formula from name=value arguments. Formula ids and their
parameters are listed by "mmecalc list --format yaml". Optional parameters
may be left out; a missing required one is reported by name.

Examples:
  mmecalc eval hrc_to_hb hrc=40
  mmecalc eval galvanic_potential_diff metal_a=zinc metal_b=copper
  mmecalc eval halpin_tsai em=3 ef=70 vf=0.4 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", catalog.ErrUnknownFormula, args[0])
			}
			in, err := catalog.ParseAssignments(args[1:])
			if err != nil {
				return err
			}
			res, err := f.Evaluate(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprint(out, res.Format(opts.precision))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

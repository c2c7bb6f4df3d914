package cmd

import (
	"fmt"
	"text/tabwriter"

	"MMECalc/internal/calc/corrosion"

	"github.com/spf13/cobra"
)

func newMetalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metals",
		Short: "Show the galvanic series used by galvanic_potential_diff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METAL\tPOTENTIAL (V vs SCE)")
			for _, m := range corrosion.AvailableMetals() {
				v, err := corrosion.Potential(m)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%+.2f\n", m, v)
			}
			return tw.Flush()
		},
	}
}

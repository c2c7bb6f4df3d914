package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"MMECalc/internal/calc/catalog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type paramEntry struct {
	Name     string  `json:"name" yaml:"name"`
	Label    string  `json:"label" yaml:"label"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Kind     string  `json:"kind" yaml:"kind"`
	Optional bool    `json:"optional,omitempty" yaml:"optional,omitempty"`
	Default  float64 `json:"default,omitempty" yaml:"default,omitempty"`
}

type formulaEntry struct {
	ID       string       `json:"id" yaml:"id"`
	Category string       `json:"category" yaml:"category"`
	Name     string       `json:"name" yaml:"name"`
	Params   []paramEntry `json:"params" yaml:"params"`
}

func entries(fs []catalog.Formula) []formulaEntry {
	out := make([]formulaEntry, 0, len(fs))
	for _, f := range fs {
		e := formulaEntry{ID: f.ID, Category: string(f.Category), Name: f.Name}
		for _, p := range f.Params {
			e.Params = append(e.Params, paramEntry{
				Name: p.Name, Label: p.Label, Unit: p.Unit, Kind: string(p.Kind),
				Optional: p.Optional, Default: p.Default,
			})
		}
		out = append(out, e)
	}
	return out
}

func newListCmd() *cobra.Command {
	var category, format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available formulas",
		Long: `Lists the formula catalog.

Examples:
  mmecalc list
  mmecalc list --category corrosion
  mmecalc list --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := catalog.All()
			if category != "" {
				fs = catalog.ByCategory(catalog.Category(category))
				if len(fs) == 0 {
					return fmt.Errorf("unknown category %q", category)
				}
			}
			return writeFormulas(cmd.OutOrStdout(), fs, format)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or yaml")
	return cmd
}

func writeFormulas(w io.Writer, fs []catalog.Formula, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries(fs))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries(fs)); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCATEGORY\tNAME")
		for _, f := range fs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ID, f.Category, f.Name)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

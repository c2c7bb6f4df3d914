package catalog

import (
	"fmt"

	"MMECalc/internal/calc/phase"
)

var phaseFormulas = []Formula{
	{
		ID:   "lever_rule",
		Name: "Lever Rule (phase fractions)",
		Params: []Param{
			number("c0", "Overall composition C₀", "wt%"),
			number("c_alpha", "α phase boundary composition", "wt%"),
			number("c_beta", "β phase boundary composition", "wt%"),
		},
		eval: func(a args) (Result, error) {
			f, err := phase.LeverRule(a.num("c0"), a.num("c_alpha"), a.num("c_beta"))
			if err != nil {
				return Result{}, err
			}
			return Result{Outputs: []Output{
				{Name: "w_alpha", Label: "Weight fraction α", Value: f.Alpha},
				{Name: "w_beta", Label: "Weight fraction β", Value: f.Beta},
			}}, nil
		},
	},
	{
		ID:   "gibbs_phase_rule",
		Name: "Gibbs Phase Rule",
		Params: []Param{
			integer("components", "Number of components C"),
			integer("phases", "Number of phases P"),
		},
		eval: func(a args) (Result, error) {
			f, err := phase.GibbsPhaseRule(a.whole("components"), a.whole("phases"))
			if err != nil {
				return Result{}, err
			}
			return plain("degrees_of_freedom", "Degrees of freedom F", "", float64(f))
		},
	},
	{
		ID:   "avrami_fraction",
		Name: "Avrami (JMAK) Transformed Fraction",
		Params: []Param{
			number("k", "Rate constant k", ""),
			number("t", "Time t", "s"),
			number("n", "Avrami exponent n", ""),
		},
		eval: func(a args) (Result, error) {
			return single("fraction", "Transformed fraction", "")(phase.AvramiFraction(a.num("k"), a.num("t"), a.num("n")))
		},
	},
	{
		ID:   "carbon_equivalent",
		Name: "Carbon Equivalent (IIW)",
		Params: []Param{
			number("c", "Carbon", "wt%"),
			number("mn", "Manganese", "wt%").withDefault(0),
			number("cr", "Chromium", "wt%").withDefault(0),
			number("mo", "Molybdenum", "wt%").withDefault(0),
			number("v", "Vanadium", "wt%").withDefault(0),
			number("ni", "Nickel", "wt%").withDefault(0),
			number("cu", "Copper", "wt%").withDefault(0),
		},
		eval: func(a args) (Result, error) {
			ce := phase.CarbonEquivalent(phase.Composition{
				C: a.num("c"), Mn: a.num("mn"), Cr: a.num("cr"), Mo: a.num("mo"),
				V: a.num("v"), Ni: a.num("ni"), Cu: a.num("cu"),
			})
			w := phase.Weldability(ce)
			return Result{
				Outputs: []Output{{Name: "ce", Label: "Carbon equivalent CE", Value: ce, Unit: "wt%"}},
				Tags:    []Tag{{Name: "weldability", Label: "Weldability", Text: string(w)}},
				Note:    w.Describe(),
			}, nil
		},
	},
	{
		ID:   "scheil_equation",
		Name: "Scheil Equation (solid composition)",
		Params: []Param{
			number("k", "Partition coefficient k", "").positive(),
			number("c0", "Nominal composition C₀", "wt%"),
			number("fs", "Fraction solid fs, 0 to below 1", ""),
		},
		eval: func(a args) (Result, error) {
			cs, err := phase.Scheil(a.num("k"), a.num("c0"), a.num("fs"))
			if err != nil {
				return Result{}, err
			}
			res, _ := plain("cs", "Solid composition Cs", "wt%", cs)
			res.Note = fmt.Sprintf("at fs = %g", a.num("fs"))
			return res, nil
		},
	},
}

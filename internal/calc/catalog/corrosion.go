package catalog

import "MMECalc/internal/calc/corrosion"

func corrosionRateParams() []Param {
	return []Param{
		number("weight_loss", "Weight loss", "g"),
		number("density", "Density", "g/cm³").positive(),
		number("area", "Exposed area", "cm²").positive(),
		number("hours", "Exposure time", "h").positive(),
	}
}

var corrosionFormulas = []Formula{
	{
		ID:     "corrosion_rate_mpy",
		Name:   "Corrosion Rate (mils per year)",
		Params: corrosionRateParams(),
		eval: func(a args) (Result, error) {
			return single("rate", "Corrosion rate", "mpy")(corrosion.RateMPY(a.num("weight_loss"), a.num("density"), a.num("area"), a.num("hours")))
		},
	},
	{
		ID:     "corrosion_rate_mmpy",
		Name:   "Corrosion Rate (mm per year)",
		Params: corrosionRateParams(),
		eval: func(a args) (Result, error) {
			return single("rate", "Corrosion rate", "mm/y")(corrosion.RateMMPY(a.num("weight_loss"), a.num("density"), a.num("area"), a.num("hours")))
		},
	},
	{
		ID:   "pilling_bedworth_ratio",
		Name: "Pilling-Bedworth Ratio",
		Params: []Param{
			number("m_oxide", "Molar mass of oxide", "g/mol").positive(),
			number("rho_metal", "Density of metal", "g/cm³").positive(),
			number("n", "Metal atoms per oxide formula n", "").positive(),
			number("m_metal", "Molar mass of metal", "g/mol").positive(),
			number("rho_oxide", "Density of oxide", "g/cm³").positive(),
		},
		eval: func(a args) (Result, error) {
			pbr, err := corrosion.PillingBedworth(a.num("m_oxide"), a.num("rho_metal"), a.num("n"), a.num("m_metal"), a.num("rho_oxide"))
			if err != nil {
				return Result{}, err
			}
			class := corrosion.ClassifyOxide(pbr)
			return Result{
				Outputs: []Output{{Name: "pbr", Label: "Pilling-Bedworth ratio", Value: pbr}},
				Tags:    []Tag{{Name: "oxide", Label: "Oxide", Text: string(class)}},
				Note:    class.Describe(),
			}, nil
		},
	},
	{
		ID:   "galvanic_potential_diff",
		Name: "Galvanic Couple Potential Difference",
		Params: []Param{
			text("metal_a", "First metal").oneOf(corrosion.AvailableMetals()),
			text("metal_b", "Second metal").oneOf(corrosion.AvailableMetals()),
		},
		eval: func(a args) (Result, error) {
			c, err := corrosion.GalvanicPotentialDiff(a.str("metal_a"), a.str("metal_b"))
			if err != nil {
				return Result{}, err
			}
			return Result{
				Outputs: []Output{{Name: "difference", Label: "Potential difference", Value: c.Difference, Unit: "V"}},
				Tags: []Tag{
					{Name: "anode", Label: "Anode (corrodes)", Text: c.Anode},
					{Name: "cathode", Label: "Cathode (protected)", Text: c.Cathode},
				},
			}, nil
		},
	},
	{
		ID:   "parabolic_oxide_thickness",
		Name: "Parabolic Oxide Growth (thickness)",
		Params: []Param{
			number("kp", "Parabolic rate constant kp", "m²/s"),
			number("t", "Time t", "s"),
		},
		eval: func(a args) (Result, error) {
			return single("thickness", "Oxide thickness", "m")(corrosion.ParabolicOxideThickness(a.num("kp"), a.num("t")))
		},
	},
}

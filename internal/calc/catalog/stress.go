package catalog

import "MMECalc/internal/calc/stress"

var stressFormulas = []Formula{
	{
		ID:   "hookes_law_stress",
		Name: "Hooke's Law, Stress from Strain",
		Params: []Param{
			number("e", "Young's modulus E", "MPa").positive(),
			number("strain", "Strain ε", ""),
		},
		eval: func(a args) (Result, error) {
			return plain("stress", "Stress σ", "MPa", stress.HookeStress(a.num("e"), a.num("strain")))
		},
	},
	{
		ID:   "hookes_law_strain",
		Name: "Hooke's Law, Strain from Stress",
		Params: []Param{
			number("e", "Young's modulus E", "MPa").positive(),
			number("stress", "Stress σ", "MPa"),
		},
		eval: func(a args) (Result, error) {
			return single("strain", "Strain ε", "")(stress.HookeStrain(a.num("e"), a.num("stress")))
		},
	},
	{
		ID:   "poisson_strain",
		Name: "Poisson Lateral Strain",
		Params: []Param{
			number("nu", "Poisson's ratio ν", ""),
			number("axial_strain", "Axial strain", ""),
		},
		eval: func(a args) (Result, error) {
			return plain("lateral_strain", "Lateral strain", "", stress.PoissonStrain(a.num("nu"), a.num("axial_strain")))
		},
	},
	{
		ID:   "shear_modulus",
		Name: "Shear Modulus from E and ν",
		Params: []Param{
			number("e", "Young's modulus E", "GPa").positive(),
			number("nu", "Poisson's ratio ν", ""),
		},
		eval: func(a args) (Result, error) {
			return single("g", "Shear modulus G", "GPa")(stress.ShearModulus(a.num("e"), a.num("nu")))
		},
	},
	{
		ID:   "bulk_modulus",
		Name: "Bulk Modulus from E and ν",
		Params: []Param{
			number("e", "Young's modulus E", "GPa").positive(),
			number("nu", "Poisson's ratio ν", ""),
		},
		eval: func(a args) (Result, error) {
			return single("k", "Bulk modulus K", "GPa")(stress.BulkModulus(a.num("e"), a.num("nu")))
		},
	},
	{
		ID:   "von_mises_stress",
		Name: "Von Mises Equivalent Stress",
		Params: []Param{
			number("s1", "Principal stress σ1", "MPa"),
			number("s2", "Principal stress σ2", "MPa"),
			number("s3", "Principal stress σ3", "MPa"),
		},
		eval: func(a args) (Result, error) {
			return plain("von_mises", "Von Mises stress", "MPa", stress.VonMises(a.num("s1"), a.num("s2"), a.num("s3")))
		},
	},
	{
		ID:   "factor_of_safety",
		Name: "Factor of Safety",
		Params: []Param{
			number("yield", "Yield strength", "MPa").positive(),
			number("applied", "Applied stress", "MPa"),
		},
		eval: func(a args) (Result, error) {
			fos, err := stress.FactorOfSafety(a.num("yield"), a.num("applied"))
			if err != nil {
				return Result{}, err
			}
			res, _ := plain("fos", "Factor of safety", "", fos)
			res.Note = stress.Verdict(fos)
			return res, nil
		},
	},
	{
		ID:   "stress_concentration",
		Name: "Stress Concentration (σmax = Kt·σnom)",
		Params: []Param{
			number("kt", "Stress concentration factor Kt", "").positive(),
			number("nominal", "Nominal stress", "MPa"),
		},
		eval: func(a args) (Result, error) {
			return plain("max_stress", "Maximum stress", "MPa", stress.StressConcentration(a.num("kt"), a.num("nominal")))
		},
	},
	{
		ID:   "creep_rate_steady_state",
		Name: "Steady-State Creep Rate (Norton)",
		Params: []Param{
			number("a", "Material constant A", ""),
			number("stress", "Applied stress σ", "MPa"),
			number("n", "Stress exponent n", ""),
			number("q", "Activation energy Q", "J/mol"),
			number("t", "Absolute temperature T", "K").positive(),
			number("r", "Gas constant R", "J/mol·K").withDefault(stress.GasConstant),
		},
		eval: func(a args) (Result, error) {
			return single("creep_rate", "Creep rate", "1/s")(stress.CreepRate(a.num("a"), a.num("stress"), a.num("n"), a.num("q"), a.num("r"), a.num("t")))
		},
	},
}

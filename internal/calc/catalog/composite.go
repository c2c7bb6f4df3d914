package catalog

import "MMECalc/internal/calc/composite"

func mixtureParams() []Param {
	return []Param{
		number("ef", "Fibre modulus Ef", "GPa").positive(),
		number("vf", "Fibre volume fraction Vf, 0 to 1", ""),
		number("em", "Matrix modulus Em", "GPa").positive(),
	}
}

var compositeFormulas = []Formula{
	{
		ID:     "rule_of_mixtures_longitudinal",
		Name:   "Rule of Mixtures, Longitudinal Modulus",
		Params: mixtureParams(),
		eval: func(a args) (Result, error) {
			return single("ec", "Longitudinal modulus Ec", "GPa")(composite.LongitudinalModulus(a.num("ef"), a.num("vf"), a.num("em")))
		},
	},
	{
		ID:     "rule_of_mixtures_transverse",
		Name:   "Inverse Rule of Mixtures, Transverse Modulus",
		Params: mixtureParams(),
		eval: func(a args) (Result, error) {
			return single("ec", "Transverse modulus Ec", "GPa")(composite.TransverseModulus(a.num("ef"), a.num("vf"), a.num("em")))
		},
	},
	{
		ID:   "composite_density",
		Name: "Composite Density",
		Params: []Param{
			number("rho_f", "Fibre density", "g/cm³").positive(),
			number("vf", "Fibre volume fraction Vf, 0 to 1", ""),
			number("rho_m", "Matrix density", "g/cm³").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("rho_c", "Composite density", "g/cm³")(composite.Density(a.num("rho_f"), a.num("vf"), a.num("rho_m")))
		},
	},
	{
		ID:   "critical_fiber_length",
		Name: "Critical Fibre Length",
		Params: []Param{
			number("sigma_f", "Fibre tensile strength σf", "MPa").positive(),
			number("d", "Fibre diameter d", "mm").positive(),
			number("tau_c", "Interface shear strength τc", "MPa").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("lc", "Critical length lc", "mm")(composite.CriticalFiberLength(a.num("sigma_f"), a.num("d"), a.num("tau_c")))
		},
	},
	{
		ID:   "halpin_tsai",
		Name: "Halpin-Tsai Modulus",
		Params: []Param{
			number("em", "Matrix modulus Em", "GPa").positive(),
			number("ef", "Fibre modulus Ef", "GPa").positive(),
			number("vf", "Fibre volume fraction Vf, 0 to 1", ""),
			number("xi", "Shape factor ξ", "").withDefault(composite.DefaultXi),
		},
		eval: func(a args) (Result, error) {
			return single("ec", "Composite modulus Ec", "GPa")(composite.HalpinTsai(a.num("em"), a.num("ef"), a.num("vf"), a.num("xi")))
		},
	},
}

package catalog

import "MMECalc/internal/calc/crystal"

func apf(id, name string, fn func(float64) (float64, error)) Formula {
	return Formula{
		ID:     id,
		Name:   name,
		Params: []Param{number("radius", "Atomic radius r", "nm").positive()},
		eval: func(a args) (Result, error) {
			return single("apf", "Atomic packing factor", "")(fn(a.num("radius")))
		},
	}
}

var crystalFormulas = []Formula{
	apf("apf_bcc", "Atomic Packing Factor (BCC)", crystal.APFBCC),
	apf("apf_fcc", "Atomic Packing Factor (FCC)", crystal.APFFCC),
	apf("apf_hcp", "Atomic Packing Factor (HCP)", crystal.APFHCP),
	apf("apf_simple_cubic", "Atomic Packing Factor (Simple Cubic)", crystal.APFSimpleCubic),
	{
		ID:   "planar_density",
		Name: "Planar Density",
		Params: []Param{
			number("atoms", "Atoms centred on the plane", ""),
			number("area", "Plane area", "nm²").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("planar_density", "Planar density", "atoms/nm²")(crystal.PlanarDensity(a.num("atoms"), a.num("area")))
		},
	},
	{
		ID:   "linear_density",
		Name: "Linear Density",
		Params: []Param{
			number("atoms", "Atoms centred on the direction", ""),
			number("length", "Direction length", "nm").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("linear_density", "Linear density", "atoms/nm")(crystal.LinearDensity(a.num("atoms"), a.num("length")))
		},
	},
	{
		ID:     "astm_grain_count",
		Name:   "ASTM Grain Size → Grains per in² at 100×",
		Params: []Param{number("n", "ASTM grain size number", "")},
		eval: func(a args) (Result, error) {
			return plain("count", "Grains per square inch at 100×", "", crystal.ASTMGrainCount(a.num("n")))
		},
	},
	{
		ID:     "astm_grain_number_from_count",
		Name:   "Grains per in² at 100× → ASTM Grain Size",
		Params: []Param{number("count", "Grains per square inch at 100×", "").positive()},
		eval: func(a args) (Result, error) {
			return single("n", "ASTM grain size number", "")(crystal.ASTMGrainNumber(a.num("count")))
		},
	},
	{
		ID:   "hall_petch",
		Name: "Hall-Petch Yield Strength",
		Params: []Param{
			number("sigma0", "Friction stress σ₀", "MPa"),
			number("ky", "Strengthening coefficient ky", "MPa·m^½"),
			number("d", "Average grain diameter d", "m").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("yield_strength", "Yield strength", "MPa")(crystal.HallPetch(a.num("sigma0"), a.num("ky"), a.num("d")))
		},
	},
	{
		ID:   "burgers_vector_magnitude",
		Name: "Burgers Vector Magnitude",
		Params: []Param{
			number("a", "Lattice parameter a", "nm").positive(),
			number("h", "Direction index h", ""),
			number("k", "Direction index k", ""),
			number("l", "Direction index l", ""),
		},
		eval: func(a args) (Result, error) {
			return single("b", "Burgers vector |b|", "nm")(crystal.BurgersVector(a.num("a"), a.num("h"), a.num("k"), a.num("l")))
		},
	},
}

package catalog

import "MMECalc/internal/calc/mechanical"

var mechanicalFormulas = []Formula{
	{
		ID:     "brinell_to_tensile",
		Name:   "Brinell Hardness → Tensile Strength",
		Params: []Param{number("hb", "Brinell hardness", "HB").positive()},
		eval: func(a args) (Result, error) {
			return single("uts", "Estimated UTS", "MPa")(mechanical.BrinellToTensile(a.num("hb")))
		},
	},
	{
		ID:     "vickers_to_tensile",
		Name:   "Vickers Hardness → Tensile Strength",
		Params: []Param{number("hv", "Vickers hardness", "HV").positive()},
		eval: func(a args) (Result, error) {
			return single("uts", "Estimated UTS", "MPa")(mechanical.VickersToTensile(a.num("hv")))
		},
	},
	{
		ID:     "hrc_to_hb",
		Name:   "Rockwell C → Brinell (HRC → HB)",
		Params: []Param{number("hrc", "Rockwell C hardness, 20 to 55", "HRC")},
		eval: func(a args) (Result, error) {
			return single("hb", "Brinell hardness", "HB")(mechanical.HRCToHB(a.num("hrc")))
		},
	},
	{
		ID:     "hb_to_hrc",
		Name:   "Brinell → Rockwell C (HB → HRC)",
		Params: []Param{number("hb", "Brinell hardness, 226 to 545", "HB")},
		eval: func(a args) (Result, error) {
			return single("hrc", "Rockwell C hardness", "HRC")(mechanical.HBToHRC(a.num("hb")))
		},
	},
	{
		ID:   "yield_strength",
		Name: "Yield Strength (Force / Area)",
		Params: []Param{
			number("force", "Force at yield", "N"),
			number("area", "Original cross-section A₀", "mm²").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("yield_strength", "Yield strength", "MPa")(mechanical.YieldStrength(a.num("force"), a.num("area")))
		},
	},
	{
		ID:   "percent_elongation",
		Name: "Percent Elongation",
		Params: []Param{
			number("l0", "Original gauge length L₀", "mm").positive(),
			number("lf", "Final gauge length Lf", "mm"),
		},
		eval: func(a args) (Result, error) {
			return single("elongation", "Elongation", "%")(mechanical.PercentElongation(a.num("l0"), a.num("lf")))
		},
	},
	{
		ID:   "percent_reduction_area",
		Name: "Percent Reduction in Area",
		Params: []Param{
			number("a0", "Original area A₀", "mm²").positive(),
			number("af", "Final area Af", "mm²"),
		},
		eval: func(a args) (Result, error) {
			return single("reduction_area", "Reduction in area", "%")(mechanical.PercentReductionArea(a.num("a0"), a.num("af")))
		},
	},
	{
		ID:   "true_stress",
		Name: "True Stress from Engineering Values",
		Params: []Param{
			number("eng_stress", "Engineering stress", "MPa"),
			number("eng_strain", "Engineering strain", ""),
		},
		eval: func(a args) (Result, error) {
			return plain("true_stress", "True stress", "MPa", mechanical.TrueStress(a.num("eng_stress"), a.num("eng_strain")))
		},
	},
	{
		ID:     "true_strain",
		Name:   "True Strain from Engineering Strain",
		Params: []Param{number("eng_strain", "Engineering strain", "")},
		eval: func(a args) (Result, error) {
			return single("true_strain", "True strain", "")(mechanical.TrueStrain(a.num("eng_strain")))
		},
	},
	{
		ID:   "modulus_of_resilience",
		Name: "Modulus of Resilience",
		Params: []Param{
			number("yield_stress", "Yield stress", "MPa").positive(),
			number("e", "Young's modulus E", "MPa").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("resilience", "Modulus of resilience", "MJ/m³")(mechanical.ModulusOfResilience(a.num("yield_stress"), a.num("e")))
		},
	},
	{
		ID:   "basquin_fatigue_life",
		Name: "Basquin Fatigue Life (cycles)",
		Params: []Param{
			number("stress_amp", "Stress amplitude σa", "MPa").positive(),
			number("sigma_f", "Fatigue strength coefficient σf'", "MPa").positive(),
			number("b", "Basquin exponent b (negative)", ""),
		},
		eval: func(a args) (Result, error) {
			return single("cycles", "Fatigue life", "cycles")(mechanical.BasquinFatigueLife(a.num("stress_amp"), a.num("sigma_f"), a.num("b")))
		},
	},
	{
		ID:   "basquin_stress_amplitude",
		Name: "Basquin Stress Amplitude for N Cycles",
		Params: []Param{
			number("sigma_f", "Fatigue strength coefficient σf'", "MPa").positive(),
			number("n", "Number of cycles N", "cycles").positive(),
			number("b", "Basquin exponent b (negative)", ""),
		},
		eval: func(a args) (Result, error) {
			return single("stress_amp", "Stress amplitude", "MPa")(mechanical.BasquinStressAmplitude(a.num("sigma_f"), a.num("n"), a.num("b")))
		},
	},
	{
		ID:   "charpy_toughness",
		Name: "Charpy Impact Toughness",
		Params: []Param{
			number("energy", "Absorbed energy", "J"),
			number("area", "Ligament area", "mm²").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("toughness", "Impact toughness", "J/mm²")(mechanical.CharpyToughness(a.num("energy"), a.num("area")))
		},
	},
}

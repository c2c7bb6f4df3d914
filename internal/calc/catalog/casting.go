package catalog

import (
	"MMECalc/internal/calc"
	"MMECalc/internal/calc/casting"
)

var castingFormulas = []Formula{
	{
		ID:   "chvorinov_solidification_time",
		Name: "Chvorinov's Rule (solidification time)",
		Params: []Param{
			number("b", "Mould constant B", "s/m²").positive(),
			number("volume", "Casting volume V", "m³").positive(),
			number("area", "Surface area A", "m²").positive(),
			number("n", "Exponent n", "").withDefault(casting.DefaultChvorinovExponent),
		},
		eval: func(a args) (Result, error) {
			return single("time", "Solidification time", "s")(casting.ChvorinovTime(a.num("b"), a.num("volume"), a.num("area"), a.num("n")))
		},
	},
	{
		ID:   "casting_modulus",
		Name: "Casting Modulus (V/A)",
		Params: []Param{
			number("volume", "Volume V", "m³").positive(),
			number("area", "Surface area A", "m²").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("modulus", "Casting modulus", "m")(casting.Modulus(a.num("volume"), a.num("area")))
		},
	},
	{
		ID:   "shrinkage_allowance",
		Name: "Pattern Shrinkage Allowance",
		Params: []Param{
			number("length", "Final casting length", "mm").positive(),
			number("shrinkage_pct", "Shrinkage", "%"),
		},
		eval: func(a args) (Result, error) {
			return single("pattern_length", "Pattern length", "mm")(casting.ShrinkageAllowance(a.num("length"), a.num("shrinkage_pct")))
		},
	},
	{
		ID:   "typical_shrinkage_allowance",
		Name: "Pattern Length from Typical Alloy Shrinkage",
		Params: []Param{
			number("length", "Final casting length", "mm").positive(),
			text("alloy", "Alloy family").oneOf([]string{"cast_iron", "steel", "aluminium", "brass", "bronze"}),
		},
		eval: func(a args) (Result, error) {
			pct, ok := casting.TypicalShrinkage(a.str("alloy"))
			if !ok {
				return Result{}, calc.Domainf("alloy", "no typical shrinkage for %s", a.str("alloy"))
			}
			l, err := casting.ShrinkageAllowance(a.num("length"), pct)
			if err != nil {
				return Result{}, err
			}
			return Result{Outputs: []Output{
				{Name: "pattern_length", Label: "Pattern length", Value: l, Unit: "mm"},
				{Name: "shrinkage_pct", Label: "Typical shrinkage", Value: pct, Unit: "%"},
			}}, nil
		},
	},
	{
		ID:   "fluidity_index",
		Name: "Fluidity Index (superheat ratio)",
		Params: []Param{
			number("rho", "Melt density ρ", "kg/m³").positive(),
			number("cp", "Specific heat cp", "J/kg·K").positive(),
			number("superheat", "Superheat ΔT", "K"),
			number("latent_heat", "Latent heat of fusion", "J/kg").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("fluidity", "Fluidity index", "")(casting.FluidityIndex(a.num("rho"), a.num("cp"), a.num("superheat"), a.num("latent_heat")))
		},
	},
	{
		ID:   "newtonian_cooling_rate",
		Name: "Newtonian Cooling Rate of a Casting",
		Params: []Param{
			number("h", "Heat transfer coefficient h", "W/m²·K").positive(),
			number("area", "Surface area A", "m²").positive(),
			number("rho", "Density ρ", "kg/m³").positive(),
			number("cp", "Specific heat cp", "J/kg·K").positive(),
			number("volume", "Volume V", "m³").positive(),
			number("t_current", "Current temperature", "°C"),
			number("t_ambient", "Ambient temperature", "°C"),
		},
		eval: func(a args) (Result, error) {
			return single("cooling_rate", "Cooling rate", "K/s")(casting.NewtonianCoolingRate(
				a.num("h"), a.num("area"), a.num("rho"), a.num("cp"), a.num("volume"), a.num("t_current"), a.num("t_ambient")))
		},
	},
}

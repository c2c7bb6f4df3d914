package catalog

import "MMECalc/internal/calc/thermal"

var thermalFormulas = []Formula{
	{
		ID:   "fourier_heat_flux",
		Name: "Fourier Heat Flux (1-D conduction)",
		Params: []Param{
			number("k", "Thermal conductivity k", "W/m·K").positive(),
			number("delta_t", "Temperature difference ΔT", "K"),
			number("dx", "Thickness Δx", "m").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("heat_flux", "Heat flux", "W/m²")(thermal.FourierHeatFlux(a.num("k"), a.num("delta_t"), a.num("dx")))
		},
	},
	{
		ID:   "linear_thermal_expansion",
		Name: "Linear Thermal Expansion",
		Params: []Param{
			number("alpha", "Coefficient α", "1/K"),
			number("l0", "Original length L₀", "m").positive(),
			number("delta_t", "Temperature change ΔT", "K"),
		},
		eval: func(a args) (Result, error) {
			return single("delta_l", "Length change ΔL", "m")(thermal.LinearExpansion(a.num("alpha"), a.num("l0"), a.num("delta_t")))
		},
	},
	{
		ID:   "volumetric_thermal_expansion",
		Name: "Volumetric Thermal Expansion",
		Params: []Param{
			number("alpha", "Linear coefficient α", "1/K"),
			number("v0", "Original volume V₀", "m³").positive(),
			number("delta_t", "Temperature change ΔT", "K"),
		},
		eval: func(a args) (Result, error) {
			return single("delta_v", "Volume change ΔV", "m³")(thermal.VolumetricExpansion(a.num("alpha"), a.num("v0"), a.num("delta_t")))
		},
	},
	{
		ID:   "composite_slab_heat_flux",
		Name: "Composite Slab Heat Flux (series layers)",
		Params: []Param{
			number("delta_t", "Overall temperature difference ΔT", "K"),
			{Name: "layers", Label: "Layers (thickness m : conductivity W/m·K)", Kind: KindLayers},
		},
		eval: func(a args) (Result, error) {
			return single("heat_flux", "Heat flux", "W/m²")(thermal.CompositeSlabHeatFlux(a.num("delta_t"), a.layers))
		},
	},
	{
		ID:   "newton_cooling",
		Name: "Newton's Law of Cooling (heat rate)",
		Params: []Param{
			number("h", "Heat transfer coefficient h", "W/m²·K").positive(),
			number("area", "Surface area A", "m²").positive(),
			number("t_surface", "Surface temperature", "°C"),
			number("t_ambient", "Ambient temperature", "°C"),
		},
		eval: func(a args) (Result, error) {
			return single("heat_rate", "Heat transfer rate", "W")(thermal.NewtonCooling(a.num("h"), a.num("area"), a.num("t_surface"), a.num("t_ambient")))
		},
	},
	{
		ID:   "thermal_diffusivity",
		Name: "Thermal Diffusivity",
		Params: []Param{
			number("k", "Thermal conductivity k", "W/m·K").positive(),
			number("rho", "Density ρ", "kg/m³").positive(),
			number("cp", "Specific heat cp", "J/kg·K").positive(),
		},
		eval: func(a args) (Result, error) {
			return single("diffusivity", "Thermal diffusivity", "m²/s")(thermal.Diffusivity(a.num("k"), a.num("rho"), a.num("cp")))
		},
	},
}

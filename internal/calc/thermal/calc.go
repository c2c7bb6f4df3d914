// Package thermal covers Fourier conduction, thermal expansion, series
// composite slabs, Newton's law of cooling and thermal diffusivity.
package thermal

import (
	"math"

	"MMECalc/internal/calc"
)

// Layer is one slab of a series composite wall.
type Layer struct {
	ThicknessM   float64 `json:"thickness_m"`
	Conductivity float64 `json:"conductivity"` // W/m·K
}

// FourierHeatFlux returns the conductive heat flux magnitude in W/m².
func FourierHeatFlux(k, dT, dx float64) (float64, error) {
	if err := calc.Positive("dx", "distance dx", dx); err != nil {
		return 0, err
	}
	if err := calc.Positive("k", "thermal conductivity", k); err != nil {
		return 0, err
	}
	return k * math.Abs(dT) / dx, nil
}

// LinearExpansion returns ΔL in the units of l0.
func LinearExpansion(alpha, l0, dT float64) (float64, error) {
	if err := calc.Positive("l0", "original length", l0); err != nil {
		return 0, err
	}
	return alpha * l0 * dT, nil
}

// VolumetricExpansion uses the isotropic approximation ΔV = 3α·V0·ΔT.
func VolumetricExpansion(alpha, v0, dT float64) (float64, error) {
	if err := calc.Positive("v0", "original volume", v0); err != nil {
		return 0, err
	}
	return 3 * alpha * v0 * dT, nil
}

// CompositeSlabHeatFlux returns the steady-state flux (W/m²) through layers
// in series. Layer order does not change the result.
func CompositeSlabHeatFlux(dT float64, layers []Layer) (float64, error) {
	if len(layers) == 0 {
		return 0, calc.Domainf("layers", "at least one layer is required")
	}
	var resistance float64
	for _, l := range layers {
		if l.Conductivity == 0 {
			return 0, calc.Domainf("layers", "layer conductivity must not be zero")
		}
		resistance += l.ThicknessM / l.Conductivity
	}
	if resistance <= 0 {
		return 0, calc.Domainf("layers", "total thermal resistance must be positive")
	}
	return math.Abs(dT) / resistance, nil
}

// NewtonCooling returns the convective heat transfer rate in W.
func NewtonCooling(h, area, tSurface, tAmbient float64) (float64, error) {
	if err := calc.Positive("area", "surface area", area); err != nil {
		return 0, err
	}
	return h * area * (tSurface - tAmbient), nil
}

// Diffusivity returns k/(ρ·cp) in m²/s.
func Diffusivity(k, rho, cp float64) (float64, error) {
	if rho <= 0 || cp <= 0 || k <= 0 {
		return 0, calc.Domainf("k", "conductivity, density and specific heat must be positive")
	}
	return k / (rho * cp), nil
}

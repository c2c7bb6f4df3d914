// Package corrosion covers corrosion rate from weight loss, the
// Pilling-Bedworth ratio, galvanic couples and parabolic oxidation.
package corrosion

import (
	"math"

	"MMECalc/internal/calc"
)

const (
	// mpy for W in g, A in cm², T in hours, D in g/cm³.
	mpyConstant  = 3.45e6
	mmpyConstant = 8.76e4
)

// RateMPY returns the corrosion rate in mils per year.
func RateMPY(weightLoss, density, area, hours float64) (float64, error) {
	return rate(mpyConstant, weightLoss, density, area, hours)
}

// RateMMPY returns the corrosion rate in mm per year.
func RateMMPY(weightLoss, density, area, hours float64) (float64, error) {
	return rate(mmpyConstant, weightLoss, density, area, hours)
}

func rate(k, weightLoss, density, area, hours float64) (float64, error) {
	if area <= 0 || hours <= 0 || density <= 0 {
		return 0, calc.Domainf("area", "area, time and density must be positive")
	}
	return k * weightLoss / (area * hours * density), nil
}

// PillingBedworth is the oxide-to-metal volume ratio
// (M_oxide·ρ_metal) / (n·M_metal·ρ_oxide).
func PillingBedworth(mOxide, rhoMetal, n, mMetal, rhoOxide float64) (float64, error) {
	denom := n * mMetal * rhoOxide
	if denom <= 0 {
		return 0, calc.Domainf("n", "metal atoms, metal molar mass and oxide density must be positive")
	}
	return mOxide * rhoMetal / denom, nil
}

type OxideClass string

const (
	OxidePorous     OxideClass = "porous"
	OxideProtective OxideClass = "protective"
	OxideSpalling   OxideClass = "spalling"
)

// ClassifyOxide predicts how protective an oxide scale is from its ratio.
func ClassifyOxide(pbr float64) OxideClass {
	switch {
	case pbr < 1:
		return OxidePorous
	case pbr <= 2:
		return OxideProtective
	default:
		return OxideSpalling
	}
}

func (c OxideClass) Describe() string {
	switch c {
	case OxidePorous:
		return "porous, non-protective oxide"
	case OxideProtective:
		return "protective oxide"
	default:
		return "oxide prone to spalling or cracking"
	}
}

// ParabolicOxideThickness solves x² = kp·t for the scale thickness.
func ParabolicOxideThickness(kp, t float64) (float64, error) {
	if kp < 0 || t < 0 {
		return 0, calc.Domainf("kp", "rate constant and time must be non-negative")
	}
	return math.Sqrt(kp * t), nil
}

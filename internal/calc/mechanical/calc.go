// Package mechanical covers hardness conversions, tensile and yield
// strength, ductility, true stress-strain, resilience, fatigue and impact
// toughness. Stresses are in MPa unless noted.
package mechanical

import (
	"math"

	"MMECalc/internal/calc"
)

const (
	brinellUTSFactor = 3.45
	vickersUTSFactor = 3.18
)

// BrinellToTensile estimates UTS (MPa) from Brinell hardness.
func BrinellToTensile(hb float64) (float64, error) {
	if err := calc.Positive("hb", "Brinell hardness", hb); err != nil {
		return 0, err
	}
	return brinellUTSFactor * hb, nil
}

// VickersToTensile estimates UTS (MPa) from Vickers hardness.
func VickersToTensile(hv float64) (float64, error) {
	if err := calc.Positive("hv", "Vickers hardness", hv); err != nil {
		return 0, err
	}
	return vickersUTSFactor * hv, nil
}

// YieldStrength is F / A0 (MPa for N and mm²).
func YieldStrength(force, area float64) (float64, error) {
	if err := calc.Positive("area", "cross-sectional area", area); err != nil {
		return 0, err
	}
	return force / area, nil
}

func PercentElongation(l0, lf float64) (float64, error) {
	if err := calc.Positive("l0", "original gauge length", l0); err != nil {
		return 0, err
	}
	return (lf - l0) / l0 * 100, nil
}

func PercentReductionArea(a0, af float64) (float64, error) {
	if err := calc.Positive("a0", "original area", a0); err != nil {
		return 0, err
	}
	return (a0 - af) / a0 * 100, nil
}

// TrueStress converts engineering stress at the given engineering strain.
// Inputs are not checked.
func TrueStress(engStress, engStrain float64) float64 {
	return engStress * (1 + engStrain)
}

func TrueStrain(engStrain float64) (float64, error) {
	if engStrain <= -1 {
		return 0, calc.Domainf("eng_strain", "engineering strain must be greater than -1")
	}
	return math.Log(1 + engStrain), nil
}

// ModulusOfResilience is the elastic energy per unit volume, sy²/(2E).
func ModulusOfResilience(yieldStress, e float64) (float64, error) {
	if err := calc.Positive("e", "Young's modulus", e); err != nil {
		return 0, err
	}
	return yieldStress * yieldStress / (2 * e), nil
}

// BasquinFatigueLife solves sa = sf'·(2N)^b for the cycles to failure N.
func BasquinFatigueLife(stressAmp, sigmaF, b float64) (float64, error) {
	if sigmaF <= 0 {
		return 0, calc.Domainf("sigma_f", "stress values must be positive")
	}
	if stressAmp <= 0 {
		return 0, calc.Domainf("stress_amp", "stress values must be positive")
	}
	if b >= 0 {
		return 0, calc.Domainf("b", "Basquin exponent b must be negative")
	}
	return 0.5 * math.Pow(stressAmp/sigmaF, 1/b), nil
}

// BasquinStressAmplitude gives the allowable stress amplitude for n cycles.
func BasquinStressAmplitude(sigmaF, n, b float64) (float64, error) {
	if err := calc.Positive("n", "number of cycles", n); err != nil {
		return 0, err
	}
	return sigmaF * math.Pow(2*n, b), nil
}

// CharpyToughness is absorbed energy per unit cross-section.
func CharpyToughness(energy, area float64) (float64, error) {
	if err := calc.Positive("area", "cross-section area", area); err != nil {
		return 0, err
	}
	return energy / area, nil
}

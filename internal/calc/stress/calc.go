// Package stress covers Hooke's law, Poisson contraction, elastic constant
// relations, von Mises stress, factor of safety, stress concentration and
// power-law creep.
package stress

import (
	"math"

	"MMECalc/internal/calc"
)

// GasConstant in J/mol·K.
const GasConstant = 8.314

// HookeStress is σ = E·ε.
func HookeStress(e, strain float64) float64 {
	return e * strain
}

// HookeStrain is ε = σ/E.
func HookeStrain(e, sigma float64) (float64, error) {
	if err := calc.Positive("e", "Young's modulus", e); err != nil {
		return 0, err
	}
	return sigma / e, nil
}

// PoissonStrain returns the lateral strain for an axial strain.
func PoissonStrain(nu, axial float64) float64 {
	return -nu * axial
}

// ShearModulus is G = E / 2(1+ν).
func ShearModulus(e, nu float64) (float64, error) {
	if 1+nu == 0 {
		return 0, calc.Domainf("nu", "(1 + ν) must not be zero")
	}
	return e / (2 * (1 + nu)), nil
}

// BulkModulus is K = E / 3(1-2ν).
func BulkModulus(e, nu float64) (float64, error) {
	denom := 3 * (1 - 2*nu)
	if denom == 0 {
		return 0, calc.Domainf("nu", "(1 - 2ν) must not be zero (ν ≠ 0.5)")
	}
	return e / denom, nil
}

// VonMises returns the equivalent stress for three principal stresses.
func VonMises(s1, s2, s3 float64) float64 {
	d12, d23, d31 := s1-s2, s2-s3, s3-s1
	return math.Sqrt(0.5 * (d12*d12 + d23*d23 + d31*d31))
}

// FactorOfSafety is σ_yield / σ_applied.
func FactorOfSafety(yield, applied float64) (float64, error) {
	if applied == 0 {
		return 0, calc.Domainf("applied", "applied stress must not be zero")
	}
	return yield / applied, nil
}

// Verdict reports whether a factor of safety passes.
func Verdict(fos float64) string {
	if fos >= 1 {
		return "design is safe"
	}
	return "design fails, FoS < 1"
}

// StressConcentration is σ_max = Kt·σ_nom.
func StressConcentration(kt, nominal float64) float64 {
	return kt * nominal
}

// CreepRate is the Norton power law A·σⁿ·exp(-Q/RT). T is absolute.
func CreepRate(a, sigma, n, q, r, t float64) (float64, error) {
	if err := calc.Positive("t", "temperature (Kelvin)", t); err != nil {
		return 0, err
	}
	return a * math.Pow(sigma, n) * math.Exp(-q/(r*t)), nil
}

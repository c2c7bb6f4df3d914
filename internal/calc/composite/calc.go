// Package composite covers the Voigt and Reuss rules of mixtures, composite
// density, critical fiber length and the Halpin-Tsai equation.
package composite

import "MMECalc/internal/calc"

// DefaultXi is the Halpin-Tsai geometry factor for circular fibers loaded
// transversely.
const DefaultXi = 2.0

func checkFraction(vf float64) error {
	return calc.Fraction("vf", "fiber volume fraction", vf)
}

func checkModuli(ef, em float64) error {
	if ef <= 0 || em <= 0 {
		return calc.Domainf("ef", "moduli must be positive")
	}
	return nil
}

// LongitudinalModulus is the iso-strain rule Ef·Vf + Em·(1-Vf). It applies to
// strength as well.
func LongitudinalModulus(ef, vf, em float64) (float64, error) {
	if err := checkFraction(vf); err != nil {
		return 0, err
	}
	return ef*vf + em*(1-vf), nil
}

// TransverseModulus is the iso-stress rule 1/(Vf/Ef + Vm/Em).
func TransverseModulus(ef, vf, em float64) (float64, error) {
	if err := checkFraction(vf); err != nil {
		return 0, err
	}
	if err := checkModuli(ef, em); err != nil {
		return 0, err
	}
	return 1 / (vf/ef + (1-vf)/em), nil
}

func Density(rhoFiber, vf, rhoMatrix float64) (float64, error) {
	if err := checkFraction(vf); err != nil {
		return 0, err
	}
	return rhoFiber*vf + rhoMatrix*(1-vf), nil
}

// CriticalFiberLength is σf·d/(2τc). Longer fibers carry load effectively.
func CriticalFiberLength(sigmaF, d, tauC float64) (float64, error) {
	if tauC <= 0 || d <= 0 {
		return 0, calc.Domainf("d", "fiber diameter and shear strength must be positive")
	}
	return sigmaF * d / (2 * tauC), nil
}

// HalpinTsai estimates the transverse or shear modulus of a fiber composite.
func HalpinTsai(em, ef, vf, xi float64) (float64, error) {
	if err := checkFraction(vf); err != nil {
		return 0, err
	}
	if err := checkModuli(ef, em); err != nil {
		return 0, err
	}
	ratio := ef / em
	eta := (ratio - 1) / (ratio + xi)
	return em * (1 + xi*eta*vf) / (1 - eta*vf), nil
}

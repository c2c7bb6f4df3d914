// Package phase covers the lever rule, the Gibbs phase rule, Avrami
// kinetics, the IIW carbon equivalent and Scheil micro-segregation.
package phase

import (
	"math"

	"MMECalc/internal/calc"
)

// Fractions are the weight fractions of the two phases of a tie line.
type Fractions struct {
	Alpha float64 `json:"w_alpha"`
	Beta  float64 `json:"w_beta"`
}

// LeverRule splits overall composition c0 between the α and β boundary
// compositions. Beta is always 1 - Alpha. For c0 on the tie line the two
// fractions sum to exactly 1; outside it (lever arm past a boundary) the
// sum can be off by one ulp.
func LeverRule(c0, cAlpha, cBeta float64) (Fractions, error) {
	denom := cBeta - cAlpha
	if denom == 0 {
		return Fractions{}, calc.Domainf("c_beta", "phase boundary compositions must differ")
	}
	wa := (cBeta - c0) / denom
	return Fractions{Alpha: wa, Beta: 1 - wa}, nil
}

// GibbsPhaseRule returns the degrees of freedom F = C - P + 2.
func GibbsPhaseRule(components, phases int) (int, error) {
	if components < 1 || phases < 1 {
		return 0, calc.Domainf("components", "components and phases must be at least 1")
	}
	f := components - phases + 2
	if f < 0 {
		return 0, calc.Domainf("phases", "invalid system: degrees of freedom cannot be negative")
	}
	return f, nil
}

// AvramiFraction returns the transformed fraction 1 - exp(-k·t^n).
func AvramiFraction(k, t, n float64) (float64, error) {
	if err := calc.NonNegative("t", "time", t); err != nil {
		return 0, err
	}
	if err := calc.NonNegative("k", "rate constant k", k); err != nil {
		return 0, err
	}
	if t == 0 {
		return 0, nil
	}
	return 1 - math.Exp(-k*math.Pow(t, n)), nil
}

// Composition is a steel chemistry in wt%. Unset elements count as zero.
type Composition struct {
	C  float64 `json:"c"`
	Mn float64 `json:"mn"`
	Cr float64 `json:"cr"`
	Mo float64 `json:"mo"`
	V  float64 `json:"v"`
	Ni float64 `json:"ni"`
	Cu float64 `json:"cu"`
}

// CarbonEquivalent is the IIW formula. Negative percentages are accepted.
func CarbonEquivalent(c Composition) float64 {
	return c.C + c.Mn/6 + (c.Cr+c.Mo+c.V)/5 + (c.Ni+c.Cu)/15
}

type WeldabilityRating string

const (
	WeldabilityGood WeldabilityRating = "good"
	WeldabilityFair WeldabilityRating = "fair"
	WeldabilityPoor WeldabilityRating = "poor"
)

// Weldability rates a carbon equivalent.
func Weldability(ce float64) WeldabilityRating {
	switch {
	case ce < 0.40:
		return WeldabilityGood
	case ce <= 0.60:
		return WeldabilityFair
	default:
		return WeldabilityPoor
	}
}

func (w WeldabilityRating) Describe() string {
	switch w {
	case WeldabilityGood:
		return "good weldability"
	case WeldabilityFair:
		return "fair weldability, preheat recommended"
	default:
		return "poor weldability, special procedures needed"
	}
}

// Scheil returns the solid composition at fraction solid fs for partition
// coefficient k and nominal composition c0.
func Scheil(k, c0, fs float64) (float64, error) {
	if fs < 0 || fs >= 1 {
		return 0, calc.Domainf("fs", "fraction solid must be in [0, 1)")
	}
	if err := calc.Positive("k", "partition coefficient", k); err != nil {
		return 0, err
	}
	return k * c0 * math.Pow(1-fs, k-1), nil
}

// Package crystal covers atomic packing factors, planar and linear density,
// ASTM grain size, Hall-Petch strengthening and Burgers vector magnitude.
// Lengths may be in any consistent unit.
package crystal

import (
	"math"

	"MMECalc/internal/calc"
)

func sphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}

func checkRadius(r float64) error {
	return calc.Positive("radius", "atomic radius", r)
}

// APFBCC: 2 atoms per cell, a = 4r/√3. About 0.68.
func APFBCC(r float64) (float64, error) {
	if err := checkRadius(r); err != nil {
		return 0, err
	}
	a := 4 * r / math.Sqrt(3)
	return 2 * sphereVolume(r) / (a * a * a), nil
}

// APFFCC: 4 atoms per cell, a = 2√2·r. About 0.74.
func APFFCC(r float64) (float64, error) {
	if err := checkRadius(r); err != nil {
		return 0, err
	}
	a := 2 * math.Sqrt2 * r
	return 4 * sphereVolume(r) / (a * a * a), nil
}

// APFHCP for the ideal c/a = √(8/3): 6 atoms in a cell of (3√3/2)·a²·c.
func APFHCP(r float64) (float64, error) {
	if err := checkRadius(r); err != nil {
		return 0, err
	}
	a := 2 * r
	c := 4 / math.Sqrt(6) * a
	cell := 3 * math.Sqrt(3) / 2 * a * a * c
	return 6 * sphereVolume(r) / cell, nil
}

// APFSimpleCubic: 1 atom per cell, a = 2r. About 0.524.
func APFSimpleCubic(r float64) (float64, error) {
	if err := checkRadius(r); err != nil {
		return 0, err
	}
	a := 2 * r
	return sphereVolume(r) / (a * a * a), nil
}

// PlanarDensity is atoms centred on a plane per unit area.
func PlanarDensity(atoms, area float64) (float64, error) {
	if err := calc.Positive("area", "plane area", area); err != nil {
		return 0, err
	}
	return atoms / area, nil
}

// LinearDensity is atoms centred on a direction per unit length.
func LinearDensity(atoms, length float64) (float64, error) {
	if err := calc.Positive("length", "direction length", length); err != nil {
		return 0, err
	}
	return atoms / length, nil
}

// ASTMGrainCount is the number of grains per square inch at 100x for ASTM
// grain size number n.
func ASTMGrainCount(n float64) float64 {
	return math.Pow(2, n-1)
}

// ASTMGrainNumber inverts ASTMGrainCount.
func ASTMGrainNumber(count float64) (float64, error) {
	if err := calc.Positive("count", "grain count", count); err != nil {
		return 0, err
	}
	return 1 + math.Log2(count), nil
}

// HallPetch returns σ0 + ky/√d. d is in the length unit of ky.
func HallPetch(sigma0, ky, d float64) (float64, error) {
	if err := calc.Positive("d", "grain diameter", d); err != nil {
		return 0, err
	}
	return sigma0 + ky/math.Sqrt(d), nil
}

// BurgersVector returns |b| = (a/2)·√(h²+k²+l²).
// FCC <110> gives a/√2, BCC <111> gives a√3/2.
func BurgersVector(a, h, k, l float64) (float64, error) {
	if err := calc.Positive("a", "lattice parameter", a); err != nil {
		return 0, err
	}
	return a / 2 * math.Sqrt(h*h+k*k+l*l), nil
}

// Package casting covers Chvorinov's rule, casting modulus, pattern
// shrinkage allowance, fluidity index and lumped-capacitance cooling rate.
package casting

import (
	"math"
	"strings"

	"MMECalc/internal/calc"
)

// DefaultChvorinovExponent is the usual n in t = B·(V/A)^n.
const DefaultChvorinovExponent = 2.0

// ChvorinovTime returns the solidification time B·(V/A)^n.
func ChvorinovTime(b, volume, area, n float64) (float64, error) {
	if area <= 0 || volume <= 0 {
		return 0, calc.Domainf("volume", "volume and surface area must be positive")
	}
	if err := calc.Positive("b", "mold constant", b); err != nil {
		return 0, err
	}
	return b * math.Pow(volume/area, n), nil
}

// Modulus is V/A. A riser modulus must exceed the casting modulus.
func Modulus(volume, area float64) (float64, error) {
	if err := calc.Positive("area", "surface area", area); err != nil {
		return 0, err
	}
	return volume / area, nil
}

// ShrinkageAllowance returns the pattern length for a casting of length l.
func ShrinkageAllowance(length, pct float64) (float64, error) {
	if err := calc.Positive("length", "length", length); err != nil {
		return 0, err
	}
	return length * (1 + pct/100), nil
}

var typicalShrinkage = map[string]float64{
	"cast_iron": 1.0,
	"steel":     2.0,
	"aluminium": 1.3,
	"aluminum":  1.3,
	"brass":     1.5,
	"bronze":    1.5,
}

// TypicalShrinkage returns a handbook shrinkage percentage for an alloy
// family.
func TypicalShrinkage(alloy string) (float64, bool) {
	pct, ok := typicalShrinkage[strings.ReplaceAll(strings.ToLower(strings.TrimSpace(alloy)), " ", "_")]
	return pct, ok
}

// FluidityIndex is ρ·cp·ΔT_superheat / L_f. Higher flows better.
func FluidityIndex(rho, cp, superheat, latentHeat float64) (float64, error) {
	if err := calc.Positive("latent_heat", "latent heat", latentHeat); err != nil {
		return 0, err
	}
	return rho * cp * superheat / latentHeat, nil
}

// NewtonianCoolingRate returns dT/dt in K/s. Negative while the casting is
// above ambient.
func NewtonianCoolingRate(h, area, rho, cp, volume, tCurrent, tAmbient float64) (float64, error) {
	if volume <= 0 || rho <= 0 || cp <= 0 {
		return 0, calc.Domainf("volume", "volume, density and specific heat must be positive")
	}
	group := h * area / (rho * cp * volume)
	return -group * (tCurrent - tAmbient), nil
}

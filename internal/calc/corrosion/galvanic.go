package corrosion

import (
	"fmt"
	"math"
	"strings"

	"MMECalc/internal/calc"
)

type potential struct {
	metal string
	volts float64
}

// Approximate corrosion potentials in seawater, V vs SCE. More negative is
// more anodic.
var galvanicSeries = []potential{
	{"magnesium", -1.60},
	{"zinc", -1.03},
	{"aluminium", -0.76},
	{"mild_steel", -0.60},
	{"cast_iron", -0.50},
	{"stainless_304", -0.08},
	{"stainless_316", -0.05},
	{"copper", -0.20},
	{"brass", -0.30},
	{"nickel", -0.12},
	{"silver", -0.02},
	{"titanium", -0.05},
	{"gold", 0.18},
	{"platinum", 0.22},
}

var potentials = func() map[string]float64 {
	m := make(map[string]float64, len(galvanicSeries))
	for _, p := range galvanicSeries {
		m[p.metal] = p.volts
	}
	return m
}()

// UnknownMetalError is returned for a name missing from the galvanic
// series. It matches calc.ErrDomain.
type UnknownMetalError struct {
	Name      string
	Available []string
}

func (e *UnknownMetalError) Error() string {
	return fmt.Sprintf("unknown metal: %s. Available: %s", e.Name, strings.Join(e.Available, ", "))
}

func (e *UnknownMetalError) Is(target error) bool {
	return target == calc.ErrDomain
}

// Couple is the result of pairing two metals.
type Couple struct {
	Difference float64 `json:"difference_v"`
	Anode      string  `json:"anode"`
	Cathode    string  `json:"cathode"`
}

// CanonicalMetal folds case and replaces spaces with underscores.
func CanonicalMetal(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Potential looks up the tabulated potential of a metal.
func Potential(name string) (float64, error) {
	v, ok := potentials[CanonicalMetal(name)]
	if !ok {
		return 0, &UnknownMetalError{Name: name, Available: AvailableMetals()}
	}
	return v, nil
}

// GalvanicPotentialDiff pairs metals a and b. The metal with the more
// negative potential is the anode. With equal potentials b is reported as
// the anode. Names are returned as given.
func GalvanicPotentialDiff(a, b string) (Couple, error) {
	va, err := Potential(a)
	if err != nil {
		return Couple{}, err
	}
	vb, err := Potential(b)
	if err != nil {
		return Couple{}, err
	}
	out := Couple{Difference: math.Abs(va - vb), Anode: b, Cathode: a}
	if va < vb {
		out.Anode, out.Cathode = a, b
	}
	return out, nil
}

// AvailableMetals lists the galvanic series keys in table order.
func AvailableMetals() []string {
	out := make([]string, len(galvanicSeries))
	for i, p := range galvanicSeries {
		out[i] = p.metal
	}
	return out
}

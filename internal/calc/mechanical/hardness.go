package mechanical

import "MMECalc/internal/calc"

// HardnessPoint pairs a Rockwell C reading with its approximate Brinell value.
type HardnessPoint struct {
	HRC float64 `json:"hrc"`
	HB  float64 `json:"hb"`
}

// Approximate steel conversion, strictly increasing in both columns.
var hardnessTable = []HardnessPoint{
	{20, 226}, {21, 231}, {22, 237}, {23, 243}, {24, 247},
	{25, 253}, {26, 258}, {27, 264}, {28, 271}, {29, 279},
	{30, 286}, {31, 294}, {32, 301}, {33, 311}, {34, 319},
	{35, 327}, {36, 336}, {37, 344}, {38, 353}, {39, 362},
	{40, 371}, {41, 381}, {42, 390}, {43, 400}, {44, 409},
	{45, 421}, {46, 432}, {47, 442}, {48, 453}, {49, 465},
	{50, 477}, {51, 489}, {52, 500}, {53, 514}, {54, 528},
	{55, 545},
}

const (
	MinHRC = 20.0
	MaxHRC = 55.0
	MinHB  = 226.0
	MaxHB  = 545.0
)

// HardnessTable returns a copy of the HRC/HB conversion table.
func HardnessTable() []HardnessPoint {
	out := make([]HardnessPoint, len(hardnessTable))
	copy(out, hardnessTable)
	return out
}

// HRCToHB converts Rockwell C hardness to approximate Brinell hardness.
func HRCToHB(hrc float64) (float64, error) {
	if hrc < MinHRC || hrc > MaxHRC {
		return 0, calc.Domainf("hrc", "HRC must be in the range 20-55 for reliable conversion")
	}
	return interpolate(hrc,
		func(p HardnessPoint) float64 { return p.HRC },
		func(p HardnessPoint) float64 { return p.HB }), nil
}

// HBToHRC converts Brinell hardness to approximate Rockwell C hardness.
func HBToHRC(hb float64) (float64, error) {
	if hb < MinHB || hb > MaxHB {
		return 0, calc.Domainf("hb", "HB must be in the range 226-545 for reliable HRC conversion")
	}
	return interpolate(hb,
		func(p HardnessPoint) float64 { return p.HB },
		func(p HardnessPoint) float64 { return p.HRC }), nil
}

// interpolate finds the bracket holding x on the key column and linearly
// interpolates the value column. Falls back to the last value when no
// bracket matches.
func interpolate(x float64, key, val func(HardnessPoint) float64) float64 {
	for i := 0; i < len(hardnessTable)-1; i++ {
		lo, hi := hardnessTable[i], hardnessTable[i+1]
		x0, x1 := key(lo), key(hi)
		if x0 <= x && x <= x1 {
			frac := (x - x0) / (x1 - x0)
			return val(lo) + frac*(val(hi)-val(lo))
		}
	}
	return val(hardnessTable[len(hardnessTable)-1])
}

// Package curve builds the data series behind the report charts: an
// idealised engineering stress-strain curve, a Newtonian cooling curve and
// the approximate HRC/HB relation.
package curve

import (
	"math"

	"MMECalc/internal/calc"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named polyline plus the points worth annotating on it.
type Series struct {
	Title  string           `json:"title"`
	XLabel string           `json:"x_label"`
	YLabel string           `json:"y_label"`
	Points []Point          `json:"points"`
	Marks  map[string]Point `json:"marks,omitempty"`
}

const (
	elasticSamples = 20
	plasticSamples = 50
	neckingSamples = 20
	// UTS is placed at 70% of the way from yield to fracture strain.
	utsPosition = 0.7
	// engineering fracture stress relative to UTS after necking.
	fractureRatio = 0.85
)

func linspace(from, to float64, n int) []float64 {
	if n < 2 {
		return []float64{from}
	}
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
	out[n-1] = to
	return out
}

// StressStrain builds a simplified engineering stress-strain curve for
// modulus e (MPa), yield and ultimate strengths (MPa) and fracture strain.
func StressStrain(e, yield, uts, fractureStrain float64) (Series, error) {
	if err := calc.First(
		calc.Positive("e", "Young's modulus", e),
		calc.Positive("yield", "yield strength", yield),
	); err != nil {
		return Series{}, err
	}
	epsY := yield / e
	if fractureStrain <= epsY {
		return Series{}, calc.Domainf("fracture_strain", "fracture strain must exceed the yield strain")
	}
	epsU := epsY + utsPosition*(fractureStrain-epsY)

	var pts []Point
	for _, x := range linspace(0, epsY, elasticSamples) {
		pts = append(pts, Point{x, x * e})
	}

	if uts > yield {
		// σ = K·εⁿ through yield and UTS
		n := math.Log(uts/yield) / math.Log(epsU/epsY)
		k := yield / math.Pow(epsY, n)
		for _, x := range linspace(epsY, epsU, plasticSamples)[1:] {
			pts = append(pts, Point{x, k * math.Pow(x, n)})
		}
	} else {
		pts = append(pts, Point{epsU, uts})
	}

	sigmaF := uts * fractureRatio
	a := (sigmaF - uts) / ((fractureStrain - epsU) * (fractureStrain - epsU))
	for _, x := range linspace(epsU, fractureStrain, neckingSamples)[1:] {
		d := x - epsU
		pts = append(pts, Point{x, a*d*d + uts})
	}

	return Series{
		Title:  "Theoretical Stress-Strain Curve",
		XLabel: "Strain",
		YLabel: "Stress (MPa)",
		Points: pts,
		Marks: map[string]Point{
			"yield":    {epsY, yield},
			"uts":      {epsU, uts},
			"fracture": {fractureStrain, sigmaF},
		},
	}, nil
}

// Sample counts for a cooling curve. Zero or one selects the default.
const (
	DefaultCoolingSamples = 100
	MaxCoolingSamples     = 1000
)

// Cooling samples T(t) = T∞ + (T0 - T∞)·e^(-kt) over [0, duration].
func Cooling(t0, tAmbient, k, duration float64, samples int) (Series, error) {
	if err := calc.Positive("duration", "duration", duration); err != nil {
		return Series{}, err
	}
	if samples > MaxCoolingSamples {
		return Series{}, calc.Domainf("samples", "at most %d samples are allowed", MaxCoolingSamples)
	}
	if samples < 2 {
		samples = DefaultCoolingSamples
	}
	pts := make([]Point, 0, samples)
	for _, t := range linspace(0, duration, samples) {
		pts = append(pts, Point{t, tAmbient + (t0-tAmbient)*math.Exp(-k*t)})
	}
	return Series{
		Title:  "Cooling Curve (Newton's Law)",
		XLabel: "Time (s)",
		YLabel: "Temperature",
		Points: pts,
		Marks:  map[string]Point{"ambient": {duration, tAmbient}},
	}, nil
}

// HardnessChart plots HRC 20-65 against a polynomial fit of the steel
// conversion tables.
func HardnessChart() Series {
	pts := make([]Point, 0, 46)
	for hrc := 20; hrc <= 65; hrc++ {
		x := float64(hrc)
		pts = append(pts, Point{x, approximateHB(x)})
	}
	return Series{
		Title:  "Hardness Conversion Chart (Approximate)",
		XLabel: "Rockwell C Hardness (HRC)",
		YLabel: "Brinell Hardness (HB)",
		Points: pts,
		Marks:  map[string]Point{"hrc40": {40, approximateHB(40)}},
	}
}

func approximateHB(hrc float64) float64 {
	return 115 + 4.8*hrc + 0.08*hrc*hrc
}

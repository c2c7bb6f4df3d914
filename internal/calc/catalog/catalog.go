// Package catalog is the command table over the formula packages. Every
// formula has a stable string id, parameter metadata for prompting and
// validation, and a handler that turns an Input into a Result. Front-ends
// (menu, CLI, HTTP, bot) dispatch through here instead of calling the
// formula packages directly.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"MMECalc/internal/calc"
	"MMECalc/internal/calc/thermal"
)

type Category string

const (
	Mechanical      Category = "mechanical"
	Thermal         Category = "thermal"
	Phase           Category = "phase"
	Corrosion       Category = "corrosion"
	Casting         Category = "casting"
	Crystallography Category = "crystallography"
	Composites      Category = "composites"
	StressStrain    Category = "stress_strain"
)

var categoryOrder = []Category{
	Mechanical, Thermal, Phase, Corrosion, Casting, Crystallography, Composites, StressStrain,
}

var categoryTitles = map[Category]string{
	Mechanical:      "Mechanical Properties",
	Thermal:         "Thermal Properties",
	Phase:           "Phase Transformations",
	Corrosion:       "Corrosion & Degradation",
	Casting:         "Casting & Solidification",
	Crystallography: "Crystallography & Defects",
	Composites:      "Composite Materials",
	StressStrain:    "Stress & Strain Analysis",
}

func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// Kind tells front-ends how to collect a parameter.
type Kind string

const (
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindText    Kind = "text"
	KindLayers  Kind = "layers"
)

// Param describes one formula input. Positive is a prompting hint: the
// interactive menu re-asks for values <= 0. Evaluation only enforces the
// preconditions of the formula itself.
type Param struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Unit     string   `json:"unit,omitempty"`
	Kind     Kind     `json:"kind"`
	Positive bool     `json:"positive,omitempty"`
	Optional bool     `json:"optional,omitempty"`
	Default  float64  `json:"default,omitempty"`
	Choices  []string `json:"choices,omitempty"`
}

func number(name, label, unit string) Param {
	return Param{Name: name, Label: label, Unit: unit, Kind: KindNumber}
}

func integer(name, label string) Param {
	return Param{Name: name, Label: label, Kind: KindInteger, Positive: true}
}

func text(name, label string) Param {
	return Param{Name: name, Label: label, Kind: KindText}
}

func (p Param) positive() Param {
	p.Positive = true
	return p
}

func (p Param) oneOf(choices []string) Param {
	p.Choices = choices
	return p
}

func (p Param) withDefault(v float64) Param {
	p.Optional = true
	p.Default = v
	return p
}

// Output is one computed quantity.
type Output struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Tag is a non-numeric result such as the anode of a galvanic couple.
type Tag struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type Result struct {
	Formula string   `json:"formula"`
	Outputs []Output `json:"outputs"`
	Tags    []Tag    `json:"tags,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// Value returns the first output, or 0 for an empty result.
func (r Result) Value() float64 {
	if len(r.Outputs) == 0 {
		return 0
	}
	return r.Outputs[0].Value
}

type Formula struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Params   []Param  `json:"params"`

	eval func(args) (Result, error)
}

var ErrUnknownFormula = errors.New("unknown formula")

// InputError reports a missing or malformed parameter, as opposed to a
// physically invalid value.
type InputError struct {
	Param  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Param, e.Reason)
}

type registry struct {
	ordered []Formula
	byID    map[string]int
}

func newRegistry(groups ...[]Formula) *registry {
	r := &registry{byID: make(map[string]int)}
	for _, g := range groups {
		for _, f := range g {
			if _, dup := r.byID[f.ID]; dup {
				panic("catalog: duplicate formula id " + f.ID)
			}
			r.byID[f.ID] = len(r.ordered)
			r.ordered = append(r.ordered, f)
		}
	}
	return r
}

func group(c Category, fs []Formula) []Formula {
	for i := range fs {
		fs[i].Category = c
	}
	return fs
}

var formulas = newRegistry(
	group(Mechanical, mechanicalFormulas),
	group(Thermal, thermalFormulas),
	group(Phase, phaseFormulas),
	group(Corrosion, corrosionFormulas),
	group(Casting, castingFormulas),
	group(Crystallography, crystalFormulas),
	group(Composites, compositeFormulas),
	group(StressStrain, stressFormulas),
)

// All returns every formula in menu order.
func All() []Formula {
	out := make([]Formula, len(formulas.ordered))
	copy(out, formulas.ordered)
	return out
}

// Categories returns the categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func ByCategory(c Category) []Formula {
	var out []Formula
	for _, f := range formulas.ordered {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// CanonicalID folds case, trims and maps dashes to underscores.
func CanonicalID(id string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "-", "_")
}

func Lookup(id string) (Formula, bool) {
	i, ok := formulas.byID[CanonicalID(id)]
	if !ok {
		return Formula{}, false
	}
	return formulas.ordered[i], true
}

// IDs returns every formula id sorted alphabetically.
func IDs() []string {
	out := make([]string, 0, len(formulas.ordered))
	for _, f := range formulas.ordered {
		out = append(out, f.ID)
	}
	sort.Strings(out)
	return out
}

// Evaluate runs formula id against in.
func Evaluate(id string, in Input) (Result, error) {
	f, ok := Lookup(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownFormula, id)
	}
	return f.Evaluate(in)
}

// Evaluate resolves the parameters of f from in and calls the formula.
// Optional parameters fall back to their defaults.
func (f Formula) Evaluate(in Input) (Result, error) {
	a := args{values: make(map[string]float64, len(f.Params)), text: make(map[string]string)}
	for _, p := range f.Params {
		switch p.Kind {
		case KindText:
			s := strings.TrimSpace(in.Text[p.Name])
			if s == "" {
				return Result{}, &InputError{Param: p.Name, Reason: "missing value"}
			}
			a.text[p.Name] = s
		case KindLayers:
			a.layers = in.Layers
		default:
			v, err := resolveNumber(p, in)
			if err != nil {
				return Result{}, err
			}
			a.values[p.Name] = v
		}
	}
	res, err := f.eval(a)
	if err != nil {
		return Result{}, err
	}
	res.Formula = f.ID
	return res, nil
}

func resolveNumber(p Param, in Input) (float64, error) {
	v, ok := in.Values[p.Name]
	if !ok {
		if _, isText := in.Text[p.Name]; isText {
			return 0, &InputError{Param: p.Name, Reason: "must be a number"}
		}
		if !p.Optional {
			return 0, &InputError{Param: p.Name, Reason: "missing value"}
		}
		return p.Default, nil
	}
	if err := calc.Finite(p.Name, p.Label, v); err != nil {
		return 0, err
	}
	if p.Kind == KindInteger {
		if v != math.Trunc(v) {
			return 0, &InputError{Param: p.Name, Reason: "must be a whole number"}
		}
		if math.Abs(v) > math.MaxInt32 {
			return 0, &InputError{Param: p.Name, Reason: "whole number out of range"}
		}
	}
	return v, nil
}

type args struct {
	values map[string]float64
	text   map[string]string
	layers []thermal.Layer
}

func (a args) num(name string) float64 { return a.values[name] }

func (a args) whole(name string) int { return int(a.values[name]) }

func (a args) str(name string) string { return a.text[name] }

// single wraps a scalar formula result.
func single(name, label, unit string) func(float64, error) (Result, error) {
	return func(v float64, err error) (Result, error) {
		if err != nil {
			return Result{}, err
		}
		return Result{Outputs: []Output{{Name: name, Label: label, Value: v, Unit: unit}}}, nil
	}
}

// plain wraps an unvalidated formula result.
func plain(name, label, unit string, v float64) (Result, error) {
	return single(name, label, unit)(v, nil)
}

package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"MMECalc/internal/calc/thermal"
)

// Input carries formula arguments. On the wire it is a flat object:
//
//	{"hb": 200, "metal_a": "zinc", "layers": [{"thickness_m": 0.1, "conductivity": 1}]}
type Input struct {
	Values map[string]float64
	Text   map[string]string
	Layers []thermal.Layer
}

// Numbers builds an Input from numeric values only.
func Numbers(values map[string]float64) Input {
	return Input{Values: values}
}

func (in *Input) set(name string, v float64) {
	if in.Values == nil {
		in.Values = make(map[string]float64)
	}
	in.Values[name] = v
}

func (in *Input) setText(name, s string) {
	if in.Text == nil {
		in.Text = make(map[string]string)
	}
	in.Text[name] = s
}

func (in *Input) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*in = Input{}
	for k, v := range raw {
		name := strings.ToLower(k)
		if name == "layers" {
			if err := json.Unmarshal(v, &in.Layers); err != nil {
				return fmt.Errorf("layers: %w", err)
			}
			continue
		}
		var f float64
		if err := json.Unmarshal(v, &f); err == nil {
			in.set(name, f)
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("parameter %s: expected a number or a string", k)
		}
		in.setText(name, s)
	}
	return nil
}

func (in Input) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(in.Values)+len(in.Text)+1)
	for k, v := range in.Values {
		out[k] = v
	}
	for k, v := range in.Text {
		out[k] = v
	}
	if len(in.Layers) > 0 {
		out["layers"] = in.Layers
	}
	return json.Marshal(out)
}

// ParseAssignments reads name=value tokens as typed on a command line or
// in a chat message. Numbers go to Values, anything else to Text. The
// layers parameter takes thickness:conductivity pairs separated by commas:
//
//	delta_t=100 layers=0.1:0.5,0.05:0.1
func ParseAssignments(tokens []string) (Input, error) {
	var in Input
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		name, val, ok := strings.Cut(tok, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		val = strings.TrimSpace(val)
		if !ok || name == "" {
			return Input{}, &InputError{Param: tok, Reason: "expected name=value"}
		}
		if name == "layers" {
			layers, err := ParseLayers(val)
			if err != nil {
				return Input{}, err
			}
			in.Layers = layers
			continue
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			in.set(name, f)
			continue
		}
		in.setText(name, val)
	}
	return in, nil
}

// ParseLayers parses "t:k,t:k" into slab layers.
func ParseLayers(s string) ([]thermal.Layer, error) {
	var layers []thermal.Layer
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		ts, ks, ok := strings.Cut(part, ":")
		if !ok {
			return nil, &InputError{Param: "layers", Reason: fmt.Sprintf("%q is not thickness:conductivity", part)}
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(ts), 64)
		if err != nil {
			return nil, &InputError{Param: "layers", Reason: fmt.Sprintf("bad thickness %q", ts)}
		}
		k, err := strconv.ParseFloat(strings.TrimSpace(ks), 64)
		if err != nil {
			return nil, &InputError{Param: "layers", Reason: fmt.Sprintf("bad conductivity %q", ks)}
		}
		layers = append(layers, thermal.Layer{ThicknessM: t, Conductivity: k})
	}
	return layers, nil
}

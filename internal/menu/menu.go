// Package menu is the numbered, line-oriented front-end over the formula
// catalog.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"MMECalc/internal/calc/catalog"
	"MMECalc/internal/calc/thermal"
)

const banner = `==============================================
  Materials & Metallurgical Engineering Calc
==============================================`

type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	precision int
}

func New(r io.Reader, w io.Writer, precision int) *Menu {
	return &Menu{in: bufio.NewScanner(r), out: w, precision: precision}
}

// Run drives the menu until the user exits or input ends.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, banner)
	cats := catalog.Categories()
	for {
		fmt.Fprintln(m.out)
		for i, c := range cats {
			fmt.Fprintf(m.out, "[%d] %s\n", i+1, c.Title())
		}
		fmt.Fprintln(m.out, "[0] Exit")
		n, err := m.choose("Select category: ", len(cats))
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		}
		if err := m.category(cats[n-1]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) category(c catalog.Category) error {
	fs := catalog.ByCategory(c)
	for {
		fmt.Fprintf(m.out, "\n--- %s ---\n", c.Title())
		for i, f := range fs {
			fmt.Fprintf(m.out, "[%d] %s\n", i+1, f.Name)
		}
		fmt.Fprintln(m.out, "[0] ← Back")
		n, err := m.choose("Select formula: ", len(fs))
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := m.formula(fs[n-1]); err != nil {
			return err
		}
	}
}

func (m *Menu) formula(f catalog.Formula) error {
	fmt.Fprintf(m.out, "\n%s\n", f.Name)
	in := catalog.Input{Values: map[string]float64{}, Text: map[string]string{}}
	for _, p := range f.Params {
		switch p.Kind {
		case catalog.KindText:
			s, err := m.text(p)
			if err != nil {
				return err
			}
			in.Text[p.Name] = s
		case catalog.KindLayers:
			layers, err := m.layers()
			if err != nil {
				return err
			}
			in.Layers = layers
		default:
			v, err := m.number(p)
			if err != nil {
				return err
			}
			in.Values[p.Name] = v
		}
	}
	res, err := f.Evaluate(in)
	if err != nil {
		fmt.Fprintf(m.out, "  ✗ %s\n", err)
		return nil
	}
	for _, line := range strings.Split(strings.TrimRight(res.Format(m.precision), "\n"), "\n") {
		fmt.Fprintf(m.out, "  → %s\n", line)
	}
	return nil
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// choose reads a menu index in [0, limit].
func (m *Menu) choose(prompt string, limit int) (int, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 0 && n <= limit {
			return n, nil
		}
		fmt.Fprintln(m.out, "Invalid choice.")
	}
}

func label(p catalog.Param) string {
	if p.Unit == "" {
		return p.Label
	}
	return fmt.Sprintf("%s (%s)", p.Label, p.Unit)
}

func (m *Menu) number(p catalog.Param) (float64, error) {
	prompt := "  " + label(p)
	if p.Optional {
		prompt += fmt.Sprintf(" [%s]", catalog.FormatValue(p.Default, m.precision))
	}
	prompt += ": "
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if s == "" && p.Optional {
			return p.Default, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		switch {
		case err != nil || math.IsNaN(v) || math.IsInf(v, 0):
			fmt.Fprintln(m.out, "  Please enter a numeric value.")
		case p.Positive && v <= 0:
			fmt.Fprintln(m.out, "  Value must be positive.")
		case p.Kind == catalog.KindInteger && v != math.Trunc(v):
			fmt.Fprintln(m.out, "  Please enter a whole number.")
		default:
			return v, nil
		}
	}
}

func (m *Menu) text(p catalog.Param) (string, error) {
	if len(p.Choices) > 0 {
		fmt.Fprintf(m.out, "  Available: %s\n", strings.Join(p.Choices, ", "))
	}
	for {
		s, err := m.readLine("  " + label(p) + ": ")
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(m.out, "  A value is required.")
	}
}

const maxLayers = 100

func (m *Menu) layers() ([]thermal.Layer, error) {
	var count float64
	for {
		var err error
		count, err = m.number(catalog.Param{Label: "Number of layers", Kind: catalog.KindInteger, Positive: true})
		if err != nil {
			return nil, err
		}
		if count <= maxLayers {
			break
		}
		fmt.Fprintf(m.out, "  At most %d layers.\n", maxLayers)
	}
	var layers []thermal.Layer
	for i := 1; i <= int(count); i++ {
		t, err := m.number(catalog.Param{Label: fmt.Sprintf("Layer %d thickness", i), Unit: "m", Kind: catalog.KindNumber, Positive: true})
		if err != nil {
			return nil, err
		}
		k, err := m.number(catalog.Param{Label: fmt.Sprintf("Layer %d conductivity", i), Unit: "W/m·K", Kind: catalog.KindNumber, Positive: true})
		if err != nil {
			return nil, err
		}
		layers = append(layers, thermal.Layer{ThicknessM: t, Conductivity: k})
	}
	return layers, nil
}

package main

import (
	"fmt"
	"strings"

	"MMECalc/internal/calc/catalog"
	"MMECalc/internal/calc/corrosion"
)

const help = `Commands:
/list - formula ids by category
/list <category> - formulas of one category
/metals - metals known to galvanic_potential_diff
/params <id> - parameters of a formula
/calc <id> name=value ... - evaluate a formula
Example: /calc hrc_to_hb hrc=40`

// Reply computes the answer to one chat message.
func Reply(text string, precision int) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return help
	}
	// "/calc@SomeBot" in groups
	command, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch command {
	case "/start", "/help":
		return help
	case "/list":
		return list(args)
	case "/metals":
		return "Available metals: " + strings.Join(corrosion.AvailableMetals(), ", ")
	case "/params":
		if len(args) != 1 {
			return "Usage: /params <id>"
		}
		return params(args[0])
	case "/calc":
		if len(args) == 0 {
			return "Usage: /calc <id> name=value ..."
		}
		return evaluate(args[0], args[1:], precision)
	default:
		return "Unknown command.\n\n" + help
	}
}

func list(args []string) string {
	var b strings.Builder
	cats := catalog.Categories()
	if len(args) > 0 {
		cats = []catalog.Category{catalog.Category(args[0])}
	}
	for _, c := range cats {
		fs := catalog.ByCategory(c)
		if len(fs) == 0 {
			return fmt.Sprintf("Unknown category %q.", args[0])
		}
		fmt.Fprintf(&b, "%s:\n", c.Title())
		for _, f := range fs {
			fmt.Fprintf(&b, "  %s\n", f.ID)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func params(id string) string {
	f, ok := catalog.Lookup(id)
	if !ok {
		return "Unknown formula " + id
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.Name)
	for _, p := range f.Params {
		fmt.Fprintf(&b, "  %s: %s", p.Name, p.Label)
		if p.Unit != "" {
			fmt.Fprintf(&b, " (%s)", p.Unit)
		}
		switch {
		case p.Kind == catalog.KindLayers:
			b.WriteString(", t:k,t:k")
		case p.Optional:
			fmt.Fprintf(&b, ", default %g", p.Default)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func evaluate(id string, assignments []string, precision int) string {
	in, err := catalog.ParseAssignments(assignments)
	if err != nil {
		return "✗ " + err.Error()
	}
	res, err := catalog.Evaluate(id, in)
	if err != nil {
		return "✗ " + err.Error()
	}
	return strings.TrimRight(res.Format(precision), "\n")
}

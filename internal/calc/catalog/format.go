package catalog

import (
	"strconv"
	"strings"
)

const DefaultPrecision = 6

// FormatValue renders v with the given number of significant digits.
func FormatValue(v float64, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// Format renders the result one line per output, then tags and note.
func (r Result) Format(precision int) string {
	var b strings.Builder
	for _, o := range r.Outputs {
		b.WriteString(o.Label)
		b.WriteString(": ")
		b.WriteString(FormatValue(o.Value, precision))
		if o.Unit != "" {
			b.WriteByte(' ')
			b.WriteString(o.Unit)
		}
		b.WriteByte('\n')
	}
	for _, t := range r.Tags {
		b.WriteString(t.Label)
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteByte('\n')
	}
	if r.Note != "" {
		b.WriteString(r.Note)
		b.WriteByte('\n')
	}
	return b.String()
}

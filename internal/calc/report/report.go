// Package report renders calculations and chart series as A4 PDFs.
package report

import (
	"fmt"
	"time"

	"MMECalc/internal/calc/catalog"

	"github.com/phpdave11/gofpdf"
)

type Request struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Formula string        `json:"formula"`
	Input   catalog.Input `json:"input"`
}

const (
	labelWidth = 100
	valueWidth = 50
	unitWidth  = 30
	rowHeight  = 7
)

func newDocument() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAuthor("MMECalc", true)
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

// Calculation lays out the header, the inputs and the outputs of one
// evaluated formula.
func Calculation(req Request, f catalog.Formula, res catalog.Result, precision int, now time.Time) *gofpdf.Fpdf {
	pdf, tr := newDocument()
	if req.Title == "" {
		req.Title = "Calculation Report"
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(req.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", req.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", req.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(f.Name))
	pdf.Ln(10)

	section(pdf, "Inputs")
	for _, p := range f.Params {
		switch p.Kind {
		case catalog.KindText:
			row(pdf, tr, p.Label, req.Input.Text[p.Name], "")
		case catalog.KindLayers:
			for i, l := range req.Input.Layers {
				row(pdf, tr, fmt.Sprintf("Layer %d thickness", i+1), catalog.FormatValue(l.ThicknessM, precision), "m")
				row(pdf, tr, fmt.Sprintf("Layer %d conductivity", i+1), catalog.FormatValue(l.Conductivity, precision), "W/m·K")
			}
		default:
			v, ok := req.Input.Values[p.Name]
			if !ok {
				v = p.Default
			}
			row(pdf, tr, p.Label, catalog.FormatValue(v, precision), p.Unit)
		}
	}
	pdf.Ln(6)

	section(pdf, "Results")
	for _, o := range res.Outputs {
		row(pdf, tr, o.Label, catalog.FormatValue(o.Value, precision), o.Unit)
	}
	for _, t := range res.Tags {
		row(pdf, tr, t.Label, t.Text, "")
	}
	if res.Note != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, tr(res.Note), "", "L", false)
	}
	if req.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(req.Notes), "", "L", false)
	}
	return pdf
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(labelWidth+valueWidth+unitWidth, rowHeight, title, "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, label, value, unit string) {
	pdf.CellFormat(labelWidth, rowHeight, tr(label), "1", 0, "L", false, 0, "")
	pdf.CellFormat(valueWidth, rowHeight, tr(value), "1", 0, "R", false, 0, "")
	pdf.CellFormat(unitWidth, rowHeight, tr(unit), "1", 1, "L", false, 0, "")
}

package report

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"MMECalc/internal/calc/curve"

	"github.com/phpdave11/gofpdf"
)

// ChartRequest selects a series. Only the fields of the chosen kind are used.
type ChartRequest struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`

	E              float64 `json:"e"`
	Yield          float64 `json:"yield"`
	UTS            float64 `json:"uts"`
	FractureStrain float64 `json:"fracture_strain"`

	T0       float64 `json:"t0"`
	TAmbient float64 `json:"t_ambient"`
	K        float64 `json:"k"`
	Duration float64 `json:"duration"`
	Samples  int     `json:"samples"`
}

var ErrUnknownChart = errors.New("unknown chart kind")

// Series builds the data for the requested chart.
func (c ChartRequest) Series() (curve.Series, error) {
	var (
		s   curve.Series
		err error
	)
	switch c.Kind {
	case "stress_strain":
		s, err = curve.StressStrain(c.E, c.Yield, c.UTS, c.FractureStrain)
	case "cooling":
		s, err = curve.Cooling(c.T0, c.TAmbient, c.K, c.Duration, c.Samples)
	case "hardness":
		s = curve.HardnessChart()
	default:
		return curve.Series{}, fmt.Errorf("%w: %q", ErrUnknownChart, c.Kind)
	}
	if err != nil {
		return curve.Series{}, err
	}
	if c.Title != "" {
		s.Title = c.Title
	}
	return s, nil
}

// plot area on a landscape A4 page, mm
const (
	plotLeft   = 30.0
	plotTop    = 25.0
	plotWidth  = 230.0
	plotHeight = 150.0
	ticks      = 5
)

// Chart draws s as a line chart with labelled axes and marked points.
func Chart(s curve.Series) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(plotLeft, plotTop-8, tr(s.Title))

	xmin, xmax, ymin, ymax := bounds(s.Points)
	px := func(x float64) float64 { return plotLeft + (x-xmin)/(xmax-xmin)*plotWidth }
	py := func(y float64) float64 { return plotTop + plotHeight - (y-ymin)/(ymax-ymin)*plotHeight }

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	for i := 0; i <= ticks; i++ {
		fx := xmin + (xmax-xmin)*float64(i)/ticks
		fy := ymin + (ymax-ymin)*float64(i)/ticks
		pdf.Line(px(fx), plotTop, px(fx), plotTop+plotHeight)
		pdf.Line(plotLeft, py(fy), plotLeft+plotWidth, py(fy))
		pdf.Text(px(fx)-4, plotTop+plotHeight+5, fmt.Sprintf("%.4g", fx))
		pdf.Text(plotLeft-14, py(fy)+1, fmt.Sprintf("%.4g", fy))
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Rect(plotLeft, plotTop, plotWidth, plotHeight, "D")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(plotLeft+plotWidth/2-20, plotTop+plotHeight+13, tr(s.XLabel))
	pdf.TransformBegin()
	pdf.TransformRotate(90, plotLeft-20, plotTop+plotHeight/2+20)
	pdf.Text(plotLeft-20, plotTop+plotHeight/2+20, tr(s.YLabel))
	pdf.TransformEnd()

	pdf.SetDrawColor(0, 70, 160)
	pdf.SetLineWidth(0.5)
	for i := 1; i < len(s.Points); i++ {
		a, b := s.Points[i-1], s.Points[i]
		pdf.Line(px(a.X), py(a.Y), px(b.X), py(b.Y))
	}

	names := make([]string, 0, len(s.Marks))
	for n := range s.Marks {
		names = append(names, n)
	}
	sort.Strings(names)
	pdf.SetFillColor(200, 30, 30)
	pdf.SetFont("Helvetica", "", 8)
	for _, n := range names {
		p := s.Marks[n]
		pdf.Circle(px(p.X), py(p.Y), 1.2, "F")
		pdf.Text(px(p.X)+2, py(p.Y)-2, fmt.Sprintf("%s (%.4g, %.4g)", n, p.X, p.Y))
	}
	return pdf
}

// bounds returns the data range, widened when it collapses to a point.
func bounds(pts []curve.Point) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
		ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
	}
	if len(pts) == 0 {
		return 0, 1, 0, 1
	}
	if xmax == xmin {
		xmin, xmax = xmin-1, xmax+1
	}
	if ymax == ymin {
		ymin, ymax = ymin-1, ymax+1
	}
	return
}

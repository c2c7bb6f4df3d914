package report

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"MMECalc/internal/calc/catalog"

	"github.com/phpdave11/gofpdf"
)

type Handler struct {
	Precision int
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		catalog.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	f, ok := catalog.Lookup(req.Formula)
	if !ok {
		catalog.WriteError(w, http.StatusNotFound, "unknown formula")
		return
	}
	res, err := f.Evaluate(req.Input)
	if err != nil {
		catalog.WriteError(w, catalog.StatusFor(err), err.Error())
		return
	}
	send(w, Calculation(req, f, res, h.Precision, time.Now()), "report.pdf")
}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	var req ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		catalog.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	s, err := req.Series()
	if err != nil {
		status := catalog.StatusFor(err)
		if errors.Is(err, ErrUnknownChart) {
			status = http.StatusBadRequest
		}
		catalog.WriteError(w, status, err.Error())
		return
	}
	send(w, Chart(s), req.Kind+".pdf")
}

func send(w http.ResponseWriter, pdf *gofpdf.Fpdf, name string) {
	if pdf.Err() {
		log.Printf("render %s: %v", name, pdf.Error())
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	if err := pdf.Output(w); err != nil {
		log.Printf("write %s: %v", name, err)
	}
}

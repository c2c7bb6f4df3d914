package importer

import (
	"log"
	"net/http"

	"MMECalc/internal/calc/batch"
	"MMECalc/internal/calc/catalog"
)

const maxUpload = 10 << 20

type Handler struct {
	Precision int
}

// Import evaluates an uploaded workbook (form field "file"). With
// ?format=xlsx the response is a workbook, otherwise JSON.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		catalog.WriteError(w, http.StatusBadRequest, "File required")
		return
	}
	defer file.Close()

	items, err := ReadItems(file)
	if err != nil {
		catalog.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := batch.Calculate(items)
	if err != nil {
		catalog.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if r.URL.Query().Get("format") != "xlsx" {
		catalog.WriteJSON(w, http.StatusOK, resp)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
	if err := WriteResults(w, resp, h.Precision); err != nil {
		log.Printf("write results workbook: %v", err)
	}
}

package batch

import (
	"encoding/json"
	"log"
	"net/http"

	"MMECalc/internal/calc/catalog"
)

type Handler struct {
	Recorder catalog.Recorder
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		catalog.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := Calculate(req.Items)
	if err != nil {
		catalog.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.Recorder != nil {
		for i, ir := range res.Results {
			if ir.Result == nil {
				continue
			}
			if err := h.Recorder.Record(r.Context(), req.Items[i].Input, *ir.Result); err != nil {
				log.Printf("record batch item %d: %v", i, err)
			}
		}
	}
	catalog.WriteJSON(w, http.StatusOK, res)
}

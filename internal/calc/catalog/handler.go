package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"MMECalc/internal/calc"
	"MMECalc/internal/calc/corrosion"

	"github.com/gorilla/mux"
)

// Recorder stores successful calculations, typically for the caller found
// in ctx.
type Recorder interface {
	Record(ctx context.Context, in Input, res Result) error
}

type Handler struct {
	Recorder Recorder
}

type errorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps evaluation errors to HTTP status codes.
func StatusFor(err error) int {
	var ie *InputError
	switch {
	case errors.Is(err, ErrUnknownFormula):
		return http.StatusNotFound
	case errors.Is(err, calc.ErrDomain), errors.As(err, &ie):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorResponse{Error: msg})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// List serves the catalog, optionally filtered by ?category=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	fs := All()
	if c := r.URL.Query().Get("category"); c != "" {
		fs = ByCategory(Category(c))
		if fs == nil {
			fs = []Formula{}
		}
	}
	WriteJSON(w, http.StatusOK, fs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	f, ok := Lookup(mux.Vars(r)["id"])
	if !ok {
		WriteError(w, http.StatusNotFound, "unknown formula")
		return
	}
	WriteJSON(w, http.StatusOK, f)
}

type metal struct {
	Name      string  `json:"name"`
	Potential float64 `json:"potential_v"`
}

// Metals serves the galvanic series in table order.
func (h *Handler) Metals(w http.ResponseWriter, r *http.Request) {
	names := corrosion.AvailableMetals()
	out := make([]metal, 0, len(names))
	for _, n := range names {
		v, _ := corrosion.Potential(n)
		out = append(out, metal{Name: n, Potential: v})
	}
	WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	f, ok := Lookup(mux.Vars(r)["id"])
	if !ok {
		WriteError(w, http.StatusNotFound, "unknown formula")
		return
	}
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	res, err := f.Evaluate(in)
	if err != nil {
		WriteError(w, StatusFor(err), err.Error())
		return
	}
	if h.Recorder != nil {
		if err := h.Recorder.Record(r.Context(), in, res); err != nil {
			log.Printf("record %s: %v", f.ID, err)
		}
	}
	WriteJSON(w, http.StatusOK, res)
}

// Package history stores calculations made through the API and lists them
// back to their owner.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"MMECalc/internal/auth"
	"MMECalc/internal/calc/catalog"
	"MMECalc/internal/repo"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Recorder implements catalog.Recorder on top of a repository. Requests
// without an authenticated user are not recorded.
type Recorder struct {
	Repo repo.HistoryRepository
}

func (rec *Recorder) Record(ctx context.Context, in catalog.Input, res catalog.Result) error {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil
	}
	inJSON, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	resJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = rec.Repo.SaveCalculation(ctx, repo.Calculation{
		UserID:  userID,
		Formula: res.Formula,
		Input:   inJSON,
		Result:  resJSON,
	})
	if err != nil {
		return fmt.Errorf("save calculation: %w", err)
	}
	return nil
}

type Handler struct {
	Repo repo.HistoryRepository
}

// List serves the caller's calculations, newest first. ?limit= caps the
// count.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			catalog.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, MaxLimit)
	}
	list, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		catalog.WriteError(w, http.StatusInternalServerError, "DB error")
		return
	}
	if list == nil {
		list = []repo.Calculation{}
	}
	catalog.WriteJSON(w, http.StatusOK, list)
}

package batch

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"MineRappa/internal/units"
)

type Handler struct {
	Units *units.Registry
	Log   *slog.Logger
}

func (h *Handler) Designs(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(r.Context(), h.Units, input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	h.Log.Info("batch evaluated", "count", res.Count, "failed", res.Failed)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.Log.Error("encoding response", "error", err)
	}
}

package autodesign

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

func (h *Handler) Pillar(w http.ResponseWriter, r *http.Request) {
	var input PillarAutoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Pillar(h.Units, input)
	if err != nil {
		h.Log.Warn("auto design failed", "error", err)
		http.Error(w, "Calculation error", http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.Log.Error("encoding response", "error", err)
	}
}

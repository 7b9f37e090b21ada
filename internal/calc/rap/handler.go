package rap

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"MineRappa/internal/units"
)

type Handler struct {
	Units *units.Registry
	Log   *slog.Logger
}

func NewHandler(reg *units.Registry, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Units: reg, Log: log}
}

// Status maps an engine error to an HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrRootNotFound), errors.Is(err, ErrUnsupportedFormula):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnknownFormula):
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "calc", Calculate)
}

func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "solve", Solve)
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request, op string, fn func(*units.Registry, Input) (Result, error)) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := fn(h.Units, input)
	if err != nil {
		h.Log.Warn("design rejected", "op", op, "error", err)
		http.Error(w, err.Error(), Status(err))
		return
	}
	h.Log.Debug("design evaluated", "op", op, "formula", res.Formula, "fos", res.FactorOfSafety)
	h.writeJSON(w, op, res)
}

// writeJSON encodes v, or answers 500 when it cannot be encoded. Encode
// writes nothing on failure, so the error status still reaches the client.
func (h *Handler) writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("encoding response", "op", op, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Formulas lists the catalogue.
func (h *Handler) Formulas(w http.ResponseWriter, r *http.Request) {
	list := Catalogue()
	out := make([]FormulaInfo, 0, len(list))
	for _, f := range list {
		out = append(out, Describe(f))
	}
	h.writeJSON(w, "formulas", out)
}

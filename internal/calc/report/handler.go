package report

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

type Input struct {
	Meta
	Design rap.Input `json:"design"`
}

type Handler struct {
	Units *units.Registry
	Log   *slog.Logger
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	d, err := rap.Build(h.Units, input.Design)
	if err != nil {
		http.Error(w, err.Error(), rap.Status(err))
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input.Meta, d); err != nil {
		h.Log.Error("report failed", "error", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Write(buf.Bytes())
}

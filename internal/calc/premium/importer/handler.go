package importer

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"MineRappa/internal/calc/rap"
	"MineRappa/internal/units"
)

type Handler struct {
	Units *units.Registry
	Log   *slog.Logger
}

type Item struct {
	Line   int         `json:"line"`
	Name   string      `json:"name,omitempty"`
	Result *rap.Result `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type ImportResult struct {
	Count  int    `json:"count"`
	Failed int    `json:"failed"`
	Items  []Item `json:"items"`
}

// Designs evaluates every design in an uploaded workbook.
func (h *Handler) Designs(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := ParseWorkbook(file, h.Units)
	if err != nil {
		h.Log.Warn("workbook rejected", "error", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	out := ImportResult{Items: make([]Item, 0, len(rows))}
	for _, row := range rows {
		item := Item{Line: row.Line, Name: row.Name, Error: row.Error}
		if item.Error == "" {
			res, err := rap.Calculate(h.Units, row.Input)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Result = &res
			}
		}
		if item.Error != "" {
			out.Failed++
		}
		out.Items = append(out.Items, item)
	}
	out.Count = len(out.Items)
	h.Log.Info("workbook imported", "count", out.Count, "failed", out.Failed)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.Log.Error("encoding response", "error", err)
	}
}

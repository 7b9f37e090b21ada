// Package designs stores and returns an engineer's saved designs.
package designs

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"MineRappa/internal/auth"
	"MineRappa/internal/calc/rap"
	"MineRappa/internal/repo"
	"MineRappa/internal/units"
)

type Handler struct {
	Repo  repo.DesignRepository
	Units *units.Registry
	Log   *slog.Logger
}

type SaveRequest struct {
	Name   string    `json:"name"`
	Design rap.Input `json:"design"`
}

type SaveResponse struct {
	ID     uuid.UUID  `json:"id"`
	Result rap.Result `json:"result"`
}

// Save evaluates the design and stores it with its result. Designs that
// do not evaluate are not stored.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}

	res, err := rap.Calculate(h.Units, req.Design)
	if err != nil {
		http.Error(w, err.Error(), rap.Status(err))
		return
	}
	id, err := h.Repo.SaveDesign(r.Context(), repo.Design{Owner: userID, Name: req.Name, Input: req.Design, Result: &res})
	if err != nil {
		h.Log.Error("save design failed", "user_id", userID, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	h.Log.Info("design saved", "user_id", userID, "login", auth.Login(r.Context()), "design_id", id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SaveResponse{ID: id, Result: res}); err != nil {
		h.Log.Error("encoding response", "error", err)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	list, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		h.Log.Error("list designs failed", "user_id", userID, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []repo.Design{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		h.Log.Error("encoding response", "error", err)
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.GetDesign(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.Error("get design failed", "user_id", userID, "design_id", id, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		h.Log.Error("encoding response", "error", err)
	}
}

package color

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the color vocabulary for reporting filters.
type Handler struct{ registry Registry }

func NewHandler(registry Registry) *Handler { return &Handler{registry: registry} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/colors", h.listColors)
}

func (h *Handler) listColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.registry.List(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, colors)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

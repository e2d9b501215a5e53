package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes read-only bag catalog endpoints.
type Handler struct{ catalog *Catalog }

func NewHandler(catalog *Catalog) *Handler { return &Handler{catalog: catalog} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/bags", func(r chi.Router) {
		r.Get("/", h.listBags)        // GET /api/v1/bags
		r.Get("/{name}", h.getBag)    // GET /api/v1/bags/{name}
	})
}

func (h *Handler) listBags(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.catalog.List())
}

func (h *Handler) getBag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	b, err := h.catalog.Find(name)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, b)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

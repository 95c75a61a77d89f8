package api

import (
	"net/http"
	"time"

	"github.com/homebrain/homebrain/internal/api/respond"
	"github.com/homebrain/homebrain/internal/store"
)

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler { return &HealthHandler{store: s} }

// CheckHealth GET /api/health
// Always returns 200; the body reports healthy/unhealthy so load
// balancers can distinguish handler failure from dependency failure.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if err := h.store.HealthPing(r.Context()); err != nil {
		status = "unhealthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

package handler

import (
	"context"
	"net/http"

	"github.com/warzonemc/mars/internal/api/response"
)

// Pinger is a store that can verify its own liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness of the backing stores
type HealthHandler struct {
	stores []Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(stores ...Pinger) *HealthHandler {
	return &HealthHandler{stores: stores}
}

// Check handles GET /api/v1/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	for _, store := range h.stores {
		if err := store.Ping(r.Context()); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, response.HealthResponse{Status: "unavailable"})
			return
		}
	}
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}

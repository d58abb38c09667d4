package handlers

import (
	"context"
	"net/http"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

// SearchAnalyticsService defines the analytics reads used by the handler.
type SearchAnalyticsService interface {
	GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error)
}

// AnalyticsHandler serves catalog search analytics
type AnalyticsHandler struct {
	service SearchAnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service SearchAnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetZeroResultQueries handles GET /api/analytics/zero-result-queries
func (h *AnalyticsHandler) GetZeroResultQueries(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 0)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	events, err := h.service.GetZeroResultQueries(r.Context(), limit)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"queries": events,
		"count":   len(events),
	})
}

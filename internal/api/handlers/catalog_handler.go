package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

// CatalogService defines the catalog operations used by the handler.
type CatalogService interface {
	Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error)
	ListProfiles(ctx context.Context, category string) ([]entities.LabTestProfile, error)
	GetProfile(ctx context.Context, name string) (*entities.LabTestProfile, error)
	ExpandProfile(ctx context.Context, name string) ([]entities.ProfileParameter, error)
	MatchProfile(ctx context.Context, testName string) (*entities.LabTestProfile, error)
	Categories(ctx context.Context) []string
}

// CatalogHandler handles lab test catalog HTTP requests
type CatalogHandler struct {
	service      CatalogService
	defaultLimit int
}

// NewCatalogHandler creates a new catalog handler. defaultLimit applies when a
// search request carries no limit; zero means unlimited.
func NewCatalogHandler(service CatalogService, defaultLimit int) *CatalogHandler {
	return &CatalogHandler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

// Search handles GET /api/lab-tests/search
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit, ok := queryInt(r, "limit", h.defaultLimit)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	results, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"query":   strings.TrimSpace(query),
		"results": results,
		"count":   len(results),
	})
}

// ListCategories handles GET /api/lab-tests/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.service.Categories(r.Context()),
	})
}

// ListProfiles handles GET /api/lab-profiles
func (h *CatalogHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListProfiles(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// GetProfile handles GET /api/lab-profiles/{name}
func (h *CatalogHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if strings.TrimSpace(name) == "" {
		respondWithError(w, http.StatusBadRequest, "profile name is required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), name)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// GetProfileParameters handles GET /api/lab-profiles/{name}/parameters
func (h *CatalogHandler) GetProfileParameters(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if strings.TrimSpace(name) == "" {
		respondWithError(w, http.StatusBadRequest, "profile name is required")
		return
	}

	params, err := h.service.ExpandProfile(r.Context(), name)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"profile":    name,
		"parameters": params,
		"count":      len(params),
	})
}

// MatchProfile handles GET /api/lab-profiles/match
func (h *CatalogHandler) MatchProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.MatchProfile(r.Context(), r.URL.Query().Get("test"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

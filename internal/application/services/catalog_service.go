package services

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/google/uuid"
	"github.com/wellness-hospital/laboratory/backend/internal/catalog"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
	apperrors "github.com/wellness-hospital/laboratory/backend/pkg/errors"
)

// SearchTracker records catalog searches for analytics
type SearchTracker interface {
	TrackSearch(ctx context.Context, event *entities.SearchEvent)
}

// CatalogService exposes the lab test catalog to the API layer
type CatalogService struct {
	catalog *catalog.Catalog
	tracker SearchTracker
	metrics *observability.Metrics
}

// NewCatalogService creates a new catalog service. tracker and metrics may be nil.
func NewCatalogService(c *catalog.Catalog, tracker SearchTracker, metrics *observability.Metrics) *CatalogService {
	return &CatalogService{
		catalog: c,
		tracker: tracker,
		metrics: metrics,
	}
}

// Search matches the query against the catalog, profiles first. A positive limit
// truncates the result list.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error) {
	ctx, span := observability.StartSpan(ctx, "CatalogService.Search")
	defer span.End()

	start := time.Now()
	results := s.catalog.Search(query)

	profiles, tests := 0, 0
	for _, r := range results {
		if r.Kind() == entities.SearchResultKindProfile {
			profiles++
		} else {
			tests++
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	observability.SetSpanAttributes(span,
		attribute.String("catalog.query", query),
		attribute.Int("catalog.results.profiles", profiles),
		attribute.Int("catalog.results.tests", tests),
	)
	observability.RecordSearchMetric(ctx, s.metrics, profiles, tests)

	normalized := strings.ToLower(strings.TrimSpace(query))
	if s.tracker != nil && normalized != "" {
		s.tracker.TrackSearch(ctx, &entities.SearchEvent{
			ID:              uuid.New().String(),
			Query:           query,
			NormalizedQuery: normalized,
			ResultCount:     profiles + tests,
			ProfileCount:    profiles,
			TestCount:       tests,
			LatencyMs:       int(time.Since(start).Milliseconds()),
			CreatedAt:       time.Now().UTC(),
		})
	}

	return results, nil
}

// ListProfiles returns every profile, optionally restricted to a category
func (s *CatalogService) ListProfiles(ctx context.Context, category string) ([]entities.LabTestProfile, error) {
	profiles := s.catalog.Profiles()

	category = strings.TrimSpace(category)
	if category == "" {
		return profiles, nil
	}

	filtered := make([]entities.LabTestProfile, 0, len(profiles))
	for _, p := range profiles {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetProfile looks a profile up by name
func (s *CatalogService) GetProfile(ctx context.Context, name string) (*entities.LabTestProfile, error) {
	profile, ok := s.catalog.ProfileByName(name)
	if !ok {
		return nil, apperrors.NewNotFoundError("lab profile not found")
	}
	return &profile, nil
}

// ExpandProfile returns the named profile's parameters in display order
func (s *CatalogService) ExpandProfile(ctx context.Context, name string) ([]entities.ProfileParameter, error) {
	profile, err := s.GetProfile(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.catalog.ExpandProfile(*profile), nil
}

// MatchProfile finds the profile an ordered test name refers to
func (s *CatalogService) MatchProfile(ctx context.Context, testName string) (*entities.LabTestProfile, error) {
	if strings.TrimSpace(testName) == "" {
		return nil, apperrors.NewValidationError("test name is required")
	}

	profile, ok := s.catalog.MatchProfileByTestName(testName)
	if !ok {
		return nil, apperrors.NewNotFoundError("no lab profile matches test name")
	}
	return &profile, nil
}

// Categories lists the catalog's categories
func (s *CatalogService) Categories(ctx context.Context) []string {
	return s.catalog.Categories()
}

package services

import (
	"context"
	"fmt"

	"github.com/wellness-hospital/laboratory/backend/internal/catalog"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
)

// IndexStats summarises one indexing run
type IndexStats struct {
	Profiles   int
	Parameters int
	Failed     int
}

// CatalogIndexService mirrors the catalog into the search index
type CatalogIndexService struct {
	catalog *catalog.Catalog
	index   repositories.CatalogIndexRepository
}

// NewCatalogIndexService creates a new catalog index service
func NewCatalogIndexService(c *catalog.Catalog, index repositories.CatalogIndexRepository) *CatalogIndexService {
	return &CatalogIndexService{
		catalog: c,
		index:   index,
	}
}

// IndexAll upserts every profile and parameter. Individual document failures are
// logged and counted; only schema setup and cancellation abort the run.
func (s *CatalogIndexService) IndexAll(ctx context.Context) (IndexStats, error) {
	var stats IndexStats
	logger := observability.LoggerFromContext(ctx)

	if err := s.index.InitSchema(ctx); err != nil {
		return stats, fmt.Errorf("init catalog index: %w", err)
	}

	for _, profile := range s.catalog.Profiles() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := s.index.IndexProfile(ctx, profile); err != nil {
			logger.Warn().Err(err).Str("profile", profile.Name).Msg("failed to index profile")
			stats.Failed++
			continue
		}
		stats.Profiles++
	}

	for _, param := range s.catalog.Parameters() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := s.index.IndexParameter(ctx, param); err != nil {
			logger.Warn().Err(err).Str("parameter", param.Name).Msg("failed to index parameter")
			stats.Failed++
			continue
		}
		stats.Parameters++
	}

	logger.Info().
		Int("profiles", stats.Profiles).
		Int("parameters", stats.Parameters).
		Int("failed", stats.Failed).
		Msg("catalog indexed")

	return stats, nil
}

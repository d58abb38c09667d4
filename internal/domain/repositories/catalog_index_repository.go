package repositories

import (
	"context"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

// CatalogIndexRepository mirrors the catalog into an external search index
type CatalogIndexRepository interface {
	// InitSchema ensures the index collection exists
	InitSchema(ctx context.Context) error

	// IndexProfile upserts one profile document
	IndexProfile(ctx context.Context, profile entities.LabTestProfile) error

	// IndexParameter upserts one parameter document
	IndexParameter(ctx context.Context, param entities.LabTestParameter) error
}

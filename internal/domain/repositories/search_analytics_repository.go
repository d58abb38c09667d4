package repositories

import (
	"context"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

// SearchAnalyticsRepository stores catalog search events
type SearchAnalyticsRepository interface {
	LogEvent(ctx context.Context, event *entities.SearchEvent) error
	GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error)
}

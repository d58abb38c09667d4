package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/clients/postgres"
)

func TestSearchAnalyticsAdapter_LogEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewSearchAnalyticsAdapter(postgres.NewClientFromDB(db))

	mock.ExpectExec(`INSERT INTO catalog_search_events`).
		WithArgs(sqlmock.AnyArg(), "Hemoglobin", "hemoglobin", 0, 0, 0, 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	event := &entities.SearchEvent{Query: "Hemoglobin", NormalizedQuery: "hemoglobin", LatencyMs: 1}
	require.NoError(t, adapter.LogEvent(context.Background(), event))

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchAnalyticsAdapter_GetZeroResultQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewSearchAnalyticsAdapter(postgres.NewClientFromDB(db))
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "query", "normalized_query", "result_count", "profile_count", "test_count", "latency_ms", "created_at"}).
		AddRow("evt-1", "hemoglobin", "hemoglobin", 0, 0, 0, 1, now)
	mock.ExpectQuery(`FROM catalog_search_events\s+WHERE result_count = 0`).WithArgs(100).WillReturnRows(rows)

	events, err := adapter.GetZeroResultQueries(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "hemoglobin", events[0].Query)
}

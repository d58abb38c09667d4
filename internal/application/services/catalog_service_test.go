package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellness-hospital/laboratory/backend/internal/application/services"
	"github.com/wellness-hospital/laboratory/backend/internal/catalog"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	apperrors "github.com/wellness-hospital/laboratory/backend/pkg/errors"
)

func TestCatalogService_Search(t *testing.T) {
	t.Run("tracks counts before truncation", func(t *testing.T) {
		tracker := &recordingTracker{}
		service := services.NewCatalogService(catalog.Default(), tracker, nil)

		results, err := service.Search(context.Background(), "  Widal ", 1)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, entities.SearchResultKindProfile, results[0].Kind())

		require.Len(t, tracker.events, 1)
		event := tracker.events[0]
		assert.Equal(t, "  Widal ", event.Query)
		assert.Equal(t, "widal", event.NormalizedQuery)
		assert.Equal(t, 2, event.ResultCount)
		assert.Equal(t, 1, event.ProfileCount)
		assert.Equal(t, 1, event.TestCount)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		service := services.NewCatalogService(catalog.Default(), nil, nil)

		results, err := service.Search(context.Background(), "haemoglobin", 0)

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("blank query is not tracked", func(t *testing.T) {
		tracker := &recordingTracker{}
		service := services.NewCatalogService(catalog.Default(), tracker, nil)

		results, err := service.Search(context.Background(), "   ", 10)

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Empty(t, tracker.events)
	})

	t.Run("zero-result query is tracked", func(t *testing.T) {
		tracker := &recordingTracker{}
		service := services.NewCatalogService(catalog.Default(), tracker, nil)

		results, err := service.Search(context.Background(), "hemoglobin", 10)

		require.NoError(t, err)
		assert.Empty(t, results)
		require.Len(t, tracker.events, 1)
		assert.Equal(t, 0, tracker.events[0].ResultCount)
	})
}

func TestCatalogService_ListProfiles(t *testing.T) {
	service := services.NewCatalogService(catalog.Default(), nil, nil)

	all, err := service.ListProfiles(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, len(catalog.Default().Profiles()))

	micro, err := service.ListProfiles(context.Background(), "microbiology")
	require.NoError(t, err)
	require.NotEmpty(t, micro)
	for _, p := range micro {
		assert.Equal(t, entities.CategoryMicrobiology, p.Category)
	}
}

func TestCatalogService_GetProfile(t *testing.T) {
	service := services.NewCatalogService(catalog.Default(), nil, nil)

	profile, err := service.GetProfile(context.Background(), "lipid profile")
	require.NoError(t, err)
	assert.Equal(t, "Lipid Profile", profile.Name)

	_, err = service.GetProfile(context.Background(), "Nope Panel")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestCatalogService_ExpandProfile(t *testing.T) {
	service := services.NewCatalogService(catalog.Default(), nil, nil)

	params, err := service.ExpandProfile(context.Background(), "Widal Test")
	require.NoError(t, err)
	assert.Len(t, params, 6)

	_, err = service.ExpandProfile(context.Background(), "Nope Panel")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestCatalogService_MatchProfile(t *testing.T) {
	service := services.NewCatalogService(catalog.Default(), nil, nil)

	profile, err := service.MatchProfile(context.Background(), "CBC")
	require.NoError(t, err)
	assert.Equal(t, "CBC (Complete Blood Count)", profile.Name)

	_, err = service.MatchProfile(context.Background(), "unknown test xyz")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	_, err = service.MatchProfile(context.Background(), " ")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

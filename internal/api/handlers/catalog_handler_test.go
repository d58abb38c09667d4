package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wellness-hospital/laboratory/backend/internal/api/handlers"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	apperrors "github.com/wellness-hospital/laboratory/backend/pkg/errors"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SearchResult), args.Error(1)
}

func (m *MockCatalogService) ListProfiles(ctx context.Context, category string) ([]entities.LabTestProfile, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.LabTestProfile), args.Error(1)
}

func (m *MockCatalogService) GetProfile(ctx context.Context, name string) (*entities.LabTestProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LabTestProfile), args.Error(1)
}

func (m *MockCatalogService) ExpandProfile(ctx context.Context, name string) ([]entities.ProfileParameter, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProfileParameter), args.Error(1)
}

func (m *MockCatalogService) MatchProfile(ctx context.Context, testName string) (*entities.LabTestProfile, error) {
	args := m.Called(ctx, testName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LabTestProfile), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func TestCatalogHandler_Search(t *testing.T) {
	t.Run("returns tagged results", func(t *testing.T) {
		service := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(service, 20)

		results := []entities.SearchResult{
			entities.ProfileResult{Profile: entities.LabTestProfile{Name: "Widal Test", Category: entities.CategoryMicrobiology}},
			entities.TestResult{Test: entities.LabTestParameter{Name: "Widal Test", Category: entities.CategoryMicrobiology}},
		}
		service.On("Search", mock.Anything, "widal", 20).Return(results, nil)

		req := httptest.NewRequest("GET", "/api/lab-tests/search?q=widal", nil)
		w := httptest.NewRecorder()
		handler.Search(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Count   int                      `json:"count"`
			Results []map[string]interface{} `json:"results"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, "profile", response.Results[0]["type"])
		assert.Equal(t, "test", response.Results[1]["type"])
		service.AssertExpectations(t)
	})

	t.Run("explicit limit overrides the default", func(t *testing.T) {
		service := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(service, 20)

		service.On("Search", mock.Anything, "cbc", 5).Return([]entities.SearchResult{}, nil)

		req := httptest.NewRequest("GET", "/api/lab-tests/search?q=cbc&limit=5", nil)
		w := httptest.NewRecorder()
		handler.Search(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"query":"cbc","results":[],"count":0}`, w.Body.String())
	})

	t.Run("invalid limit", func(t *testing.T) {
		service := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(service, 20)

		req := httptest.NewRequest("GET", "/api/lab-tests/search?q=cbc&limit=abc", nil)
		w := httptest.NewRecorder()
		handler.Search(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "Search")
	})
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	service := new(MockCatalogService)
	handler := handlers.NewCatalogHandler(service, 0)

	service.On("Categories", mock.Anything).Return([]string{entities.CategoryHematology})

	req := httptest.NewRequest("GET", "/api/lab-tests/categories", nil)
	w := httptest.NewRecorder()
	handler.ListCategories(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"categories":["Hematology"]}`, w.Body.String())
}

func TestCatalogHandler_ListProfiles(t *testing.T) {
	service := new(MockCatalogService)
	handler := handlers.NewCatalogHandler(service, 0)

	service.On("ListProfiles", mock.Anything, "Biochemistry").Return([]entities.LabTestProfile{{Name: "Lipid Profile"}}, nil)

	req := httptest.NewRequest("GET", "/api/lab-profiles?category=Biochemistry", nil)
	w := httptest.NewRecorder()
	handler.ListProfiles(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, float64(1), response["count"])
}

func TestCatalogHandler_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		service := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(service, 0)

		service.On("GetProfile", mock.Anything, "Lipid Profile").Return(&entities.LabTestProfile{Name: "Lipid Profile"}, nil)

		req := httptest.NewRequest("GET", "/api/lab-profiles/Lipid%20Profile", nil)
		req.SetPathValue("name", "Lipid Profile")
		w := httptest.NewRecorder()
		handler.GetProfile(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Lipid Profile"`)
	})

	t.Run("not found", func(t *testing.T) {
		service := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(service, 0)

		service.On("GetProfile", mock.Anything, "Nope").Return(nil, apperrors.NewNotFoundError("lab profile not found"))

		req := httptest.NewRequest("GET", "/api/lab-profiles/Nope", nil)
		req.SetPathValue("name", "Nope")
		w := httptest.NewRecorder()
		handler.GetProfile(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"lab profile not found"}`, w.Body.String())
	})
}

func TestCatalogHandler_GetProfileParameters(t *testing.T) {
	service := new(MockCatalogService)
	handler := handlers.NewCatalogHandler(service, 0)

	params := []entities.ProfileParameter{{Name: "Salmonella Typhi (TO)", Unit: "Titre"}}
	service.On("ExpandProfile", mock.Anything, "Widal Test").Return(params, nil)

	req := httptest.NewRequest("GET", "/api/lab-profiles/Widal%20Test/parameters", nil)
	req.SetPathValue("name", "Widal Test")
	w := httptest.NewRecorder()
	handler.GetProfileParameters(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, float64(1), response["count"])
	assert.Equal(t, "Widal Test", response["profile"])
}

func TestCatalogHandler_MatchProfile(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		service := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(service, 0)

		service.On("MatchProfile", mock.Anything, "cbc").Return(&entities.LabTestProfile{Name: "CBC (Complete Blood Count)"}, nil)

		req := httptest.NewRequest("GET", "/api/lab-profiles/match?test=cbc", nil)
		w := httptest.NewRecorder()
		handler.MatchProfile(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no match", func(t *testing.T) {
		service := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(service, 0)

		service.On("MatchProfile", mock.Anything, "unknown test xyz").Return(nil, apperrors.NewNotFoundError("no lab profile matches test name"))

		req := httptest.NewRequest("GET", "/api/lab-profiles/match?test=unknown+test+xyz", nil)
		w := httptest.NewRecorder()
		handler.MatchProfile(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

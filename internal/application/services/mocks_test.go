package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
)

type MockLabOrderRepository struct {
	mock.Mock
}

func (m *MockLabOrderRepository) Create(ctx context.Context, order *entities.LabOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockLabOrderRepository) GetByID(ctx context.Context, id string) (*entities.LabOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LabOrder), args.Error(1)
}

func (m *MockLabOrderRepository) List(ctx context.Context, filter repositories.LabOrderFilter) ([]*entities.LabOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LabOrder), args.Error(1)
}

func (m *MockLabOrderRepository) UpdateResults(ctx context.Context, id string, rows []entities.ResultRow, status entities.LabOrderStatus) error {
	args := m.Called(ctx, id, rows, status)
	return args.Error(0)
}

type MockSearchAnalyticsRepository struct {
	mock.Mock
}

func (m *MockSearchAnalyticsRepository) LogEvent(ctx context.Context, event *entities.SearchEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSearchAnalyticsRepository) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SearchEvent), args.Error(1)
}

type recordingTracker struct {
	events []*entities.SearchEvent
}

func (r *recordingTracker) TrackSearch(ctx context.Context, event *entities.SearchEvent) {
	r.events = append(r.events, event)
}

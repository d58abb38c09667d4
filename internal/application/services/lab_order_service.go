package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
	apperrors "github.com/wellness-hospital/laboratory/backend/pkg/errors"
)

// CreateOrdersRequest is a multi-test order for one patient
type CreateOrdersRequest struct {
	UHID        string   `json:"uhid"`
	PatientName string   `json:"patient_name"`
	TestNames   []string `json:"test_names"`
	Technician  string   `json:"technician"`
	Consultant  string   `json:"consultant"`
}

// LabOrderService handles lab order business logic
type LabOrderService struct {
	repo repositories.LabOrderRepository
}

// NewLabOrderService creates a new lab order service
func NewLabOrderService(repo repositories.LabOrderRepository) *LabOrderService {
	return &LabOrderService{repo: repo}
}

// CreateOrders stores one pending order per distinct test name. Names are trimmed
// and compared case-insensitively; the first spelling is kept. Orders are created in
// request order and the first failure stops the rest.
func (s *LabOrderService) CreateOrders(ctx context.Context, req CreateOrdersRequest) ([]*entities.LabOrder, error) {
	uhid := strings.TrimSpace(req.UHID)
	if uhid == "" {
		return nil, apperrors.NewValidationError("uhid is required")
	}

	testNames := distinctTestNames(req.TestNames)
	if len(testNames) == 0 {
		return nil, apperrors.NewValidationError("at least one test name is required")
	}

	logger := observability.LoggerFromContext(ctx)
	now := time.Now().UTC()

	orders := make([]*entities.LabOrder, 0, len(testNames))
	for _, name := range testNames {
		order := &entities.LabOrder{
			ID:          uuid.New().String(),
			UHID:        uhid,
			PatientName: strings.TrimSpace(req.PatientName),
			TestName:    name,
			Technician:  strings.TrimSpace(req.Technician),
			Consultant:  strings.TrimSpace(req.Consultant),
			Status:      entities.LabOrderStatusPending,
			Parameters:  []entities.ResultRow{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := s.repo.Create(ctx, order); err != nil {
			logger.Error().Err(err).Str("uhid", uhid).Str("test_name", name).Msg("failed to create lab order")
			return nil, err
		}
		orders = append(orders, order)
	}

	logger.Info().Str("uhid", uhid).Int("orders", len(orders)).Msg("lab orders created")
	return orders, nil
}

// GetOrder retrieves an order by ID
func (s *LabOrderService) GetOrder(ctx context.Context, id string) (*entities.LabOrder, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("order id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// ListOrders lists orders matching the filter
func (s *LabOrderService) ListOrders(ctx context.Context, filter repositories.LabOrderFilter) ([]*entities.LabOrder, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, apperrors.NewValidationError("limit and offset must be non-negative")
	}
	if filter.Status != "" &&
		filter.Status != entities.LabOrderStatusPending &&
		filter.Status != entities.LabOrderStatusCompleted {
		return nil, apperrors.NewValidationError("unknown order status")
	}
	return s.repo.List(ctx, filter)
}

func distinctTestNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

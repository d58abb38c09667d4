package repositories

import (
	"context"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

// LabOrderRepository defines the interface for lab order persistence
type LabOrderRepository interface {
	// Create inserts a new order
	Create(ctx context.Context, order *entities.LabOrder) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id string) (*entities.LabOrder, error)

	// List retrieves orders matching the filter, newest first
	List(ctx context.Context, filter LabOrderFilter) ([]*entities.LabOrder, error)

	// UpdateResults replaces the result rows of an order and sets its status
	UpdateResults(ctx context.Context, id string, rows []entities.ResultRow, status entities.LabOrderStatus) error
}

// LabOrderFilter defines filters for listing orders
type LabOrderFilter struct {
	UHID   string
	Status entities.LabOrderStatus
	Limit  int
	Offset int
}

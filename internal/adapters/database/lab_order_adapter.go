package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/wellness-hospital/laboratory/backend/pkg/errors"
)

const (
	labOrdersTable       = "lab_orders"
	defaultLabOrderLimit = 50
)

var labOrderColumns = []interface{}{
	"id", "uhid", "patient_name", "test_name", "technician", "consultant",
	"status", "parameters", "created_at", "updated_at",
}

// LabOrderAdapter implements LabOrderRepository on Postgres
type LabOrderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewLabOrderAdapter creates a new lab order adapter
func NewLabOrderAdapter(client *postgres.Client) repositories.LabOrderRepository {
	return &LabOrderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a new order
func (a *LabOrderAdapter) Create(ctx context.Context, order *entities.LabOrder) error {
	if order == nil {
		return apperrors.NewInternalError("lab order is nil", fmt.Errorf("lab order is nil"))
	}

	params, err := encodeRows(order.Parameters)
	if err != nil {
		return apperrors.NewInternalError("failed to encode lab order parameters", err)
	}

	record := goqu.Record{
		"id":           order.ID,
		"uhid":         order.UHID,
		"patient_name": sql.NullString{String: order.PatientName, Valid: order.PatientName != ""},
		"test_name":    order.TestName,
		"technician":   sql.NullString{String: order.Technician, Valid: order.Technician != ""},
		"consultant":   sql.NullString{String: order.Consultant, Valid: order.Consultant != ""},
		"status":       string(order.Status),
		"parameters":   params,
		"created_at":   order.CreatedAt,
		"updated_at":   order.UpdatedAt,
	}

	query, args, err := a.db.Insert(labOrdersTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create lab order", err)
	}

	return nil
}

// GetByID retrieves an order by ID
func (a *LabOrderAdapter) GetByID(ctx context.Context, id string) (*entities.LabOrder, error) {
	query, args, err := a.db.Select(labOrderColumns...).
		From(labOrdersTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	order, err := scanLabOrder(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("lab order with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get lab order", err)
	}

	return order, nil
}

// List retrieves orders matching the filter, newest first
func (a *LabOrderAdapter) List(ctx context.Context, filter repositories.LabOrderFilter) ([]*entities.LabOrder, error) {
	ds := a.db.Select(labOrderColumns...).From(labOrdersTable)

	if filter.UHID != "" {
		ds = ds.Where(goqu.Ex{"uhid": filter.UHID})
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": string(filter.Status)})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLabOrderLimit
	}
	ds = ds.Order(goqu.I("created_at").Desc()).Limit(uint(limit))
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list lab orders", err)
	}
	defer rows.Close()

	orders := []*entities.LabOrder{}
	for rows.Next() {
		order, err := scanLabOrder(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan lab order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate lab orders", err)
	}

	return orders, nil
}

// UpdateResults replaces the result rows of an order and sets its status
func (a *LabOrderAdapter) UpdateResults(ctx context.Context, id string, rows []entities.ResultRow, status entities.LabOrderStatus) error {
	params, err := encodeRows(rows)
	if err != nil {
		return apperrors.NewInternalError("failed to encode lab order parameters", err)
	}

	query, args, err := a.db.Update(labOrdersTable).
		Set(goqu.Record{
			"parameters": params,
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update lab order results", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("lab order with id %s not found", id))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLabOrder(row rowScanner) (*entities.LabOrder, error) {
	order := &entities.LabOrder{}
	var patientName, technician, consultant sql.NullString
	var status string
	var params []byte

	err := row.Scan(
		&order.ID,
		&order.UHID,
		&patientName,
		&order.TestName,
		&technician,
		&consultant,
		&status,
		&params,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.PatientName = patientName.String
	order.Technician = technician.String
	order.Consultant = consultant.String
	order.Status = entities.LabOrderStatus(status)

	order.Parameters = []entities.ResultRow{}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &order.Parameters); err != nil {
			return nil, fmt.Errorf("decode parameters: %w", err)
		}
	}

	return order, nil
}

func encodeRows(rows []entities.ResultRow) (string, error) {
	if rows == nil {
		rows = []entities.ResultRow{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/wellness-hospital/laboratory/backend/pkg/errors"
)

var orderColumnNames = []string{
	"id", "uhid", "patient_name", "test_name", "technician", "consultant",
	"status", "parameters", "created_at", "updated_at",
}

func newMockAdapter(t *testing.T) (repositories.LabOrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewLabOrderAdapter(postgres.NewClientFromDB(db)), mock
}

func TestLabOrderAdapter_Create(t *testing.T) {
	adapter, mock := newMockAdapter(t)
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO "lab_orders" (.+) VALUES (.+)'CBC \(Complete Blood Count\)'`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Create(context.Background(), &entities.LabOrder{
		ID:        "ord-1",
		UHID:      "UH-1001",
		TestName:  "CBC (Complete Blood Count)",
		Status:    entities.LabOrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabOrderAdapter_CreateFailure(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(`INSERT INTO "lab_orders"`).WillReturnError(errors.New("duplicate key"))

	err := adapter.Create(context.Background(), &entities.LabOrder{ID: "ord-1", UHID: "UH-1", TestName: "ESR"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}

func TestLabOrderAdapter_GetByID(t *testing.T) {
	adapter, mock := newMockAdapter(t)
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(orderColumnNames).AddRow(
		"ord-1", "UH-1001", "Asha Rao", "Lipid Profile", nil, "Dr. Menon",
		"completed", []byte(`[{"name":"Triglycerides","value":"140","unit":"mg/dL","ref_range":"< 150"}]`),
		now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM "lab_orders" WHERE \("id" = 'ord-1'\)`).WillReturnRows(rows)

	order, err := adapter.GetByID(context.Background(), "ord-1")
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", order.PatientName)
	assert.Equal(t, "", order.Technician)
	assert.Equal(t, entities.LabOrderStatusCompleted, order.Status)
	require.Len(t, order.Parameters, 1)
	assert.Equal(t, "140", order.Parameters[0].Value)
}

func TestLabOrderAdapter_GetByIDNotFound(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "lab_orders"`).WillReturnRows(sqlmock.NewRows(orderColumnNames))

	_, err := adapter.GetByID(context.Background(), "missing")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestLabOrderAdapter_ListAppliesFilters(t *testing.T) {
	adapter, mock := newMockAdapter(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(orderColumnNames).
		AddRow("ord-2", "UH-1", "", "ESR", "", "", "pending", []byte(`[]`), now, now).
		AddRow("ord-1", "UH-1", "", "CBC", "", "", "pending", nil, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM "lab_orders" WHERE \(\("uhid" = 'UH-1'\) AND \("status" = 'pending'\)\) ORDER BY "created_at" DESC LIMIT 10 OFFSET 20`).
		WillReturnRows(rows)

	orders, err := adapter.List(context.Background(), repositories.LabOrderFilter{
		UHID:   "UH-1",
		Status: entities.LabOrderStatusPending,
		Limit:  10,
		Offset: 20,
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Empty(t, orders[1].Parameters)
	assert.NotNil(t, orders[1].Parameters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabOrderAdapter_ListDefaultLimit(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(`ORDER BY "created_at" DESC LIMIT 50$`).WillReturnRows(sqlmock.NewRows(orderColumnNames))

	orders, err := adapter.List(context.Background(), repositories.LabOrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestLabOrderAdapter_UpdateResults(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(`UPDATE "lab_orders" SET (.+)"status"='completed'(.+)WHERE \("id" = 'ord-1'\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.UpdateResults(context.Background(), "ord-1", []entities.ResultRow{{Name: "ESR", Value: "12"}}, entities.LabOrderStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabOrderAdapter_UpdateResultsNotFound(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(`UPDATE "lab_orders"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.UpdateResults(context.Background(), "missing", nil, entities.LabOrderStatusCompleted)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

package services

import (
	"context"
	"fmt"

	"github.com/wellness-hospital/laboratory/backend/internal/catalog"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
	apperrors "github.com/wellness-hospital/laboratory/backend/pkg/errors"
)

// ResultEntryService builds and saves the result-entry form of an order
type ResultEntryService struct {
	repo    repositories.LabOrderRepository
	catalog *catalog.Catalog
}

// NewResultEntryService creates a new result entry service
func NewResultEntryService(repo repositories.LabOrderRepository, c *catalog.Catalog) *ResultEntryService {
	return &ResultEntryService{
		repo:    repo,
		catalog: c,
	}
}

// PrepareRows returns the rows to show for an order: its saved results, else the
// parameters of the profile its test name matches, else one blank row.
func (s *ResultEntryService) PrepareRows(ctx context.Context, orderID string) ([]entities.ResultRow, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if len(order.Parameters) > 0 {
		return append([]entities.ResultRow(nil), order.Parameters...), nil
	}

	profile, ok := s.catalog.MatchProfileByTestName(order.TestName)
	if !ok {
		return []entities.ResultRow{{}}, nil
	}

	return rowsFromProfile(s.catalog, profile), nil
}

// ApplySelection applies an autocomplete pick to the row at index and returns the
// new row list. A profile replaces the row with all of its parameters; a single test
// fills in the row's name, unit and reference range and keeps its value.
func (s *ResultEntryService) ApplySelection(rows []entities.ResultRow, index int, selection entities.SearchResult) ([]entities.ResultRow, error) {
	if index < 0 || index >= len(rows) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("row index %d out of range", index))
	}

	switch sel := selection.(type) {
	case entities.ProfileResult:
		expanded := rowsFromProfile(s.catalog, sel.Profile)
		out := make([]entities.ResultRow, 0, len(rows)-1+len(expanded))
		out = append(out, rows[:index]...)
		out = append(out, expanded...)
		out = append(out, rows[index+1:]...)
		return out, nil
	case entities.TestResult:
		out := append([]entities.ResultRow(nil), rows...)
		out[index].Name = sel.Test.Name
		out[index].Unit = sel.Test.Unit
		out[index].RefRange = sel.Test.RefRange
		return out, nil
	default:
		return nil, apperrors.NewValidationError("unsupported selection")
	}
}

// SaveResults stores the non-blank rows and marks the order completed
func (s *ResultEntryService) SaveResults(ctx context.Context, orderID string, rows []entities.ResultRow) (*entities.LabOrder, error) {
	kept := make([]entities.ResultRow, 0, len(rows))
	for _, row := range rows {
		if row.IsBlank() {
			continue
		}
		kept = append(kept, row)
	}

	if len(kept) == 0 {
		return nil, apperrors.NewValidationError("at least one result row is required")
	}

	if err := s.repo.UpdateResults(ctx, orderID, kept, entities.LabOrderStatusCompleted); err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("order_id", orderID).Msg("failed to save lab results")
		return nil, err
	}

	return s.repo.GetByID(ctx, orderID)
}

func rowsFromProfile(c *catalog.Catalog, profile entities.LabTestProfile) []entities.ResultRow {
	params := c.ExpandProfile(profile)
	rows := make([]entities.ResultRow, 0, len(params))
	for _, p := range params {
		rows = append(rows, entities.ResultRowFromProfileParameter(p))
	}
	return rows
}

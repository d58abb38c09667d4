package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wellness-hospital/laboratory/backend/internal/application/services"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
)

const defaultOrderListLimit = 50

// LabOrderService defines the order operations used by the handler.
type LabOrderService interface {
	CreateOrders(ctx context.Context, req services.CreateOrdersRequest) ([]*entities.LabOrder, error)
	GetOrder(ctx context.Context, id string) (*entities.LabOrder, error)
	ListOrders(ctx context.Context, filter repositories.LabOrderFilter) ([]*entities.LabOrder, error)
}

// ResultEntryService defines the result-entry operations used by the handler.
type ResultEntryService interface {
	PrepareRows(ctx context.Context, orderID string) ([]entities.ResultRow, error)
	ApplySelection(rows []entities.ResultRow, index int, selection entities.SearchResult) ([]entities.ResultRow, error)
	SaveResults(ctx context.Context, orderID string, rows []entities.ResultRow) (*entities.LabOrder, error)
}

// LabOrderHandler handles lab order and result entry HTTP requests
type LabOrderHandler struct {
	orders  LabOrderService
	results ResultEntryService
}

// NewLabOrderHandler creates a new lab order handler
func NewLabOrderHandler(orders LabOrderService, results ResultEntryService) *LabOrderHandler {
	return &LabOrderHandler{
		orders:  orders,
		results: results,
	}
}

// CreateOrders handles POST /api/lab-orders
func (h *LabOrderHandler) CreateOrders(w http.ResponseWriter, r *http.Request) {
	var req services.CreateOrdersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	orders, err := h.orders.CreateOrders(r.Context(), req)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// ListOrders handles GET /api/lab-orders
func (h *LabOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", defaultOrderListLimit)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	filter := repositories.LabOrderFilter{
		UHID:   r.URL.Query().Get("uhid"),
		Status: entities.LabOrderStatus(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}

	orders, err := h.orders.ListOrders(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder handles GET /api/lab-orders/{id}
func (h *LabOrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, order)
}

// GetResultRows handles GET /api/lab-orders/{id}/result-rows
func (h *LabOrderHandler) GetResultRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.results.PrepareRows(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"rows": rows,
	})
}

type applySelectionRequest struct {
	Rows      []entities.ResultRow `json:"rows"`
	Index     int                  `json:"index"`
	Selection json.RawMessage      `json:"selection"`
}

// ApplySelection handles POST /api/lab-orders/{id}/result-rows/apply
func (h *LabOrderHandler) ApplySelection(w http.ResponseWriter, r *http.Request) {
	var req applySelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if len(req.Selection) == 0 {
		respondWithError(w, http.StatusBadRequest, "selection is required")
		return
	}

	selection, ok, err := entities.DecodeSearchResult(req.Selection)
	if err != nil || !ok {
		respondWithError(w, http.StatusBadRequest, "invalid selection")
		return
	}

	rows, err := h.results.ApplySelection(req.Rows, req.Index, selection)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"rows": rows,
	})
}

type saveResultsRequest struct {
	Rows []entities.ResultRow `json:"rows"`
}

// SaveResults handles PUT /api/lab-orders/{id}/results
func (h *LabOrderHandler) SaveResults(w http.ResponseWriter, r *http.Request) {
	var req saveResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	order, err := h.results.SaveResults(r.Context(), r.PathValue("id"), req.Rows)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, order)
}

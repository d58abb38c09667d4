package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/providers"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
)

// Cache TTL (in seconds) for a single order
const labOrderByIDTTL = 300

// CachedLabOrderAdapter wraps a LabOrderRepository with read-through caching of
// single orders. Lists are never cached.
type CachedLabOrderAdapter struct {
	adapter repositories.LabOrderRepository
	cache   providers.CacheProvider
}

// NewCachedLabOrderAdapter creates a new cached lab order adapter
func NewCachedLabOrderAdapter(adapter repositories.LabOrderRepository, cache providers.CacheProvider) repositories.LabOrderRepository {
	return &CachedLabOrderAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

func labOrderCacheKey(id string) string {
	return fmt.Sprintf("lab_order:%s", id)
}

// Create inserts the order and primes the cache
func (a *CachedLabOrderAdapter) Create(ctx context.Context, order *entities.LabOrder) error {
	if err := a.adapter.Create(ctx, order); err != nil {
		return err
	}
	a.store(ctx, order)
	return nil
}

// GetByID retrieves an order by ID with caching
func (a *CachedLabOrderAdapter) GetByID(ctx context.Context, id string) (*entities.LabOrder, error) {
	cacheKey := labOrderCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var order entities.LabOrder
		if err := json.Unmarshal(cached, &order); err == nil {
			return &order, nil
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("order_id", id).Msg("failed to unmarshal cached lab order")
	}

	order, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.store(ctx, order)
	return order, nil
}

// List is served by the underlying repository
func (a *CachedLabOrderAdapter) List(ctx context.Context, filter repositories.LabOrderFilter) ([]*entities.LabOrder, error) {
	return a.adapter.List(ctx, filter)
}

// UpdateResults writes through and evicts the cached order
func (a *CachedLabOrderAdapter) UpdateResults(ctx context.Context, id string, rows []entities.ResultRow, status entities.LabOrderStatus) error {
	if err := a.adapter.UpdateResults(ctx, id, rows, status); err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, labOrderCacheKey(id)); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("order_id", id).Msg("failed to evict cached lab order")
	}
	return nil
}

func (a *CachedLabOrderAdapter) store(ctx context.Context, order *entities.LabOrder) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, labOrderCacheKey(order.ID), data, labOrderByIDTTL); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("order_id", order.ID).Msg("failed to cache lab order")
	}
}

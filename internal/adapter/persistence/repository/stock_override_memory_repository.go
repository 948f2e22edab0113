package repository

import (
	"context"
	"sync"

	"cip_portal/internal/usecase/interfaces"
)

// StockOverrideMemoryRepository keeps the session's manual stock
// reports in a mutex-guarded map.

type StockOverrideMemoryRepository struct {
	mu        sync.RWMutex
	overrides map[string]int
}

var _ interfaces.IStockOverrideRepository = (*StockOverrideMemoryRepository)(nil)

func NewStockOverrideMemoryRepository() *StockOverrideMemoryRepository {
	return &StockOverrideMemoryRepository{overrides: make(map[string]int)}
}

func (r *StockOverrideMemoryRepository) Set(ctx context.Context, productID string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[productID] = stock
	return nil
}

func (r *StockOverrideMemoryRepository) Clear(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.overrides, productID)
	return nil
}

func (r *StockOverrideMemoryRepository) Get(ctx context.Context, productID string) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stock, ok := r.overrides[productID]
	return stock, ok, nil
}

func (r *StockOverrideMemoryRepository) All(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.overrides))
	for k, v := range r.overrides {
		out[k] = v
	}
	return out, nil
}

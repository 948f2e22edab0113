package repository

import (
	"context"
	"sync"

	"cip_portal/internal/usecase/interfaces"
)

// QuantityAdjustmentMemoryRepository keeps the session's reviewed order
// quantities in a mutex-guarded map.

type QuantityAdjustmentMemoryRepository struct {
	mu          sync.RWMutex
	adjustments map[string]int
}

var _ interfaces.IQuantityAdjustmentRepository = (*QuantityAdjustmentMemoryRepository)(nil)

func NewQuantityAdjustmentMemoryRepository() *QuantityAdjustmentMemoryRepository {
	return &QuantityAdjustmentMemoryRepository{adjustments: make(map[string]int)}
}

func (r *QuantityAdjustmentMemoryRepository) Set(ctx context.Context, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adjustments[productID] = quantity
	return nil
}

func (r *QuantityAdjustmentMemoryRepository) Clear(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.adjustments, productID)
	return nil
}

func (r *QuantityAdjustmentMemoryRepository) Get(ctx context.Context, productID string) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.adjustments[productID]
	return q, ok, nil
}

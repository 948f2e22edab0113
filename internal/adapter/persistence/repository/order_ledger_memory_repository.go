package repository

import (
	"context"
	"fmt"
	"sync"

	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase/interfaces"
)

// OrderLedgerMemoryRepository keeps submitted orders in memory, most
// recent first. New orders are prepended; the seeds stay at the tail.

type OrderLedgerMemoryRepository struct {
	mu     sync.RWMutex
	orders []entities.Order
}

var _ interfaces.IOrderLedgerRepository = (*OrderLedgerMemoryRepository)(nil)

// NewOrderLedgerMemoryRepository seeds the ledger with the given
// historical orders, assumed already sorted most recent first.
func NewOrderLedgerMemoryRepository(seed []entities.Order) *OrderLedgerMemoryRepository {
	orders := make([]entities.Order, len(seed))
	copy(orders, seed)
	return &OrderLedgerMemoryRepository{orders: orders}
}

func (r *OrderLedgerMemoryRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.ID == o.ID {
			return entities.Order{}, fmt.Errorf("order %s already exists", o.ID)
		}
	}
	r.orders = append([]entities.Order{o}, r.orders...)
	return o, nil
}

func (r *OrderLedgerMemoryRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderLedgerMemoryRepository) List(ctx context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

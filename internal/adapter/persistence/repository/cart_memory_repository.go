package repository

import (
	"context"
	"sync"

	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase/interfaces"
)

// CartMemoryRepository holds the session's single staging cart. Lines
// are deep-copied on the way in and out so callers cannot alias the
// stored slice.

type CartMemoryRepository struct {
	mu   sync.RWMutex
	cart entities.Cart
}

var _ interfaces.ICartRepository = (*CartMemoryRepository)(nil)

func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{}
}

func (r *CartMemoryRepository) Get(ctx context.Context) (entities.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyCart(r.cart), nil
}

func (r *CartMemoryRepository) Save(ctx context.Context, cart entities.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart = copyCart(cart)
	return nil
}

func (r *CartMemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart = entities.Cart{}
	return nil
}

func copyCart(c entities.Cart) entities.Cart {
	if len(c.Lines) == 0 {
		return entities.Cart{}
	}
	lines := make([]entities.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return entities.Cart{Lines: lines}
}

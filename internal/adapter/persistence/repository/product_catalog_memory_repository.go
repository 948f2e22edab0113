package repository

import (
	"context"

	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase/interfaces"
)

// ProductCatalogMemoryRepository serves the catalog loaded at startup.
// The slice is never mutated after construction, so reads need no lock.

type ProductCatalogMemoryRepository struct {
	products []entities.Product
	byID     map[string]entities.Product
}

var _ interfaces.IProductCatalogRepository = (*ProductCatalogMemoryRepository)(nil)

func NewProductCatalogMemoryRepository(products []entities.Product) *ProductCatalogMemoryRepository {
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &ProductCatalogMemoryRepository{products: products, byID: byID}
}

func (r *ProductCatalogMemoryRepository) List(ctx context.Context) ([]entities.Product, error) {
	out := make([]entities.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductCatalogMemoryRepository) GetByID(ctx context.Context, id string) (entities.Product, bool, error) {
	p, ok := r.byID[id]
	return p, ok, nil
}

package interfaces

import (
	"context"

	"cip_portal/internal/domain/entities"
)

// IProductCatalogRepository abstracts read access to the immutable
// product catalog loaded at startup.

type IProductCatalogRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, bool, error)
}

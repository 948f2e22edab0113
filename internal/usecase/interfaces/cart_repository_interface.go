package interfaces

import (
	"context"

	"cip_portal/internal/domain/entities"
)

// ICartRepository abstracts the session's single staging cart.

type ICartRepository interface {
	Get(ctx context.Context) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
	Clear(ctx context.Context) error
}

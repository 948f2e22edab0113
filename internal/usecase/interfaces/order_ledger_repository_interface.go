package interfaces

import (
	"context"

	"cip_portal/internal/domain/entities"
)

// IOrderLedgerRepository abstracts persistence for submitted orders.
//
// The order flow must be able to:
//   - append a freshly submitted order
//   - fetch one order for its logistics timeline
//   - list the full history, most recent first

type IOrderLedgerRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

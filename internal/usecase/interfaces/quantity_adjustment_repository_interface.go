package interfaces

import "context"

// IQuantityAdjustmentRepository abstracts the session store of reviewed
// target quantities, keyed by product id. A product with no entry falls
// back to its computed suggestion.

type IQuantityAdjustmentRepository interface {
	Set(ctx context.Context, productID string, quantity int) error
	Clear(ctx context.Context, productID string) error
	Get(ctx context.Context, productID string) (int, bool, error)
}

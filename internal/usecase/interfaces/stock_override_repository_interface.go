package interfaces

import "context"

// IStockOverrideRepository abstracts the session store of manually
// reported stock levels, keyed by product id.
//
// The replenishment flow must be able to:
//   - set an override when the distributor reports a count
//   - clear an override to fall back to the default feed
//   - read a single override and the full map when recomputing views

type IStockOverrideRepository interface {
	Set(ctx context.Context, productID string, stock int) error
	Clear(ctx context.Context, productID string) error
	Get(ctx context.Context, productID string) (int, bool, error)
	All(ctx context.Context) (map[string]int, error)
}

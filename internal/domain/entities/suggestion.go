package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StockSource tags where a product's effective stock figure came from.

type StockSource string

const (
	// StockSourceDefaultFeed means the catalog's baseline figure (DDI feed).
	StockSourceDefaultFeed StockSource = "default_feed"
	// StockSourceManualReport means a user-supplied override is in effect.
	StockSourceManualReport StockSource = "manual_report"
)

// StockoutNow is the projection label for a product already depleted at
// the current burn rate.
const StockoutNow = "already out of stock"

// ProductView is a Product extended with the session-derived fields.
// Views are recomputed, never stored: every read performs a full derive
// pass over the catalog so a view always exists for every product.
type ProductView struct {
	Product

	EffectiveStock     int         `json:"effective_stock"`
	StockSource        StockSource `json:"stock_source"`
	DemandTarget       int         `json:"demand_target"`
	SuggestedQuantity  int         `json:"suggested_quantity"`
	StockoutProjection string      `json:"stockout_projection"`

	// TargetQuantity is the quantity staged for ordering: the user's
	// explicit adjustment when one exists, else the fresh suggestion.
	TargetQuantity int `json:"target_quantity"`
	// Staged marks products already committed to the cart.
	Staged bool `json:"staged"`
}

// DemandTarget computes ceil(dailyBurnRate x safetyStockDays).
func DemandTarget(p Product) int {
	days := decimal.NewFromInt(int64(p.Calc.SafetyStockDays))
	return int(p.Calc.DailyBurnRate.Mul(days).Ceil().IntPart())
}

// SuggestedQuantity computes max(0, demandTarget - effectiveStock + buffer).
//
// The strategic buffer is applied unconditionally, even when the gap is
// negative. A large buffer can therefore force a positive suggestion for
// an overstocked product; that is the documented replenishment policy,
// not an accident.
func SuggestedQuantity(p Product, effectiveStock int) int {
	gap := DemandTarget(p) - effectiveStock
	if s := gap + p.Calc.StrategicBufferUnits; s > 0 {
		return s
	}
	return 0
}

// StockoutProjection reports how long the effective stock lasts at the
// current burn rate, floored to whole days.
func StockoutProjection(p Product, effectiveStock int) string {
	stock := decimal.NewFromInt(int64(effectiveStock))
	days := stock.Div(p.Calc.DailyBurnRate).Floor().IntPart()
	if days <= 0 {
		return StockoutNow
	}
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// DeriveProductView is the pure derive step: (catalog record, optional
// override) -> view. hasOverride=false means "use the default feed".
// The adjustment and staged fields are layered on by the caller, which
// owns that session state.
func DeriveProductView(p Product, overrideStock int, hasOverride bool) ProductView {
	effective := p.InitialStock
	source := StockSourceDefaultFeed
	if hasOverride {
		effective = overrideStock
		source = StockSourceManualReport
	}

	suggested := SuggestedQuantity(p, effective)
	return ProductView{
		Product:            p,
		EffectiveStock:     effective,
		StockSource:        source,
		DemandTarget:       DemandTarget(p),
		SuggestedQuantity:  suggested,
		StockoutProjection: StockoutProjection(p, effective),
		TargetQuantity:     suggested,
	}
}

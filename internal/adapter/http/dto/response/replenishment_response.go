package response

import (
	"cip_portal/internal/domain/entities"
)

// ProductViewResponse is the wire shape of one catalog row with its
// computed replenishment fields. Money and rates render as decimal
// strings.

type ProductViewResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Category             string `json:"category"`
	UnitPrice            string `json:"unit_price"`
	EffectiveStock       int    `json:"effective_stock"`
	StockSource          string `json:"stock_source"`
	DailyBurnRate        string `json:"daily_burn_rate"`
	SafetyStockDays      int    `json:"safety_stock_days"`
	StrategicBufferUnits int    `json:"strategic_buffer_units"`
	DemandTarget         int    `json:"demand_target"`
	SuggestedQuantity    int    `json:"suggested_quantity"`
	StockoutProjection   string `json:"stockout_projection"`
	TargetQuantity       int    `json:"target_quantity"`
	Staged               bool   `json:"staged"`
}

func FromProductView(v entities.ProductView) ProductViewResponse {
	return ProductViewResponse{
		ID:                   v.ID,
		Name:                 v.Name,
		Category:             v.Category,
		UnitPrice:            v.UnitPrice.String(),
		EffectiveStock:       v.EffectiveStock,
		StockSource:          string(v.StockSource),
		DailyBurnRate:        v.Calc.DailyBurnRate.String(),
		SafetyStockDays:      v.Calc.SafetyStockDays,
		StrategicBufferUnits: v.Calc.StrategicBufferUnits,
		DemandTarget:         v.DemandTarget,
		SuggestedQuantity:    v.SuggestedQuantity,
		StockoutProjection:   v.StockoutProjection,
		TargetQuantity:       v.TargetQuantity,
		Staged:               v.Staged,
	}
}

func FromProductViews(views []entities.ProductView) []ProductViewResponse {
	out := make([]ProductViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromProductView(v))
	}
	return out
}

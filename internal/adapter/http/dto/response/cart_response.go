package response

import (
	"cip_portal/internal/domain/entities"
)

type CartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalUnits int                `json:"total_units"`
	TotalValue string             `json:"total_value"`
}

func FromCart(c entities.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.String(),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal().String(),
		})
	}
	return CartResponse{
		Lines:      lines,
		TotalUnits: c.TotalUnits(),
		TotalValue: c.TotalValue().String(),
	}
}

package response

import (
	"time"

	"cip_portal/internal/domain/entities"
)

type DraftLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type DraftResponse struct {
	State      string              `json:"state"`
	Source     string              `json:"source,omitempty"`
	Lines      []DraftLineResponse `json:"lines"`
	TotalUnits int                 `json:"total_units"`
	TotalValue string              `json:"total_value"`
	Summary    string              `json:"summary,omitempty"`
}

func FromDraft(d entities.Draft) DraftResponse {
	lines := make([]DraftLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, DraftLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.String(),
			Quantity:  l.Quantity,
		})
	}
	return DraftResponse{
		State:      string(d.State),
		Source:     string(d.Source),
		Lines:      lines,
		TotalUnits: d.TotalUnits,
		TotalValue: d.TotalValue.String(),
		Summary:    d.Summary,
	}
}

type LogisticsStepResponse struct {
	Time   string `json:"time"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Done   bool   `json:"done"`
}

type OrderResponse struct {
	ID        string                  `json:"id"`
	CreatedAt time.Time               `json:"created_at"`
	Amount    string                  `json:"amount"`
	Status    string                  `json:"status"`
	Items     string                  `json:"items"`
	Origin    string                  `json:"origin"`
	Logistics []LogisticsStepResponse `json:"logistics"`
}

func FromOrder(o entities.Order) OrderResponse {
	steps := make([]LogisticsStepResponse, 0, len(o.Logistics))
	for _, s := range o.Logistics {
		steps = append(steps, LogisticsStepResponse{
			Time:   s.Time,
			Status: s.Status,
			Detail: s.Detail,
			Done:   s.Done,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Amount:    o.Amount.String(),
		Status:    o.Status,
		Items:     o.Items,
		Origin:    string(o.Origin),
		Logistics: steps,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

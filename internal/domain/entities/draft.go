package entities

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DraftSource tags where the pending draft's lines came from. Modelled
// explicitly so read sites never re-derive the cart-or-suggestions
// choice on their own.

type DraftSource string

const (
	DraftSourceCart               DraftSource = "cart"
	DraftSourceCatalogSuggestions DraftSource = "catalog_suggestions"
)

// DraftState is the pending purchase intent's state. Submitted never
// appears on a Draft value: submission produces an Order and the next
// consolidation starts a fresh draft.

type DraftState string

const (
	DraftStateEmpty         DraftState = "empty"
	DraftStatePendingReview DraftState = "pending_review"
)

type DraftLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Draft is a transient view object recomputed from the cart (or, when
// the cart is empty, from positive catalog suggestions) on every read.
// It is never persisted.
type Draft struct {
	State      DraftState      `json:"state"`
	Source     DraftSource     `json:"source"`
	Lines      []DraftLine     `json:"lines"`
	TotalValue decimal.Decimal `json:"total_value"`
	TotalUnits int             `json:"total_units"`
	Summary    string          `json:"summary"`
}

// ConsolidateDraft builds the single pending draft. A cart-staged
// product can never double-count as a suggestion line: the moment the
// cart has any line, suggestions stop contributing entirely.
func ConsolidateDraft(cart Cart, views []ProductView) Draft {
	var lines []DraftLine
	source := DraftSourceCatalogSuggestions

	if !cart.IsEmpty() {
		source = DraftSourceCart
		for _, l := range cart.Lines {
			lines = append(lines, DraftLine{
				ProductID: l.ProductID,
				Name:      l.Name,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			})
		}
	} else {
		for _, v := range views {
			if v.SuggestedQuantity <= 0 {
				continue
			}
			lines = append(lines, DraftLine{
				ProductID: v.ID,
				Name:      v.Name,
				UnitPrice: v.UnitPrice,
				Quantity:  v.SuggestedQuantity,
			})
		}
	}

	d := Draft{
		State:      DraftStatePendingReview,
		Source:     source,
		Lines:      lines,
		TotalValue: decimal.Zero,
	}
	if len(lines) == 0 {
		d.State = DraftStateEmpty
		return d
	}

	summary := make([]string, 0, len(lines))
	for _, l := range lines {
		d.TotalValue = d.TotalValue.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		d.TotalUnits += l.Quantity
		summary = append(summary, shortName(l.Name)+" x"+strconv.Itoa(l.Quantity))
	}
	d.Summary = strings.Join(summary, ", ")
	return d
}

// shortName keeps the item summary compact: first word of the product
// name, matching the portal's order line labels.
func shortName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

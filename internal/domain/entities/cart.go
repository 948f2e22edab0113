package entities

import "github.com/shopspring/decimal"

// CartLine is one accepted product selection. Name and price are
// snapshotted at add time so later catalog edits cannot drift a staged
// order.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is the extended price of the line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the session's staged purchase intent. Lines keep insertion
// order; a product id appears at most once.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add merges qty into an existing line for the product or appends a new
// snapshot line. Callers validate qty > 0 before staging.
func (c *Cart) Add(p Product, qty int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity += qty
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  qty,
	})
}

// Contains reports whether the product is already staged.
func (c Cart) Contains(productID string) bool {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalValue recomputes the cart value on every read. Totals are never
// stored alongside the lines.
func (c Cart) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// TotalUnits recomputes the unit count on every read.
func (c Cart) TotalUnits() int {
	units := 0
	for _, l := range c.Lines {
		units += l.Quantity
	}
	return units
}

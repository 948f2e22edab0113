package response

import (
	"testing"

	"cip_portal/internal/domain/entities"
)

func TestFromProductView(t *testing.T) {
	p := entities.DefaultCatalog()[0]
	v := entities.DeriveProductView(p, 0, false)

	r := FromProductView(v)
	if r.ID != "P001" || r.UnitPrice != "185" {
		t.Fatalf("unexpected response: %+v", r)
	}
	if r.DailyBurnRate != "25" || r.DemandTarget != 500 || r.SuggestedQuantity != 530 {
		t.Fatalf("unexpected calc fields: %+v", r)
	}
	if r.StockSource != "default_feed" {
		t.Fatalf("unexpected stock source: %q", r.StockSource)
	}
}

func TestFromCart(t *testing.T) {
	var cart entities.Cart
	cart.Add(entities.DefaultCatalog()[0], 2)

	r := FromCart(cart)
	if len(r.Lines) != 1 || r.Lines[0].LineTotal != "370" {
		t.Fatalf("unexpected response: %+v", r)
	}
	if r.TotalUnits != 2 || r.TotalValue != "370" {
		t.Fatalf("unexpected totals: %+v", r)
	}

	empty := FromCart(entities.Cart{})
	if empty.Lines == nil || len(empty.Lines) != 0 {
		t.Fatalf("expected empty non-nil lines, got %+v", empty.Lines)
	}
}

func TestFromDraft(t *testing.T) {
	var cart entities.Cart
	cart.Add(entities.DefaultCatalog()[0], 10)
	d := entities.ConsolidateDraft(cart, nil)

	r := FromDraft(d)
	if r.State != "pending_review" || r.Source != "cart" {
		t.Fatalf("unexpected response: %+v", r)
	}
	if r.TotalValue != "1850" || r.Summary != "Tamiflu x10" {
		t.Fatalf("unexpected aggregates: %+v", r)
	}
}

func TestFromOrder(t *testing.T) {
	o := entities.SeedOrders()[0]

	r := FromOrder(o)
	if r.ID != o.ID || r.Amount != "125000" || r.Origin != "seeded" {
		t.Fatalf("unexpected response: %+v", r)
	}
	if len(r.Logistics) != 5 || !r.Logistics[0].Done || r.Logistics[4].Done {
		t.Fatalf("unexpected logistics: %+v", r.Logistics)
	}
}

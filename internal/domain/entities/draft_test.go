package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func demoViews() []ProductView {
	var views []ProductView
	for _, p := range DefaultCatalog() {
		views = append(views, DeriveProductView(p, 0, false))
	}
	return views
}

func TestConsolidateDraft_FromCatalogSuggestions(t *testing.T) {
	d := ConsolidateDraft(Cart{}, demoViews())

	if d.State != DraftStatePendingReview {
		t.Fatalf("expected pending_review, got %s", d.State)
	}
	if d.Source != DraftSourceCatalogSuggestions {
		t.Fatalf("expected catalog source, got %s", d.Source)
	}
	// P001 suggests 530, P002 suggests 0 (healthy stock), P003 suggests 13.
	if len(d.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(d.Lines), d.Lines)
	}
	if d.TotalUnits != 543 {
		t.Fatalf("expected 543 units, got %d", d.TotalUnits)
	}
	want := decimal.NewFromFloat(185.00).Mul(decimal.NewFromInt(530)).
		Add(decimal.NewFromFloat(3200.00).Mul(decimal.NewFromInt(13)))
	if !d.TotalValue.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, d.TotalValue)
	}
	if d.Summary != "Tamiflu x530, Avastin x13" {
		t.Fatalf("unexpected summary: %q", d.Summary)
	}
}

func TestConsolidateDraft_CartWins(t *testing.T) {
	var cart Cart
	cart.Add(fluProduct(), 10)

	d := ConsolidateDraft(cart, demoViews())
	if d.Source != DraftSourceCart {
		t.Fatalf("expected cart source, got %s", d.Source)
	}
	// Catalog suggestions must not leak in next to staged lines.
	if len(d.Lines) != 1 || d.Lines[0].ProductID != "P001" {
		t.Fatalf("unexpected lines: %+v", d.Lines)
	}
	if d.TotalUnits != 10 {
		t.Fatalf("expected 10 units, got %d", d.TotalUnits)
	}
	if d.Summary != "Tamiflu x10" {
		t.Fatalf("unexpected summary: %q", d.Summary)
	}
}

func TestConsolidateDraft_Empty(t *testing.T) {
	// No cart lines and no positive suggestions.
	views := []ProductView{{
		Product:           Product{ID: "P002", Name: "Rocephin"},
		SuggestedQuantity: 0,
	}}

	d := ConsolidateDraft(Cart{}, views)
	if d.State != DraftStateEmpty {
		t.Fatalf("expected empty state, got %s", d.State)
	}
	if len(d.Lines) != 0 || d.TotalUnits != 0 || !d.TotalValue.IsZero() {
		t.Fatalf("expected zero aggregates, got %+v", d)
	}
}

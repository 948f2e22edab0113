package repository

import (
	"context"
	"testing"
	"time"

	"cip_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestProductCatalogMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductCatalogMemoryRepository(entities.DefaultCatalog())

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	p, ok, err := repo.GetByID(ctx, "P001")
	if err != nil || !ok {
		t.Fatalf("expected P001: ok=%v err=%v", ok, err)
	}
	if p.Name != "Tamiflu (Oseltamivir) 75mg" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok, _ := repo.GetByID(ctx, "P999"); ok {
		t.Fatalf("expected P999 to be absent")
	}
}

func TestStockOverrideMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStockOverrideMemoryRepository()

	if _, ok, _ := repo.Get(ctx, "P001"); ok {
		t.Fatalf("expected no override initially")
	}

	if err := repo.Set(ctx, "P001", 600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stock, ok, _ := repo.Get(ctx, "P001")
	if !ok || stock != 600 {
		t.Fatalf("expected 600, got %d ok=%v", stock, ok)
	}

	all, _ := repo.All(ctx)
	if len(all) != 1 || all["P001"] != 600 {
		t.Fatalf("unexpected map: %v", all)
	}

	if err := repo.Clear(ctx, "P001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "P001"); ok {
		t.Fatalf("expected override cleared")
	}

	// Clearing again is a no-op.
	if err := repo.Clear(ctx, "P001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuantityAdjustmentMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuantityAdjustmentMemoryRepository()

	if err := repo.Set(ctx, "P001", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Zero is a stored value, distinct from no entry.
	q, ok, _ := repo.Get(ctx, "P001")
	if !ok || q != 0 {
		t.Fatalf("expected stored zero, got %d ok=%v", q, ok)
	}

	if err := repo.Clear(ctx, "P001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "P001"); ok {
		t.Fatalf("expected adjustment cleared")
	}
}

func TestCartMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCartMemoryRepository()

	cart, err := repo.Get(ctx)
	if err != nil || !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v err=%v", cart, err)
	}

	var staged entities.Cart
	staged.Add(entities.DefaultCatalog()[0], 5)
	if err := repo.Save(ctx, staged); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	staged.Lines[0].Quantity = 99

	got, _ := repo.Get(ctx)
	if got.Lines[0].Quantity != 5 {
		t.Fatalf("expected stored quantity 5, got %d", got.Lines[0].Quantity)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := repo.Get(ctx); !got.IsEmpty() {
		t.Fatalf("expected cleared cart, got %+v", got)
	}
}

func TestOrderLedgerMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderLedgerMemoryRepository(entities.SeedOrders())

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "ORD-20231012-01" {
		t.Fatalf("unexpected seed listing: %+v", orders)
	}

	o, err := entities.NewOrder(
		"ORD-AB12CD34",
		time.Date(2023, 10, 20, 12, 0, 0, 0, time.UTC),
		decimal.NewFromInt(1850),
		entities.OrderStatusProcessing,
		"Tamiflu x10",
		entities.OrderOriginFromDraft,
		entities.SubmittedTimeline(time.Date(2023, 10, 20, 12, 0, 0, 0, time.UTC)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("new orders are prepended", func(t *testing.T) {
		orders, _ := repo.List(ctx)
		if len(orders) != 3 || orders[0].ID != "ORD-AB12CD34" {
			t.Fatalf("unexpected listing: %+v", orders)
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		if _, err := repo.Create(ctx, o); err == nil {
			t.Fatalf("expected duplicate error")
		}
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "ORD-AB12CD34")
		if err != nil || got.ID != "ORD-AB12CD34" {
			t.Fatalf("unexpected order: %+v err=%v", got, err)
		}
		missing, err := repo.GetByID(ctx, "ORD-MISSING1")
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero order for missing id, got %+v err=%v", missing, err)
		}
	})
}

func TestOrderItemRoundTrip(t *testing.T) {
	o := entities.SeedOrders()[0]
	got, err := fromOrderItem(toOrderItem(o))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != o.ID || !got.Amount.Equal(o.Amount) || !got.CreatedAt.Equal(o.CreatedAt) {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, o)
	}
	if len(got.Logistics) != len(o.Logistics) || got.Logistics[3].Status != o.Logistics[3].Status {
		t.Fatalf("logistics mismatch: %+v", got.Logistics)
	}
}

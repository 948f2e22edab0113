package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase/interfaces"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// IReplenishmentUseCase exposes the catalog views and the two session
// stores layered on top of them: manual stock reports and reviewed
// target quantities.

type IReplenishmentUseCase interface {
	ListProductViews(ctx context.Context) ([]entities.ProductView, error)
	GetProductView(ctx context.Context, productID string) (entities.ProductView, error)
	ReportStock(ctx context.Context, productID string, stock int) (entities.ProductView, error)
	ClearReportedStock(ctx context.Context, productID string) (entities.ProductView, error)
	SetTargetQuantity(ctx context.Context, productID string, quantity int) (entities.ProductView, error)
}

type ReplenishmentUseCase struct {
	catalog     interfaces.IProductCatalogRepository
	overrides   interfaces.IStockOverrideRepository
	adjustments interfaces.IQuantityAdjustmentRepository
	cart        interfaces.ICartRepository
}

var _ IReplenishmentUseCase = (*ReplenishmentUseCase)(nil)

func NewReplenishmentUseCase(
	catalog interfaces.IProductCatalogRepository,
	overrides interfaces.IStockOverrideRepository,
	adjustments interfaces.IQuantityAdjustmentRepository,
	cart interfaces.ICartRepository,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		catalog:     catalog,
		overrides:   overrides,
		adjustments: adjustments,
		cart:        cart,
	}
}

func (u *ReplenishmentUseCase) ListProductViews(ctx context.Context) ([]entities.ProductView, error) {
	products, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]entities.ProductView, 0, len(products))
	for _, p := range products {
		v, err := u.buildView(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (u *ReplenishmentUseCase) GetProductView(ctx context.Context, productID string) (entities.ProductView, error) {
	p, err := u.getProduct(ctx, productID)
	if err != nil {
		return entities.ProductView{}, err
	}
	return u.buildView(ctx, p)
}

// ReportStock records a manually counted stock level. Negative counts
// are coerced to zero. A fresh report also discards any reviewed
// quantity for the same product, so the next view shows the recomputed
// suggestion instead of a stale edit.
func (u *ReplenishmentUseCase) ReportStock(ctx context.Context, productID string, stock int) (entities.ProductView, error) {
	p, err := u.getProduct(ctx, productID)
	if err != nil {
		return entities.ProductView{}, err
	}
	if stock < 0 {
		stock = 0
	}
	if err := u.overrides.Set(ctx, p.ID, stock); err != nil {
		return entities.ProductView{}, err
	}
	if err := u.adjustments.Clear(ctx, p.ID); err != nil {
		return entities.ProductView{}, err
	}
	log.Printf("[replenishment][usecase] stock reported: product=%s stock=%d", p.ID, stock)
	return u.buildView(ctx, p)
}

// ClearReportedStock removes a manual report and falls back to the
// default feed. Clearing a product with no report is a no-op.
func (u *ReplenishmentUseCase) ClearReportedStock(ctx context.Context, productID string) (entities.ProductView, error) {
	p, err := u.getProduct(ctx, productID)
	if err != nil {
		return entities.ProductView{}, err
	}
	if err := u.overrides.Clear(ctx, p.ID); err != nil {
		return entities.ProductView{}, err
	}
	if err := u.adjustments.Clear(ctx, p.ID); err != nil {
		return entities.ProductView{}, err
	}
	log.Printf("[replenishment][usecase] stock report cleared: product=%s", p.ID)
	return u.buildView(ctx, p)
}

// SetTargetQuantity stores a reviewed order quantity. Negative values
// are coerced to zero; zero is a valid reviewed value meaning "skip
// this product".
func (u *ReplenishmentUseCase) SetTargetQuantity(ctx context.Context, productID string, quantity int) (entities.ProductView, error) {
	p, err := u.getProduct(ctx, productID)
	if err != nil {
		return entities.ProductView{}, err
	}
	if quantity < 0 {
		quantity = 0
	}
	if err := u.adjustments.Set(ctx, p.ID, quantity); err != nil {
		return entities.ProductView{}, err
	}
	return u.buildView(ctx, p)
}

func (u *ReplenishmentUseCase) getProduct(ctx context.Context, productID string) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, ok, err := u.catalog.GetByID(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	if !ok {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ReplenishmentUseCase) buildView(ctx context.Context, p entities.Product) (entities.ProductView, error) {
	stock, hasOverride, err := u.overrides.Get(ctx, p.ID)
	if err != nil {
		return entities.ProductView{}, err
	}
	v := entities.DeriveProductView(p, stock, hasOverride)

	if target, ok, err := u.adjustments.Get(ctx, p.ID); err != nil {
		return entities.ProductView{}, err
	} else if ok {
		v.TargetQuantity = target
	}

	cart, err := u.cart.Get(ctx)
	if err != nil {
		return entities.ProductView{}, err
	}
	v.Staged = cart.Contains(p.ID)
	return v, nil
}

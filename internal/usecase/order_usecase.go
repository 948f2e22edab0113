package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase/interfaces"
)

var (
	ErrEmptyDraft     = errors.New("draft has no lines to submit")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// IOrderUseCase exposes the draft consolidation and order ledger
// operations.

type IOrderUseCase interface {
	GetDraft(ctx context.Context) (entities.Draft, error)
	SubmitDraft(ctx context.Context) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetLogistics(ctx context.Context, orderID string) (entities.Order, error)
}

type OrderUseCase struct {
	ledger    interfaces.IOrderLedgerRepository
	cart      interfaces.ICartRepository
	catalog   interfaces.IProductCatalogRepository
	overrides interfaces.IStockOverrideRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	ledger interfaces.IOrderLedgerRepository,
	cart interfaces.ICartRepository,
	catalog interfaces.IProductCatalogRepository,
	overrides interfaces.IStockOverrideRepository,
) *OrderUseCase {
	return &OrderUseCase{
		ledger:    ledger,
		cart:      cart,
		catalog:   catalog,
		overrides: overrides,
	}
}

// GetDraft consolidates the current draft: staged cart lines when any
// exist, otherwise the catalog's positive suggestions.
func (u *OrderUseCase) GetDraft(ctx context.Context) (entities.Draft, error) {
	cart, err := u.cart.Get(ctx)
	if err != nil {
		return entities.Draft{}, err
	}
	views, err := u.suggestionViews(ctx)
	if err != nil {
		return entities.Draft{}, err
	}
	return entities.ConsolidateDraft(cart, views), nil
}

// SubmitDraft turns a non-empty draft into a ledger order and clears
// the cart when the draft came from it. The new order starts in
// processing with the fixed submitted timeline.
func (u *OrderUseCase) SubmitDraft(ctx context.Context) (entities.Order, error) {
	draft, err := u.GetDraft(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if draft.State == entities.DraftStateEmpty {
		return entities.Order{}, ErrEmptyDraft
	}

	now := time.Now().UTC()
	order, err := entities.NewOrder(
		newOrderID(),
		now,
		draft.TotalValue,
		entities.OrderStatusProcessing,
		draft.Summary,
		entities.OrderOriginFromDraft,
		entities.SubmittedTimeline(now),
	)
	if err != nil {
		return entities.Order{}, err
	}

	created, err := u.ledger.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	if draft.Source == entities.DraftSourceCart {
		if err := u.cart.Clear(ctx); err != nil {
			return entities.Order{}, err
		}
	}
	log.Printf("[order][usecase] submitted: id=%s amount=%s units=%d source=%s", created.ID, created.Amount, draft.TotalUnits, draft.Source)
	return created, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.ledger.List(ctx)
}

func (u *OrderUseCase) GetLogistics(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.ledger.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) suggestionViews(ctx context.Context) ([]entities.ProductView, error) {
	products, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]entities.ProductView, 0, len(products))
	for _, p := range products {
		stock, hasOverride, err := u.overrides.Get(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, entities.DeriveProductView(p, stock, hasOverride))
	}
	return views, nil
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

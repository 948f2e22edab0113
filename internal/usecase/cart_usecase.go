package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase/interfaces"
)

var ErrNonPositiveQuantity = errors.New("quantity must be positive")

// ICartUseCase exposes the staging cart.

type ICartUseCase interface {
	AddToCart(ctx context.Context, productID string, quantity int) (entities.Cart, error)
	ViewCart(ctx context.Context) (entities.Cart, error)
}

type CartUseCase struct {
	catalog interfaces.IProductCatalogRepository
	cart    interfaces.ICartRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(catalog interfaces.IProductCatalogRepository, cart interfaces.ICartRepository) *CartUseCase {
	return &CartUseCase{catalog: catalog, cart: cart}
}

// AddToCart stages quantity units of a product, merging into an
// existing line for the same product.
func (u *CartUseCase) AddToCart(ctx context.Context, productID string, quantity int) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}
	if quantity <= 0 {
		return entities.Cart{}, ErrNonPositiveQuantity
	}

	p, ok, err := u.catalog.GetByID(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !ok {
		return entities.Cart{}, ErrProductNotFound
	}

	cart, err := u.cart.Get(ctx)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.Add(p, quantity)
	if err := u.cart.Save(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	log.Printf("[cart][usecase] staged: product=%s qty=%d lines=%d", p.ID, quantity, len(cart.Lines))
	return cart, nil
}

func (u *CartUseCase) ViewCart(ctx context.Context) (entities.Cart, error) {
	return u.cart.Get(ctx)
}

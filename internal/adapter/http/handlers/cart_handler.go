package handlers

import (
	"errors"
	"net/http"

	request "cip_portal/internal/adapter/http/dto/request"
	response "cip_portal/internal/adapter/http/dto/response"
	"cip_portal/internal/usecase"
	"cip_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles the staging cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// AddItem stages a product selection in the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.CartAddRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddToCart(c.Request.Context(), payload.ProductID, payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCart(cart))
}

// GetCart returns the staged lines with derived totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.ViewCart(c.Request.Context())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrNonPositiveQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

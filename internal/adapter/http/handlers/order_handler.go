package handlers

import (
	"errors"
	"net/http"

	response "cip_portal/internal/adapter/http/dto/response"
	"cip_portal/internal/usecase"
	"cip_portal/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles draft consolidation and the order ledger.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetDraft returns the consolidated draft: staged cart lines when any
// exist, otherwise the catalog's positive suggestions.
func (h *OrderHandler) GetDraft(c *gin.Context) {
	draft, err := h.usecase.GetDraft(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// SubmitOrder turns the current draft into a ledger order.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	order, err := h.usecase.SubmitDraft(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders returns the order history, most recent first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetLogistics returns one order with its logistics timeline.
func (h *OrderHandler) GetLogistics(c *gin.Context) {
	order, err := h.usecase.GetLogistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyDraft):
		return pkg.NewDomainErrorSimple("EMPTY_DRAFT", "Draft has no lines to submit", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

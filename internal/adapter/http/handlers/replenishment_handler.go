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

var (
	errInvalidStockPayload    = pkg.NewDomainErrorSimple("INVALID_STOCK_INPUT", "Invalid stock report payload", http.StatusBadRequest)
	errInvalidQuantityPayload = pkg.NewDomainErrorSimple("INVALID_QUANTITY_INPUT", "Invalid quantity payload", http.StatusBadRequest)
)

// ReplenishmentHandler handles the catalog views, stock reports and
// reviewed order quantities.

type ReplenishmentHandler struct {
	usecase usecase.IReplenishmentUseCase
}

func NewReplenishmentHandler(uc usecase.IReplenishmentUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{usecase: uc}
}

// ListProducts returns every catalog row with its computed
// replenishment fields.
func (h *ReplenishmentHandler) ListProducts(c *gin.Context) {
	views, err := h.usecase.ListProductViews(c.Request.Context())
	if err != nil {
		appErr := mapReplenishmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductViews(views))
}

// GetProduct returns one catalog row with its computed replenishment
// fields.
func (h *ReplenishmentHandler) GetProduct(c *gin.Context) {
	view, err := h.usecase.GetProductView(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReplenishmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductView(view))
}

// ReportStock records a manually counted stock level for a product.
func (h *ReplenishmentHandler) ReportStock(c *gin.Context) {
	var payload request.StockReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.ReportStock(c.Request.Context(), c.Param("id"), *payload.Stock)
	if err != nil {
		appErr := mapReplenishmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductView(view))
}

// ClearReportedStock removes a manual stock report, falling back to the
// default feed.
func (h *ReplenishmentHandler) ClearReportedStock(c *gin.Context) {
	view, err := h.usecase.ClearReportedStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReplenishmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductView(view))
}

// SetTargetQuantity stores a reviewed order quantity for a product.
func (h *ReplenishmentHandler) SetTargetQuantity(c *gin.Context) {
	var payload request.TargetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuantityPayload.HTTPStatus, errInvalidQuantityPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SetTargetQuantity(c.Request.Context(), c.Param("id"), *payload.Quantity)
	if err != nil {
		appErr := mapReplenishmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductView(view))
}

func mapReplenishmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

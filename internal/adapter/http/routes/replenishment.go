package routes

import (
	"cip_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathCart     = "/cart"
	PathOrders   = "/orders"
)

func addReplenishmentRoutes(
	rg *gin.RouterGroup,
	replenishmentHandler *handlers.ReplenishmentHandler,
	cartHandler *handlers.CartHandler,
	orderHandler *handlers.OrderHandler,
) {
	products := rg.Group(PathProducts)
	{
		products.GET("", replenishmentHandler.ListProducts)
		products.GET("/:id", replenishmentHandler.GetProduct)
		products.PUT("/:id/stock", replenishmentHandler.ReportStock)
		products.DELETE("/:id/stock", replenishmentHandler.ClearReportedStock)
		products.PUT("/:id/quantity", replenishmentHandler.SetTargetQuantity)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/draft", orderHandler.GetDraft)
		orders.POST("", orderHandler.SubmitOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id/logistics", orderHandler.GetLogistics)
	}
}

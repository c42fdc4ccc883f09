package routes

import (
	orderControllers "github.com/developersayem/project-ahixo-sub000/controllers/order"
	"github.com/developersayem/project-ahixo-sub000/middleware"
	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers the checkout and order-lifecycle endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// One checkout action, one order per seller
		orders.POST("", orderControllers.PlaceOrderHandler(deps.DB, deps.Converter, deps.Idempotency, deps.ReserveStock))

		// Read views, scoped by caller identity
		orders.GET("", orderControllers.GetOrdersHandler(deps.DB))
		orders.GET("/stats", orderControllers.GetOrderStatsHandler(deps.DB, deps.Converter.Base()))
		orders.GET("/export", orderControllers.ExportOrdersToExcel(deps.DB))
		orders.GET("/:orderID", orderControllers.GetOrderHandler(deps.DB))

		// Status lifecycle
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB))
		orders.PUT("/:orderID/cancel", orderControllers.CancelOrderHandler(deps.DB))
		orders.DELETE("/:orderID/product/:productID", orderControllers.RemoveOrderItemHandler(deps.DB))

		// Payment status (e.g. paid, refunded), seller/admin only
		orders.PUT("/:orderID/payment-status",
			middleware.RequireRole(models.RoleSeller, models.RoleAdmin),
			orderControllers.UpdatePaymentStatusHandler(deps.DB))
	}
}

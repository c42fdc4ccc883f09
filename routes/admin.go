package routes

import (
	cartControllers "github.com/developersayem/project-ahixo-sub000/controllers/cart"
	"github.com/developersayem/project-ahixo-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers API-key-protected back-office endpoints.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		// Support tooling: inspect a buyer's cart
		admin.GET("/carts/:buyerID", cartControllers.GetBuyerCartHandler(deps.DB, deps.Converter, deps.Tax))
	}
}

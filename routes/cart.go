package routes

import (
	cartControllers "github.com/developersayem/project-ahixo-sub000/controllers/cart"
	"github.com/developersayem/project-ahixo-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers the buyer cart endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("/", cartControllers.GetCartHandler(deps.DB, deps.Converter, deps.Tax))
		cart.POST("/add", cartControllers.AddItemHandler(deps.DB, deps.Converter, deps.Tax))
		cart.PUT("/update/:itemID", cartControllers.UpdateQuantityHandler(deps.DB, deps.Converter, deps.Tax))
		cart.DELETE("/remove/:itemID", cartControllers.RemoveItemHandler(deps.DB, deps.Converter, deps.Tax))
		cart.DELETE("/", cartControllers.ClearCartHandler(deps.DB))
	}
}

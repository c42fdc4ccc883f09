package routes

import (
	productControllers "github.com/developersayem/project-ahixo-sub000/controllers/product"
	"github.com/developersayem/project-ahixo-sub000/middleware"
	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes registers public catalog browsing plus seller management.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	// Public browsing
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.DB))
		products.GET("/:id", productControllers.GetProductByID(deps.DB))
	}

	// Seller management (JWT + seller role)
	manage := r.Group("/products")
	manage.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleSeller, models.RoleAdmin))
	{
		manage.POST("", productControllers.CreateProduct(deps.DB))
		manage.PUT("/:id", productControllers.UpdateProduct(deps.DB))
		manage.DELETE("/:id", productControllers.DeleteProduct(deps.DB))
	}
}

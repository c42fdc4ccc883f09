package routes

import (
	"github.com/developersayem/project-ahixo-sub000/cache"
	"github.com/developersayem/project-ahixo-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the route groups need beyond the database.
type Deps struct {
	DB          *gorm.DB
	Converter   *pricing.Converter
	Tax         pricing.FlatTax
	Idempotency cache.IdempotencyStore // nil disables the checkout retry guard
	// ReserveStock decrements product stock inside the checkout transaction.
	ReserveStock bool
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupProductRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}

package orderControllers

import (
	"net/http"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type statusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type orderStats struct {
	TotalOrders int64           `json:"total_orders"`
	ByStatus    []statusCount   `json:"by_status"`
	Revenue     decimal.Decimal `json:"revenue"` // sum of totals, canceled orders excluded
	Currency    string          `json:"currency"`
}

// GET /orders/stats
func GetOrderStatsHandler(db *gorm.DB, currency string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, role, ok := currentActor(c)
		if !ok {
			return
		}

		stats := orderStats{Revenue: decimal.Zero, Currency: currency}

		if err := scopeOrders(db, actorID, role).Count(&stats.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := scopeOrders(db, actorID, role).
			Select("status, count(*) as count").
			Group("status").
			Scan(&stats.ByStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var revenue struct{ Revenue decimal.NullDecimal }
		if err := scopeOrders(db, actorID, role).
			Where("status <> ?", models.OrderStatusCanceled).
			Select("sum(total) as revenue").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if revenue.Revenue.Valid {
			stats.Revenue = revenue.Revenue.Decimal
		}

		c.JSON(http.StatusOK, stats)
	}
}

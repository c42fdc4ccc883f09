package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/developersayem/project-ahixo-sub000/cache"
	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/developersayem/project-ahixo-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note,omitempty"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB, conv *pricing.Converter, idem cache.IdempotencyStore, reserveStock bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, _, ok := currentActor(c)
		if !ok {
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Optional retry guard: the first request to claim the key wins.
		if key := c.GetHeader("Idempotency-Key"); key != "" && idem != nil {
			claimed, err := idem.SetIdempotency(c.Request.Context(), idem.GenerateKey("checkout", buyerID, key))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Idempotency check failed"})
				return
			}
			if !claimed {
				c.JSON(http.StatusConflict, gin.H{"error": ErrDuplicateCheckout.Error()})
				return
			}
		}

		orders, err := PlaceOrder(db, conv, buyerID, req, reserveStock)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, orders)
	}
}

// GET /orders
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, role, ok := currentActor(c)
		if !ok {
			return
		}

		var orders []models.Order
		query := scopeOrders(db, actorID, role).
			Preload("Products").
			Preload("Timeline", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("created_at ASC, id ASC")
			}).
			Order("created_at DESC")
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, role, ok := currentActor(c)
		if !ok {
			return
		}
		orderID, err := parseOrderID(c)
		if err != nil {
			return
		}

		order, err := GetOrder(db, orderID)
		if err != nil {
			writeError(c, err)
			return
		}
		if !canAccess(order, actorID, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted for this order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, role, ok := currentActor(c)
		if !ok {
			return
		}
		orderID, err := parseOrderID(c)
		if err != nil {
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := GetOrder(db, orderID)
		if err != nil {
			writeError(c, err)
			return
		}
		if role != models.RoleAdmin && !(role == models.RoleSeller && order.SellerID == actorID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted for this order"})
			return
		}

		note := ""
		if req.Note != nil {
			note = *req.Note
		}
		updated, err := UpdateStatus(db, orderID, req.Status, note, actorID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// PUT /orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, role, ok := currentActor(c)
		if !ok {
			return
		}
		orderID, err := parseOrderID(c)
		if err != nil {
			return
		}

		order, err := GetOrder(db, orderID)
		if err != nil {
			writeError(c, err)
			return
		}
		if role != models.RoleAdmin && order.BuyerID != actorID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted for this order"})
			return
		}

		updated, err := Cancel(db, orderID, actorID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /orders/:orderID/product/:productID
func RemoveOrderItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, role, ok := currentActor(c)
		if !ok {
			return
		}
		orderID, err := parseOrderID(c)
		if err != nil {
			return
		}
		productID, perr := strconv.ParseUint(c.Param("productID"), 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		order, err := GetOrder(db, orderID)
		if err != nil {
			writeError(c, err)
			return
		}
		if role != models.RoleAdmin && !(role == models.RoleSeller && order.SellerID == actorID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted for this order"})
			return
		}

		updated, err := RemoveLineItem(db, orderID, uint(productID))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// PUT /orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := parseOrderID(c)
		if err != nil {
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// -------- Helpers --------

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(status) {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return models.PaymentStatus(status), nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func currentActor(c *gin.Context) (string, models.Role, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	role := models.RoleBuyer
	if roleVal, exists := c.Get("role"); exists {
		if r, ok := roleVal.(string); ok && r != "" {
			role = models.Role(r)
		}
	}
	return userID, role, true
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, err
	}
	return uint(id), nil
}

// scopeOrders narrows an order query to what the caller may see: buyers their
// own purchases, sellers their own sales, admins everything.
func scopeOrders(db *gorm.DB, actorID string, role models.Role) *gorm.DB {
	switch role {
	case models.RoleAdmin:
		return db.Model(&models.Order{})
	case models.RoleSeller:
		return db.Model(&models.Order{}).Where("seller_id = ?", actorID)
	default:
		return db.Model(&models.Order{}).Where("buyer_id = ?", actorID)
	}
}

func canAccess(order models.Order, actorID string, role models.Role) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleSeller:
		return order.SellerID == actorID
	default:
		return order.BuyerID == actorID
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrProductNotFound), errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrAlreadyDelivered), errors.Is(err, ErrAlreadyCanceled),
		errors.Is(err, ErrSellerMissing), errors.Is(err, ErrEmptyCheckout),
		errors.Is(err, ErrMissingAddress), errors.Is(err, ErrInsufficientStock),
		errors.Is(err, pricing.ErrInvalidQuantity), errors.Is(err, pricing.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicateCheckout), errors.Is(err, models.ErrCounterUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

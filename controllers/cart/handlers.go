package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/developersayem/project-ahixo-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Handlers --------

// POST /cart/add
func AddItemHandler(db *gorm.DB, conv *pricing.Converter, tax pricing.FlatTax) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := currentBuyer(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddItem(db, buyerID, input)
		if err != nil {
			writeError(c, err)
			return
		}
		respondWithView(c, db, cart, conv, tax, http.StatusCreated)
	}
}

// PUT /cart/update/:itemID
func UpdateQuantityHandler(db *gorm.DB, conv *pricing.Converter, tax pricing.FlatTax) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := currentBuyer(c)
		if !ok {
			return
		}
		itemID, err := parseID(c.Param("itemID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateQuantity(db, buyerID, itemID, input.Quantity)
		if err != nil {
			writeError(c, err)
			return
		}
		respondWithView(c, db, cart, conv, tax, http.StatusOK)
	}
}

// DELETE /cart/remove/:itemID
func RemoveItemHandler(db *gorm.DB, conv *pricing.Converter, tax pricing.FlatTax) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := currentBuyer(c)
		if !ok {
			return
		}
		itemID, err := parseID(c.Param("itemID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		cart, err := RemoveItem(db, buyerID, itemID)
		if err != nil {
			writeError(c, err)
			return
		}
		respondWithView(c, db, cart, conv, tax, http.StatusOK)
	}
}

// GET /cart
func GetCartHandler(db *gorm.DB, conv *pricing.Converter, tax pricing.FlatTax) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := currentBuyer(c)
		if !ok {
			return
		}
		cart, err := loadCart(db, buyerID)
		if err != nil {
			writeError(c, err)
			return
		}
		respondWithView(c, db, cart, conv, tax, http.StatusOK)
	}
}

// DELETE /cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID, ok := currentBuyer(c)
		if !ok {
			return
		}
		if err := Clear(db, buyerID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/carts/:buyerID
func GetBuyerCartHandler(db *gorm.DB, conv *pricing.Converter, tax pricing.FlatTax) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.Param("buyerID")
		if buyerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "buyerID is required"})
			return
		}
		cart, err := loadCart(db, buyerID)
		if err != nil {
			writeError(c, err)
			return
		}
		respondWithView(c, db, cart, conv, tax, http.StatusOK)
	}
}

// -------- Helpers --------

func currentBuyer(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	return uint(id), err
}

func respondWithView(c *gin.Context, db *gorm.DB, cart models.Cart, conv *pricing.Converter, tax pricing.FlatTax, status int) {
	view, err := BuildView(db, cart, conv, tax, c.Query("currency"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, view)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

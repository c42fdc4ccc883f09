package productControllers

import (
	"errors"
	"net/http"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	EName         string           `json:"e_name" binding:"required"`
	ARName        string           `json:"ar_name"`
	EDescription  string           `json:"e_description"`
	ARDescription string           `json:"ar_description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	ShippingCost  decimal.Decimal  `json:"shipping_cost"`
	Currency      string           `json:"currency"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	Stock         int              `json:"stock"`
}

// POST /products (seller)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString("user_id")
		if sellerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		currency := input.Currency
		if currency == "" {
			currency = "USD"
		}
		product := models.Product{
			SellerID:      sellerID,
			EName:         input.EName,
			ARName:        input.ARName,
			EDescription:  input.EDescription,
			ARDescription: input.ARDescription,
			Price:         input.Price,
			SalePrice:     input.SalePrice,
			ShippingCost:  input.ShippingCost,
			Currency:      currency,
			Category:      input.Category,
			Image:         input.Image,
			Stock:         input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /products/:id (owning seller)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString("user_id")

		product, ok := ownedProduct(c, db, sellerID)
		if !ok {
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product.EName = input.EName
		product.ARName = input.ARName
		product.EDescription = input.EDescription
		product.ARDescription = input.ARDescription
		product.Price = input.Price
		product.SalePrice = input.SalePrice
		product.ShippingCost = input.ShippingCost
		product.Category = input.Category
		product.Image = input.Image
		product.Stock = input.Stock
		if input.Currency != "" {
			product.Currency = input.Currency
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /products/:id (owning seller, soft delete)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString("user_id")

		product, ok := ownedProduct(c, db, sellerID)
		if !ok {
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func ownedProduct(c *gin.Context, db *gorm.DB, sellerID string) (models.Product, bool) {
	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return models.Product{}, false
	}
	if product.SellerID != sellerID && c.GetString("role") != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not permitted for this product"})
		return models.Product{}, false
	}
	return product, true
}

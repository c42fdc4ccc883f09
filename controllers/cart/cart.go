package cartControllers

import (
	"errors"
	"time"

	"github.com/developersayem/project-ahixo-sub000/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product does not exist")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type AddItemInput struct {
	ProductID     uint             `json:"product_id" binding:"required"`
	Quantity      int              `json:"quantity" binding:"required,min=1"`
	SelectedColor *string          `json:"selected_color,omitempty"`
	SelectedSize  *string          `json:"selected_size,omitempty"`
	CustomOptions models.OptionMap `json:"custom_options,omitempty"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// -------- Core Logic --------

// AddItem puts a product into the buyer's cart. An add with the same product and a
// structurally equal variant selection merges into the existing line (quantities
// summed); any difference in selection creates a distinct line. The cart itself is
// created lazily on first add.
func AddItem(db *gorm.DB, buyerID string, in AddItemInput) (models.Cart, error) {
	if in.Quantity < 1 {
		return models.Cart{}, ErrInvalidQuantity
	}

	var product models.Product
	if err := db.First(&product, "id = ?", in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, ErrProductNotFound
		}
		return models.Cart{}, err
	}

	var cart models.Cart
	if err := db.Where(models.Cart{BuyerID: buyerID}).FirstOrCreate(&cart).Error; err != nil {
		return models.Cart{}, err
	}

	candidate := models.CartItem{
		CartID:        cart.CartID,
		ProductID:     product.ID,
		SellerID:      product.SellerID, // denormalized; re-resolved again at checkout
		Quantity:      in.Quantity,
		SelectedColor: in.SelectedColor,
		SelectedSize:  in.SelectedSize,
		CustomOptions: in.CustomOptions,
		AddedAt:       time.Now(),
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
		return models.Cart{}, err
	}
	for _, existing := range items {
		if existing.SameSelection(candidate) {
			// Merge in the store with a single atomic UPDATE so concurrent adds
			// for the same buyer cannot lose increments.
			if err := db.Model(&models.CartItem{}).
				Where("id = ?", existing.ID).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", in.Quantity)).Error; err != nil {
				return models.Cart{}, err
			}
			return loadCart(db, buyerID)
		}
	}

	if err := db.Create(&candidate).Error; err != nil {
		return models.Cart{}, err
	}
	return loadCart(db, buyerID)
}

// UpdateQuantity sets a line's quantity to an absolute value.
func UpdateQuantity(db *gorm.DB, buyerID string, itemID uint, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return models.Cart{}, ErrInvalidQuantity
	}

	cart, err := loadCart(db, buyerID)
	if err != nil {
		return models.Cart{}, err
	}

	var item models.CartItem
	if err := db.Where("id = ? AND cart_id = ?", itemID, cart.CartID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, ErrItemNotFound
		}
		return models.Cart{}, err
	}

	if err := db.Model(&item).UpdateColumn("quantity", quantity).Error; err != nil {
		return models.Cart{}, err
	}
	return loadCart(db, buyerID)
}

// RemoveItem deletes a line from the cart. Removal is idempotent: removing an id
// that is not present succeeds and leaves the cart unchanged.
func RemoveItem(db *gorm.DB, buyerID string, itemID uint) (models.Cart, error) {
	cart, err := loadCart(db, buyerID)
	if err != nil {
		return models.Cart{}, err
	}

	if err := db.Where("id = ? AND cart_id = ?", itemID, cart.CartID).
		Delete(&models.CartItem{}).Error; err != nil {
		return models.Cart{}, err
	}
	return loadCart(db, buyerID)
}

// Clear empties the buyer's cart. Used after a successful checkout.
func Clear(db *gorm.DB, buyerID string) error {
	var cart models.Cart
	if err := db.Where("buyer_id = ?", buyerID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // nothing to clear
		}
		return err
	}
	return db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

// loadCart fetches the buyer's cart with items. A buyer without a cart gets an
// empty one back rather than an error.
func loadCart(db *gorm.DB, buyerID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("buyer_id = ?", buyerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{BuyerID: buyerID}, nil
	}
	return cart, err
}

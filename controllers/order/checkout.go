package orderControllers

import (
	"errors"
	"strings"
	"time"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/developersayem/project-ahixo-sub000/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutProduct struct {
	ProductID uint `json:"product" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest is the typed checkout contract: optional fields are pointers
// and the serializer omits absent ones by schema, not by runtime filtering.
type PlaceOrderRequest struct {
	Products        []CheckoutProduct `json:"products" binding:"required,min=1,dive"`
	ShippingAddress string            `json:"shipping_address" binding:"required"`
	Phone           string            `json:"phone" binding:"required"`
	Note            *string           `json:"note,omitempty"`
	PaymentMethod   string            `json:"payment_method" binding:"required"`
	Currency        string            `json:"currency,omitempty"`
}

type pricedLine struct {
	productID    uint
	title        string
	quantity     int
	unitPrice    decimal.Decimal
	shippingCost decimal.Decimal
}

// -------- Core Logic --------

// PlaceOrder partitions one checkout into one order per seller. Pricing and
// seller attribution are always recomputed from the catalog here, never trusted
// from the cart or client payload. All sibling orders, their order-number
// allocations, the optional stock reservation, and the cart clear commit in one
// transaction: any failure rolls everything back, so the buyer's cart survives a
// failed checkout and no partial sibling set is ever persisted.
func PlaceOrder(db *gorm.DB, conv *pricing.Converter, buyerID string, req PlaceOrderRequest, reserveStock bool) ([]models.Order, error) {
	if len(req.Products) == 0 {
		return nil, ErrEmptyCheckout
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return nil, ErrMissingAddress
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = conv.Base()
	}

	// One catalog batch for the whole checkout.
	ids := make([]uint, 0, len(req.Products))
	for _, cp := range req.Products {
		ids = append(ids, cp.ProductID)
	}
	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Re-price server-side and group by seller. Grouping is stable: sellers keep
	// the order in which they first appear in the checkout.
	var sellerIDs []string
	groups := map[string][]pricedLine{}
	for _, cp := range req.Products {
		product, ok := byID[cp.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if product.SellerID == "" {
			return nil, ErrSellerMissing
		}

		resolved, err := pricing.Resolve(models.CartItem{ProductID: product.ID, Quantity: cp.Quantity}, product)
		if err != nil {
			return nil, err
		}
		unit, err := conv.Convert(resolved.UnitPrice, resolved.Currency, currency)
		if err != nil {
			return nil, err
		}
		shipping, err := conv.Convert(resolved.ShippingCost, resolved.Currency, currency)
		if err != nil {
			return nil, err
		}

		if _, seen := groups[product.SellerID]; !seen {
			sellerIDs = append(sellerIDs, product.SellerID)
		}
		groups[product.SellerID] = append(groups[product.SellerID], pricedLine{
			productID:    product.ID,
			title:        product.EName,
			quantity:     cp.Quantity,
			unitPrice:    unit,
			shippingCost: shipping,
		})
	}

	checkoutRef := time.Now().Format("20060102150405") + "-" + uuid.NewString()
	note := ""
	if req.Note != nil {
		note = *req.Note
	}

	var created []models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		created = nil
		for _, sellerID := range sellerIDs {
			subtotal, shipping := decimal.Zero, decimal.Zero
			items := make([]models.OrderItem, 0, len(groups[sellerID]))
			for _, line := range groups[sellerID] {
				if reserveStock {
					if err := decrementStock(tx, line.productID, line.quantity); err != nil {
						return err
					}
				}
				subtotal = subtotal.Add(line.unitPrice.Mul(decimal.NewFromInt(int64(line.quantity))))
				shipping = shipping.Add(line.shippingCost)
				items = append(items, models.OrderItem{
					ProductID:    line.productID,
					Title:        line.title,
					UnitPrice:    line.unitPrice,
					ShippingCost: line.shippingCost,
					Currency:     currency,
					Quantity:     line.quantity,
				})
			}

			number, err := models.NextOrderNumber(tx, sellerID)
			if err != nil {
				return err // fails closed: siblings roll back with us
			}

			order := models.Order{
				OrderNumber:       number,
				SellerID:          sellerID,
				BuyerID:           buyerID,
				CheckoutRef:       checkoutRef,
				Products:          items,
				Subtotal:          subtotal,
				TotalShippingCost: shipping,
				Total:             subtotal.Add(shipping),
				Currency:          currency,
				Status:            models.OrderStatusProcessing,
				PaymentStatus:     models.PaymentStatusPending,
				PaymentMethod:     req.PaymentMethod,
				ShippingAddress:   req.ShippingAddress,
				Phone:             req.Phone,
				Note:              note,
				Timeline: []models.TimelineEntry{{
					Status:    models.OrderStatusProcessing,
					Note:      "Order created",
					UpdatedBy: buyerID,
					CreatedAt: time.Now(),
				}},
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			created = append(created, order)
		}

		// Cart is cleared only when every sibling order above commits with us.
		var cart models.Cart
		if err := tx.Where("buyer_id = ?", buyerID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// decrementStock reserves stock with a conditional single-statement decrement;
// the guard keeps stock from going negative under concurrent checkouts.
func decrementStock(tx *gorm.DB, productID uint, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

package orderControllers

import (
	"errors"
	"time"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product does not exist")
	ErrSellerMissing     = errors.New("product has no seller")
	ErrItemNotFound      = errors.New("product not present in this order")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidState      = errors.New("operation not allowed in current order status")
	ErrAlreadyDelivered  = errors.New("order has already been delivered")
	ErrAlreadyCanceled   = errors.New("order is already canceled")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateCheckout = errors.New("duplicate checkout request")
	ErrEmptyCheckout     = errors.New("checkout requires at least one product")
	ErrMissingAddress    = errors.New("shipping address is required")
)

// -------- Core Logic --------

// GetOrder loads an order with its frozen line items and full timeline.
func GetOrder(db *gorm.DB, orderID uint) (models.Order, error) {
	var order models.Order
	err := db.
		Preload("Products").
		Preload("Timeline", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC, id ASC")
		}).
		First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrOrderNotFound
	}
	return order, err
}

// UpdateStatus moves an order through the status state machine and records the
// transition on the timeline. Re-submitting the current status is a no-op, as is
// a transition whose latest timeline entry is a recent duplicate; both return the
// order unchanged rather than an error so double-click retries stay quiet.
func UpdateStatus(db *gorm.DB, orderID uint, rawStatus, note, actor string) (models.Order, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return models.Order{}, err
	}

	order, err := GetOrder(db, orderID)
	if err != nil {
		return models.Order{}, err
	}

	if order.Status == status {
		return order, nil
	}
	if isRecentDuplicate(order.Timeline, status, time.Now()) {
		return order, nil
	}
	if !CanTransition(order.Status, status) {
		return models.Order{}, ErrInvalidState
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", status).Error; err != nil {
			return err
		}
		return tx.Create(&models.TimelineEntry{
			OrderID:   order.ID,
			Status:    status,
			Note:      note,
			UpdatedBy: actor,
			CreatedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return GetOrder(db, orderID)
}

// Cancel transitions an order to canceled on the buyer's behalf.
func Cancel(db *gorm.DB, orderID uint, actor string) (models.Order, error) {
	order, err := GetOrder(db, orderID)
	if err != nil {
		return models.Order{}, err
	}

	switch order.Status {
	case models.OrderStatusCompleted:
		return models.Order{}, ErrAlreadyDelivered
	case models.OrderStatusCanceled:
		return models.Order{}, ErrAlreadyCanceled
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusCanceled).Error; err != nil {
			return err
		}
		return tx.Create(&models.TimelineEntry{
			OrderID:   order.ID,
			Status:    models.OrderStatusCanceled,
			Note:      "Order canceled",
			UpdatedBy: actor,
			CreatedAt: time.Now(),
		}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return GetOrder(db, orderID)
}

// RemoveLineItem drops a product from an order that is still processing and
// recomputes subtotal, shipping, and total consistently from the remaining lines.
func RemoveLineItem(db *gorm.DB, orderID, productID uint) (models.Order, error) {
	order, err := GetOrder(db, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.Status != models.OrderStatusProcessing {
		return models.Order{}, ErrInvalidState
	}

	var removed *models.OrderItem
	remaining := make([]models.OrderItem, 0, len(order.Products))
	for i, item := range order.Products {
		if removed == nil && item.ProductID == productID {
			removed = &order.Products[i]
			continue
		}
		remaining = append(remaining, item)
	}
	if removed == nil {
		return models.Order{}, ErrItemNotFound
	}

	subtotal, shipping := sumLines(remaining)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "id = ?", removed.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]any{
			"subtotal":            subtotal,
			"total_shipping_cost": shipping,
			"total":               subtotal.Add(shipping),
		}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return GetOrder(db, orderID)
}

func sumLines(items []models.OrderItem) (subtotal, shipping decimal.Decimal) {
	subtotal, shipping = decimal.Zero, decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		shipping = shipping.Add(item.ShippingCost)
	}
	return subtotal, shipping
}

package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SellerCounter backs the per-seller order numbering sequence.
type SellerCounter struct {
	SellerID   string `gorm:"primaryKey"`
	NextNumber int64  `gorm:"not null;default:0"`
}

var ErrCounterUnavailable = errors.New("order number allocation failed")

// NextOrderNumber atomically allocates the next order number for a seller.
// The increment happens in a single UPDATE in the store, so concurrent checkouts
// against the same seller serialize on the counter row and never see duplicates.
// Must be called inside the checkout transaction: a failed allocation rolls the
// whole per-seller order back with it.
func NextOrderNumber(tx *gorm.DB, sellerID string) (int64, error) {
	increment := func() (int64, error) {
		res := tx.Model(&SellerCounter{}).
			Where("seller_id = ?", sellerID).
			UpdateColumn("next_number", gorm.Expr("next_number + 1"))
		if res.Error != nil {
			return 0, res.Error
		}
		return res.RowsAffected, nil
	}

	affected, err := increment()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		// First order for this seller: seed the counter row, then retry the
		// increment. DoNothing keeps a concurrent seed from failing us.
		seed := SellerCounter{SellerID: sellerID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return 0, err
		}
		if affected, err = increment(); err != nil {
			return 0, err
		}
		if affected == 0 {
			return 0, ErrCounterUnavailable
		}
	}

	var counter SellerCounter
	if err := tx.First(&counter, "seller_id = ?", sellerID).Error; err != nil {
		return 0, err
	}
	return counter.NextNumber, nil
}

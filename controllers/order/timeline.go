package orderControllers

import (
	"strings"
	"time"

	"github.com/developersayem/project-ahixo-sub000/models"
)

// Retried network calls tend to double-submit status updates; a transition whose
// latest timeline entry already carries the same status inside this window is
// treated as already applied.
const duplicateEntryWindow = 5 * time.Minute

// Allowed status transitions. Completed and canceled are terminal.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusProcessing: {models.OrderStatusCompleted, models.OrderStatusOnHold, models.OrderStatusCanceled},
	models.OrderStatusOnHold:     {models.OrderStatusProcessing, models.OrderStatusCanceled},
	models.OrderStatusCompleted:  {},
	models.OrderStatusCanceled:   {},
}

// ParseStatus maps a request string onto the canonical status enum. "delivered"
// is a legacy label for the completed terminal state; refunds are a payment
// status, not an order status, and are rejected here.
func ParseStatus(raw string) (models.OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusOnHold):
		return models.OrderStatusOnHold, nil
	case string(models.OrderStatusCompleted), "delivered":
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCanceled), "cancelled":
		return models.OrderStatusCanceled, nil
	default:
		return "", ErrInvalidStatus
	}
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// isRecentDuplicate reports whether the newest timeline entry already records
// this status within the duplicate window.
func isRecentDuplicate(timeline []models.TimelineEntry, status models.OrderStatus, now time.Time) bool {
	if len(timeline) == 0 {
		return false
	}
	last := timeline[len(timeline)-1]
	return last.Status == status && now.Sub(last.CreatedAt) < duplicateEntryWindow
}

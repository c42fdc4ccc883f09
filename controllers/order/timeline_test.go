package orderControllers

import (
	"testing"
	"time"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want models.OrderStatus
	}{
		{"processing", models.OrderStatusProcessing},
		{"on-hold", models.OrderStatusOnHold},
		{"completed", models.OrderStatusCompleted},
		{"delivered", models.OrderStatusCompleted}, // legacy label
		{"canceled", models.OrderStatusCanceled},
		{"cancelled", models.OrderStatusCanceled},
		{"PROCESSING", models.OrderStatusProcessing},
		{"  completed  ", models.OrderStatusCompleted},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}

	for _, raw := range []string{"", "refunded", "shipped", "pending"} {
		_, err := ParseStatus(raw)
		assert.ErrorIs(t, err, ErrInvalidStatus, raw)
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(models.OrderStatusProcessing, models.OrderStatusCompleted))
	assert.True(t, CanTransition(models.OrderStatusProcessing, models.OrderStatusOnHold))
	assert.True(t, CanTransition(models.OrderStatusProcessing, models.OrderStatusCanceled))
	assert.True(t, CanTransition(models.OrderStatusOnHold, models.OrderStatusProcessing))
	assert.True(t, CanTransition(models.OrderStatusOnHold, models.OrderStatusCanceled))

	// Terminal states have no outgoing transitions
	assert.False(t, CanTransition(models.OrderStatusCompleted, models.OrderStatusProcessing))
	assert.False(t, CanTransition(models.OrderStatusCompleted, models.OrderStatusCanceled))
	assert.False(t, CanTransition(models.OrderStatusCanceled, models.OrderStatusProcessing))

	assert.False(t, CanTransition(models.OrderStatusOnHold, models.OrderStatusCompleted))
}

func TestIsRecentDuplicate(t *testing.T) {
	now := time.Now()
	timeline := []models.TimelineEntry{
		{Status: models.OrderStatusProcessing, CreatedAt: now.Add(-time.Hour)},
		{Status: models.OrderStatusOnHold, CreatedAt: now.Add(-2 * time.Minute)},
	}

	assert.True(t, isRecentDuplicate(timeline, models.OrderStatusOnHold, now),
		"same status within the window is a duplicate")
	assert.False(t, isRecentDuplicate(timeline, models.OrderStatusProcessing, now),
		"only the newest entry counts")

	stale := []models.TimelineEntry{
		{Status: models.OrderStatusOnHold, CreatedAt: now.Add(-6 * time.Minute)},
	}
	assert.False(t, isRecentDuplicate(stale, models.OrderStatusOnHold, now),
		"entries older than the window are not duplicates")

	assert.False(t, isRecentDuplicate(nil, models.OrderStatusOnHold, now))
}

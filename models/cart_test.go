package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSameSelection(t *testing.T) {
	base := CartItem{ProductID: 7, SelectedColor: strPtr("red"), CustomOptions: OptionMap{"wrap": "gift"}}

	assert.True(t, base.SameSelection(CartItem{ProductID: 7, SelectedColor: strPtr("red"), CustomOptions: OptionMap{"wrap": "gift"}}))
	assert.False(t, base.SameSelection(CartItem{ProductID: 8, SelectedColor: strPtr("red"), CustomOptions: OptionMap{"wrap": "gift"}}))
	assert.False(t, base.SameSelection(CartItem{ProductID: 7, SelectedColor: strPtr("blue"), CustomOptions: OptionMap{"wrap": "gift"}}))
	assert.False(t, base.SameSelection(CartItem{ProductID: 7, SelectedColor: strPtr("red")}))
	assert.False(t, base.SameSelection(CartItem{ProductID: 7, CustomOptions: OptionMap{"wrap": "gift"}}))

	// nil and empty option maps are the same selection
	a := CartItem{ProductID: 7}
	b := CartItem{ProductID: 7, CustomOptions: OptionMap{}}
	assert.True(t, a.SameSelection(b))
}

func TestOptionMap_ValueScanRoundtrip(t *testing.T) {
	original := OptionMap{"engraving": "A", "wrap": "gift"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned OptionMap
	require.NoError(t, scanned.Scan(value))
	assert.True(t, original.Equal(scanned))
}

func TestOptionMap_EmptyStoresAsNull(t *testing.T) {
	var empty OptionMap
	value, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var scanned OptionMap
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestOptionMap_ScanRejectsGarbage(t *testing.T) {
	var scanned OptionMap
	assert.Error(t, scanned.Scan("{not json"))
	assert.Error(t, scanned.Scan(42))
}

package cartControllers

import (
	"path/filepath"
	"testing"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedProduct(t *testing.T, db *gorm.DB, sellerID, name, price string) models.Product {
	t.Helper()
	product := models.Product{
		SellerID: sellerID,
		EName:    name,
		Price:    dec(price),
		Currency: "USD",
		Stock:    100,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func strPtr(s string) *string { return &s }

func TestAddItem_MergesIdenticalSelections(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Rug", "25")

	in := AddItemInput{ProductID: product.ID, Quantity: 2, SelectedColor: strPtr("red")}
	_, err := AddItem(db, "buyer-1", in)
	require.NoError(t, err)

	in.Quantity = 3
	cart, err := AddItem(db, "buyer-1", in)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "identical selections must merge into one line")
	assert.Equal(t, 5, cart.Items[0].Quantity, "merged quantity is the sum of all adds")
	assert.Equal(t, "seller-1", cart.Items[0].SellerID)
}

func TestAddItem_MergesEqualCustomOptions(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Mug", "9")

	first := AddItemInput{ProductID: product.ID, Quantity: 1, CustomOptions: models.OptionMap{"engraving": "A", "wrap": "gift"}}
	_, err := AddItem(db, "buyer-1", first)
	require.NoError(t, err)

	// Same options; map ordering is irrelevant to identity
	second := AddItemInput{ProductID: product.ID, Quantity: 4, CustomOptions: models.OptionMap{"wrap": "gift", "engraving": "A"}}
	cart, err := AddItem(db, "buyer-1", second)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItem_DistinctSelectionsStayDistinct(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Shirt", "30")

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1, SelectedColor: strPtr("red")})
	require.NoError(t, err)
	cart, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1, SelectedColor: strPtr("blue")})
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2, "a different color is a different line item")
}

func TestAddItem_DifferentOptionsStayDistinct(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Mug", "9")

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1, CustomOptions: models.OptionMap{"engraving": "A"}})
	require.NoError(t, err)
	cart, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1, CustomOptions: models.OptionMap{"engraving": "B"}})
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	db := openTestDB(t)

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Rug", "25")

	cart, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = UpdateQuantity(db, "buyer-1", itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	_, err = UpdateQuantity(db, "buyer-1", itemID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = UpdateQuantity(db, "buyer-1", 999, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Rug", "25")

	cart, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = RemoveItem(db, "buyer-1", itemID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Removing an absent item succeeds and changes nothing
	cart, err = RemoveItem(db, "buyer-1", itemID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = RemoveItem(db, "buyer-1", 424242)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClear(t *testing.T) {
	db := openTestDB(t)
	a := seedProduct(t, db, "seller-1", "Rug", "25")
	b := seedProduct(t, db, "seller-2", "Mug", "9")

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: a.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = AddItem(db, "buyer-1", AddItemInput{ProductID: b.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, Clear(db, "buyer-1"))

	cart, err := loadCart(db, "buyer-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Clearing a buyer without a cart is fine
	require.NoError(t, Clear(db, "buyer-without-cart"))
}

func TestCartsAreIsolatedPerBuyer(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Rug", "25")

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = AddItem(db, "buyer-2", AddItemInput{ProductID: product.ID, Quantity: 5})
	require.NoError(t, err)

	cart1, err := loadCart(db, "buyer-1")
	require.NoError(t, err)
	cart2, err := loadCart(db, "buyer-2")
	require.NoError(t, err)

	require.Len(t, cart1.Items, 1)
	require.Len(t, cart2.Items, 1)
	assert.Equal(t, 1, cart1.Items[0].Quantity)
	assert.Equal(t, 5, cart2.Items[0].Quantity)
}

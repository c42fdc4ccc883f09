package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/developersayem/project-ahixo-sub000/models"
	"github.com/developersayem/project-ahixo-sub000/pricing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConverter() *pricing.Converter {
	return pricing.NewConverter("USD", map[string]decimal.Decimal{"EUR": dec("0.5")})
}

func TestBuildView_SummaryMatchesItems(t *testing.T) {
	db := openTestDB(t)
	rug := seedProduct(t, db, "seller-1", "Rug", "10")
	mug := seedProduct(t, db, "seller-2", "Mug", "5")

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: rug.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = AddItem(db, "buyer-1", AddItemInput{ProductID: mug.ID, Quantity: 3})
	require.NoError(t, err)

	cart, err := loadCart(db, "buyer-1")
	require.NoError(t, err)

	view, err := BuildView(db, cart, testConverter(), pricing.FlatTax{Rate: decimal.Zero}, "USD")
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, "35.00", view.Summary.Subtotal.StringFixed(2))
	assert.Equal(t, "35.00", view.Summary.Total.StringFixed(2))
}

func TestBuildView_SalePriceDiscountSurfaces(t *testing.T) {
	db := openTestDB(t)
	sale := dec("80")
	product := models.Product{SellerID: "seller-1", EName: "Lamp", Price: dec("100"), SalePrice: &sale, Currency: "USD"}
	require.NoError(t, db.Create(&product).Error)

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	cart, err := loadCart(db, "buyer-1")
	require.NoError(t, err)

	view, err := BuildView(db, cart, testConverter(), pricing.FlatTax{Rate: decimal.Zero}, "USD")
	require.NoError(t, err)

	assert.Equal(t, "160.00", view.Summary.Subtotal.StringFixed(2))
	assert.Equal(t, "40.00", view.Summary.TotalDiscount.StringFixed(2))
}

func TestBuildView_ProductRemovedFromCatalog(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Rug", "10")

	_, err := AddItem(db, "buyer-1", AddItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, db.Unscoped().Delete(&models.Product{}, product.ID).Error)

	cart, err := loadCart(db, "buyer-1")
	require.NoError(t, err)

	_, err = BuildView(db, cart, testConverter(), pricing.FlatTax{Rate: decimal.Zero}, "USD")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

// Exercises the whole HTTP path: auth context, JSON binding, merge, summary.
func TestAddItemHandler_HTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	product := seedProduct(t, db, "seller-1", "Rug", "10")

	r := gin.New()
	r.Use(func(c *gin.Context) { // stand-in for the JWT middleware
		c.Set("user_id", "buyer-1")
		c.Set("role", "buyer")
	})
	r.POST("/cart/add", AddItemHandler(db, testConverter(), pricing.FlatTax{Rate: decimal.Zero}))

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do(`{"product_id": ` + itoa(product.ID) + `, "quantity": 2}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(`{"product_id": ` + itoa(product.ID) + `, "quantity": 3}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, "50.00", view.Summary.Subtotal.StringFixed(2))

	// Unknown product maps to 404
	w = do(`{"product_id": 999999, "quantity": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed quantity maps to 400
	w = do(`{"product_id": ` + itoa(product.ID) + `, "quantity": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

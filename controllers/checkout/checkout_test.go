package checkoutControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shivarajm8234/mahalaxmifoods-api/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func newCheckoutRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.POST("/user/checkout/complete", CompleteCheckout(db))
	r.POST("/user/checkout/cancel", CancelCheckout(db))
	return r
}

func checkoutSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

const shippingJSON = `{
	"name": "Asha Rao",
	"email": "asha@example.com",
	"phone": "9876543210",
	"street": "12 MG Road",
	"city": "Bengaluru",
	"state": "Karnataka",
	"postal_code": "560001",
	"country": "India"
}`

func TestVerifyCheckoutSignature(t *testing.T) {
	secret := "test_secret"
	sig := checkoutSignature("order_1", "pay_1", secret)

	assert.True(t, VerifyCheckoutSignature("order_1", "pay_1", sig, secret))
	assert.False(t, VerifyCheckoutSignature("order_1", "pay_2", sig, secret))
	assert.False(t, VerifyCheckoutSignature("order_1", "pay_1", sig, "other_secret"))
	assert.False(t, VerifyCheckoutSignature("order_1", "pay_1", "deadbeef", secret))
}

func TestSnapshotItemsCopiesCartLines(t *testing.T) {
	items := []models.CartItem{
		{ID: 7, CartID: 3, ProductID: "garam-masala", ProductName: "Garam Masala", ProductPrice: 11.99, Quantity: 2},
	}

	snapshot := snapshotItems(items)

	require.Len(t, snapshot, 1)
	assert.Equal(t, "garam-masala", snapshot[0].ProductID)
	assert.Equal(t, "Garam Masala", snapshot[0].ProductName)
	assert.InDelta(t, 11.99, snapshot[0].ProductPrice, 1e-9)
	assert.Equal(t, 2, snapshot[0].Quantity)
	// Snapshot rows get their own identity.
	assert.Zero(t, snapshot[0].ID)
	assert.Zero(t, snapshot[0].OrderID)
}

func TestCompleteCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WithArgs("user-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}).AddRow(1, "user-1"))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE "cart_items"."cart_id" = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "product_name", "product_price", "quantity"}).
			AddRow(9, 1, "garam-masala", "Garam Masala", 11.99, 2))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`INSERT INTO "user_activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	sig := checkoutSignature("order_1", "pay_1", "test_secret")
	payload := `{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id": "order_1",
		"razorpay_signature": "` + sig + `",
		"shipping": ` + shippingJSON + `
	}`

	r := newCheckoutRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout/complete", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 23.98, resp.Order.TotalAmount, 1e-9)
	assert.Equal(t, models.OrderStatusConfirmed, resp.Order.Status)
	assert.Equal(t, "order_1", resp.Order.GatewayOrderID)
	assert.Equal(t, "razorpay", resp.Order.PaymentMethod)
	require.Len(t, resp.Order.Items, 1)
	assert.Equal(t, 2, resp.Order.Items[0].Quantity)
	assert.NotEmpty(t, resp.Order.OrderRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteCheckoutRejectsInvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	db, mock := newMockDB(t)

	payload := `{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id": "order_1",
		"razorpay_signature": "not-a-real-signature",
		"shipping": ` + shippingJSON + `
	}`

	r := newCheckoutRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout/complete", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid payment signature")
	// Nothing is written on a failed verification.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteCheckoutRejectsIncompleteShipping(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	db, mock := newMockDB(t)

	payload := `{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id": "order_1",
		"razorpay_signature": "sig",
		"shipping": {"name": "Asha Rao", "email": "asha@example.com"}
	}`

	r := newCheckoutRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout/complete", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteCheckoutRejectsEmptyCart(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WithArgs("user-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}).AddRow(1, "user-1"))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE "cart_items"."cart_id" = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}))

	sig := checkoutSignature("order_1", "pay_1", "test_secret")
	payload := `{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id": "order_1",
		"razorpay_signature": "` + sig + `",
		"shipping": ` + shippingJSON + `
	}`

	r := newCheckoutRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout/complete", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelCheckoutWritesNothingButActivity(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "user_activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	r := newCheckoutRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout/cancel", bytes.NewBufferString(`{"razorpay_order_id":"order_1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
	assert.NoError(t, mock.ExpectationsWereMet())
}

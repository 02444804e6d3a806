package cartControllers

import (
	"bytes"
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

func newCartRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.GET("/user/cart", GetUserCart(db))
	r.POST("/user/cart", AddCartItem(db))
	r.PUT("/user/cart/:product_id", UpdateCartItemQuantity(db))
	r.DELETE("/user/cart/:product_id", DeleteCartItem(db))
	r.DELETE("/user/cart", ClearUserCart(db))
	return r
}

func expectCartLoad(mock sqlmock.Sqlmock, cartID int, userID string, items *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id"}).AddRow(cartID, userID))
	if items == nil {
		items = sqlmock.NewRows([]string{"id", "cart_id", "product_id", "product_name", "product_price", "product_image", "quantity"})
	}
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE "cart_items"."cart_id" = \$1`).
		WithArgs(cartID).
		WillReturnRows(items)
}

func TestGetUserCartTotalsAndCount(t *testing.T) {
	db, mock := newMockDB(t)

	items := sqlmock.NewRows([]string{"id", "cart_id", "product_id", "product_name", "product_price", "product_image", "quantity"}).
		AddRow(1, 1, "garam-masala", "Garam Masala", 11.99, "", 2).
		AddRow(2, 1, "turmeric", "Turmeric Powder", 5.00, "", 1)
	expectCartLoad(mock, 1, "user-1", items)

	r := newCartRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Total float64 `json:"total"`
		Count int     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 28.98, resp.Total, 1e-9)
	assert.Equal(t, 3, resp.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCartItemAccumulatesQuantity(t *testing.T) {
	db, mock := newMockDB(t)

	expectCartLoad(mock, 1, "user-1", nil)
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WithArgs("garam-masala", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "image", "status"}).
			AddRow("garam-masala", "Garam Masala", 11.99, "", "active"))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = \$1 AND product_id = \$2`).
		WithArgs(1, "garam-masala", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "product_name", "product_price", "quantity"}).
			AddRow(5, 1, "garam-masala", "Garam Masala", 11.99, 2))
	mock.ExpectExec(`UPDATE "cart_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := newCartRouter(db, "user-1")
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"product_id":"garam-masala","quantity":2}`)
	req := httptest.NewRequest(http.MethodPost, "/user/cart", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// 2 in the cart + 2 added
	assert.Contains(t, w.Body.String(), `"quantity":4`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCartItemRejectsArchivedProduct(t *testing.T) {
	db, mock := newMockDB(t)

	expectCartLoad(mock, 1, "user-1", nil)
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WithArgs("old-blend", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "status"}).
			AddRow("old-blend", "Old Blend", 7.00, "archived"))

	r := newCartRouter(db, "user-1")
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"product_id":"old-blend","quantity":1}`)
	req := httptest.NewRequest(http.MethodPost, "/user/cart", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not available")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCartItemRejectsUnknownProduct(t *testing.T) {
	db, mock := newMockDB(t)

	expectCartLoad(mock, 1, "user-1", nil)
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WithArgs("no-such", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newCartRouter(db, "user-1")
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"product_id":"no-such","quantity":1}`)
	req := httptest.NewRequest(http.MethodPost, "/user/cart", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	db, mock := newMockDB(t)

	expectCartLoad(mock, 1, "user-1", nil)
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1 AND product_id = \$2`).
		WithArgs(1, "garam-masala").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := newCartRouter(db, "user-1")
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"quantity":0}`)
	req := httptest.NewRequest(http.MethodPut, "/user/cart/garam-masala", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "removed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCartItemNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	expectCartLoad(mock, 1, "user-1", nil)
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1 AND product_id = \$2`).
		WithArgs(1, "no-such").
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := newCartRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/user/cart/no-such", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearUserCart(t *testing.T) {
	db, mock := newMockDB(t)

	expectCartLoad(mock, 1, "user-1", nil)
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))

	r := newCartRouter(db, "user-1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/user/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRequiresAuthenticatedUser(t *testing.T) {
	db, _ := newMockDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/cart", GetUserCart(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

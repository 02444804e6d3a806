package paymentControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAPIRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/create-order", CreateOrderHandler)
	r.GET("/api/razorpay-key", RazorpayKeyHandler)
	return r
}

func postCreateOrder(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/create-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderRejectsMissingAmount(t *testing.T) {
	r := newAPIRouter()

	w := postCreateOrder(r, `{"currency":"INR"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "positive")
}

func TestCreateOrderRejectsZeroAndNegativeAmount(t *testing.T) {
	r := newAPIRouter()

	for _, body := range []string{`{"amount":0}`, `{"amount":-10}`} {
		w := postCreateOrder(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestCreateGatewayOrderRequiresConfiguration(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := CreateGatewayOrder(11.99, "INR", "", nil)
	assert.ErrorContains(t, err, "razorpay configuration missing")
}

func TestCreateGatewayOrderRejectsNonPositiveAmount(t *testing.T) {
	_, err := CreateGatewayOrder(0, "INR", "", nil)
	assert.ErrorContains(t, err, "positive")

	_, err = CreateGatewayOrder(-1, "INR", "", nil)
	assert.ErrorContains(t, err, "positive")
}

func TestToMinorUnit(t *testing.T) {
	assert.Equal(t, int64(1199), ToMinorUnit(11.99))
	assert.Equal(t, int64(2398), ToMinorUnit(23.98))
	assert.Equal(t, int64(100), ToMinorUnit(1))
	// Rounded, not truncated
	assert.Equal(t, int64(1000), ToMinorUnit(9.999))
}

func TestRazorpayKeyHandler(t *testing.T) {
	r := newAPIRouter()

	t.Setenv("RAZORPAY_KEY_ID", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/razorpay-key", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_abc123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/razorpay-key", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rzp_test_abc123")
}

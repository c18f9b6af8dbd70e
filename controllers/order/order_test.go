package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbertrand-dev/watchstore-api/middleware"
	"github.com/hbertrand-dev/watchstore-api/models"
)

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotal(t *testing.T) {
	lines := []checkoutLine{
		{WatchID: 1, Quantity: 2, Price: price("5000.00")},
		{WatchID: 2, Quantity: 1, Price: price("1500.50")},
	}

	total := computeTotal(lines)
	assert.Equal(t, "11500.50", total.StringFixed(2))
}

func TestComputeTotalRoundsToTwoPlaces(t *testing.T) {
	lines := []checkoutLine{
		{WatchID: 1, Quantity: 3, Price: price("33.335")},
	}
	assert.Equal(t, "100.01", computeTotal(lines).StringFixed(2))
}

func TestComputeTotalEmptyCartIsZero(t *testing.T) {
	assert.True(t, computeTotal(nil).IsZero())
}

func TestComputeTotalExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 is exact in decimal, unlike binary floating point.
	lines := []checkoutLine{
		{Quantity: 1, Price: price("0.10")},
		{Quantity: 1, Price: price("0.20")},
	}
	assert.True(t, computeTotal(lines).Equal(price("0.30")))
}

func TestValidTransitionWorkflow(t *testing.T) {
	valid := [][2]models.OrderStatus{
		{models.OrderStatusPending, models.OrderStatusProcessing},
		{models.OrderStatusProcessing, models.OrderStatusShipped},
		{models.OrderStatusShipped, models.OrderStatusDelivered},
		{models.OrderStatusPending, models.OrderStatusCancelled},
		{models.OrderStatusProcessing, models.OrderStatusCancelled},
		{models.OrderStatusShipped, models.OrderStatusCancelled},
	}
	for _, tr := range valid {
		assert.True(t, ValidTransition(tr[0], tr[1]), "%s → %s should be allowed", tr[0], tr[1])
	}

	invalid := [][2]models.OrderStatus{
		{models.OrderStatusPending, models.OrderStatusShipped},
		{models.OrderStatusPending, models.OrderStatusDelivered},
		{models.OrderStatusShipped, models.OrderStatusProcessing},
		{models.OrderStatusDelivered, models.OrderStatusCancelled},
		{models.OrderStatusDelivered, models.OrderStatusPending},
		{models.OrderStatusCancelled, models.OrderStatusProcessing},
		{models.OrderStatusPending, models.OrderStatusPending},
	}
	for _, tr := range invalid {
		assert.False(t, ValidTransition(tr[0], tr[1]), "%s → %s should be rejected", tr[0], tr[1])
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := parseOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = parseOrderStatus("teleported")
	assert.Error(t, err)
}

// The order listing shares the catalog's pagination contract: a page value
// that is not a number is a 400, not a silent first page.
func TestGetOrdersRejectsMalformedPage(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/api/orders?page=abc", nil)
	require.NoError(t, err)
	c.Request = req
	c.Set(middleware.CtxUserID, uint(1))

	GetOrdersHandler(gormDB)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// rejected before any query was issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

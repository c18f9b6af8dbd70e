package orderControllers

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func checkoutRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		ShippingAddress: json.RawMessage(`{"city":"Geneva"}`),
		PaymentMethod:   "card",
	}
}

// The full checkout sequence: lock, read the cart joined to live prices,
// write the order and items with those prices captured, clear the cart,
// commit once.
func TestPlaceOrderSnapshotsCartIntoOrder(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock`)).
		WithArgs(int64(checkoutLockClass), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT cart_items.watch_id, cart_items.quantity, watches.price`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"watch_id", "quantity", "price"}).
			AddRow(1, 2, "8999.00").
			AddRow(2, 1, "129.50"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(70).AddRow(71))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cart_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	order, err := PlaceOrder(gormDB, 42, checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(7), order.ID)
	assert.Equal(t, "18127.50", order.Total.StringFixed(2))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)
	assert.Equal(t, uint(7), order.Items[0].OrderID)
	assert.Equal(t, "8999.00", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT cart_items.watch_id, cart_items.quantity, watches.price`)).
		WillReturnRows(sqlmock.NewRows([]string{"watch_id", "quantity", "price"}))
	mock.ExpectRollback()

	_, err := PlaceOrder(gormDB, 42, checkoutRequest())
	assert.ErrorIs(t, err, utils.ErrEmptyCart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure after the order row is written must roll the whole checkout
// back: no order, no items, cart untouched.
func TestPlaceOrderRollsBackWhenItemsInsertFails(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT cart_items.watch_id, cart_items.quantity, watches.price`)).
		WillReturnRows(sqlmock.NewRows([]string{"watch_id", "quantity", "price"}).
			AddRow(1, 1, "250.00"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := PlaceOrder(gormDB, 42, checkoutRequest())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

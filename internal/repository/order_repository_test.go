package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubtds/ubtds-api/internal/models"
)

func TestOrderCreateWithItems(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	order := &models.Order{
		UserID:      "user-1",
		Status:      models.OrderPending,
		PaymentMode: models.PaymentCOD,
		Address:     "12 Karol Bagh, New Delhi",
		EtaDays:     3,
		Items: []models.OrderItem{
			{BookID: "book-1", Code: "BCS-011", Title: "Computer Basics", Quantity: 1},
			{BookID: "book-2", Code: "MCS-034", Title: "Software Engineering", Quantity: 2},
		},
	}
	err := repo.CreateWithItems(context.Background(), order)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	for _, item := range order.Items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, order.ID, item.OrderID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateWithItemsRollsBack(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	order := &models.Order{UserID: "user-1", Status: models.OrderPending}
	err := repo.CreateWithItems(context.Background(), order)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderListByUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	now := time.Now()
	orderRows := sqlmock.NewRows([]string{"id", "user_id", "status", "payment_mode", "address", "eta_days", "current_location", "created_at"}).
		AddRow("order-2", "user-1", "Pending", "COD", "Saket, New Delhi", 3, "HQ Warehouse, New Delhi", now).
		AddRow("order-1", "user-1", "Completed", "UPI", "Saket, New Delhi", 3, "Z-06 Hub", now.Add(-48*time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id").
		WithArgs("user-1").
		WillReturnRows(orderRows)

	itemRows := sqlmock.NewRows([]string{"id", "order_id", "book_id", "code", "title", "quantity"}).
		AddRow("item-1", "order-2", "book-1", "BCS-011", "Computer Basics", 1)
	mock.ExpectQuery("SELECT (.+) FROM order_items WHERE order_id IN").
		WillReturnRows(itemRows)

	orders, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "BCS-011", orders[0].Items[0].Code)
	assert.Empty(t, orders[1].Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("order-1", models.OrderDispatched).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "order-1", models.OrderDispatched)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("missing", models.OrderApproved).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", models.OrderApproved)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

type fakeOrderRepo struct {
	created *models.Order
	orders  []models.Order
	found   *models.Order
	updated string
}

func (f *fakeOrderRepo) CreateWithItems(_ context.Context, order *models.Order) error {
	order.ID = "order-test"
	f.created = order
	return nil
}

func (f *fakeOrderRepo) ListByUser(context.Context, string) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) ListRecent(context.Context, int) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	if f.found == nil {
		return nil, sql.ErrNoRows
	}
	return f.found, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status models.OrderStatus) error {
	if f.found == nil || f.found.ID != id {
		return sql.ErrNoRows
	}
	f.updated = id
	f.found.Status = status
	return nil
}

func (f *fakeOrderRepo) Count(context.Context) (int, error) {
	return len(f.orders), nil
}

type fakeBooks struct {
	books map[string]*models.Book
}

func (f *fakeBooks) FindBookByRef(_ context.Context, ref string) (*models.Book, error) {
	if b, ok := f.books[ref]; ok {
		return b, nil
	}
	return nil, sql.ErrNoRows
}

type fakeOrderUsers struct {
	user *models.User
}

func (f *fakeOrderUsers) FindByID(context.Context, string) (*models.User, error) {
	if f.user == nil {
		return nil, sql.ErrNoRows
	}
	return f.user, nil
}

func newOrderService(repo *fakeOrderRepo, books *fakeBooks, users *fakeOrderUsers) *OrderService {
	return NewOrderService(repo, books, users, nil, nil, zap.NewNop(), "COD")
}

func studentClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "user-student", Email: "student@ubtds.test", Role: models.RoleStudent}
}

func TestCheckoutEmptyItems(t *testing.T) {
	svc := newOrderService(&fakeOrderRepo{}, &fakeBooks{}, &fakeOrderUsers{})

	_, err := svc.Checkout(context.Background(), studentClaims(), dto.CheckoutRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "At least one item is required.", appErr.Message)
}

func TestCheckoutUnresolvableBook(t *testing.T) {
	svc := newOrderService(&fakeOrderRepo{}, &fakeBooks{books: map[string]*models.Book{}}, &fakeOrderUsers{})

	_, err := svc.Checkout(context.Background(), studentClaims(), dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{BookRef: "no-such-book", Quantity: 1}},
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "missing bookId", appErr.Message)
}

func TestCheckoutResolvesByIDAndISBN(t *testing.T) {
	book := &models.Book{ID: "book-1", Title: "Computer Basics", ISBN: "BCS-011", Price: 250}
	repo := &fakeOrderRepo{}
	svc := newOrderService(repo, &fakeBooks{books: map[string]*models.Book{
		"book-1":  book,
		"BCS-011": book,
	}}, &fakeOrderUsers{})

	order, err := svc.Checkout(context.Background(), studentClaims(), dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{BookRef: "book-1", Quantity: 1},
			{BookRef: "BCS-011", Quantity: 2},
		},
		Address: dto.CheckoutAddress{Line1: "12 Karol Bagh", City: "New Delhi", Pincode: "110005"},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	// Either reference form lands on the same catalog row.
	assert.Equal(t, order.Items[0].BookID, order.Items[1].BookID)
	assert.Equal(t, "BCS-011", order.Items[0].Code)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 3, order.EtaDays)
	assert.Equal(t, "HQ Warehouse, New Delhi", order.CurrentLocation)
	assert.Equal(t, "12 Karol Bagh, New Delhi, 110005", order.Address)
}

func TestCheckoutPaymentNormalization(t *testing.T) {
	book := &models.Book{ID: "book-1", Title: "Computer Basics", ISBN: "BCS-011"}
	books := &fakeBooks{books: map[string]*models.Book{"book-1": book}}

	cases := []struct {
		raw  string
		want models.PaymentMode
	}{
		{"upi", models.PaymentUPI},
		{"NEFT", models.PaymentNEFT},
		{"card", models.PaymentCard},
		{"cheque", models.PaymentCOD},
		{"", models.PaymentCOD},
	}
	for _, tc := range cases {
		svc := newOrderService(&fakeOrderRepo{}, books, &fakeOrderUsers{})
		order, err := svc.Checkout(context.Background(), studentClaims(), dto.CheckoutRequest{
			Items:       []dto.CheckoutItem{{BookRef: "book-1", Quantity: 1}},
			Address:     dto.CheckoutAddress{Line1: "Somewhere"},
			PaymentMode: tc.raw,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, order.PaymentMode, "payment %q", tc.raw)
	}
}

func TestCheckoutAddressFallsBackToProfile(t *testing.T) {
	book := &models.Book{ID: "book-1", Title: "Computer Basics", ISBN: "BCS-011"}
	svc := newOrderService(&fakeOrderRepo{}, &fakeBooks{books: map[string]*models.Book{"book-1": book}}, &fakeOrderUsers{
		user: &models.User{ID: "user-student", Address: "Dwarka Sector 10, New Delhi"},
	})

	order, err := svc.Checkout(context.Background(), studentClaims(), dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{BookRef: "book-1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dwarka Sector 10, New Delhi", order.Address)
}

func TestOrderUpdateStatusVocabulary(t *testing.T) {
	repo := &fakeOrderRepo{found: &models.Order{ID: "order-1", Status: models.OrderPending}}
	svc := newOrderService(repo, &fakeBooks{}, &fakeOrderUsers{})

	order, err := svc.UpdateStatus(context.Background(), "order-1", "completed")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, order.Status)

	order, err = svc.UpdateStatus(context.Background(), "order-1", "in-transit")
	require.NoError(t, err)
	assert.Equal(t, models.OrderInTransit, order.Status)
}

func TestOrderUpdateStatusInvalid(t *testing.T) {
	repo := &fakeOrderRepo{found: &models.Order{ID: "order-1", Status: models.OrderPending}}
	svc := newOrderService(repo, &fakeBooks{}, &fakeOrderUsers{})

	_, err := svc.UpdateStatus(context.Background(), "order-1", "SHIPPED")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidStatus.Code, appErr.Code)
	assert.Equal(t, "Invalid status", appErr.Message)
	assert.Empty(t, repo.updated)
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	svc := newOrderService(&fakeOrderRepo{}, &fakeBooks{}, &fakeOrderUsers{})

	_, err := svc.UpdateStatus(context.Background(), "missing", "Approved")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
}

func TestHistoryNeverNil(t *testing.T) {
	svc := newOrderService(&fakeOrderRepo{}, &fakeBooks{}, &fakeOrderUsers{})

	orders, err := svc.History(context.Background(), "user-student")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

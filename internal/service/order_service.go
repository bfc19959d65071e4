package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

// defaultEtaDays is the doorstep delivery estimate stamped on new orders.
const defaultEtaDays = 3

// initialOrderLocation is where every shipment starts in the hierarchy.
const initialOrderLocation = "HQ Warehouse, New Delhi"

type orderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListRecent(ctx context.Context, limit int) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Count(ctx context.Context) (int, error)
}

type bookResolver interface {
	FindBookByRef(ctx context.Context, ref string) (*models.Book, error)
}

type orderUserReader interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type orderPlacedRecorder interface {
	RecordOrderPlaced(order *models.Order)
}

// OrderService owns checkout, order history, and admin status updates.
type OrderService struct {
	repo           orderRepository
	books          bookResolver
	users          orderUserReader
	tracker        orderPlacedRecorder
	validator      *validator.Validate
	logger         *zap.Logger
	defaultPayment models.PaymentMode
}

// NewOrderService constructs an OrderService instance.
func NewOrderService(repo orderRepository, books bookResolver, users orderUserReader, tracker orderPlacedRecorder, validate *validator.Validate, logger *zap.Logger, defaultPayment string) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	payment := models.NormalizePayment(defaultPayment, models.PaymentCOD)
	return &OrderService{
		repo:           repo,
		books:          books,
		users:          users,
		tracker:        tracker,
		validator:      validate,
		logger:         logger,
		defaultPayment: payment,
	}
}

// Checkout resolves each requested book, snapshots the address, and creates
// the order with its items in one transaction.
func (s *OrderService) Checkout(ctx context.Context, claims *models.JWTClaims, req dto.CheckoutRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "At least one item is required.")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid checkout payload.")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		book, err := s.books.FindBookByRef(ctx, line.BookRef)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "missing bookId")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve book")
		}
		items = append(items, models.OrderItem{
			BookID:   book.ID,
			Code:     bookCode(book),
			Title:    book.Title,
			Quantity: line.Quantity,
		})
	}

	address := req.Address.Flatten()
	if address == "" {
		if user, err := s.users.FindByID(ctx, claims.UserID); err == nil {
			address = user.Address
		}
	}

	order := &models.Order{
		UserID:          claims.UserID,
		Status:          models.OrderPending,
		PaymentMode:     models.NormalizePayment(req.PaymentMode, s.defaultPayment),
		Address:         address,
		EtaDays:         defaultEtaDays,
		CurrentLocation: initialOrderLocation,
		Items:           items,
	}

	if err := s.repo.CreateWithItems(ctx, order); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create order")
	}

	if s.tracker != nil {
		s.tracker.RecordOrderPlaced(order)
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.Int("items", len(order.Items)))
	return order, nil
}

// History returns the caller's orders, newest first.
func (s *OrderService) History(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load order history")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Recent returns the latest orders across all users for staff views and
// report exports.
func (s *OrderService) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	orders, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateStatus validates the target against the order vocabulary and applies
// it. Transitions are unrestricted and last-write-wins.
func (s *OrderService) UpdateStatus(ctx context.Context, id, raw string) (*models.Order, error) {
	status, ok := models.ParseOrderStatus(raw)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidStatus, "Invalid status")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Order not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update order status")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload order")
	}

	s.logger.Info("order status updated", zap.String("order_id", id), zap.String("status", string(status)))
	return order, nil
}

// bookCode mirrors the catalog projection: ISBN when present, else title.
func bookCode(book *models.Book) string {
	if book.ISBN != "" {
		return book.ISBN
	}
	return book.Title
}

package memory

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ubtds/ubtds-api/internal/models"
)

// OrderStore is the fixture-backed counterpart of repository.OrderRepository.
type OrderStore struct {
	s *Store
}

// Orders returns the order view of the store.
func (s *Store) Orders() *OrderStore {
	return &OrderStore{s: s}
}

// CreateWithItems prepends the order to the fixture history. The whole
// write happens under one lock, so it is atomic like the database path.
func (r *OrderStore) CreateWithItems(ctx context.Context, order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
	}
	r.s.orders = append([]models.Order{*order}, r.s.orders...)
	return nil
}

// ListByUser returns a user's orders, newest first.
func (r *OrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListRecent returns the most recent orders across all users.
func (r *OrderStore) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if limit <= 0 || limit > len(r.s.orders) {
		limit = len(r.s.orders)
	}
	out := make([]models.Order, limit)
	copy(out, r.s.orders[:limit])
	return out, nil
}

// FindByID returns an order by identifier.
func (r *OrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, sql.ErrNoRows
}

// UpdateStatus sets the order status. Last write wins.
func (r *OrderStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			r.s.orders[i].Status = status
			return nil
		}
	}
	return sql.ErrNoRows
}

// Count returns the number of orders.
func (r *OrderStore) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.orders), nil
}

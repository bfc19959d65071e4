package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ubtds/ubtds-api/internal/models"
)

// OrderRepository provides database access for orders and their items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, user_id, status, payment_mode, address, eta_days, current_location, created_at`

// CreateWithItems inserts the order and all items in a single transaction
// so checkout is atomic from the caller's perspective.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin checkout tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const orderQuery = `INSERT INTO orders (id, user_id, status, payment_mode, address, eta_days, current_location, created_at)
		VALUES (:id, :user_id, :status, :payment_mode, :address, :eta_days, :current_location, :created_at)`
	if _, err := tx.NamedExecContext(ctx, orderQuery, order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	const itemQuery = `INSERT INTO order_items (id, order_id, book_id, code, title, quantity)
		VALUES (:id, :order_id, :book_id, :code, :title, :quantity)`
	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.OrderID = order.ID
		if _, err := tx.NamedExecContext(ctx, itemQuery, item); err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit checkout tx: %w", err)
	}
	return nil
}

// ListByUser returns a user's orders, newest first, with items attached.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, orderColumns)
	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListRecent returns the most recent orders across all users.
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY created_at DESC LIMIT $1`, orderColumns)
	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, query, limit); err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args, err := sqlx.In(`SELECT id, order_id, book_id, code, title, quantity FROM order_items WHERE order_id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("build order items query: %w", err)
	}
	query = r.db.Rebind(query)

	var items []models.OrderItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return fmt.Errorf("list order items: %w", err)
	}

	byOrder := make(map[string][]models.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return nil
}

// FindByID returns an order by identifier, without items.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1 LIMIT 1`, orderColumns)
	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find order by id: %w", err)
	}
	return &order, nil
}

// UpdateStatus sets the order status. Last write wins; there is no
// optimistic versioning on orders.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	const query = `UPDATE orders SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count returns the total number of orders for dashboard counts.
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

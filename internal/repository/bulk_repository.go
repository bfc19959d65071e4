package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ubtds/ubtds-api/internal/models"
)

// BulkRepository provides database access for restock requests.
type BulkRepository struct {
	db *sqlx.DB
}

// NewBulkRepository creates a new instance of BulkRepository.
func NewBulkRepository(db *sqlx.DB) *BulkRepository {
	return &BulkRepository{db: db}
}

const bulkColumns = `id, requestor, role, book_code, count, note, payment, status, created_at`

// List returns restock requests newest first.
func (r *BulkRepository) List(ctx context.Context) ([]models.BulkRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM bulk_requests ORDER BY created_at DESC`, bulkColumns)
	var requests []models.BulkRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("list bulk requests: %w", err)
	}
	return requests, nil
}

// FindByID returns a restock request by identifier.
func (r *BulkRepository) FindByID(ctx context.Context, id string) (*models.BulkRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM bulk_requests WHERE id = $1 LIMIT 1`, bulkColumns)
	var req models.BulkRequest
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find bulk request: %w", err)
	}
	return &req, nil
}

// UpdateStatus sets the restock request status and returns the updated row.
func (r *BulkRepository) UpdateStatus(ctx context.Context, id string, status models.BulkStatus) (*models.BulkRequest, error) {
	const query = `UPDATE bulk_requests SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update bulk status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sql.ErrNoRows
	}
	return r.FindByID(ctx, id)
}

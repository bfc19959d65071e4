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

// PickupRepository provides database access for pickup requests.
type PickupRepository struct {
	db *sqlx.DB
}

// NewPickupRepository creates a new instance of PickupRepository.
func NewPickupRepository(db *sqlx.DB) *PickupRepository {
	return &PickupRepository{db: db}
}

const pickupColumns = `id, enrollment, student_id, location, notes, status, requested_at`

// Create inserts a pickup request in the initial PENDING state.
func (r *PickupRepository) Create(ctx context.Context, req *models.PickupRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = models.PickupPending
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}

	const query = `INSERT INTO pickup_requests (id, enrollment, student_id, location, notes, status, requested_at)
		VALUES (:id, :enrollment, :student_id, :location, :notes, :status, :requested_at)`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("create pickup request: %w", err)
	}
	return nil
}

// List returns pickup requests newest first, optionally filtered by the
// requesting student.
func (r *PickupRepository) List(ctx context.Context, studentID string) ([]models.PickupRequest, error) {
	var requests []models.PickupRequest
	if studentID != "" {
		query := fmt.Sprintf(`SELECT %s FROM pickup_requests WHERE student_id = $1 ORDER BY requested_at DESC`, pickupColumns)
		if err := r.db.SelectContext(ctx, &requests, query, studentID); err != nil {
			return nil, fmt.Errorf("list pickup requests: %w", err)
		}
		return requests, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM pickup_requests ORDER BY requested_at DESC`, pickupColumns)
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("list pickup requests: %w", err)
	}
	return requests, nil
}

// FindByID returns a pickup request by identifier.
func (r *PickupRepository) FindByID(ctx context.Context, id string) (*models.PickupRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM pickup_requests WHERE id = $1 LIMIT 1`, pickupColumns)
	var req models.PickupRequest
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find pickup request: %w", err)
	}
	return &req, nil
}

// UpdateStatus sets the pickup request status and returns the updated row.
func (r *PickupRepository) UpdateStatus(ctx context.Context, id string, status models.PickupStatus) (*models.PickupRequest, error) {
	const query = `UPDATE pickup_requests SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update pickup status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, sql.ErrNoRows
	}
	return r.FindByID(ctx, id)
}

// CountByStatus returns the number of pickup requests in a given state.
func (r *PickupRepository) CountByStatus(ctx context.Context, status models.PickupStatus) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pickup_requests WHERE status = $1`, status); err != nil {
		return 0, fmt.Errorf("count pickup requests: %w", err)
	}
	return count, nil
}

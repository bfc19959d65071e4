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

// UserRepository provides database access for portal users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, phone, address, role, enrollment_no, rc_id, zone_id, created_at, updated_at`

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1`, userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	const query = `INSERT INTO users (id, email, password_hash, first_name, last_name, phone, address, role, enrollment_no, rc_id, zone_id, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :first_name, :last_name, :phone, :address, :role, :enrollment_no, :rc_id, :zone_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindRegionalCenter returns a regional center by id.
func (r *UserRepository) FindRegionalCenter(ctx context.Context, id string) (*models.RegionalCenter, error) {
	const query = `SELECT id, code, name, address, state FROM regional_centers WHERE id = $1 LIMIT 1`
	var rc models.RegionalCenter
	if err := r.db.GetContext(ctx, &rc, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find regional center: %w", err)
	}
	return &rc, nil
}

// FindZone returns a zone by id.
func (r *UserRepository) FindZone(ctx context.Context, id string) (*models.Zone, error) {
	const query = `SELECT id, code, name, rc_id, address, phone, distance_km, rating, note, state FROM zones WHERE id = $1 LIMIT 1`
	var zone models.Zone
	if err := r.db.GetContext(ctx, &zone, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find zone: %w", err)
	}
	return &zone, nil
}

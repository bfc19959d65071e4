package memory

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ubtds/ubtds-api/internal/models"
)

// PickupStore is the fixture-backed counterpart of repository.PickupRepository.
type PickupStore struct {
	s *Store
}

// Pickups returns the pickup-request view of the store.
func (s *Store) Pickups() *PickupStore {
	return &PickupStore{s: s}
}

// Create inserts a pickup request in the initial PENDING state.
func (r *PickupStore) Create(ctx context.Context, req *models.PickupRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = models.PickupPending
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}
	r.s.pickups = append([]models.PickupRequest{*req}, r.s.pickups...)
	return nil
}

// List returns pickup requests newest first, optionally filtered by the
// requesting student.
func (r *PickupStore) List(ctx context.Context, studentID string) ([]models.PickupRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []models.PickupRequest
	for _, p := range r.s.pickups {
		if studentID != "" && p.StudentID != studentID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FindByID returns a pickup request by identifier.
func (r *PickupStore) FindByID(ctx context.Context, id string) (*models.PickupRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.pickups {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

// UpdateStatus sets the pickup request status and returns the updated row.
func (r *PickupStore) UpdateStatus(ctx context.Context, id string, status models.PickupStatus) (*models.PickupRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.pickups {
		if r.s.pickups[i].ID == id {
			r.s.pickups[i].Status = status
			updated := r.s.pickups[i]
			return &updated, nil
		}
	}
	return nil, sql.ErrNoRows
}

// CountByStatus returns the number of pickup requests in a given state.
func (r *PickupStore) CountByStatus(ctx context.Context, status models.PickupStatus) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, p := range r.s.pickups {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

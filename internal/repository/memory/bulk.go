package memory

import (
	"context"
	"database/sql"

	"github.com/ubtds/ubtds-api/internal/models"
)

// BulkStore is the fixture-backed counterpart of repository.BulkRepository.
type BulkStore struct {
	s *Store
}

// Bulk returns the restock-request view of the store.
func (s *Store) Bulk() *BulkStore {
	return &BulkStore{s: s}
}

// List returns restock requests newest first.
func (r *BulkStore) List(ctx context.Context) ([]models.BulkRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.BulkRequest, len(r.s.bulkRequests))
	copy(out, r.s.bulkRequests)
	return out, nil
}

// FindByID returns a restock request by identifier.
func (r *BulkStore) FindByID(ctx context.Context, id string) (*models.BulkRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.bulkRequests {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, sql.ErrNoRows
}

// UpdateStatus sets the restock request status and returns the updated row.
func (r *BulkStore) UpdateStatus(ctx context.Context, id string, status models.BulkStatus) (*models.BulkRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.bulkRequests {
		if r.s.bulkRequests[i].ID == id {
			r.s.bulkRequests[i].Status = status
			updated := r.s.bulkRequests[i]
			return &updated, nil
		}
	}
	return nil, sql.ErrNoRows
}

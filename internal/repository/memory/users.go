package memory

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ubtds/ubtds-api/internal/models"
)

// UserStore is the fixture-backed counterpart of repository.UserRepository.
type UserStore struct {
	s *Store
}

// Users returns the user view of the store.
func (s *Store) Users() *UserStore {
	return &UserStore{s: s}
}

// FindByEmail returns a user by email address.
func (r *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.emailIndex[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	user := r.s.users[id]
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

// Create registers a user in the fixture dataset.
func (r *UserStore) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.s.users[user.ID] = *user
	r.s.emailIndex[user.Email] = user.ID
	return nil
}

// FindRegionalCenter has no fixture backing; profile enrichment degrades
// gracefully on sql.ErrNoRows.
func (r *UserStore) FindRegionalCenter(ctx context.Context, id string) (*models.RegionalCenter, error) {
	return nil, sql.ErrNoRows
}

// FindZone resolves a zone id against the fixture zone list.
func (r *UserStore) FindZone(ctx context.Context, id string) (*models.Zone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, z := range r.s.zones {
		if z.ID == id {
			return zoneFromSummary(z), nil
		}
	}
	return nil, sql.ErrNoRows
}

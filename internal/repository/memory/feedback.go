package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ubtds/ubtds-api/internal/models"
)

// FeedbackStore is the fixture-backed counterpart of repository.FeedbackRepository.
type FeedbackStore struct {
	s *Store
}

// Feedback returns the feedback view of the store.
func (s *Store) Feedback() *FeedbackStore {
	return &FeedbackStore{s: s}
}

// Create appends a feedback entry. There is no update or delete path.
func (r *FeedbackStore) Create(ctx context.Context, entry *models.Feedback) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	r.s.feedback = append([]models.Feedback{*entry}, r.s.feedback...)
	return nil
}

// List returns feedback entries newest first.
func (r *FeedbackStore) List(ctx context.Context) ([]models.Feedback, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Feedback, len(r.s.feedback))
	copy(out, r.s.feedback)
	return out, nil
}

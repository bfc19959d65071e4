package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ubtds/ubtds-api/internal/models"
)

// FeedbackRepository provides append-only access to feedback entries.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create appends a feedback entry. There is no update or delete path.
func (r *FeedbackRepository) Create(ctx context.Context, entry *models.Feedback) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO feedback (id, user_id, enrollment, name, sender_role, feedback_type, contact, message, created_at)
		VALUES (:id, :user_id, :enrollment, :name, :sender_role, :feedback_type, :contact, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// List returns feedback entries newest first.
func (r *FeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	const query = `SELECT id, user_id, enrollment, name, sender_role, feedback_type, contact, message, created_at
		FROM feedback ORDER BY created_at DESC`
	var entries []models.Feedback
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return entries, nil
}

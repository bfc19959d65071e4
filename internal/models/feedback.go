package models

import "time"

// Feedback is an append-only message from a portal user. No edit or delete
// operation is exposed.
type Feedback struct {
	ID         string    `db:"id" json:"id"`
	UserID     *string   `db:"user_id" json:"-"`
	Enrollment string    `db:"enrollment" json:"enrollment"`
	Name       string    `db:"name" json:"name"`
	SenderRole UserRole  `db:"sender_role" json:"role"`
	Type       string    `db:"feedback_type" json:"type"`
	Contact    string    `db:"contact" json:"contact,omitempty"`
	Message    string    `db:"message" json:"message"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

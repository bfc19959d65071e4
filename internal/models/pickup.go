package models

import (
	"strings"
	"time"
)

// PickupStatus is the canonical pickup-request vocabulary. The pickup API
// has always used upper case; kept as the stored form.
type PickupStatus string

const (
	PickupPending   PickupStatus = "PENDING"
	PickupApproved  PickupStatus = "APPROVED"
	PickupRejected  PickupStatus = "REJECTED"
	PickupCompleted PickupStatus = "COMPLETED"
)

var pickupStatuses = []PickupStatus{PickupPending, PickupApproved, PickupRejected, PickupCompleted}

// ParsePickupStatus normalizes raw input against the pickup allow-list.
func ParsePickupStatus(raw string) (PickupStatus, bool) {
	for _, s := range pickupStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// PickupRequest is a student's ask to collect an order at a hub instead of
// doorstep delivery. Mutated only through admin approval.
type PickupRequest struct {
	ID          string       `db:"id" json:"id"`
	Enrollment  string       `db:"enrollment" json:"enrollment"`
	StudentID   string       `db:"student_id" json:"studentId"`
	Location    string       `db:"location" json:"location"`
	Notes       string       `db:"notes" json:"notes,omitempty"`
	Status      PickupStatus `db:"status" json:"status"`
	RequestedAt time.Time    `db:"requested_at" json:"requestedAt"`
}

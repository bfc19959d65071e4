package models

import (
	"strings"
	"time"
)

// BulkStatus is the canonical restock-request vocabulary. The legacy data
// carried free-text statuses; the observed values form the allow-list.
type BulkStatus string

const (
	BulkRequested      BulkStatus = "Requested"
	BulkApproved       BulkStatus = "Approved"
	BulkRejected       BulkStatus = "Rejected"
	BulkQueuedForPrint BulkStatus = "Queued for Print"
	BulkDispatched     BulkStatus = "Dispatched"
	BulkInTransit      BulkStatus = "In Transit"
	BulkCompleted      BulkStatus = "Completed"
)

var bulkStatuses = []BulkStatus{
	BulkRequested, BulkApproved, BulkRejected, BulkQueuedForPrint,
	BulkDispatched, BulkInTransit, BulkCompleted,
}

// ParseBulkStatus normalizes raw input against the bulk allow-list.
func ParseBulkStatus(raw string) (BulkStatus, bool) {
	for _, s := range bulkStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// BulkRequest is a restock ask originated by an RC, HQ, or distributor.
type BulkRequest struct {
	ID        string      `db:"id" json:"id"`
	Requestor string      `db:"requestor" json:"requestor"`
	Role      UserRole    `db:"role" json:"role"`
	BookCode  string      `db:"book_code" json:"bookCode"`
	Count     int         `db:"count" json:"count"`
	Note      string      `db:"note" json:"note,omitempty"`
	Payment   PaymentMode `db:"payment" json:"payment"`
	Status    BulkStatus  `db:"status" json:"status"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

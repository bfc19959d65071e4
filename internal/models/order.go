package models

import (
	"strings"
	"time"
)

// OrderStatus is the canonical order status vocabulary. The stored form is
// title case; incoming values are normalized case-insensitively.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderApproved   OrderStatus = "Approved"
	OrderCancelled  OrderStatus = "Cancelled"
	OrderCompleted  OrderStatus = "Completed"
	OrderDispatched OrderStatus = "Dispatched"
	OrderInTransit  OrderStatus = "In-Transit"
)

var orderStatuses = []OrderStatus{
	OrderPending, OrderApproved, OrderCancelled,
	OrderCompleted, OrderDispatched, OrderInTransit,
}

// ParseOrderStatus normalizes raw input against the order allow-list.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	for _, s := range orderStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// PaymentMode enumerates accepted payment methods.
type PaymentMode string

const (
	PaymentUPI  PaymentMode = "UPI"
	PaymentNEFT PaymentMode = "NEFT"
	PaymentPO   PaymentMode = "PO"
	PaymentCard PaymentMode = "CARD"
	PaymentCOD  PaymentMode = "COD"
)

var paymentModes = []PaymentMode{PaymentUPI, PaymentNEFT, PaymentPO, PaymentCard, PaymentCOD}

// NormalizePayment maps raw input onto the payment allow-list,
// case-insensitively, falling back to the supplied default.
func NormalizePayment(raw string, fallback PaymentMode) PaymentMode {
	for _, m := range paymentModes {
		if strings.EqualFold(raw, string(m)) {
			return m
		}
	}
	return fallback
}

// Order is a student purchase moving through the distribution hierarchy.
// Address is a flattened snapshot taken at order time.
type Order struct {
	ID              string      `db:"id" json:"id"`
	UserID          string      `db:"user_id" json:"user_id"`
	Status          OrderStatus `db:"status" json:"status"`
	PaymentMode     PaymentMode `db:"payment_mode" json:"paymentMode"`
	Address         string      `db:"address" json:"address"`
	EtaDays         int         `db:"eta_days" json:"deliveryEtaDays"`
	CurrentLocation string      `db:"current_location" json:"currentLocation"`
	CreatedAt       time.Time   `db:"created_at" json:"orderedAt"`
	Items           []OrderItem `db:"-" json:"items"`
}

// OrderItem is one book line of an order. Title and code are snapshots so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	ID       string `db:"id" json:"-"`
	OrderID  string `db:"order_id" json:"-"`
	BookID   string `db:"book_id" json:"bookId"`
	Code     string `db:"code" json:"code"`
	Title    string `db:"title" json:"title"`
	Quantity int    `db:"quantity" json:"qty"`
}

package models

import "time"

// TrackingNode is one step of the HQ → RC → Zone → Hub timeline. The
// timeline is a static dataset, not computed from live shipment events.
type TrackingNode struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	Note        string    `json:"note"`
	EtaDays     int       `json:"etaDays"`
	AllowPickup bool      `json:"allowPickup,omitempty"`
}

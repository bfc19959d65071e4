package dto

// PickupCreateRequest is the student payload asking to collect at a hub.
type PickupCreateRequest struct {
	Location string `json:"location" validate:"required"`
	Notes    string `json:"notes"`
}

// StatusUpdateRequest carries the target status for any status-machine
// entity (order, pickup request, bulk request).
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

package dto

import "github.com/ubtds/ubtds-api/internal/models"

// ZonesResponse lists zones by ascending distance with the nearest zone
// called out separately.
type ZonesResponse struct {
	Zones   []models.ZoneSummary `json:"zones"`
	Nearest *models.ZoneSummary  `json:"nearest,omitempty"`
}

// ZoneUpdateRequest carries the admin-editable zone metadata. Pointers
// distinguish "leave unchanged" from explicit zero values.
type ZoneUpdateRequest struct {
	Phone      *string  `json:"phone"`
	Note       *string  `json:"note"`
	Rating     *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	DistanceKm *float64 `json:"distanceKm" validate:"omitempty,min=0"`
}

// Empty reports whether the patch carries no changes.
func (r ZoneUpdateRequest) Empty() bool {
	return r.Phone == nil && r.Note == nil && r.Rating == nil && r.DistanceKm == nil
}

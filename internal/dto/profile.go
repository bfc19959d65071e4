package dto

import "github.com/ubtds/ubtds-api/internal/models"

// ProfileResponse enriches the session claims with RC/zone context.
type ProfileResponse struct {
	models.UserInfo
	RCCode   string `json:"rcCode,omitempty"`
	RCName   string `json:"rcName,omitempty"`
	ZoneCode string `json:"zoneCode,omitempty"`
	Address  string `json:"address,omitempty"`
}

// TrackingResponse is the static shipment timeline for the student view.
type TrackingResponse struct {
	Region          string                `json:"region"`
	RC              string                `json:"rc"`
	CurrentLocation string                `json:"currentLocation"`
	Timeline        []models.TrackingNode `json:"timeline"`
}

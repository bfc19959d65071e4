package dto

import "github.com/ubtds/ubtds-api/internal/models"

// DashboardCounts is the headline summary block for HQ/RC staff.
type DashboardCounts struct {
	PendingPickup int `json:"pendingPickup"`
	Orders        int `json:"orders"`
	Books         int `json:"books"`
}

// DashboardResponse aggregates counts plus the recent order feed.
type DashboardResponse struct {
	Counts DashboardCounts `json:"counts"`
	Orders []models.Order  `json:"orders"`
}

// StockRow is one zone line of the stock management view.
type StockRow struct {
	Code  string `json:"code"`
	RC    string `json:"rc"`
	Stock int    `json:"stock"`
}

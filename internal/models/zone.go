package models

// RegionalCenter is an intermediate hierarchy node grouping zones.
// Static reference data.
type RegionalCenter struct {
	ID      string `db:"id" json:"id"`
	Code    string `db:"code" json:"code"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
	State   string `db:"state" json:"state"`
}

// Zone is the lowest-level delivery/pickup unit. Stock is never stored on
// the zone row; it is derived from the stocks table.
type Zone struct {
	ID         string  `db:"id" json:"id"`
	Code       string  `db:"code" json:"code"`
	Name       string  `db:"name" json:"name"`
	RCID       string  `db:"rc_id" json:"rc_id"`
	Address    string  `db:"address" json:"address"`
	Phone      string  `db:"phone" json:"phone"`
	DistanceKm float64 `db:"distance_km" json:"distanceKm"`
	Rating     float64 `db:"rating" json:"rating"`
	Note       string  `db:"note" json:"note"`
	State      string  `db:"state" json:"state"`
}

// ZoneSummary is the read-side projection with the RC code and derived stock.
type ZoneSummary struct {
	ID         string  `db:"id" json:"id"`
	Code       string  `db:"code" json:"code"`
	Name       string  `db:"name" json:"name"`
	RC         string  `db:"rc" json:"rc"`
	Address    string  `db:"address" json:"address"`
	Phone      string  `db:"phone" json:"phone"`
	DistanceKm float64 `db:"distance_km" json:"distanceKm"`
	Rating     float64 `db:"rating" json:"rating"`
	Note       string  `db:"note" json:"note"`
	Stock      int     `db:"stock" json:"stock"`
}

// HubType classifies pickup/dispatch points within a zone.
type HubType string

const (
	HubMajor HubType = "MAJOR"
	HubMinor HubType = "MINOR"
)

// Hub is a physical pickup/dispatch point.
type Hub struct {
	ID      string  `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Address string  `db:"address" json:"address"`
	Type    HubType `db:"type" json:"type"`
	ZoneID  string  `db:"zone_id" json:"zone_id"`
}

// Distributor is a last-mile delivery agent attached to a zone.
type Distributor struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Phone  string `db:"phone" json:"phone"`
	ZoneID string `db:"zone_id" json:"zone_id"`
}

// DistributorSummary joins the distributor with its zone code and stock.
type DistributorSummary struct {
	Code  string `db:"code" json:"code"`
	Zone  string `db:"zone" json:"zone"`
	Stock int    `db:"stock" json:"stock"`
}

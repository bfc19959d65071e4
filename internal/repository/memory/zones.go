package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
)

// ZoneStore is the fixture-backed counterpart of repository.ZoneRepository.
type ZoneStore struct {
	s *Store
}

// Zones returns the zone view of the store.
func (s *Store) Zones() *ZoneStore {
	return &ZoneStore{s: s}
}

// ListSummaries returns fixture zones ordered by distance ascending.
func (r *ZoneStore) ListSummaries(ctx context.Context) ([]models.ZoneSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.ZoneSummary, len(r.s.zones))
	copy(out, r.s.zones)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}

// FindByID returns a zone by identifier.
func (r *ZoneStore) FindByID(ctx context.Context, id string) (*models.Zone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, z := range r.s.zones {
		if z.ID == id {
			return zoneFromSummary(z), nil
		}
	}
	return nil, sql.ErrNoRows
}

// UpdateMeta patches fixture zone metadata in place.
func (r *ZoneStore) UpdateMeta(ctx context.Context, id string, patch dto.ZoneUpdateRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.zones {
		if r.s.zones[i].ID != id {
			continue
		}
		if patch.Phone != nil {
			r.s.zones[i].Phone = *patch.Phone
		}
		if patch.Note != nil {
			r.s.zones[i].Note = *patch.Note
		}
		if patch.Rating != nil {
			r.s.zones[i].Rating = *patch.Rating
		}
		if patch.DistanceKm != nil {
			r.s.zones[i].DistanceKm = *patch.DistanceKm
		}
		return nil
	}
	return sql.ErrNoRows
}

// ListDistributors returns the derived distributor roster.
func (r *ZoneStore) ListDistributors(ctx context.Context) ([]models.DistributorSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.DistributorSummary, len(r.s.distributors))
	copy(out, r.s.distributors)
	return out, nil
}

func zoneFromSummary(z models.ZoneSummary) *models.Zone {
	return &models.Zone{
		ID:         z.ID,
		Code:       z.Code,
		Name:       z.Name,
		RCID:       z.RC,
		Address:    z.Address,
		Phone:      z.Phone,
		DistanceKm: z.DistanceKm,
		Rating:     z.Rating,
		Note:       z.Note,
		State:      "Delhi",
	}
}

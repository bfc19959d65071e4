package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
)

// ZoneRepository provides access to zones, regional centers, and the
// derived per-zone stock aggregate.
type ZoneRepository struct {
	db *sqlx.DB
}

// NewZoneRepository creates a new instance of ZoneRepository.
func NewZoneRepository(db *sqlx.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// ListSummaries returns zones joined with their RC code and summed stock,
// ordered by distance ascending. Stock is always derived from the stocks
// table, never stored on the zone row.
func (r *ZoneRepository) ListSummaries(ctx context.Context) ([]models.ZoneSummary, error) {
	const query = `SELECT z.id, z.code, z.name, rc.code AS rc, z.address, z.phone,
			z.distance_km, z.rating, z.note,
			COALESCE(SUM(s.quantity), 0) AS stock
		FROM zones z
		JOIN regional_centers rc ON rc.id = z.rc_id
		LEFT JOIN stocks s ON s.zone_id = z.id
		GROUP BY z.id, z.code, z.name, rc.code, z.address, z.phone, z.distance_km, z.rating, z.note
		ORDER BY z.distance_km ASC`

	var zones []models.ZoneSummary
	if err := r.db.SelectContext(ctx, &zones, query); err != nil {
		return nil, fmt.Errorf("list zone summaries: %w", err)
	}
	return zones, nil
}

// FindByID returns a zone by identifier.
func (r *ZoneRepository) FindByID(ctx context.Context, id string) (*models.Zone, error) {
	const query = `SELECT id, code, name, rc_id, address, phone, distance_km, rating, note, state FROM zones WHERE id = $1 LIMIT 1`
	var zone models.Zone
	if err := r.db.GetContext(ctx, &zone, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find zone by id: %w", err)
	}
	return &zone, nil
}

// UpdateMeta patches the admin-editable zone metadata fields.
func (r *ZoneRepository) UpdateMeta(ctx context.Context, id string, patch dto.ZoneUpdateRequest) error {
	sets := []string{}
	args := []interface{}{id}

	if patch.Phone != nil {
		args = append(args, *patch.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}
	if patch.Note != nil {
		args = append(args, *patch.Note)
		sets = append(sets, fmt.Sprintf("note = $%d", len(args)))
	}
	if patch.Rating != nil {
		args = append(args, *patch.Rating)
		sets = append(sets, fmt.Sprintf("rating = $%d", len(args)))
	}
	if patch.DistanceKm != nil {
		args = append(args, *patch.DistanceKm)
		sets = append(sets, fmt.Sprintf("distance_km = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, time.Now().UTC())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	query := fmt.Sprintf("UPDATE zones SET %s WHERE id = $1", strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update zone meta: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListDistributors joins distributors with their zone code and that zone's
// derived stock for the admin roster view.
func (r *ZoneRepository) ListDistributors(ctx context.Context) ([]models.DistributorSummary, error) {
	const query = `SELECT d.name AS code, z.code AS zone,
			COALESCE(SUM(s.quantity), 0) AS stock
		FROM distributors d
		JOIN zones z ON z.id = d.zone_id
		LEFT JOIN stocks s ON s.zone_id = z.id
		GROUP BY d.name, z.code
		ORDER BY d.name ASC`

	var out []models.DistributorSummary
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list distributors: %w", err)
	}
	return out, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

type zoneRepository interface {
	ListSummaries(ctx context.Context) ([]models.ZoneSummary, error)
	FindByID(ctx context.Context, id string) (*models.Zone, error)
	UpdateMeta(ctx context.Context, id string, patch dto.ZoneUpdateRequest) error
	ListDistributors(ctx context.Context) ([]models.DistributorSummary, error)
}

// ZoneService serves zone listings and admin zone maintenance.
type ZoneService struct {
	repo      zoneRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewZoneService constructs a ZoneService instance.
func NewZoneService(repo zoneRepository, validate *validator.Validate, logger *zap.Logger) *ZoneService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ZoneService{repo: repo, validator: validate, logger: logger}
}

// List returns zones by ascending distance. The nearest zone is the head of
// the sorted list; callers never recompute it.
func (s *ZoneService) List(ctx context.Context) (*dto.ZonesResponse, error) {
	zones, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load zones")
	}
	resp := &dto.ZonesResponse{Zones: zones}
	if resp.Zones == nil {
		resp.Zones = []models.ZoneSummary{}
	}
	if len(zones) > 0 {
		nearest := zones[0]
		resp.Nearest = &nearest
	}
	return resp, nil
}

// StockRows projects the zone list into the admin stock view.
func (s *ZoneService) StockRows(ctx context.Context) ([]dto.StockRow, error) {
	zones, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load stock")
	}
	rows := make([]dto.StockRow, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, dto.StockRow{Code: z.Code, RC: z.RC, Stock: z.Stock})
	}
	return rows, nil
}

// Distributors returns the distributor roster with zone and derived stock.
func (s *ZoneService) Distributors(ctx context.Context) ([]models.DistributorSummary, error) {
	out, err := s.repo.ListDistributors(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load distributors")
	}
	if out == nil {
		out = []models.DistributorSummary{}
	}
	return out, nil
}

// UpdateMeta patches zone metadata. RC admins may only touch zones of their
// own regional center; full admins are unrestricted.
func (s *ZoneService) UpdateMeta(ctx context.Context, actor *models.JWTClaims, id string, patch dto.ZoneUpdateRequest) (*models.Zone, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid zone update payload.")
	}
	if patch.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No fields to update.")
	}

	zone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Zone not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load zone")
	}

	if actor != nil && actor.Role == models.RoleRCAdmin && zone.RCID != actor.RCID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "Zone belongs to another regional center.")
	}

	if err := s.repo.UpdateMeta(ctx, id, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Zone not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update zone")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload zone")
	}

	s.logger.Info("zone updated", zap.String("zone_id", id))
	return updated, nil
}

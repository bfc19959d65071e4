package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

type bulkRepository interface {
	List(ctx context.Context) ([]models.BulkRequest, error)
	FindByID(ctx context.Context, id string) (*models.BulkRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.BulkStatus) (*models.BulkRequest, error)
}

// BulkService owns the restock-request pipeline.
type BulkService struct {
	repo   bulkRepository
	logger *zap.Logger
}

// NewBulkService constructs a BulkService instance.
func NewBulkService(repo bulkRepository, logger *zap.Logger) *BulkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BulkService{repo: repo, logger: logger}
}

// List returns restock requests newest first.
func (s *BulkService) List(ctx context.Context) ([]models.BulkRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load bulk requests")
	}
	if requests == nil {
		requests = []models.BulkRequest{}
	}
	return requests, nil
}

// UpdateStatus validates the target against the restock vocabulary and
// applies it, returning the updated request.
func (s *BulkService) UpdateStatus(ctx context.Context, id, raw string) (*models.BulkRequest, error) {
	status, ok := models.ParseBulkStatus(raw)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidStatus, "Invalid status")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Bulk request not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update bulk status")
	}

	s.logger.Info("bulk status updated", zap.String("bulk_id", id), zap.String("status", string(status)))
	return updated, nil
}

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

type pickupRepository interface {
	Create(ctx context.Context, req *models.PickupRequest) error
	List(ctx context.Context, studentID string) ([]models.PickupRequest, error)
	FindByID(ctx context.Context, id string) (*models.PickupRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.PickupStatus) (*models.PickupRequest, error)
	CountByStatus(ctx context.Context, status models.PickupStatus) (int, error)
}

// PickupService owns hub-pickup requests and their approval flow.
type PickupService struct {
	repo      pickupRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPickupService constructs a PickupService instance.
func NewPickupService(repo pickupRepository, validate *validator.Validate, logger *zap.Logger) *PickupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PickupService{repo: repo, validator: validate, logger: logger}
}

// Create files a pickup request in the initial PENDING state. Enrollment
// defaults from the session claims.
func (s *PickupService) Create(ctx context.Context, claims *models.JWTClaims, req dto.PickupCreateRequest) (*models.PickupRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Pickup location is required.")
	}

	pickup := &models.PickupRequest{
		Enrollment: claims.EnrollmentNo,
		StudentID:  claims.UserID,
		Location:   req.Location,
		Notes:      req.Notes,
		Status:     models.PickupPending,
	}
	if err := s.repo.Create(ctx, pickup); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create pickup request")
	}

	s.logger.Info("pickup request created", zap.String("pickup_id", pickup.ID), zap.String("student_id", pickup.StudentID))
	return pickup, nil
}

// List returns pickup requests scoped by role: students see their own,
// staff see everything.
func (s *PickupService) List(ctx context.Context, claims *models.JWTClaims) ([]models.PickupRequest, error) {
	studentID := ""
	if claims != nil && claims.Role == models.RoleStudent {
		studentID = claims.UserID
	}
	requests, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load pickup requests")
	}
	if requests == nil {
		requests = []models.PickupRequest{}
	}
	return requests, nil
}

// UpdateStatus validates the target against the pickup vocabulary and
// applies it, returning the updated request.
func (s *PickupService) UpdateStatus(ctx context.Context, id, raw string) (*models.PickupRequest, error) {
	status, ok := models.ParsePickupStatus(raw)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidStatus, "Invalid status")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Pickup request not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update pickup status")
	}

	s.logger.Info("pickup status updated", zap.String("pickup_id", id), zap.String("status", string(status)))
	return updated, nil
}

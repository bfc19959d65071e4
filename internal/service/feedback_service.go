package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

// defaultFeedbackType labels submissions that do not pick a category.
const defaultFeedbackType = "GENERAL"

type feedbackRepository interface {
	Create(ctx context.Context, entry *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
}

// FeedbackService owns the append-only feedback log.
type FeedbackService struct {
	repo      feedbackRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeedbackService constructs a FeedbackService instance.
func NewFeedbackService(repo feedbackRepository, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &FeedbackService{repo: repo, validator: validate, logger: logger}
}

// Create appends a feedback entry. Sender identity falls back to the
// session claims when the payload leaves it blank.
func (s *FeedbackService) Create(ctx context.Context, claims *models.JWTClaims, req dto.FeedbackRequest) (*models.Feedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Feedback message is required.")
	}

	entry := &models.Feedback{
		Enrollment: req.Enrollment,
		Name:       req.Name,
		Type:       req.FeedbackType,
		Contact:    req.Contact,
		Message:    req.Message,
	}
	if claims != nil {
		userID := claims.UserID
		entry.UserID = &userID
		entry.SenderRole = claims.Role
		if entry.Name == "" {
			entry.Name = claims.FirstName
		}
		if entry.Enrollment == "" {
			entry.Enrollment = claims.EnrollmentNo
		}
	}
	if entry.Type == "" {
		entry.Type = defaultFeedbackType
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record feedback")
	}

	s.logger.Info("feedback recorded", zap.String("feedback_id", entry.ID), zap.String("type", entry.Type))
	return entry, nil
}

// List returns feedback entries newest first.
func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load feedback")
	}
	if entries == nil {
		entries = []models.Feedback{}
	}
	return entries, nil
}

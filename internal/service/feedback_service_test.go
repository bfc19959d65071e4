package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

type fakeFeedbackRepo struct {
	entries []models.Feedback
}

func (f *fakeFeedbackRepo) Create(_ context.Context, entry *models.Feedback) error {
	entry.ID = "fb-test"
	f.entries = append([]models.Feedback{*entry}, f.entries...)
	return nil
}

func (f *fakeFeedbackRepo) List(context.Context) ([]models.Feedback, error) {
	return f.entries, nil
}

func TestFeedbackCreateFallsBackToClaims(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(repo, nil, zap.NewNop())
	claims := &models.JWTClaims{
		UserID:       "user-student",
		FirstName:    "Amit",
		EnrollmentNo: "2201234567",
		Role:         models.RoleStudent,
	}

	entry, err := svc.Create(context.Background(), claims, dto.FeedbackRequest{Message: "Books arrived late."})
	require.NoError(t, err)
	assert.Equal(t, "Amit", entry.Name)
	assert.Equal(t, "2201234567", entry.Enrollment)
	assert.Equal(t, "GENERAL", entry.Type)
	assert.Equal(t, models.RoleStudent, entry.SenderRole)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "user-student", *entry.UserID)
}

func TestFeedbackCreateKeepsExplicitFields(t *testing.T) {
	svc := NewFeedbackService(&fakeFeedbackRepo{}, nil, zap.NewNop())
	claims := &models.JWTClaims{UserID: "user-student", FirstName: "Amit", Role: models.RoleStudent}

	entry, err := svc.Create(context.Background(), claims, dto.FeedbackRequest{
		Message:      "Hub staff were helpful.",
		Name:         "A. Sharma",
		FeedbackType: "DELIVERY",
	})
	require.NoError(t, err)
	assert.Equal(t, "A. Sharma", entry.Name)
	assert.Equal(t, "DELIVERY", entry.Type)
}

func TestFeedbackCreateMissingMessage(t *testing.T) {
	svc := NewFeedbackService(&fakeFeedbackRepo{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), &models.JWTClaims{UserID: "u"}, dto.FeedbackRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Feedback message is required.", appErr.Message)
}

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

type fakePickupRepo struct {
	created  *models.PickupRequest
	requests []models.PickupRequest
	listedBy string
}

func (f *fakePickupRepo) Create(_ context.Context, req *models.PickupRequest) error {
	req.ID = "pr-test"
	req.RequestedAt = time.Now()
	f.created = req
	return nil
}

func (f *fakePickupRepo) List(_ context.Context, studentID string) ([]models.PickupRequest, error) {
	f.listedBy = studentID
	if studentID == "" {
		return f.requests, nil
	}
	out := []models.PickupRequest{}
	for _, r := range f.requests {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePickupRepo) FindByID(_ context.Context, id string) (*models.PickupRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			return &f.requests[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakePickupRepo) UpdateStatus(ctx context.Context, id string, status models.PickupStatus) (*models.PickupRequest, error) {
	req, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Status = status
	return req, nil
}

func (f *fakePickupRepo) CountByStatus(_ context.Context, status models.PickupStatus) (int, error) {
	count := 0
	for _, r := range f.requests {
		if r.Status == status {
			count++
		}
	}
	return count, nil
}

func TestPickupCreateFromClaims(t *testing.T) {
	repo := &fakePickupRepo{}
	svc := NewPickupService(repo, nil, zap.NewNop())
	claims := &models.JWTClaims{UserID: "user-student", EnrollmentNo: "2201234567", Role: models.RoleStudent}

	pickup, err := svc.Create(context.Background(), claims, dto.PickupCreateRequest{Location: "Z-06 Hub, Dwarka"})
	require.NoError(t, err)
	assert.Equal(t, models.PickupPending, pickup.Status)
	assert.Equal(t, "2201234567", pickup.Enrollment)
	assert.Equal(t, "user-student", pickup.StudentID)
}

func TestPickupCreateMissingLocation(t *testing.T) {
	svc := NewPickupService(&fakePickupRepo{}, nil, zap.NewNop())
	claims := &models.JWTClaims{UserID: "user-student", Role: models.RoleStudent}

	_, err := svc.Create(context.Background(), claims, dto.PickupCreateRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Pickup location is required.", appErr.Message)
}

func TestPickupListScopedByRole(t *testing.T) {
	repo := &fakePickupRepo{requests: []models.PickupRequest{
		{ID: "pr-1", StudentID: "user-student", Status: models.PickupPending},
		{ID: "pr-2", StudentID: "user-other", Status: models.PickupApproved},
	}}
	svc := NewPickupService(repo, nil, zap.NewNop())

	mine, err := svc.List(context.Background(), &models.JWTClaims{UserID: "user-student", Role: models.RoleStudent})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "pr-1", mine[0].ID)

	all, err := svc.List(context.Background(), &models.JWTClaims{UserID: "user-admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Empty(t, repo.listedBy)
}

func TestPickupUpdateStatusCaseInsensitive(t *testing.T) {
	repo := &fakePickupRepo{requests: []models.PickupRequest{
		{ID: "pr-1", StudentID: "user-student", Status: models.PickupPending},
	}}
	svc := NewPickupService(repo, nil, zap.NewNop())

	updated, err := svc.UpdateStatus(context.Background(), "pr-1", "approved")
	require.NoError(t, err)
	assert.Equal(t, models.PickupApproved, updated.Status)

	pending, _ := repo.CountByStatus(context.Background(), models.PickupPending)
	assert.Zero(t, pending)
}

func TestPickupUpdateStatusInvalid(t *testing.T) {
	svc := NewPickupService(&fakePickupRepo{}, nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), "pr-1", "ON_HOLD")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidStatus.Code, appErr.Code)
}

func TestPickupUpdateStatusNotFound(t *testing.T) {
	svc := NewPickupService(&fakePickupRepo{}, nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), "missing", "APPROVED")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
}

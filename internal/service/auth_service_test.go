package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/models"
	"github.com/ubtds/ubtds-api/internal/repository/memory"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

func newAuthService() *AuthService {
	store := memory.NewStore()
	return NewAuthService(store.Users(), nil, zap.NewNop(), AuthConfig{Secret: "test-secret", Expiration: time.Hour})
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := newAuthService()

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:        "Priya.Verma@UBTDS.Test",
		Password:     "Secret@123",
		FirstName:    "Priya",
		EnrollmentNo: "2209876543",
	}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, models.RoleStudent, res.User.Role)
	// Email is canonicalized on the way in.
	assert.Equal(t, "priya.verma@ubtds.test", res.User.Email)

	login, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "priya.verma@ubtds.test",
		Password: "Secret@123",
	})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterCredentialsOnly(t *testing.T) {
	svc := newAuthService()

	// Name and the other profile fields are optional at signup.
	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "minimal@ubtds.test",
		Password: "Secret@123",
	}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, models.RoleStudent, res.User.Role)
	assert.Empty(t, res.User.FirstName)

	login, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "minimal@ubtds.test",
		Password: "Secret@123",
	})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:     "student@ubtds.test",
		Password:  "Secret@123",
		FirstName: "Dup",
	}, "")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "An account with this email already exists.", appErr.Message)
}

func TestRegisterRoleOnlyHonoredForAdmins(t *testing.T) {
	svc := newAuthService()

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:     "sneaky@ubtds.test",
		Password:  "Secret@123",
		FirstName: "Sneaky",
		Role:      string(models.RoleAdmin),
	}, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, res.User.Role)

	res, err = svc.Register(context.Background(), models.RegisterRequest{
		Email:     "rcadmin@ubtds.test",
		Password:  "Secret@123",
		FirstName: "RC",
		Role:      string(models.RoleRCAdmin),
	}, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleRCAdmin, res.User.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@ubtds.test",
		Password: "whatever1",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "No account found for this email.", appErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "student@ubtds.test",
		Password: "not-the-password",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := newAuthService()

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "student@ubtds.test",
		Password: "Student@123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "2201234567", claims.EnrollmentNo)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newAuthService()
	res, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "student@ubtds.test",
		Password: "Student@123",
	})
	require.NoError(t, err)

	store := memory.NewStore()
	other := NewAuthService(store.Users(), nil, zap.NewNop(), AuthConfig{Secret: "different-secret", Expiration: time.Hour})
	_, err = other.ValidateToken(res.Token)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 403, appErr.Status)
}

func TestProfileEnrichesFromClaims(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Users(), nil, zap.NewNop(), AuthConfig{Secret: "test-secret", Expiration: time.Hour})

	res, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "student@ubtds.test",
		Password: "Student@123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, "student@ubtds.test", profile.Email)
	assert.Equal(t, "Dwarka Sector 10, New Delhi", profile.Address)
}

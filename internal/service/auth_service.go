package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

// bcryptCost matches the hashes already present in the seeded datasets.
const bcryptCost = 10

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	FindRegionalCenter(ctx context.Context, id string) (*models.RegionalCenter, error)
	FindZone(ctx context.Context, id string) (*models.Zone, error)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	Secret     string
	Expiration time.Duration
}

// AuthService provides registration, login, and token validation.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.Expiration <= 0 {
		config.Expiration = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, config: config}
}

// Register creates an account and signs a session token. The requested role
// is honored only when the caller is an authenticated admin; everyone else
// registers as a student.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest, actorRole models.UserRole) (*models.AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email and password are required.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "An account with this email already exists.")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing account")
	}

	role := models.RoleStudent
	if actorRole == models.RoleAdmin && req.Role != "" && models.ValidRole(req.Role) {
		role = models.UserRole(req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         role,
	}
	if req.EnrollmentNo != "" {
		enrollment := req.EnrollmentNo
		user.EnrollmentNo = &enrollment
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return s.issueToken(user)
}

// Login authenticates credentials and signs a session token. Unknown emails
// and bad passwords are reported distinctly, matching the portal contract.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email and password are required.")
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "No account found for this email.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials.")
	}

	return s.issueToken(user)
}

// Profile enriches the session claims with RC and zone context. Missing
// reference rows degrade to the bare claims instead of failing the call.
func (s *AuthService) Profile(ctx context.Context, claims *models.JWTClaims) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Account no longer exists.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}

	profile := &dto.ProfileResponse{
		UserInfo: userInfo(user),
		Address:  user.Address,
	}

	if user.RCID != nil {
		if rc, err := s.repo.FindRegionalCenter(ctx, *user.RCID); err == nil {
			profile.RCCode = rc.Code
			profile.RCName = rc.Name
		} else if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("failed to load regional center", zap.String("rc_id", *user.RCID), zap.Error(err))
		}
	}
	if user.ZoneID != nil {
		if zone, err := s.repo.FindZone(ctx, *user.ZoneID); err == nil {
			profile.ZoneCode = zone.Code
		} else if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("failed to load zone", zap.String("zone_id", *user.ZoneID), zap.Error(err))
		}
	}

	return profile, nil
}

// ValidateToken parses and validates a session token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "Invalid or expired token.")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "Invalid or expired token.")
	}

	return claims, nil
}

// TokenTTL reports the configured session lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.config.Expiration
}

func (s *AuthService) issueToken(user *models.User) (*models.AuthResult, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		FirstName:    user.FirstName,
		EnrollmentNo: deref(user.EnrollmentNo),
		RCID:         deref(user.RCID),
		ZoneID:       deref(user.ZoneID),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	return &models.AuthResult{Token: signed, User: userInfo(user)}, nil
}

func userInfo(user *models.User) models.UserInfo {
	return models.UserInfo{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		EnrollmentNo: deref(user.EnrollmentNo),
		RCID:         deref(user.RCID),
		ZoneID:       deref(user.ZoneID),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/models"
	"github.com/ubtds/ubtds-api/internal/service"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service and owns the
// session cookie lifecycle.
type AuthHandler struct {
	service      *service.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	if cookieName == "" {
		cookieName = "token"
	}
	return &AuthHandler{service: svc, cookieName: cookieName, secureCookie: secureCookie}
}

// Register godoc
// @Summary Register account
// @Description Create a student account and start a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, models.RoleStudent)
}

// RegisterAdmin godoc
// @Summary Register account with role
// @Description Create an account with an explicit role; admin only
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /auth/register/admin [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	actorRole := models.RoleStudent
	if claims := claimsFromContext(c); claims != nil {
		actorRole = claims.Role
	}
	h.register(c, actorRole)
}

func (h *AuthHandler) register(c *gin.Context, actorRole models.UserRole) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid registration payload."))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req, actorRole)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.Token)
	response.Created(c, gin.H{"user": res.User})
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate by email and password, sets the session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Email and password are required."))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.Token)
	response.JSON(c, http.StatusOK, gin.H{"user": res.User}, nil)
}

// Logout godoc
// @Summary End session
// @Description Clears the session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.Message(c, http.StatusOK, "Logged out.")
}

// Me godoc
// @Summary Current session
// @Description Echo the authenticated session claims
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required."))
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"user": models.UserInfo{
		ID:           claims.UserID,
		Email:        claims.Email,
		FirstName:    claims.FirstName,
		Role:         claims.Role,
		EnrollmentNo: claims.EnrollmentNo,
		RCID:         claims.RCID,
		ZoneID:       claims.ZoneID,
	}}, nil)
}

// Profile godoc
// @Summary Student profile
// @Description Session claims enriched with RC and zone context
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/student/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required."))
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, profile, nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, token, int(h.service.TokenTTL().Seconds()), "/", "", h.secureCookie, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
}

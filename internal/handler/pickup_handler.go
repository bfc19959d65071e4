package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/service"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// PickupHandler serves hub-pickup requests and their approval flow.
type PickupHandler struct {
	service   *service.PickupService
	dashboard *service.DashboardService
}

// NewPickupHandler creates a new handler.
func NewPickupHandler(svc *service.PickupService, dashboard *service.DashboardService) *PickupHandler {
	return &PickupHandler{service: svc, dashboard: dashboard}
}

// Create godoc
// @Summary Request hub pickup
// @Description File a pickup request in the initial PENDING state
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body dto.PickupCreateRequest true "Pickup payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/student/pickup-request [post]
func (h *PickupHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required."))
		return
	}

	var req dto.PickupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Pickup location is required."))
		return
	}

	pickup, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
	response.Created(c, gin.H{"pickupRequest": pickup})
}

// List godoc
// @Summary List pickup requests
// @Description Students see their own requests; staff see all
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/student/pickup-request [get]
func (h *PickupHandler) List(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"pickupRequests": requests}, nil)
}

// UpdateStatus godoc
// @Summary Update pickup status
// @Description Validate against the pickup vocabulary and apply
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Pickup request id"
// @Param payload body dto.StatusUpdateRequest true "Target status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/admin/pickup-requests/{id} [patch]
func (h *PickupHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Status is required."))
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
	response.JSON(c, http.StatusOK, gin.H{"pickupRequest": updated}, nil)
}

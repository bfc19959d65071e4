package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/service"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// ZoneHandler serves zone listings, the admin stock view, and zone
// metadata maintenance.
type ZoneHandler struct {
	service *service.ZoneService
}

// NewZoneHandler creates a new handler.
func NewZoneHandler(svc *service.ZoneService) *ZoneHandler {
	return &ZoneHandler{service: svc}
}

// List godoc
// @Summary Zones by distance
// @Description Zones with derived stock, nearest first
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/student/zones [get]
func (h *ZoneHandler) List(c *gin.Context) {
	zones, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, zones, nil)
}

// Stock godoc
// @Summary Per-zone stock
// @Description Derived stock per zone for the management view
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/admin/stock [get]
func (h *ZoneHandler) Stock(c *gin.Context) {
	rows, err := h.service.StockRows(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"stock": rows}, nil)
}

// Distributors godoc
// @Summary Distributor roster
// @Description Distributors with zone and derived stock
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/admin/distributors [get]
func (h *ZoneHandler) Distributors(c *gin.Context) {
	out, err := h.service.Distributors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"distributors": out}, nil)
}

// Update godoc
// @Summary Update zone metadata
// @Description Patch phone, note, rating, or distance for a zone
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Zone id"
// @Param payload body dto.ZoneUpdateRequest true "Zone patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/admin/zones/{id} [patch]
func (h *ZoneHandler) Update(c *gin.Context) {
	var patch dto.ZoneUpdateRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid zone update payload."))
		return
	}

	zone, err := h.service.UpdateMeta(c.Request.Context(), claimsFromContext(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"zone": zone}, nil)
}

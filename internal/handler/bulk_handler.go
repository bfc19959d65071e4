package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/service"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// BulkHandler serves the restock-request pipeline.
type BulkHandler struct {
	service *service.BulkService
}

// NewBulkHandler creates a new handler.
func NewBulkHandler(svc *service.BulkService) *BulkHandler {
	return &BulkHandler{service: svc}
}

// List godoc
// @Summary List restock requests
// @Description Restock asks from RCs, HQ, and distributors, newest first
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/admin/bulk-requests [get]
func (h *BulkHandler) List(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"bulkRequests": requests}, nil)
}

// UpdateStatus godoc
// @Summary Update restock status
// @Description Validate against the restock vocabulary and apply
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Bulk request id"
// @Param payload body dto.StatusUpdateRequest true "Target status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/admin/bulk-requests/{id}/status [patch]
func (h *BulkHandler) UpdateStatus(c *gin.Context) {
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
	response.JSON(c, http.StatusOK, gin.H{"bulkRequest": updated}, nil)
}

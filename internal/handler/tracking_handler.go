package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/service"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// TrackingHandler serves the student shipment timeline.
type TrackingHandler struct {
	service *service.TrackingService
}

// NewTrackingHandler creates a new handler.
func NewTrackingHandler(svc *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: svc}
}

// Track godoc
// @Summary Shipment timeline
// @Description HQ to hub timeline for the caller's latest order
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/student/track [get]
func (h *TrackingHandler) Track(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Track(), nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/service"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// DashboardHandler serves the HQ/RC staff landing aggregate.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Summary godoc
// @Summary Admin dashboard
// @Description Counts plus the recent order feed; cached when Redis is up
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, cacheHit, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil, map[string]interface{}{"cache_hit": cacheHit})
}

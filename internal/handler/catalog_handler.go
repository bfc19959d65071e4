package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/service"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// CatalogHandler serves the student book catalog.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// List godoc
// @Summary Book catalog
// @Description Books joined with course, ordered by title
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/student/catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"books": books}, nil)
}

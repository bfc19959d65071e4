package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/service"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// FeedbackHandler serves the append-only feedback log.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler creates a new handler.
func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

// Create godoc
// @Summary Submit feedback
// @Description Append a feedback entry; sender identity falls back to claims
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body dto.FeedbackRequest true "Feedback payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/student/feedback [post]
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Feedback message is required."))
		return
	}

	entry, err := h.service.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"feedback": entry})
}

// List godoc
// @Summary List feedback
// @Description Feedback entries, newest first
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/admin/feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"feedback": entries}, nil)
}

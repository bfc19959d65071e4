package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	"github.com/ubtds/ubtds-api/internal/service"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
	"github.com/ubtds/ubtds-api/pkg/export"
	"github.com/ubtds/ubtds-api/pkg/response"
)

// exportLimit caps the order report download.
const exportLimit = 500

// OrderHandler serves checkout, order history, admin status updates, and
// the order report export.
type OrderHandler struct {
	service   *service.OrderService
	dashboard *service.DashboardService
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewOrderHandler creates a new handler.
func NewOrderHandler(svc *service.OrderService, dashboard *service.DashboardService) *OrderHandler {
	return &OrderHandler{
		service:   svc,
		dashboard: dashboard,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Checkout godoc
// @Summary Place an order
// @Description Resolve book references, snapshot the address, create order and items atomically
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body dto.CheckoutRequest true "Checkout payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/student/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required."))
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid checkout payload."))
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
	response.Created(c, gin.H{"order": order})
}

// History godoc
// @Summary Order history
// @Description Caller's orders, newest first, with items
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/student/orders/history [get]
func (h *OrderHandler) History(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Authentication required."))
		return
	}

	orders, err := h.service.History(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"orders": orders}, nil)
}

// UpdateStatus godoc
// @Summary Update order status
// @Description Validate against the order vocabulary and apply
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param payload body dto.StatusUpdateRequest true "Target status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Status is required."))
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
	response.JSON(c, http.StatusOK, gin.H{"order": order}, nil)
}

// Export godoc
// @Summary Export order report
// @Description Download recent orders as CSV or PDF
// @Tags Admin
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /api/admin/orders/export [get]
func (h *OrderHandler) Export(c *gin.Context) {
	orders, err := h.service.Recent(c.Request.Context(), exportLimit)
	if err != nil {
		response.Error(c, err)
		return
	}

	dataset := orderDataset(orders)
	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	filename := fmt.Sprintf("orders-%s", time.Now().UTC().Format("20060102"))

	switch format {
	case "csv":
		payload, err := h.csv.Render(dataset)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(http.StatusOK, "text/csv", payload)
	case "pdf":
		payload, err := h.pdf.Render(dataset, "Order Report")
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", filename))
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Unsupported export format."))
	}
}

func orderDataset(orders []models.Order) export.Dataset {
	headers := []string{"Order ID", "User", "Status", "Payment", "Items", "Ordered At"}
	rows := make([]map[string]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, map[string]string{
			"Order ID":   o.ID,
			"User":       o.UserID,
			"Status":     string(o.Status),
			"Payment":    string(o.PaymentMode),
			"Items":      fmt.Sprintf("%d", len(o.Items)),
			"Ordered At": o.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

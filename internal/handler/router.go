package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ubtds/ubtds-api/internal/middleware"
	"github.com/ubtds/ubtds-api/internal/models"
	"github.com/ubtds/ubtds-api/internal/service"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Zones     *ZoneHandler
	Orders    *OrderHandler
	Pickups   *PickupHandler
	Bulk      *BulkHandler
	Feedback  *FeedbackHandler
	Dashboard *DashboardHandler
	Tracking  *TrackingHandler
}

// RegisterRoutes mounts the portal route table. Student routes accept any
// authenticated role; admin routes are limited to HQ and RC staff.
func RegisterRoutes(r *gin.Engine, h Handlers, authService *service.AuthService, cookieName, apiPrefix string) {
	requireAuth := middleware.JWT(authService, cookieName)
	requireStaff := middleware.RequireRoles(models.RoleAdmin, models.RoleRCAdmin)
	requireAdmin := middleware.RequireRoles(models.RoleAdmin)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/register/admin", requireAuth, requireAdmin, h.Auth.RegisterAdmin)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", requireAuth, h.Auth.Me)
	}

	student := r.Group(apiPrefix+"/student", requireAuth)
	{
		student.GET("/profile", h.Auth.Profile)
		student.GET("/catalog", h.Catalog.List)
		student.GET("/zones", h.Zones.List)
		student.POST("/orders/checkout", h.Orders.Checkout)
		student.GET("/orders/history", h.Orders.History)
		student.GET("/track", h.Tracking.Track)
		student.POST("/pickup-request", h.Pickups.Create)
		student.GET("/pickup-request", h.Pickups.List)
		student.POST("/feedback", h.Feedback.Create)
		student.GET("/feedback", h.Feedback.List)
	}

	admin := r.Group(apiPrefix+"/admin", requireAuth, requireStaff)
	{
		admin.GET("/dashboard", h.Dashboard.Summary)
		admin.GET("/stock", h.Zones.Stock)
		admin.GET("/distributors", h.Zones.Distributors)
		admin.GET("/feedback", h.Feedback.List)
		admin.GET("/pickup-requests", h.Pickups.List)
		admin.PATCH("/pickup-requests/:id", h.Pickups.UpdateStatus)
		admin.PATCH("/orders/:id/status", h.Orders.UpdateStatus)
		admin.GET("/orders/export", h.Orders.Export)
		admin.GET("/bulk-requests", h.Bulk.List)
		admin.PATCH("/bulk-requests/:id/status", h.Bulk.UpdateStatus)
		admin.PATCH("/zones/:id", h.Zones.Update)
	}
}

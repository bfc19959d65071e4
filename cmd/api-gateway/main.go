package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ubtds/ubtds-api/api/swagger"
	"github.com/ubtds/ubtds-api/internal/handler"
	"github.com/ubtds/ubtds-api/internal/middleware"
	"github.com/ubtds/ubtds-api/internal/repository"
	"github.com/ubtds/ubtds-api/internal/repository/memory"
	"github.com/ubtds/ubtds-api/internal/service"
	"github.com/ubtds/ubtds-api/pkg/cache"
	"github.com/ubtds/ubtds-api/pkg/config"
	"github.com/ubtds/ubtds-api/pkg/database"
	"github.com/ubtds/ubtds-api/pkg/logger"
	corsmiddleware "github.com/ubtds/ubtds-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ubtds/ubtds-api/pkg/middleware/requestid"
)

// @title UBTDS Portal API
// @version 1.0.0
// @description Book distribution tracking portal API
// @BasePath /
// @schemes http

type services struct {
	auth      *service.AuthService
	catalog   *service.CatalogService
	zones     *service.ZoneService
	orders    *service.OrderService
	pickups   *service.PickupService
	bulk      *service.BulkService
	feedback  *service.FeedbackService
	dashboard *service.DashboardService
	tracking  *service.TrackingService
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		if !cfg.Database.AllowMemoryFallback {
			logr.Sugar().Fatalw("database unreachable", "error", err)
		}
		logr.Sugar().Warnw("database unreachable, serving fixture dataset", "error", err)
		db = nil
	}

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unreachable, dashboard cache disabled", "error", err)
			redisClient = nil
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(
		repository.NewCacheRepository(redisClient, logr),
		metricsSvc,
		cfg.Dashboard.CacheTTL,
		logr,
		cfg.Dashboard.CacheEnabled && redisClient != nil,
	)

	validate := validator.New()
	trackingSvc := service.NewTrackingService(memory.SeedTimeline(), logr)

	var svcs services
	if db != nil {
		svcs = newDatabaseServices(cfg, db, validate, logr, cacheSvc, metricsSvc, trackingSvc)
	} else {
		svcs = newMemoryServices(cfg, memory.NewStore(), validate, logr, cacheSvc, metricsSvc, trackingSvc)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", readyHandler(db))

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	secureCookie := cfg.Env == config.EnvProduction
	handler.RegisterRoutes(r, handler.Handlers{
		Auth:      handler.NewAuthHandler(svcs.auth, cfg.JWT.CookieName, secureCookie),
		Catalog:   handler.NewCatalogHandler(svcs.catalog),
		Zones:     handler.NewZoneHandler(svcs.zones),
		Orders:    handler.NewOrderHandler(svcs.orders, svcs.dashboard),
		Pickups:   handler.NewPickupHandler(svcs.pickups, svcs.dashboard),
		Bulk:      handler.NewBulkHandler(svcs.bulk),
		Feedback:  handler.NewFeedbackHandler(svcs.feedback),
		Dashboard: handler.NewDashboardHandler(svcs.dashboard),
		Tracking:  handler.NewTrackingHandler(svcs.tracking),
	}, svcs.auth, cfg.JWT.CookieName, cfg.APIPrefix)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "mode", serveMode(db))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newDatabaseServices(cfg *config.Config, db *sqlx.DB, validate *validator.Validate, logr *zap.Logger, cacheSvc *service.CacheService, metricsSvc *service.MetricsService, trackingSvc *service.TrackingService) services {
	users := repository.NewUserRepository(db)
	catalog := repository.NewCatalogRepository(db)
	zones := repository.NewZoneRepository(db)
	orders := repository.NewOrderRepository(db)
	pickups := repository.NewPickupRepository(db)
	bulk := repository.NewBulkRepository(db)
	feedback := repository.NewFeedbackRepository(db)

	return services{
		auth:      service.NewAuthService(users, validate, logr, service.AuthConfig{Secret: cfg.JWT.Secret, Expiration: cfg.JWT.Expiration}),
		catalog:   service.NewCatalogService(catalog, metricsSvc, logr),
		zones:     service.NewZoneService(zones, validate, logr),
		orders:    service.NewOrderService(orders, catalog, users, trackingSvc, validate, logr, cfg.Checkout.DefaultPayment),
		pickups:   service.NewPickupService(pickups, validate, logr),
		bulk:      service.NewBulkService(bulk, logr),
		feedback:  service.NewFeedbackService(feedback, validate, logr),
		dashboard: service.NewDashboardService(orders, pickups, catalog, cacheSvc, metricsSvc, logr),
		tracking:  trackingSvc,
	}
}

func newMemoryServices(cfg *config.Config, store *memory.Store, validate *validator.Validate, logr *zap.Logger, cacheSvc *service.CacheService, metricsSvc *service.MetricsService, trackingSvc *service.TrackingService) services {
	users := store.Users()
	catalog := store.Catalog()
	zones := store.Zones()
	orders := store.Orders()
	pickups := store.Pickups()
	bulk := store.Bulk()
	feedback := store.Feedback()

	return services{
		auth:      service.NewAuthService(users, validate, logr, service.AuthConfig{Secret: cfg.JWT.Secret, Expiration: cfg.JWT.Expiration}),
		catalog:   service.NewCatalogService(catalog, metricsSvc, logr),
		zones:     service.NewZoneService(zones, validate, logr),
		orders:    service.NewOrderService(orders, catalog, users, trackingSvc, validate, logr, cfg.Checkout.DefaultPayment),
		pickups:   service.NewPickupService(pickups, validate, logr),
		bulk:      service.NewBulkService(bulk, logr),
		feedback:  service.NewFeedbackService(feedback, validate, logr),
		dashboard: service.NewDashboardService(orders, pickups, catalog, cacheSvc, metricsSvc, logr),
		tracking:  trackingSvc,
	}
}

func readyHandler(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready", "mode": "memory"})
			return
		}
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "mode": "database"})
	}
}

func serveMode(db *sqlx.DB) string {
	if db == nil {
		return "memory"
	}
	return "database"
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

// dashboardCacheKey stores the aggregated admin dashboard payload.
const dashboardCacheKey = "dashboard:summary"

// dashboardRecentLimit caps the recent-order feed.
const dashboardRecentLimit = 20

type dashboardOrderRepository interface {
	ListRecent(ctx context.Context, limit int) ([]models.Order, error)
	Count(ctx context.Context) (int, error)
}

type dashboardPickupRepository interface {
	CountByStatus(ctx context.Context, status models.PickupStatus) (int, error)
}

type dashboardBookRepository interface {
	CountBooks(ctx context.Context) (int, error)
}

// DashboardService aggregates the HQ/RC staff landing view.
type DashboardService struct {
	orders  dashboardOrderRepository
	pickups dashboardPickupRepository
	books   dashboardBookRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(orders dashboardOrderRepository, pickups dashboardPickupRepository, books dashboardBookRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{orders: orders, pickups: pickups, books: books, cache: cache, metrics: metrics, logger: logger}
}

// Summary returns dashboard counts plus the recent order feed. The second
// return value reports whether the payload came from cache.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	var cached dto.DashboardResponse
	if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	pendingPickups, err := s.pickups.CountByStatus(ctx, models.PickupPending)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count pending pickups")
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count orders")
	}
	bookCount, err := s.books.CountBooks(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count books")
	}
	recent, err := s.orders.ListRecent(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent orders")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_summary", time.Since(start))
	}
	if recent == nil {
		recent = []models.Order{}
	}

	resp := &dto.DashboardResponse{
		Counts: dto.DashboardCounts{
			PendingPickup: pendingPickups,
			Orders:        orderCount,
			Books:         bookCount,
		},
		Orders: recent,
	}

	if err := s.cache.Set(ctx, dashboardCacheKey, resp, 0); err != nil {
		s.logger.Warn("failed to cache dashboard summary", zap.Error(err))
	}

	return resp, false, nil
}

// Invalidate drops the cached summary after order or pickup mutations.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "dashboard:*"); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

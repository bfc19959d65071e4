package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

type stubCacheRepo struct {
	data map[string][]byte
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{data: map[string][]byte{}}
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := s.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = raw
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	s.data = map[string][]byte{}
	return nil
}

type fakeDashboardOrders struct {
	orders []models.Order
	calls  int
}

func (f *fakeDashboardOrders) ListRecent(context.Context, int) ([]models.Order, error) {
	f.calls++
	return f.orders, nil
}

func (f *fakeDashboardOrders) Count(context.Context) (int, error) {
	return len(f.orders), nil
}

type fakeDashboardPickups struct {
	pending int
}

func (f *fakeDashboardPickups) CountByStatus(context.Context, models.PickupStatus) (int, error) {
	return f.pending, nil
}

type fakeDashboardBooks struct {
	count int
}

func (f *fakeDashboardBooks) CountBooks(context.Context) (int, error) {
	return f.count, nil
}

func TestDashboardSummaryCounts(t *testing.T) {
	orders := &fakeDashboardOrders{orders: []models.Order{
		{ID: "order-1", Status: models.OrderPending},
		{ID: "order-2", Status: models.OrderCompleted},
	}}
	cache := NewCacheService(newStubCacheRepo(), nil, time.Minute, zap.NewNop(), true)
	svc := NewDashboardService(orders, &fakeDashboardPickups{pending: 4}, &fakeDashboardBooks{count: 13}, cache, nil, zap.NewNop())

	resp, cacheHit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 4, resp.Counts.PendingPickup)
	assert.Equal(t, 2, resp.Counts.Orders)
	assert.Equal(t, 13, resp.Counts.Books)
	require.Len(t, resp.Orders, 2)
}

func TestDashboardSummaryCacheHit(t *testing.T) {
	orders := &fakeDashboardOrders{orders: []models.Order{{ID: "order-1"}}}
	cache := NewCacheService(newStubCacheRepo(), nil, time.Minute, zap.NewNop(), true)
	svc := NewDashboardService(orders, &fakeDashboardPickups{}, &fakeDashboardBooks{}, cache, nil, zap.NewNop())

	_, cacheHit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)

	resp, cacheHit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, cacheHit)
	require.Len(t, resp.Orders, 1)
	// Repositories are not consulted on a hit.
	assert.Equal(t, 1, orders.calls)
}

func TestDashboardInvalidateDropsCache(t *testing.T) {
	orders := &fakeDashboardOrders{orders: []models.Order{{ID: "order-1"}}}
	cache := NewCacheService(newStubCacheRepo(), nil, time.Minute, zap.NewNop(), true)
	svc := NewDashboardService(orders, &fakeDashboardPickups{}, &fakeDashboardBooks{}, cache, nil, zap.NewNop())

	_, _, err := svc.Summary(context.Background())
	require.NoError(t, err)

	svc.Invalidate(context.Background())

	_, cacheHit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 2, orders.calls)
}

func TestDashboardSummaryCacheDisabled(t *testing.T) {
	orders := &fakeDashboardOrders{}
	cache := NewCacheService(nil, nil, time.Minute, zap.NewNop(), false)
	svc := NewDashboardService(orders, &fakeDashboardPickups{}, &fakeDashboardBooks{}, cache, nil, zap.NewNop())

	_, cacheHit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)

	_, cacheHit, err = svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 2, orders.calls)
}

func TestDashboardSummaryRecordsQueryTiming(t *testing.T) {
	metrics := NewMetricsService()
	cache := NewCacheService(nil, nil, time.Minute, zap.NewNop(), false)
	svc := NewDashboardService(&fakeDashboardOrders{}, &fakeDashboardPickups{}, &fakeDashboardBooks{}, cache, metrics, zap.NewNop())

	_, _, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, observedQueryCount(t, metrics, "dashboard_summary"))
}

// observedQueryCount reads the db_query_duration_seconds sample count for a
// query label from the service's private registry.
func observedQueryCount(t *testing.T, metrics *MetricsService, label string) int {
	t.Helper()
	families, err := metrics.registry.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != "db_query_duration_seconds" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "query" && l.GetValue() == label {
					return int(m.GetHistogram().GetSampleCount())
				}
			}
		}
	}
	return 0
}

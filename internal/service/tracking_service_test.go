package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/models"
)

func seedNodes() []models.TrackingNode {
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	return []models.TrackingNode{
		{ID: "node-1", Status: "Dispatched", Location: "HQ Warehouse, New Delhi", Type: "HQ", Timestamp: base},
		{ID: "node-2", Status: "In Transit", Location: "RC-02 (Dwarka)", Type: "RC", Timestamp: base.Add(24 * time.Hour)},
	}
}

func TestTrackSnapshot(t *testing.T) {
	svc := NewTrackingService(seedNodes(), zap.NewNop())

	resp := svc.Track()
	assert.Equal(t, "Delhi", resp.Region)
	assert.Equal(t, "RC-02 (Dwarka)", resp.RC)
	assert.Equal(t, "RC-02 (Dwarka)", resp.CurrentLocation)
	require.Len(t, resp.Timeline, 2)

	// Mutating the snapshot never reaches the service state.
	resp.Timeline[0].Status = "tampered"
	assert.Equal(t, "Dispatched", svc.Track().Timeline[0].Status)
}

func TestRecordOrderPlacedAppendsNode(t *testing.T) {
	svc := NewTrackingService(seedNodes(), zap.NewNop())

	svc.RecordOrderPlaced(&models.Order{
		ID:              "order-1",
		CurrentLocation: "HQ Warehouse, New Delhi",
		EtaDays:         3,
		CreatedAt:       time.Now().UTC(),
	})

	resp := svc.Track()
	require.Len(t, resp.Timeline, 3)
	newest := resp.Timeline[len(resp.Timeline)-1]
	assert.Equal(t, "Order Placed", newest.Status)
	assert.Equal(t, "HQ Warehouse, New Delhi", resp.CurrentLocation)
	assert.Equal(t, 3, newest.EtaDays)
}

func TestRecordOrderPlacedNilOrder(t *testing.T) {
	svc := NewTrackingService(seedNodes(), zap.NewNop())
	svc.RecordOrderPlaced(nil)
	assert.Len(t, svc.Track().Timeline, 2)
}

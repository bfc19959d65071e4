package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
)

// TrackingService serves the shipment timeline for the student view. The
// timeline is a fixed dataset; only the newest node moves when an order is
// placed.
type TrackingService struct {
	mu              sync.RWMutex
	region          string
	rc              string
	currentLocation string
	timeline        []models.TrackingNode
	logger          *zap.Logger
}

// NewTrackingService constructs a TrackingService with the seed timeline.
func NewTrackingService(timeline []models.TrackingNode, logger *zap.Logger) *TrackingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	current := ""
	if len(timeline) > 0 {
		current = timeline[len(timeline)-1].Location
	}
	return &TrackingService{
		region:          "Delhi",
		rc:              "RC-02 (Dwarka)",
		currentLocation: current,
		timeline:        timeline,
		logger:          logger,
	}
}

// Track returns the timeline snapshot.
func (s *TrackingService) Track() *dto.TrackingResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	timeline := make([]models.TrackingNode, len(s.timeline))
	copy(timeline, s.timeline)
	return &dto.TrackingResponse{
		Region:          s.region,
		RC:              s.rc,
		CurrentLocation: s.currentLocation,
		Timeline:        timeline,
	}
}

// RecordOrderPlaced appends an order-placed node so the newest timeline
// entry reflects the latest order.
func (s *TrackingService) RecordOrderPlaced(order *models.Order) {
	if order == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := order.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	s.timeline = append(s.timeline, models.TrackingNode{
		ID:        uuid.NewString(),
		Status:    "Order Placed",
		Location:  order.CurrentLocation,
		Type:      "HQ",
		Timestamp: ts,
		Note:      "Order " + order.ID + " accepted for processing",
		EtaDays:   order.EtaDays,
	})
	s.currentLocation = order.CurrentLocation
	s.logger.Debug("tracking node appended", zap.String("order_id", order.ID))
}

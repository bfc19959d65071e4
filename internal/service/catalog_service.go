package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/models"
	appErrors "github.com/ubtds/ubtds-api/pkg/errors"
)

type catalogRepository interface {
	ListCatalog(ctx context.Context) ([]models.CatalogBook, error)
	FindBookByRef(ctx context.Context, ref string) (*models.Book, error)
	CountBooks(ctx context.Context) (int, error)
}

// CatalogService serves the student-facing book catalog.
type CatalogService struct {
	repo    catalogRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewCatalogService constructs a CatalogService instance.
func NewCatalogService(repo catalogRepository, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, metrics: metrics, logger: logger}
}

// List returns the catalog ordered by title ascending.
func (s *CatalogService) List(ctx context.Context) ([]models.CatalogBook, error) {
	start := time.Now()
	books, err := s.repo.ListCatalog(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("catalog_list", time.Since(start))
	}
	if books == nil {
		books = []models.CatalogBook{}
	}
	return books, nil
}

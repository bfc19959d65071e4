package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubtds/ubtds-api/internal/models"
)

type fakeCatalogRepo struct {
	books []models.CatalogBook
}

func (f *fakeCatalogRepo) ListCatalog(context.Context) ([]models.CatalogBook, error) {
	return f.books, nil
}

func (f *fakeCatalogRepo) FindBookByRef(context.Context, string) (*models.Book, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeCatalogRepo) CountBooks(context.Context) (int, error) {
	return len(f.books), nil
}

func TestCatalogListNeverNil(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, nil, zap.NewNop())

	books, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestCatalogListRecordsQueryTiming(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewCatalogService(&fakeCatalogRepo{books: []models.CatalogBook{
		{ID: "book-1", Title: "Computer Basics"},
	}}, metrics, zap.NewNop())

	books, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)

	assert.Equal(t, 1, observedQueryCount(t, metrics, "catalog_list"))
}

package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/ubtds/ubtds-api/internal/models"
)

// catalogPageSize caps the catalog listing, mirroring the database path.
const catalogPageSize = 100

// CatalogStore is the fixture-backed counterpart of repository.CatalogRepository.
type CatalogStore struct {
	s *Store
}

// Catalog returns the catalog view of the store.
func (s *Store) Catalog() *CatalogStore {
	return &CatalogStore{s: s}
}

// ListCatalog returns the fixture catalog ordered by title ascending,
// capped at catalogPageSize entries.
func (r *CatalogStore) ListCatalog(ctx context.Context) ([]models.CatalogBook, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.CatalogBook, len(r.s.catalog))
	copy(out, r.s.catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	if len(out) > catalogPageSize {
		out = out[:catalogPageSize]
	}
	return out, nil
}

// FindBookByRef resolves a reference by id, then ISBN, then exact title.
func (r *CatalogStore) FindBookByRef(ctx context.Context, ref string) (*models.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.catalog {
		if b.ID == ref {
			return bookFromCatalog(b), nil
		}
	}
	for _, b := range r.s.catalog {
		if b.ISBN == ref {
			return bookFromCatalog(b), nil
		}
	}
	var match *models.CatalogBook
	for i := range r.s.catalog {
		b := r.s.catalog[i]
		if b.Title == ref && (match == nil || b.Title < match.Title) {
			match = &r.s.catalog[i]
		}
	}
	if match != nil {
		return bookFromCatalog(*match), nil
	}
	return nil, sql.ErrNoRows
}

// CountBooks returns the catalog size.
func (r *CatalogStore) CountBooks(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.catalog), nil
}

func bookFromCatalog(b models.CatalogBook) *models.Book {
	condition := models.ConditionNew
	if b.IsUsed {
		condition = models.ConditionUsed
	}
	return &models.Book{
		ID:        b.ID,
		Title:     b.Title,
		ISBN:      b.ISBN,
		Condition: condition,
		Price:     b.Price,
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ubtds/ubtds-api/internal/models"
)

// catalogPageSize caps the catalog listing.
const catalogPageSize = 100

// CatalogRepository provides read access to books, courses, and stock
// placement.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListCatalog returns the book catalog joined with course titles, ordered
// by title ascending and capped at the fixed page size. StockZones carries
// the zone codes currently holding each book.
func (r *CatalogRepository) ListCatalog(ctx context.Context) ([]models.CatalogBook, error) {
	const query = `SELECT b.id, COALESCE(NULLIF(b.isbn, ''), b.title) AS code, b.title,
			COALESCE(c.title, 'BCA') AS course, b.isbn, b.price,
			(b.condition = 'USED') AS is_used,
			CASE WHEN b.condition = 'USED' THEN 'Used' ELSE 'New' END AS condition
		FROM books b
		LEFT JOIN courses c ON c.id = b.course_id
		ORDER BY b.title ASC
		LIMIT $1`

	var books []models.CatalogBook
	if err := r.db.SelectContext(ctx, &books, query, catalogPageSize); err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	if len(books) == 0 {
		return books, nil
	}

	zonesByBook, err := r.stockZoneCodes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		codes := zonesByBook[books[i].ID]
		if len(codes) == 0 {
			codes = []string{"HQ"}
		}
		books[i].StockZones = codes
	}
	return books, nil
}

// stockZoneCodes maps book id to the zone codes with positive stock.
func (r *CatalogRepository) stockZoneCodes(ctx context.Context) (map[string][]string, error) {
	const query = `SELECT s.book_id, z.code
		FROM stocks s
		JOIN zones z ON z.id = s.zone_id
		WHERE s.quantity > 0
		ORDER BY z.code ASC`

	rows := []struct {
		BookID string `db:"book_id"`
		Code   string `db:"code"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list stock zones: %w", err)
	}

	out := make(map[string][]string, len(rows))
	for _, row := range rows {
		out[row.BookID] = append(out[row.BookID], row.Code)
	}
	return out, nil
}

// FindBookByRef resolves a checkout reference against id, then ISBN, then
// exact title (first match by title ascending).
func (r *CatalogRepository) FindBookByRef(ctx context.Context, ref string) (*models.Book, error) {
	const query = `SELECT id, title, isbn, condition, price, course_id, created_at
		FROM books
		WHERE id = $1 OR isbn = $1 OR title = $1
		ORDER BY (id = $1) DESC, (isbn = $1) DESC, title ASC
		LIMIT 1`
	var book models.Book
	if err := r.db.GetContext(ctx, &book, query, ref); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find book by ref: %w", err)
	}
	return &book, nil
}

// CountBooks returns the catalog size for dashboard counts.
func (r *CatalogRepository) CountBooks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM books`); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

package memory

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ubtds/ubtds-api/internal/dto"
	"github.com/ubtds/ubtds-api/internal/models"
)

func TestSeedDataset(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	zones, err := store.Zones().ListSummaries(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 25)

	books, err := store.Catalog().ListCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 13)

	count, err := store.Catalog().CountBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(books), count)

	admin, err := store.Users().FindByEmail(ctx, "admin@ubtds.test")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Admin@123")))

	student, err := store.Users().FindByEmail(ctx, "student@ubtds.test")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, student.Role)
}

func TestZonesOrderedByDistance(t *testing.T) {
	store := NewStore()

	zones, err := store.Zones().ListSummaries(context.Background())
	require.NoError(t, err)
	assert.True(t, sort.SliceIsSorted(zones, func(i, j int) bool {
		return zones[i].DistanceKm < zones[j].DistanceKm
	}))
}

func TestCatalogOrderedByTitle(t *testing.T) {
	store := NewStore()

	books, err := store.Catalog().ListCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, sort.SliceIsSorted(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	}))
	for _, b := range books {
		assert.NotEmpty(t, b.StockZones, "book %s has no stock placement", b.ID)
	}
}

func TestCatalogListCapped(t *testing.T) {
	store := NewStore()
	for i := 0; i < catalogPageSize+20; i++ {
		store.catalog = append(store.catalog, models.CatalogBook{
			ID:    fmt.Sprintf("book-extra-%03d", i),
			Title: fmt.Sprintf("Extra Volume %03d", i),
		})
	}

	books, err := store.Catalog().ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, catalogPageSize)
}

func TestFindBookByRefEquivalence(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	books, err := store.Catalog().ListCatalog(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, books)
	first := books[0]

	byID, err := store.Catalog().FindBookByRef(ctx, first.ID)
	require.NoError(t, err)
	byTitle, err := store.Catalog().FindBookByRef(ctx, first.Title)
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byTitle.ID)

	if first.ISBN != "" {
		byISBN, err := store.Catalog().FindBookByRef(ctx, first.ISBN)
		require.NoError(t, err)
		assert.Equal(t, byID.ID, byISBN.ID)
	}

	_, err = store.Catalog().FindBookByRef(ctx, "no-such-ref")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserCreateAndLookup(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user := &models.User{Email: "new@ubtds.test", PasswordHash: "hash", FirstName: "New", Role: models.RoleStudent}
	require.NoError(t, store.Users().Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	found, err := store.Users().FindByEmail(ctx, "new@ubtds.test")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = store.Users().FindByEmail(ctx, "missing@ubtds.test")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestOrderLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	order := &models.Order{
		UserID:      "user-student",
		Status:      models.OrderPending,
		PaymentMode: models.PaymentCOD,
		Address:     "Dwarka Sector 10, New Delhi",
		EtaDays:     3,
		Items:       []models.OrderItem{{BookID: "book-1", Code: "BCS-011", Title: "Computer Basics", Quantity: 1}},
	}
	require.NoError(t, store.Orders().CreateWithItems(ctx, order))
	require.NotEmpty(t, order.ID)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	mine, err := store.Orders().ListByUser(ctx, "user-student")
	require.NoError(t, err)
	require.NotEmpty(t, mine)
	// Newest first.
	assert.Equal(t, order.ID, mine[0].ID)

	require.NoError(t, store.Orders().UpdateStatus(ctx, order.ID, models.OrderDispatched))
	found, err := store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDispatched, found.Status)

	err = store.Orders().UpdateStatus(ctx, "missing", models.OrderApproved)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPickupStatusMovesBetweenFilters(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	pendingBefore, err := store.Pickups().CountByStatus(ctx, models.PickupPending)
	require.NoError(t, err)
	require.Positive(t, pendingBefore)

	all, err := store.Pickups().List(ctx, "")
	require.NoError(t, err)
	var target string
	for _, p := range all {
		if p.Status == models.PickupPending {
			target = p.ID
			break
		}
	}
	require.NotEmpty(t, target)

	updated, err := store.Pickups().UpdateStatus(ctx, target, models.PickupApproved)
	require.NoError(t, err)
	assert.Equal(t, models.PickupApproved, updated.Status)

	pendingAfter, err := store.Pickups().CountByStatus(ctx, models.PickupPending)
	require.NoError(t, err)
	assert.Equal(t, pendingBefore-1, pendingAfter)
}

func TestZoneUpdateMetaPatchesInPlace(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	zones, err := store.Zones().ListSummaries(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, zones)
	id := zones[0].ID

	note := "renovation until October"
	rating := 3.9
	require.NoError(t, store.Zones().UpdateMeta(ctx, id, dto.ZoneUpdateRequest{Note: &note, Rating: &rating}))

	zone, err := store.Zones().FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, note, zone.Note)
	assert.Equal(t, rating, zone.Rating)

	err = store.Zones().UpdateMeta(ctx, "missing", dto.ZoneUpdateRequest{Note: &note})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFeedbackAppendOnly(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	before, err := store.Feedback().List(ctx)
	require.NoError(t, err)

	entry := &models.Feedback{Name: "Amit", Message: "Smooth delivery.", Type: "GENERAL"}
	require.NoError(t, store.Feedback().Create(ctx, entry))
	assert.NotEmpty(t, entry.ID)

	after, err := store.Feedback().List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, entry.ID, after[0].ID)
}

func TestBulkUpdateStatus(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	requests, err := store.Bulk().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, requests)

	updated, err := store.Bulk().UpdateStatus(ctx, requests[0].ID, models.BulkDispatched)
	require.NoError(t, err)
	assert.Equal(t, models.BulkDispatched, updated.Status)

	_, err = store.Bulk().UpdateStatus(ctx, "missing", models.BulkApproved)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

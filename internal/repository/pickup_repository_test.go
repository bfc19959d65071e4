package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubtds/ubtds-api/internal/models"
)

func TestPickupCreateDefaults(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPickupRepository(db)

	mock.ExpectExec("INSERT INTO pickup_requests").WillReturnResult(sqlmock.NewResult(1, 1))

	req := &models.PickupRequest{
		Enrollment: "2201234567",
		StudentID:  "user-1",
		Location:   "Z-06 Hub, Dwarka",
	}
	err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, models.PickupPending, req.Status)
	assert.False(t, req.RequestedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickupListScopedToStudent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPickupRepository(db)

	rows := sqlmock.NewRows([]string{"id", "enrollment", "student_id", "location", "notes", "status", "requested_at"}).
		AddRow("pr-1", "2201234567", "user-1", "Z-06 Hub, Dwarka", "", "PENDING", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM pickup_requests WHERE student_id").
		WithArgs("user-1").
		WillReturnRows(rows)

	requests, err := repo.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.PickupPending, requests[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickupUpdateStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPickupRepository(db)

	mock.ExpectExec("UPDATE pickup_requests SET status").
		WithArgs("pr-1", models.PickupApproved).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{"id", "enrollment", "student_id", "location", "notes", "status", "requested_at"}).
		AddRow("pr-1", "2201234567", "user-1", "Z-06 Hub, Dwarka", "", "APPROVED", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM pickup_requests WHERE id").
		WithArgs("pr-1").
		WillReturnRows(rows)

	updated, err := repo.UpdateStatus(context.Background(), "pr-1", models.PickupApproved)
	require.NoError(t, err)
	assert.Equal(t, models.PickupApproved, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickupUpdateStatusNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPickupRepository(db)

	mock.ExpectExec("UPDATE pickup_requests SET status").
		WithArgs("missing", models.PickupRejected).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateStatus(context.Background(), "missing", models.PickupRejected)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickupCountByStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPickupRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pickup_requests WHERE status").
		WithArgs(models.PickupPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByStatus(context.Background(), models.PickupPending)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

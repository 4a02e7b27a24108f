package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luminavenues/internal/database"
	"luminavenues/internal/domain"
)

func testRepo(t *testing.T) *BookingRepository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewBookingRepository(db)
}

func testBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		VenueID:    "v1",
		VenueName:  "The Grand Ballroom",
		Date:       "2024-06-01",
		StartTime:  "10:00",
		EndTime:    "14:00",
		TotalPrice: 200,
		GuestCount: 50,
		Status:     domain.BookingConfirmed,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestAppendAndReadAll_InsertionOrder(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, testBooking(fmt.Sprintf("b%d", i))))
	}

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, b := range got {
		assert.Equal(t, fmt.Sprintf("b%d", i), b.ID)
	}
}

func TestReadAll_EmptyStore(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppend_DuplicateIDRejected(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testBooking("b1")))
	err := repo.Append(ctx, testBooking("b1"))
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAppend_RoundTripsAllFields(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	in := testBooking("b1")
	require.NoError(t, repo.Append(ctx, in))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	b := got[0]
	assert.Equal(t, in.ID, b.ID)
	assert.Equal(t, in.VenueID, b.VenueID)
	assert.Equal(t, in.VenueName, b.VenueName)
	assert.Equal(t, in.Date, b.Date)
	assert.Equal(t, in.StartTime, b.StartTime)
	assert.Equal(t, in.EndTime, b.EndTime)
	assert.Equal(t, in.TotalPrice, b.TotalPrice)
	assert.Equal(t, in.GuestCount, b.GuestCount)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teesheet/infras/otel/mocks"
	"teesheet/internal/domains/booking/model"
	"teesheet/internal/domains/booking/repository"
	"teesheet/shared/timezone"
)

func newBooking(t *testing.T, dateTime string, players int) model.Booking {
	t.Helper()

	parsed, err := timezone.ParseDateTime(dateTime)
	require.NoError(t, err)

	return model.Booking{
		CourseID: "sterling_hills",
		DateTime: parsed,
		Players:  players,
		Holes:    18,
		WalkRide: "riding",
		Name:     "Jordan",
		Phone:    "555-0100",
	}
}

func TestBookingRepository_Insert(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	first, err := repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 2))
	require.NoError(t, err)
	assert.Equal(t, "BOOK-1", first.BookingID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Insert(ctx, newBooking(t, "2025-12-21T07:08:00", 4))
	require.NoError(t, err)
	assert.Equal(t, "BOOK-2", second.BookingID)
}

func TestBookingRepository_Insert_CapacityExceeded(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	_, err := repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 4))
	require.NoError(t, err)

	// The slot already holds 4 players; even one more must be rejected.
	_, err = repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 1))
	assert.True(t, errors.Is(err, repository.ErrCapacityExceeded))

	// The failed booking must not be stored.
	bookings, err := repo.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	// A different slot still accepts bookings.
	_, err = repo.Insert(ctx, newBooking(t, "2025-12-21T07:08:00", 1))
	assert.NoError(t, err)
}

func TestBookingRepository_Insert_ExactFit(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	_, err := repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 2))
	require.NoError(t, err)

	// 2 already booked plus 2 more is exactly the capacity.
	_, err = repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 2))
	assert.NoError(t, err)

	_, err = repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 1))
	assert.True(t, errors.Is(err, repository.ErrCapacityExceeded))
}

func TestBookingRepository_PlayersByTime(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	_, err := repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 2))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newBooking(t, "2025-12-21T07:00:00", 1))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newBooking(t, "2025-12-21T07:08:00", 4))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newBooking(t, "2025-12-22T07:00:00", 3))
	require.NoError(t, err)

	date, err := timezone.ParseDate("2025-12-21")
	require.NoError(t, err)

	booked, err := repo.PlayersByTime(ctx, "sterling_hills", date)
	require.NoError(t, err)
	require.Len(t, booked, 2)

	firstSlot, err := timezone.ParseDateTime("2025-12-21T07:00:00")
	require.NoError(t, err)
	secondSlot, err := timezone.ParseDateTime("2025-12-21T07:08:00")
	require.NoError(t, err)

	assert.Equal(t, 3, booked[firstSlot])
	assert.Equal(t, 4, booked[secondSlot])

	otherCourse, err := repo.PlayersByTime(ctx, "unknown", date)
	require.NoError(t, err)
	assert.Empty(t, otherCourse)
}

func TestBookingRepository_GetAll(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	first := newBooking(t, "2025-12-21T07:00:00", 1)
	second := newBooking(t, "2025-12-21T07:08:00", 1)
	third := newBooking(t, "2025-12-21T07:16:00", 1)
	third.CourseID = "other_course"

	for _, booking := range []model.Booking{first, second, third} {
		_, err := repo.Insert(ctx, booking)
		require.NoError(t, err)
	}

	// No filter returns everything in insertion order.
	all, err := repo.GetAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "BOOK-1", all[0].BookingID)
	assert.Equal(t, "BOOK-2", all[1].BookingID)
	assert.Equal(t, "BOOK-3", all[2].BookingID)

	// The course filter keeps only matching bookings.
	filtered, err := repo.GetAll(ctx, "sterling_hills")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "BOOK-1", filtered[0].BookingID)
	assert.Equal(t, "BOOK-2", filtered[1].BookingID)
}

func TestBookingRepository_ConcurrentInsert(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	slot, err := timezone.ParseDateTime("2025-12-21T07:00:00")
	require.NoError(t, err)

	const numGoroutines = 10
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()

			_, insertErr := repo.Insert(ctx, model.Booking{
				CourseID: "sterling_hills",
				DateTime: slot,
				Players:  1,
				Holes:    18,
				WalkRide: "riding",
				Name:     "Racer",
				Phone:    "555-0100",
			})
			results <- insertErr
		}()
	}

	wg.Wait()
	close(results)

	successCount := 0
	failCount := 0
	for err := range results {
		if err == nil {
			successCount++
		} else {
			failCount++
		}
	}

	// Exactly the capacity fits, no matter how the inserts interleave.
	assert.Equal(t, 4, successCount, "exactly capacity bookings should succeed")
	assert.Equal(t, numGoroutines-4, failCount, "all other bookings should fail")

	date, err := timezone.ParseDate("2025-12-21")
	require.NoError(t, err)
	booked, err := repo.PlayersByTime(ctx, "sterling_hills", date)
	require.NoError(t, err)
	assert.Equal(t, 4, booked[slot])
}

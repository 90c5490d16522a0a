package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"teesheet/infras/otel"
	"teesheet/internal/domains/booking/model"
	"teesheet/shared/constant"
	"teesheet/shared/timezone"
)

// ErrCapacityExceeded is returned by Insert when a booking would push the
// player total at its tee time past model.MaxPlayersPerSlot.
var ErrCapacityExceeded = errors.New("capacity exceeded for tee time")

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	PlayersByTime(ctx context.Context, courseID string, date time.Time) (map[time.Time]int, error)
	GetAll(ctx context.Context, courseID string) ([]model.Booking, error)
}

// repositoryImpl is the in-memory booking ledger. It owns every Booking record
// for the life of the process and assigns ids sequentially. The mutex holds
// the capacity check and the insert together, so concurrent creates cannot
// overbook a slot.
type repositoryImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
	nextID   int
	otel     otel.Otel
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		nextID: 1,
		otel:   otel,
	}
}

// Insert implements Booking.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	booked := 0
	for _, existing := range repo.bookings {
		if existing.CourseID == booking.CourseID && existing.DateTime.Equal(booking.DateTime) {
			booked += existing.Players
		}
	}

	if booked+booking.Players > model.MaxPlayersPerSlot {
		scope.TraceError(ErrCapacityExceeded)

		return model.Booking{}, ErrCapacityExceeded
	}

	booking.BookingID = model.BookingIDPrefix + strconv.Itoa(repo.nextID)
	booking.CreatedAt = timezone.Now()
	repo.nextID++

	repo.bookings = append(repo.bookings, booking)

	scope.SetAttribute("booking.id", booking.BookingID)

	return booking, nil
}

// PlayersByTime implements Booking. It aggregates booked player counts per
// exact tee time for one course on one calendar date.
func (repo *repositoryImpl) PlayersByTime(ctx context.Context, courseID string, date time.Time) (map[time.Time]int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".PlayersByTime")
	defer scope.End()

	year, month, day := timezone.ToAppTime(date).Date()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	booked := make(map[time.Time]int)
	for _, booking := range repo.bookings {
		if booking.CourseID != courseID {
			continue
		}

		bYear, bMonth, bDay := timezone.ToAppTime(booking.DateTime).Date()
		if bYear != year || bMonth != month || bDay != day {
			continue
		}

		booked[booking.DateTime] += booking.Players
	}

	return booked, nil
}

// GetAll implements Booking. Bookings come back in insertion order; an empty
// courseID means no filter.
func (repo *repositoryImpl) GetAll(ctx context.Context, courseID string) ([]model.Booking, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	bookings := make([]model.Booking, 0, len(repo.bookings))
	for _, booking := range repo.bookings {
		if courseID != "" && booking.CourseID != courseID {
			continue
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

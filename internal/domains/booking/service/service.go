package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"teesheet/config"
	"teesheet/infras/metrics"
	"teesheet/infras/otel"
	"teesheet/internal/domains/booking/model"
	"teesheet/internal/domains/booking/model/dto"
	"teesheet/internal/domains/booking/repository"
	courseRepository "teesheet/internal/domains/course/repository"
	"teesheet/shared"
	"teesheet/shared/cache"
	"teesheet/shared/constant"
	"teesheet/shared/failure"
	"teesheet/shared/timezone"
)

const (
	cacheAvailability  = "booking:availability"
	cacheGetAllBooking = "booking:get_all"

	capacityExceededMessage = "That tee time is full. Please choose another time."
	unknownCourseMessage    = "Unknown course_id"
	invalidTimeWindowMsg    = "Invalid time_window"
)

type Booking interface {
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, courseID string) ([]dto.BookingResponse, error)
	ExportTeeSheet(ctx context.Context, courseID string, date time.Time) ([]byte, string, error)
}

type serviceImpl struct {
	repo    repository.Booking
	courses courseRepository.Course
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Booking, courses courseRepository.Course, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		courses: courses,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	course, err := s.courses.Get(ctx, req.CourseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get course")

		return res, err
	}

	if course.ID == "" {
		return res, failure.NotFound(unknownCourseMessage) // nolint:wrapcheck
	}

	if !validTimeWindow(req.TimeWindow) {
		return res, failure.BadRequestFromString(invalidTimeWindowMsg) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheAvailability, req)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	booked, err := s.repo.PlayersByTime(ctx, req.CourseID, req.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate booked players")

		return res, fmt.Errorf("failed to aggregate booked players: %w", err)
	}

	availableTimes := make([]string, 0)
	for _, slot := range course.SlotsFor(req.Date) {
		if booked[slot]+req.Players > model.MaxPlayersPerSlot {
			continue
		}

		if !windowContains(req.TimeWindow, slot.Hour()) {
			continue
		}

		availableTimes = append(availableTimes, timezone.FormatDateTime(slot))
	}

	res = dto.AvailabilityResponse{
		CourseID:       req.CourseID,
		Date:           timezone.FormatDate(req.Date),
		AvailableTimes: availableTimes,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	course, err := s.courses.Get(ctx, req.CourseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get course")

		return res, err
	}

	if course.ID == "" {
		return res, failure.NotFound(unknownCourseMessage) // nolint:wrapcheck
	}

	dateTime, err := timezone.ParseDateTime(req.DateTime)
	if err != nil {
		return res, failure.BadRequestFromString("date_time must be an ISO datetime like 2025-12-21T07:00:00") // nolint:wrapcheck
	}

	booking, err := s.repo.Insert(ctx, req.ToModel(dateTime))
	if err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			metrics.IncCapacityRejection(req.CourseID)

			return res, failure.CapacityExceeded(capacityExceededMessage) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	metrics.IncBookingCreated(booking.CourseID)

	log.Info().
		Str("booking_id", booking.BookingID).
		Str("course_id", booking.CourseID).
		Int("players", booking.Players).
		Msg("booking created")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheAvailability)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, courseID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllBooking, courseID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx, courseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// ExportTeeSheet renders one day's tee sheet for a course as an XLSX workbook
// and returns the encoded bytes with a download filename.
func (s *serviceImpl) ExportTeeSheet(ctx context.Context, courseID string, date time.Time) (content []byte, filename string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportTeeSheet")
	defer scope.End()
	defer scope.TraceIfError(err)

	course, err := s.courses.Get(ctx, courseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get course")

		return nil, "", err
	}

	if course.ID == "" {
		return nil, "", failure.NotFound(unknownCourseMessage) // nolint:wrapcheck
	}

	booked, err := s.repo.PlayersByTime(ctx, courseID, date)
	if err != nil {
		return nil, "", fmt.Errorf("failed to aggregate booked players: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, courseID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get bookings: %w", err)
	}

	names := make(map[time.Time][]string)
	dateStr := timezone.FormatDate(date)
	for _, booking := range bookings {
		if timezone.FormatDate(booking.DateTime) == dateStr {
			names[booking.DateTime] = append(names[booking.DateTime], booking.Name)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Tee Sheet"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheetName, "A1", course.Name)
	_ = f.SetCellValue(sheetName, "A2", dateStr)
	_ = f.MergeCell(sheetName, "A1", "D1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})

	headers := []string{"Time", "Booked", "Open", "Players"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheetName, cell, header)
	}
	_ = f.SetCellStyle(sheetName, "A3", "D3", headerStyle)

	for i, slot := range course.SlotsFor(date) {
		row := i + 4
		bookedPlayers := booked[slot]

		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), slot.Format("15:04"))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), bookedPlayers)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), model.MaxPlayersPerSlot-bookedPlayers)

		if parties := names[slot]; len(parties) > 0 {
			joined := parties[0]
			for _, name := range parties[1:] {
				joined += ", " + name
			}
			_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), joined)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 10)
	_ = f.SetColWidth(sheetName, "B", "C", 8)
	_ = f.SetColWidth(sheetName, "D", "D", 40)
	_ = f.DeleteSheet("Sheet1")

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode tee sheet workbook: %w", err)
	}

	filename = fmt.Sprintf("teesheet_%s_%s.xlsx", courseID, dateStr)

	return buffer.Bytes(), filename, nil
}

func validTimeWindow(window string) bool {
	switch window {
	case model.TimeWindowAll, model.TimeWindowMorning, model.TimeWindowAfternoon, model.TimeWindowEvening:
		return true
	}

	return false
}

// windowContains reports whether a slot's local hour falls inside the coarse
// time-of-day window. Morning ends before noon, afternoon runs to 17:00, and
// evening is everything from 17:00 on.
func windowContains(window string, hour int) bool {
	switch window {
	case model.TimeWindowMorning:
		return hour < 12
	case model.TimeWindowAfternoon:
		return hour >= 12 && hour < 17
	case model.TimeWindowEvening:
		return hour >= 17
	}

	return true
}

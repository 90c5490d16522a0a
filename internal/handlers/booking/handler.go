package booking

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"teesheet/infras/otel"
	"teesheet/internal/domains/booking/model"
	"teesheet/internal/domains/booking/model/dto"
	"teesheet/internal/domains/booking/service"
	"teesheet/shared/constant"
	"teesheet/shared/failure"
	"teesheet/shared/timezone"
	"teesheet/shared/validator"
	"teesheet/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)
	router.Post("/booking", handler.CreateBooking)
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/export", handler.ExportTeeSheet)
	})
}

// GetAvailability lists the open tee times for a course on a date.
// @Summary Get available tee times
// @Description List every tee time on the requested date with room for the requesting party, optionally narrowed to a time of day.
// @Tags Booking
// @Accept json
// @Produce json
// @Param course_id query string true "Course ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time_window query string false "all, morning, afternoon or evening" default(all)
// @Param players query int false "Players in the party" default(4)
// @Param holes query int false "Holes to play" default(18)
// @Param walk_ride query string false "walking or riding" default(riding)
// @Success 200 {object} dto.AvailabilityResponse "Available tee times"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	req, err := parseAvailabilityQuery(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability query")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking reserves a tee time.
// @Summary Book a tee time
// @Description Create a booking for an exact tee time, provided the party still fits under the 4-player slot capacity.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} dto.BookingResponse "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /booking [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created: " + res.BookingID)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists stored bookings.
// @Summary List bookings
// @Description List every booking in creation order, optionally filtered to one course.
// @Tags Booking
// @Accept json
// @Produce json
// @Param course_id query string false "Course ID filter"
// @Success 200 {array} dto.BookingResponse "Bookings in creation order"
// @Failure 500 {object} response.Error
// @Router /bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	courseID := request.URL.Query().Get(constant.RequestParamCourseID)

	res, err := handler.service.GetAll(ctx, courseID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportTeeSheet downloads one day's tee sheet as a spreadsheet.
// @Summary Export a tee sheet
// @Description Download an XLSX tee sheet for a course and date, one row per slot with booked and open player counts.
// @Tags Booking
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param course_id query string true "Course ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {file} file "Tee sheet workbook"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /bookings/export [get]
func (handler *Handler) ExportTeeSheet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportTeeSheet")
	defer scope.End()

	courseID := request.URL.Query().Get(constant.RequestParamCourseID)

	date, err := timezone.ParseDate(request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(failure.InvalidDateParam)

		response.WithError(writer, failure.InvalidDateParam)

		return
	}

	content, filename, err := handler.service.ExportTeeSheet(ctx, courseID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export tee sheet")

		response.WithError(writer, err)

		return
	}

	response.WithXLSX(writer, filename, content)
}

func parseAvailabilityQuery(request *http.Request) (dto.AvailabilityRequest, error) {
	query := request.URL.Query()

	req := dto.AvailabilityRequest{
		CourseID:   query.Get(constant.RequestParamCourseID),
		TimeWindow: model.TimeWindowAll,
		Players:    model.DefaultPlayers,
		Holes:      model.DefaultHoles,
		WalkRide:   model.DefaultWalkRide,
	}

	date, err := timezone.ParseDate(query.Get(constant.RequestParamDate))
	if err != nil {
		return req, failure.InvalidDateParam // nolint:wrapcheck
	}
	req.Date = date

	if window := query.Get(constant.RequestParamTimeWindow); window != "" {
		req.TimeWindow = window
	}

	if players := query.Get(constant.RequestParamPlayers); players != "" {
		req.Players, err = strconv.Atoi(players)
		if err != nil {
			return req, failure.InvalidPlayersParam // nolint:wrapcheck
		}
	}

	if holes := query.Get(constant.RequestParamHoles); holes != "" {
		req.Holes, err = strconv.Atoi(holes)
		if err != nil {
			return req, failure.InvalidHolesParam // nolint:wrapcheck
		}
	}

	if walkRide := query.Get(constant.RequestParamWalkRide); walkRide != "" {
		req.WalkRide = walkRide
	}

	return req, nil
}

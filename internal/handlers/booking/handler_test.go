package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teesheet/config"
	"teesheet/infras/otel/mocks"
	bookingRepository "teesheet/internal/domains/booking/repository"
	bookingService "teesheet/internal/domains/booking/service"
	courseRepository "teesheet/internal/domains/course/repository"
	"teesheet/internal/handlers/booking"
	"teesheet/shared/cache"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	mockOtel := mocks.NewOtel()

	svc := bookingService.New(
		bookingRepository.New(mockOtel),
		courseRepository.New(mockOtel),
		cfg,
		cache.NewRedisCache(client, mockOtel),
		mockOtel,
	)

	handler := booking.New(svc, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func doRequest(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestGetAvailability(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/availability?course_id=sterling_hills&date=2025-12-21", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		CourseID       string   `json:"course_id"`
		Date           string   `json:"date"`
		AvailableTimes []string `json:"available_times"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Equal(t, "sterling_hills", payload.CourseID)
	assert.Equal(t, "2025-12-21", payload.Date)
	require.Len(t, payload.AvailableTimes, 76)
	assert.Equal(t, "2025-12-21T07:00:00", payload.AvailableTimes[0])
	assert.Equal(t, "2025-12-21T17:00:00", payload.AvailableTimes[75])
}

func TestGetAvailability_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown course",
			target:   "/availability?course_id=unknown&date=2025-12-21",
			wantCode: http.StatusNotFound,
			wantErr:  "Unknown course_id",
		},
		{
			name:     "invalid time window",
			target:   "/availability?course_id=sterling_hills&date=2025-12-21&time_window=night",
			wantCode: http.StatusBadRequest,
			wantErr:  "Invalid time_window",
		},
		{
			name:     "missing date",
			target:   "/availability?course_id=sterling_hills",
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid date parameter",
		},
		{
			name:     "bad players",
			target:   "/availability?course_id=sterling_hills&date=2025-12-21&players=foursome",
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid players parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantCode, recorder.Code)

			var payload struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tt.wantErr, payload.Error)
		})
	}
}

func TestCreateBooking(t *testing.T) {
	router := newTestRouter(t)

	body := `{"course_id": "sterling_hills", "date_time": "2025-12-21T07:00:00", "players": 2, "name": "Jordan", "phone": "555-0100"}`
	recorder := doRequest(t, router, http.MethodPost, "/booking", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		BookingID string `json:"booking_id"`
		CourseID  string `json:"course_id"`
		DateTime  string `json:"date_time"`
		Players   int    `json:"players"`
		Holes     int    `json:"holes"`
		WalkRide  string `json:"walk_ride"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Equal(t, "BOOK-1", payload.BookingID)
	assert.Equal(t, "sterling_hills", payload.CourseID)
	assert.Equal(t, "2025-12-21T07:00:00", payload.DateTime)
	assert.Equal(t, 2, payload.Players)
	assert.Equal(t, 18, payload.Holes)
	assert.Equal(t, "riding", payload.WalkRide)
}

func TestCreateBooking_Errors(t *testing.T) {
	router := newTestRouter(t)

	// Fill the 07:00 slot first.
	full := `{"course_id": "sterling_hills", "date_time": "2025-12-21T07:00:00", "players": 4, "name": "Jordan", "phone": "555-0100"}`
	recorder := doRequest(t, router, http.MethodPost, "/booking", full)
	require.Equal(t, http.StatusOK, recorder.Code)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "capacity exceeded",
			body:     `{"course_id": "sterling_hills", "date_time": "2025-12-21T07:00:00", "players": 1, "name": "Casey", "phone": "555-0101"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "That tee time is full. Please choose another time.",
		},
		{
			name:     "unknown course",
			body:     `{"course_id": "unknown", "date_time": "2025-12-21T07:00:00", "players": 1, "name": "Casey", "phone": "555-0101"}`,
			wantCode: http.StatusNotFound,
			wantErr:  "Unknown course_id",
		},
		{
			name:     "too many players",
			body:     `{"course_id": "sterling_hills", "date_time": "2025-12-21T07:08:00", "players": 5, "name": "Casey", "phone": "555-0101"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "Players must be less than or equal to 4",
		},
		{
			name:     "missing name",
			body:     `{"course_id": "sterling_hills", "date_time": "2025-12-21T07:08:00", "players": 2, "phone": "555-0101"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, router, http.MethodPost, "/booking", tt.body)
			assert.Equal(t, tt.wantCode, recorder.Code)

			var payload struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tt.wantErr, payload.Error)
		})
	}
}

func TestGetBookings(t *testing.T) {
	router := newTestRouter(t)

	bodies := []string{
		`{"course_id": "sterling_hills", "date_time": "2025-12-21T07:00:00", "players": 1, "name": "Jordan", "phone": "555-0100"}`,
		`{"course_id": "sterling_hills", "date_time": "2025-12-21T07:08:00", "players": 2, "name": "Casey", "phone": "555-0101"}`,
	}
	for _, body := range bodies {
		recorder := doRequest(t, router, http.MethodPost, "/booking", body)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := doRequest(t, router, http.MethodGet, "/bookings", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var bookings []struct {
		BookingID string `json:"booking_id"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &bookings))
	require.Len(t, bookings, 2)
	assert.Equal(t, "BOOK-1", bookings[0].BookingID)
	assert.Equal(t, "BOOK-2", bookings[1].BookingID)

	recorder = doRequest(t, router, http.MethodGet, "/bookings?course_id=unknown", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &bookings))
	assert.Empty(t, bookings)
}

func TestExportTeeSheet(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/bookings/export?course_id=sterling_hills&date=2025-12-21", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "teesheet_sterling_hills_2025-12-21.xlsx")
	assert.NotEmpty(t, recorder.Body.Bytes())
}

func TestExportTeeSheet_Errors(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/bookings/export?course_id=unknown&date=2025-12-21", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/bookings/export?course_id=sterling_hills", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

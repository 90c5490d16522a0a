package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teesheet",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teesheet",
			Name:      "bookings_created_total",
			Help:      "Bookings created by course.",
		},
		[]string{"course_id"},
	)

	capacityRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teesheet",
			Name:      "capacity_rejections_total",
			Help:      "Booking attempts rejected because the tee time was full.",
		},
		[]string{"course_id"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, capacityRejections)
	})
}

// IncHTTPRequest increments the request counter for a route/method/status triple.
func IncHTTPRequest(route, method string, status int) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// IncBookingCreated increments the created-bookings counter for a course.
func IncBookingCreated(courseID string) {
	bookingsCreated.WithLabelValues(courseID).Inc()
}

// IncCapacityRejection increments the full-slot rejection counter for a course.
func IncCapacityRejection(courseID string) {
	capacityRejections.WithLabelValues(courseID).Inc()
}

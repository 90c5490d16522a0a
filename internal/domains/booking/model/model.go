package model

import "time"

const (
	EntityName = "booking"

	// MaxPlayersPerSlot caps the total players across all bookings sharing one
	// exact tee time.
	MaxPlayersPerSlot = 4

	BookingIDPrefix = "BOOK-"

	DefaultPlayers  = 4
	DefaultHoles    = 18
	DefaultWalkRide = "riding"
)

const (
	TimeWindowAll       = "all"
	TimeWindowMorning   = "morning"
	TimeWindowAfternoon = "afternoon"
	TimeWindowEvening   = "evening"
)

// Booking is one confirmed tee-time reservation. Bookings are never mutated or
// deleted once stored.
type Booking struct {
	BookingID string
	CourseID  string
	DateTime  time.Time
	Players   int
	Holes     int
	WalkRide  string
	Name      string
	Phone     string
	CreatedAt time.Time
}

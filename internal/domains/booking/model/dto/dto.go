package dto

import (
	"time"

	"teesheet/internal/domains/booking/model"
	"teesheet/shared/timezone"
)

// AvailabilityRequest carries the parsed availability query. Holes and
// WalkRide are accepted for forward compatibility but never affect which
// slots come back.
type AvailabilityRequest struct {
	CourseID   string    `json:"course_id"`
	Date       time.Time `json:"date"`
	TimeWindow string    `json:"time_window"`
	Players    int       `json:"players"`
	Holes      int       `json:"holes"`
	WalkRide   string    `json:"walk_ride"`
}

type AvailabilityResponse struct {
	CourseID       string   `json:"course_id"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
}

type CreateBookingRequest struct {
	CourseID string `json:"course_id" validate:"required"`
	DateTime string `json:"date_time" validate:"required"`
	Players  int    `json:"players" validate:"required,gte=1,lte=4"`
	Holes    int    `json:"holes" validate:"omitempty,gte=1"`
	WalkRide string `json:"walk_ride"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// ToModel builds the Booking to store, applying the defaults for omitted
// fields. The tee time is parsed by the caller.
func (c *CreateBookingRequest) ToModel(dateTime time.Time) model.Booking {
	holes := c.Holes
	if holes == 0 {
		holes = model.DefaultHoles
	}

	walkRide := c.WalkRide
	if walkRide == "" {
		walkRide = model.DefaultWalkRide
	}

	return model.Booking{
		CourseID: c.CourseID,
		DateTime: dateTime,
		Players:  c.Players,
		Holes:    holes,
		WalkRide: walkRide,
		Name:     c.Name,
		Phone:    c.Phone,
	}
}

type BookingResponse struct {
	BookingID string `json:"booking_id"`
	CourseID  string `json:"course_id"`
	DateTime  string `json:"date_time"`
	Players   int    `json:"players"`
	Holes     int    `json:"holes"`
	WalkRide  string `json:"walk_ride"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.BookingID
	r.CourseID = model.CourseID
	r.DateTime = timezone.FormatDateTime(model.DateTime)
	r.Players = model.Players
	r.Holes = model.Holes
	r.WalkRide = model.WalkRide
	r.Name = model.Name
	r.Phone = model.Phone
}

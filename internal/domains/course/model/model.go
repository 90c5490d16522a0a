package model

import (
	"time"

	"teesheet/shared/constant"
	"teesheet/shared/timezone"
)

const (
	EntityName = "course"
)

// Course is a statically configured golf course. Instances never change after
// catalog load.
type Course struct {
	ID              string
	Name            string
	FirstTime       string // earliest tee time, "15:04" clock
	LastTime        string // latest tee time, "15:04" clock
	IntervalMinutes int
}

// SlotsFor produces every tee-off datetime on the given calendar date, from
// FirstTime through LastTime inclusive, stepping IntervalMinutes, ascending.
// A course whose FirstTime is after its LastTime has no slots that day, and a
// non-positive interval yields none either.
func (c Course) SlotsFor(date time.Time) []time.Time {
	if c.IntervalMinutes <= 0 {
		return nil
	}

	first, err := time.Parse(constant.ClockTimeFormat, c.FirstTime)
	if err != nil {
		return nil
	}

	last, err := time.Parse(constant.ClockTimeFormat, c.LastTime)
	if err != nil {
		return nil
	}

	loc := timezone.GetLocation()
	year, month, day := timezone.ToAppTime(date).Date()

	slot := time.Date(year, month, day, first.Hour(), first.Minute(), 0, 0, loc)
	end := time.Date(year, month, day, last.Hour(), last.Minute(), 0, 0, loc)

	var slots []time.Time
	for !slot.After(end) {
		slots = append(slots, slot)
		slot = slot.Add(time.Duration(c.IntervalMinutes) * time.Minute)
	}

	return slots
}

package dto

import (
	"teesheet/internal/domains/course/model"
)

type CourseResponse struct {
	ID              string `json:"course_id"`
	Name            string `json:"name"`
	FirstTime       string `json:"first_time"`
	LastTime        string `json:"last_time"`
	IntervalMinutes int    `json:"interval_minutes"`
}

func (r *CourseResponse) FromModel(model model.Course) {
	r.ID = model.ID
	r.Name = model.Name
	r.FirstTime = model.FirstTime
	r.LastTime = model.LastTime
	r.IntervalMinutes = model.IntervalMinutes
}

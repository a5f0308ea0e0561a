package model

import (
	"time"

	"github.com/campuskit/examsched-backend/internal/seating"
)

// SeatAssignment is one persisted occupied seat of an exam date.
type SeatAssignment struct {
	ID         int       `json:"id"`
	ExamDate   time.Time `json:"exam_date"`
	VenueID    int       `json:"venue_id"`
	Row        int       `json:"row"`
	Col        int       `json:"col"`
	Label      string    `json:"label"`
	StudentID  int       `json:"student_id"`
	CourseCode string    `json:"course_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// VenuePlan is the API view of one venue's seating for a date: geometry plus
// the full labeled grid, empty seats included.
type VenuePlan struct {
	VenueID    int            `json:"venue_id"`
	VenueName  string         `json:"venue_name"`
	Department string         `json:"department,omitempty"`
	Rows       int            `json:"rows"`
	Cols       int            `json:"cols"`
	Capacity   int            `json:"capacity"`
	Seats      []seating.Seat `json:"seats"`
}

// UnassignedStudent is a sitting the planner could not seat.
type UnassignedStudent struct {
	StudentID   int    `json:"student_id"`
	StudentName string `json:"student_name"`
	RegNumber   string `json:"reg_number"`
	Department  string `json:"department,omitempty"`
	CourseCode  string `json:"course_code"`
	Reason      string `json:"reason"`
}

// SeatingResult is the full outcome of one seat assignment run.
type SeatingResult struct {
	ExamDate   time.Time           `json:"exam_date"`
	Plans      []VenuePlan         `json:"plans"`
	Unassigned []UnassignedStudent `json:"unassigned"`
}

// SwapSeatsRequest exchanges the occupants of two seats, possibly across
// venues. Coordinates are 1-indexed, matching seat labels.
type SwapSeatsRequest struct {
	VenueA int `json:"venue_a" binding:"required,min=1"`
	RowA   int `json:"row_a" binding:"required,min=1"`
	ColA   int `json:"col_a" binding:"required,min=1"`
	VenueB int `json:"venue_b" binding:"required,min=1"`
	RowB   int `json:"row_b" binding:"required,min=1"`
	ColB   int `json:"col_b" binding:"required,min=1"`
}

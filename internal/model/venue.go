package model

import "time"

// Venue is a physical exam room with a row/column seat geometry. An empty
// Department marks it department-agnostic: the fallback pool for departments
// without a room of their own.
type Venue struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department,omitempty"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Capacity   int       `json:"capacity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateVenueRequest is the payload for creating a venue.
type CreateVenueRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Department string `json:"department" binding:"omitempty,min=2,max=50"`
	Rows       int    `json:"rows" binding:"required,min=1,max=100"`
	Cols       int    `json:"cols" binding:"required,min=1,max=100"`
}

// UpdateVenueRequest is the payload for updating a venue.
type UpdateVenueRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Department string `json:"department" binding:"omitempty,min=2,max=50"`
	Rows       int    `json:"rows" binding:"required,min=1,max=100"`
	Cols       int    `json:"cols" binding:"required,min=1,max=100"`
}

// Holiday is a date excluded from the exam window.
type Holiday struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateHolidayRequest is the payload for declaring a holiday.
type CreateHolidayRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Name string `json:"name" binding:"required,min=2,max=100"`
}

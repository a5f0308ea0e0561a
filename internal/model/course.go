package model

import "time"

// ProgramType distinguishes the two degree programs sharing the exam window.
// Semesters 1-8 belong to the undergraduate program; semesters 9-12 map to
// semesters 1-4 of the postgraduate program.
type ProgramType string

const (
	ProgramUG ProgramType = "UG"
	ProgramPG ProgramType = "PG"
)

// Course represents one examinable course as entered by the admin. Codes may
// contain cross-program variants (e.g. BCA301 / MCA301) that the scheduler
// merges into a single scheduling unit.
type Course struct {
	ID         int         `json:"id"`
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	Semester   int         `json:"semester"`
	Program    ProgramType `json:"program"`
	GapDays    int         `json:"gap_days"`
	IsLab      bool        `json:"is_lab"`
	Teacher    string      `json:"teacher"`
	Department string      `json:"department"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Code       string      `json:"code" binding:"required,min=2,max=20"`
	Name       string      `json:"name" binding:"required,min=2,max=150"`
	Semester   int         `json:"semester" binding:"required,min=1,max=12"`
	Program    ProgramType `json:"program" binding:"required,oneof=UG PG"`
	GapDays    int         `json:"gap_days" binding:"omitempty,min=1,max=14"`
	IsLab      bool        `json:"is_lab"`
	Teacher    string      `json:"teacher" binding:"omitempty,max=150"`
	Department string      `json:"department" binding:"required,min=2,max=50"`
}

// UpdateCourseRequest is the payload for updating an existing course.
type UpdateCourseRequest struct {
	Code       string      `json:"code" binding:"required,min=2,max=20"`
	Name       string      `json:"name" binding:"required,min=2,max=150"`
	Semester   int         `json:"semester" binding:"required,min=1,max=12"`
	Program    ProgramType `json:"program" binding:"required,oneof=UG PG"`
	GapDays    int         `json:"gap_days" binding:"omitempty,min=1,max=14"`
	IsLab      bool        `json:"is_lab"`
	Teacher    string      `json:"teacher" binding:"omitempty,max=150"`
	Department string      `json:"department" binding:"required,min=2,max=50"`
}

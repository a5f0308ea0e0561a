package model

import "time"

// Student represents one examinee.
type Student struct {
	ID         int       `json:"id"`
	RegNumber  string    `json:"reg_number"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for registering a student.
type CreateStudentRequest struct {
	RegNumber  string `json:"reg_number" binding:"required,min=4,max=30"`
	Name       string `json:"name" binding:"required,min=2,max=150"`
	Department string `json:"department" binding:"required,min=2,max=50"`
}

// UpdateStudentRequest is the payload for updating a student.
type UpdateStudentRequest struct {
	RegNumber  string `json:"reg_number" binding:"required,min=4,max=30"`
	Name       string `json:"name" binding:"required,min=2,max=150"`
	Department string `json:"department" binding:"required,min=2,max=50"`
}

// Enrollment links a student to a course they are sitting this exam window.
type Enrollment struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	CourseID  int       `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SetEnrollmentsRequest replaces a student's enrolled course set.
type SetEnrollmentsRequest struct {
	CourseIDs []int `json:"course_ids" binding:"required,min=1,dive,min=1"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus enumerates the lifecycle states of a schedule run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "PENDING"
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusCompleted RunStatus = "COMPLETED"
	RunStatusFailed    RunStatus = "FAILED"
)

// ScheduleRun is one date-assignment invocation over an exam window. Runs
// execute asynchronously on the schedule worker; the status document is what
// clients poll or stream.
type ScheduleRun struct {
	ID          uuid.UUID `json:"id"`
	Status      RunStatus `json:"status"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	RequestedBy int       `json:"requested_by"`

	// FailureCode and FailureDetail are set on FAILED runs and carry the
	// engine's diagnosis (which course blocked, whether the budget ran out).
	FailureCode   string `json:"failure_code,omitempty"`
	FailureDetail string `json:"failure_detail,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleItem is one persisted exam placement: a merged course unit sitting
// on a concrete date and slot.
type ScheduleItem struct {
	ID           int         `json:"id"`
	RunID        uuid.UUID   `json:"run_id"`
	CourseKey    string      `json:"course_key"`
	CourseCodes  []string    `json:"course_codes"`
	CourseName   string      `json:"course_name"`
	Teachers     string      `json:"teachers"`
	ExamDate     time.Time   `json:"exam_date"`
	Weekday      string      `json:"weekday"`
	Slot         string      `json:"slot"`
	Semester     int         `json:"semester"`
	Program      ProgramType `json:"program"`
	GapDays      int         `json:"gap_days"`
	IsFirstPaper bool        `json:"is_first_paper"`
	CreatedAt    time.Time   `json:"created_at"`
}

// CreateScheduleRunRequest asks for a new date assignment over a window.
type CreateScheduleRunRequest struct {
	WindowStart string `json:"window_start" binding:"required,datetime=2006-01-02"`
	WindowEnd   string `json:"window_end" binding:"required,datetime=2006-01-02"`
}

// RunProgressEvent is published on the run's PubSub channel while the worker
// is searching, and mirrored to the run status document on completion.
type RunProgressEvent struct {
	RunID  string    `json:"run_id"`
	Status RunStatus `json:"status"`
	Placed int       `json:"placed,omitempty"`
	Total  int       `json:"total,omitempty"`
	Error  string    `json:"error,omitempty"`
}

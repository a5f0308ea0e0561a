package scheduler

import (
	"errors"
	"fmt"
)

// Sentinel failures of a scheduling run.
var (
	// ErrNoValidDates means the requested window has no non-weekend,
	// non-holiday day to place exams on.
	ErrNoValidDates = errors.New("no valid exam dates in the requested window")

	// ErrNoCourses means the input contained no courses to schedule.
	ErrNoCourses = errors.New("no courses to schedule")
)

// UnsatisfiableError reports that the search could not place every unit. The
// failing unit is the first one that exhausted all candidate dates, which is
// the most useful lead for widening the window or lowering gap requirements.
type UnsatisfiableError struct {
	CourseKey  string
	CourseName string
	Backtracks int

	// BudgetExhausted is set when the search gave up because it hit its
	// backtrack budget instead of proving unsatisfiability.
	BudgetExhausted bool
}

func (e *UnsatisfiableError) Error() string {
	if e.BudgetExhausted {
		return fmt.Sprintf("schedule search budget exhausted after %d backtracks at course %s (%s): widen the exam window or reduce gap requirements",
			e.Backtracks, e.CourseKey, e.CourseName)
	}
	return fmt.Sprintf("no feasible date for course %s (%s): widen the exam window or reduce gap requirements",
		e.CourseKey, e.CourseName)
}

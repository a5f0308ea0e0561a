package scheduler

import "time"

// placement records one unit placed on a date during the search.
type placement struct {
	unit *Unit
	date time.Time
}

// studentExam is one exam already assigned to a student, with the gap its
// course demands. Spacing checks take the stricter of the placed course's
// gap and the candidate unit's gap.
type studentExam struct {
	date time.Time
	gap  int
}

// searchState tracks the mutable context of one search run. Placements are
// applied and undone in strict LIFO order, so undo only ever trims the tail
// of each slice.
type searchState struct {
	dateCount    map[time.Time]int
	studentExams map[string][]studentExam
	result       []placement
}

func newSearchState() *searchState {
	return &searchState{
		dateCount:    make(map[time.Time]int),
		studentExams: make(map[string][]studentExam),
	}
}

// admissible reports whether u may sit on date d without violating the
// conflict, gap, or daily capacity constraints.
func (s *searchState) admissible(u *Unit, d time.Time, shortDay time.Weekday) bool {
	if s.dateCount[d] >= DayCapacity(d, shortDay) {
		return false
	}
	for _, student := range u.Students {
		for _, exam := range s.studentExams[student] {
			if exam.date.Equal(d) {
				return false
			}
			gap := u.GapDays
			if exam.gap > gap {
				gap = exam.gap
			}
			if daysBetween(exam.date, d) < gap {
				return false
			}
		}
	}
	return true
}

func (s *searchState) place(u *Unit, d time.Time) {
	s.dateCount[d]++
	for _, student := range u.Students {
		s.studentExams[student] = append(s.studentExams[student], studentExam{date: d, gap: u.GapDays})
	}
	s.result = append(s.result, placement{unit: u, date: d})
}

func (s *searchState) undo(u *Unit, d time.Time) {
	s.dateCount[d]--
	for _, student := range u.Students {
		exams := s.studentExams[student]
		s.studentExams[student] = exams[:len(exams)-1]
	}
	s.result = s.result[:len(s.result)-1]
}

// frame is one level of the explicit backtracking stack. dateIdx is the next
// candidate date to try for the unit at unitIdx; placed remembers a tentative
// placement so it can be undone when the levels below fail.
type frame struct {
	unitIdx int
	dateIdx int
	placed  bool
	date    time.Time
}

// search places every unit on an admissible date using depth-first
// backtracking over the priority-ordered unit list. The recursion of the
// textbook formulation is replaced by an explicit frame stack so depth is
// heap-bounded and the backtrack budget can cut the search off cleanly.
func search(units []*Unit, dates []time.Time, shortDay time.Weekday, budget int) ([]placement, error) {
	state := newSearchState()
	backtracks := 0

	stack := make([]frame, 1, len(units)+1)
	stack[0] = frame{}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.unitIdx >= len(units) {
			return state.result, nil
		}

		// Code-variant aliases are merged before the search, so every
		// unit on the list is placed exactly once.
		unit := units[f.unitIdx]

		// Re-entered after a failure below: undo the tentative placement
		// before trying the next candidate date.
		if f.placed {
			state.undo(unit, f.date)
			f.placed = false
			backtracks++
			if backtracks >= budget {
				return nil, &UnsatisfiableError{
					CourseKey:       unit.Key,
					CourseName:      unit.Name,
					Backtracks:      backtracks,
					BudgetExhausted: true,
				}
			}
		}

		advanced := false
		for f.dateIdx < len(dates) {
			d := dates[f.dateIdx]
			f.dateIdx++
			if state.admissible(unit, d, shortDay) {
				state.place(unit, d)
				f.placed = true
				f.date = d
				stack = append(stack, frame{unitIdx: f.unitIdx + 1})
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}

		// Every candidate date is exhausted for this unit; fail upward.
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return nil, &UnsatisfiableError{
				CourseKey:  unit.Key,
				CourseName: unit.Name,
				Backtracks: backtracks,
			}
		}
	}

	return state.result, nil
}

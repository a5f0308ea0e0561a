// Package scheduler implements the exam date assignment engine: a
// deterministic backtracking search that places every scheduling unit on a
// conflict-free calendar date inside the requested exam window.
//
// The engine is pure computation. It performs no I/O and holds no state
// between runs; concurrent invocations with independent inputs are safe.
package scheduler

import (
	"sort"
	"time"
)

// DefaultGapDays is the minimum spacing between two exams of the same
// student when a course does not specify its own gap.
const DefaultGapDays = 2

// DefaultMaxBacktracks bounds the search when the caller does not supply a
// budget of its own.
const DefaultMaxBacktracks = 100_000

// Course is a raw course record as stored by the caller. Codes may contain
// cross-program variants that normalize to the same scheduling unit.
type Course struct {
	Code     string
	Name     string
	Semester int // 1-12; 9-12 map to semesters 1-4 of the second program
	Program  string
	GapDays  int // 0 means DefaultGapDays
	IsLab    bool
	Teacher  string
}

// Input carries everything one scheduling run needs. Enrollments map a
// student identifier to the raw course codes that student is sitting.
type Input struct {
	Courses     []Course
	Enrollments map[string][]string
	WindowStart time.Time
	WindowEnd   time.Time
	Holidays    []time.Time

	// ShortDay is the weekday with a single exam slot instead of two.
	// Zero value (Sunday) selects the default, Friday.
	ShortDay time.Weekday

	// MaxBacktracks caps the number of undo steps the search may take
	// before giving up. 0 selects DefaultMaxBacktracks.
	MaxBacktracks int
}

// Item is one placed scheduling unit in the produced exam calendar.
type Item struct {
	CourseKey    string       `json:"course_key"`
	CourseCodes  []string     `json:"course_codes"`
	CourseName   string       `json:"course_name"`
	Teachers     string       `json:"teachers"`
	Date         time.Time    `json:"date"`
	Weekday      time.Weekday `json:"weekday"`
	Slot         string       `json:"slot"`
	Semester     int          `json:"semester"`
	Program      string       `json:"program"`
	GapDays      int          `json:"gap_days"`
	IsFirstPaper bool         `json:"is_first_paper"`
}

// Schedule assigns one exam date to every scheduling unit derived from
// in.Courses, or fails atomically. On success the returned items are sorted
// by date, then semester, and the chronologically first item is flagged as
// the first paper.
func Schedule(in Input) ([]Item, error) {
	shortDay := in.ShortDay
	if shortDay == time.Sunday {
		shortDay = time.Friday
	}

	units := BuildUnits(in.Courses, in.Enrollments)
	if len(units) == 0 {
		return nil, ErrNoCourses
	}

	dates := CandidateDates(in.WindowStart, in.WindowEnd, in.Holidays)
	if len(dates) == 0 {
		return nil, ErrNoValidDates
	}

	budget := in.MaxBacktracks
	if budget <= 0 {
		budget = DefaultMaxBacktracks
	}

	placements, err := search(units, dates, shortDay, budget)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(placements))
	for _, p := range placements {
		items = append(items, Item{
			CourseKey:   p.unit.Key,
			CourseCodes: p.unit.Codes,
			CourseName:  p.unit.Name,
			Teachers:    p.unit.Teachers,
			Date:        p.date,
			Weekday:     p.date.Weekday(),
			Slot:        SlotFor(p.date.Weekday(), shortDay),
			Semester:    p.unit.Semester,
			Program:     p.unit.Program,
			GapDays:     p.unit.GapDays,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].Semester < items[j].Semester
	})
	items[0].IsFirstPaper = true

	return items, nil
}

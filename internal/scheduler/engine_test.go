package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiveWeekdayWindow is Mon 2026-01-05 through Fri 2026-01-09.
func fiveWeekdayWindow(in *Input) {
	in.WindowStart = date(2026, time.January, 5)
	in.WindowEnd = date(2026, time.January, 9)
}

func TestScheduleGapScenario(t *testing.T) {
	in := Input{
		Courses: []Course{
			{Code: "A", Name: "Paper A", Semester: 1, GapDays: 2},
			{Code: "B", Name: "Paper B", Semester: 1, GapDays: 2},
		},
		Enrollments: map[string][]string{
			"x": {"A", "B"},
			"y": {"A"},
			"z": {"A"},
		},
	}
	fiveWeekdayWindow(&in)

	items, err := Schedule(in)
	require.NoError(t, err)
	require.Len(t, items, 2)

	diff := daysBetween(items[0].Date, items[1].Date)
	assert.GreaterOrEqual(t, diff, 2, "shared student forces at least the gap apart")
	assert.True(t, items[0].IsFirstPaper)
	assert.False(t, items[1].IsFirstPaper)
}

func TestScheduleUnsatisfiableNarrowWindow(t *testing.T) {
	// Two consecutive weekdays cannot hold two exams of one student with a
	// two day gap.
	in := Input{
		Courses: []Course{
			{Code: "A", GapDays: 2},
			{Code: "B", GapDays: 2},
		},
		Enrollments: map[string][]string{"x": {"A", "B"}},
		WindowStart: date(2026, time.January, 5),
		WindowEnd:   date(2026, time.January, 6),
	}

	_, err := Schedule(in)
	var unsat *UnsatisfiableError
	require.ErrorAs(t, err, &unsat)
	assert.False(t, unsat.BudgetExhausted)
}

func TestScheduleNoValidDates(t *testing.T) {
	in := Input{
		Courses:     []Course{{Code: "A"}},
		WindowStart: date(2026, time.January, 10), // Sat
		WindowEnd:   date(2026, time.January, 11), // Sun
	}
	_, err := Schedule(in)
	assert.ErrorIs(t, err, ErrNoValidDates)
}

func TestScheduleNoCourses(t *testing.T) {
	in := Input{}
	fiveWeekdayWindow(&in)
	_, err := Schedule(in)
	assert.ErrorIs(t, err, ErrNoCourses)
}

func TestScheduleRespectsDailyCapacity(t *testing.T) {
	// Six courses with disjoint students across Mon-Fri: Friday is the
	// short day, so capacities are 2+2+2+2+1 = 9 and six fit; no date may
	// exceed its capacity.
	in := Input{
		Courses: []Course{
			{Code: "C1"}, {Code: "C2"}, {Code: "C3"},
			{Code: "C4"}, {Code: "C5"}, {Code: "C6"},
		},
	}
	fiveWeekdayWindow(&in)

	items, err := Schedule(in)
	require.NoError(t, err)
	require.Len(t, items, 6)

	perDate := map[time.Time]int{}
	for _, it := range items {
		perDate[it.Date]++
	}
	for d, n := range perDate {
		assert.LessOrEqual(t, n, DayCapacity(d, time.Friday), "date %s over capacity", d)
	}
}

func TestScheduleShortDaySingleSlot(t *testing.T) {
	// A window that is just the short day holds exactly one exam.
	friday := date(2026, time.January, 9)

	in := Input{
		Courses:     []Course{{Code: "A"}},
		WindowStart: friday,
		WindowEnd:   friday,
	}
	items, err := Schedule(in)
	require.NoError(t, err)
	assert.Equal(t, SlotShortDay, items[0].Slot)
	assert.Equal(t, time.Friday, items[0].Weekday)

	in.Courses = append(in.Courses, Course{Code: "B"})
	_, err = Schedule(in)
	var unsat *UnsatisfiableError
	assert.ErrorAs(t, err, &unsat)
}

func TestScheduleMergeIdempotence(t *testing.T) {
	// The same subject under two mergeable code variants yields exactly
	// one schedule item.
	in := Input{
		Courses: []Course{
			{Code: "BCA301", Name: "Operating Systems", Semester: 3, Teacher: "R. Sharma"},
			{Code: "MCA301", Name: "Operating Systems", Semester: 9, Teacher: "K. Iyer"},
		},
		Enrollments: map[string][]string{"s1": {"BCA301"}, "s2": {"MCA301"}},
	}
	fiveWeekdayWindow(&in)

	items, err := Schedule(in)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.ElementsMatch(t, []string{"BCA301", "MCA301"}, items[0].CourseCodes)
	assert.Equal(t, "R. Sharma, K. Iyer", items[0].Teachers)
}

func TestScheduleConflictAndGapInvariants(t *testing.T) {
	// A denser instance: verify the produced calendar against the
	// invariants rather than exact placements.
	in := Input{
		Courses: []Course{
			{Code: "CS501", Semester: 5, GapDays: 2},
			{Code: "CS502", Semester: 5, GapDays: 3},
			{Code: "CS301", Semester: 3, GapDays: 2},
			{Code: "CS302", Semester: 3, GapDays: 2},
			{Code: "CS101", Semester: 1, GapDays: 2},
		},
		Enrollments: map[string][]string{
			"a": {"CS501", "CS502"},
			"b": {"CS501", "CS502"},
			"c": {"CS301", "CS302"},
			"d": {"CS302", "CS101"},
			"e": {"CS101"},
		},
		WindowStart: date(2026, time.January, 5),
		WindowEnd:   date(2026, time.January, 23),
	}

	items, err := Schedule(in)
	require.NoError(t, err)
	require.Len(t, items, 5)

	byKey := map[string]Item{}
	for _, it := range items {
		byKey[it.CourseKey] = it
	}

	for student, codes := range in.Enrollments {
		for i := 0; i < len(codes); i++ {
			for j := i + 1; j < len(codes); j++ {
				a := byKey[NormalizeCode(codes[i])]
				b := byKey[NormalizeCode(codes[j])]
				assert.False(t, a.Date.Equal(b.Date), "student %s sits two exams on %s", student, a.Date)

				minGap := a.GapDays
				if b.GapDays > minGap {
					minGap = b.GapDays
				}
				assert.GreaterOrEqual(t, daysBetween(a.Date, b.Date), minGap,
					"student %s: %s and %s closer than gap", student, a.CourseKey, b.CourseKey)
			}
		}
	}
}

func TestScheduleDeterministic(t *testing.T) {
	in := Input{
		Courses: []Course{
			{Code: "CS501", Semester: 5}, {Code: "CS301", Semester: 3},
			{Code: "CS302", Semester: 3}, {Code: "CS101", Semester: 1},
		},
		Enrollments: map[string][]string{
			"a": {"CS501", "CS301"},
			"b": {"CS301", "CS302", "CS101"},
		},
		WindowStart: date(2026, time.January, 5),
		WindowEnd:   date(2026, time.January, 16),
	}

	first, err := Schedule(in)
	require.NoError(t, err)
	second, err := Schedule(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScheduleSortedByDateThenSemester(t *testing.T) {
	in := Input{
		Courses: []Course{
			{Code: "CS601", Semester: 6},
			{Code: "CS101", Semester: 1},
			{Code: "CS301", Semester: 3},
		},
	}
	fiveWeekdayWindow(&in)

	items, err := Schedule(in)
	require.NoError(t, err)
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		ordered := prev.Date.Before(cur.Date) ||
			(prev.Date.Equal(cur.Date) && prev.Semester <= cur.Semester)
		assert.True(t, ordered, "items out of order at %d", i)
	}
}

func TestScheduleBudgetExhausted(t *testing.T) {
	// P and Q share a student with gap 2 but only two consecutive days
	// exist, so the search must backtrack past P and give up. A budget of
	// one backtrack trips before exhaustion is proven.
	in := Input{
		Courses: []Course{
			{Code: "P", GapDays: 2},
			{Code: "Q", GapDays: 2},
			{Code: "R", GapDays: 2},
		},
		Enrollments: map[string][]string{
			"a": {"P", "Q"},
			"b": {"R"},
		},
		WindowStart:   date(2026, time.January, 5),
		WindowEnd:     date(2026, time.January, 6),
		MaxBacktracks: 1,
	}

	_, err := Schedule(in)
	var unsat *UnsatisfiableError
	require.ErrorAs(t, err, &unsat)
	assert.True(t, unsat.BudgetExhausted)
	assert.Equal(t, 1, unsat.Backtracks)
}

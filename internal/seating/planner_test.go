package seating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examDate = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func sitting(id, dept, course string) Sitting {
	return Sitting{
		StudentID:   id,
		StudentName: "Student " + id,
		RegNumber:   "REG" + id,
		Department:  dept,
		CourseCode:  course,
	}
}

func TestInterleaveAlternatesCourses(t *testing.T) {
	sittings := []Sitting{
		sitting("c1", "CS", "C"), sitting("c2", "CS", "C"), sitting("c3", "CS", "C"),
		sitting("d1", "CS", "D"), sitting("d2", "CS", "D"), sitting("d3", "CS", "D"),
	}

	ordered := Interleave(sittings)
	codes := make([]string, len(ordered))
	for i, s := range ordered {
		codes[i] = s.CourseCode
	}
	assert.Equal(t, []string{"C", "D", "C", "D", "C", "D"}, codes)
}

func TestInterleaveUnevenGroups(t *testing.T) {
	sittings := []Sitting{
		sitting("a1", "CS", "A"),
		sitting("b1", "CS", "B"), sitting("b2", "CS", "B"), sitting("b3", "CS", "B"),
	}

	ordered := Interleave(sittings)
	codes := make([]string, len(ordered))
	for i, s := range ordered {
		codes[i] = s.CourseCode
	}
	assert.Equal(t, []string{"A", "B", "B", "B"}, codes)
}

// The worked example from the seating design: a 2x4 venue seats four of six
// students on checkerboard positions and reports the overflow.
func TestAssignSeatsCheckerboardOverflow(t *testing.T) {
	sittings := []Sitting{
		sitting("c1", "CS", "C"), sitting("c2", "CS", "C"), sitting("c3", "CS", "C"),
		sitting("d1", "CS", "D"), sitting("d2", "CS", "D"), sitting("d3", "CS", "D"),
	}
	venues := []Venue{{ID: "v1", Name: "Hall 1", Department: "CS", Rows: 2, Cols: 4}}

	plans, unassigned, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	p := plans[0]
	assert.Equal(t, 8, p.Capacity)
	assert.Equal(t, 4, p.OccupantCount())
	assert.Len(t, unassigned, 2)

	// Row 0 fills columns 0 and 2, row 1 fills columns 1 and 3.
	assert.Equal(t, "c1", p.At(0, 0).StudentID)
	assert.Equal(t, "d1", p.At(0, 2).StudentID)
	assert.Equal(t, "c2", p.At(1, 1).StudentID)
	assert.Equal(t, "d2", p.At(1, 3).StudentID)
	assert.Nil(t, p.At(0, 1))
	assert.Nil(t, p.At(0, 3))
	assert.Nil(t, p.At(1, 0))
	assert.Nil(t, p.At(1, 2))
}

func TestAssignSeatsNoAdjacentOccupants(t *testing.T) {
	var sittings []Sitting
	for i := 0; i < 40; i++ {
		course := "C"
		if i%2 == 0 {
			course = "D"
		}
		sittings = append(sittings, sitting(string(rune('a'+i%26))+"x", "CS", course))
	}
	venues := []Venue{{ID: "v1", Name: "Hall 1", Department: "CS", Rows: 5, Cols: 6}}

	plans, _, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)
	p := plans[0]

	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if p.At(r, c) == nil {
				continue
			}
			if c+1 < p.Cols {
				assert.Nil(t, p.At(r, c+1), "horizontal neighbors at R%dC%d", r+1, c+2)
			}
			if r+1 < p.Rows {
				assert.Nil(t, p.At(r+1, c), "vertical neighbors at R%dC%d", r+2, c+1)
			}
		}
	}
}

func TestAssignSeatsDepartmentPartitioning(t *testing.T) {
	sittings := []Sitting{
		sitting("cs1", "CS", "C301"), sitting("cs2", "CS", "C301"),
		sitting("me1", "ME", "M201"),
	}
	venues := []Venue{
		{ID: "v1", Name: "CS Hall", Department: "CS", Rows: 2, Cols: 4},
		{ID: "v2", Name: "Shared Hall", Rows: 2, Cols: 4},
	}

	plans, unassigned, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Empty(t, unassigned)

	// ME has no venue of its own and lands in the shared hall.
	byVenue := map[string]*Plan{}
	for _, p := range plans {
		byVenue[p.VenueID] = p
	}
	assert.Equal(t, 2, byVenue["v1"].OccupantCount())
	assert.Equal(t, 1, byVenue["v2"].OccupantCount())
	assert.Equal(t, "me1", byVenue["v2"].At(0, 0).StudentID)
}

func TestAssignSeatsNoCrossDepartmentSpill(t *testing.T) {
	// CS overflows its own hall but must not spill into the ME hall.
	sittings := []Sitting{
		sitting("cs1", "CS", "C301"), sitting("cs2", "CS", "C301"),
		sitting("cs3", "CS", "C301"),
	}
	venues := []Venue{
		{ID: "v1", Name: "CS Hall", Department: "CS", Rows: 1, Cols: 3},
		{ID: "v2", Name: "ME Hall", Department: "ME", Rows: 4, Cols: 4},
	}

	plans, unassigned, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "v1", plans[0].VenueID)
	assert.Equal(t, 2, plans[0].OccupantCount())

	require.Len(t, unassigned, 1)
	assert.Equal(t, "cs3", unassigned[0].StudentID)
	assert.Equal(t, ReasonNoCapacity, unassigned[0].Reason)
}

func TestAssignSeatsNoVenueForDepartment(t *testing.T) {
	sittings := []Sitting{sitting("ee1", "EE", "E101")}
	venues := []Venue{{ID: "v1", Name: "CS Hall", Department: "CS", Rows: 2, Cols: 2}}

	plans, unassigned, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)
	assert.Empty(t, plans)
	require.Len(t, unassigned, 1)
	assert.Equal(t, ReasonNoVenue, unassigned[0].Reason)
}

func TestAssignSeatsSharedPoolNotDoubleBooked(t *testing.T) {
	// Two venue-less departments draw from the same fallback hall; the
	// second department continues where the first stopped.
	sittings := []Sitting{
		sitting("cs1", "CS", "C301"),
		sitting("me1", "ME", "M201"), sitting("me2", "ME", "M201"),
	}
	venues := []Venue{{ID: "v1", Name: "Shared Hall", Rows: 2, Cols: 4}}

	plans, unassigned, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Empty(t, unassigned)

	p := plans[0]
	assert.Equal(t, 3, p.OccupantCount())
	assert.Equal(t, "cs1", p.At(0, 0).StudentID)
	assert.Equal(t, "me1", p.At(0, 2).StudentID)
	assert.Equal(t, "me2", p.At(1, 1).StudentID)
}

func TestAssignSeatsEmpty(t *testing.T) {
	_, _, err := AssignSeats(examDate, nil, []Venue{{ID: "v1", Rows: 2, Cols: 2}})
	assert.ErrorIs(t, err, ErrNoEnrollments)
}

func TestOccupantTotalsAcrossRun(t *testing.T) {
	var sittings []Sitting
	for i := 0; i < 9; i++ {
		sittings = append(sittings, sitting(string(rune('a'+i)), "CS", "C301"))
	}
	venues := []Venue{{ID: "v1", Name: "CS Hall", Department: "CS", Rows: 2, Cols: 4}}

	plans, unassigned, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)

	seated := 0
	for _, p := range plans {
		seated += p.OccupantCount()
	}
	assert.Equal(t, len(sittings), seated+len(unassigned))
}

package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatedPlan(t *testing.T) *Plan {
	t.Helper()
	sittings := []Sitting{
		sitting("c1", "CS", "C"), sitting("c2", "CS", "C"),
		sitting("d1", "CS", "D"),
	}
	venues := []Venue{{ID: "v1", Name: "Hall 1", Department: "CS", Rows: 2, Cols: 4}}
	plans, _, err := AssignSeats(examDate, sittings, venues)
	require.NoError(t, err)
	return plans[0]
}

func TestSwapSeatsWithinVenue(t *testing.T) {
	p := seatedPlan(t)
	// c1 at R1C1, d1 at R1C3.
	require.NoError(t, SwapSeats(p, 1, 1, p, 1, 3))

	assert.Equal(t, "d1", p.At(0, 0).StudentID)
	assert.Equal(t, "c1", p.At(0, 2).StudentID)
}

func TestSwapSeatsIntoEmptySeat(t *testing.T) {
	p := seatedPlan(t)
	require.NoError(t, SwapSeats(p, 1, 1, p, 2, 4))

	assert.Nil(t, p.At(0, 0))
	assert.Equal(t, "c1", p.At(1, 3).StudentID)
	assert.Equal(t, 3, p.OccupantCount(), "a move never duplicates an occupant")
}

func TestSwapSeatsAcrossVenues(t *testing.T) {
	a := seatedPlan(t)
	b := NewPlan(Venue{ID: "v2", Name: "Hall 2", Department: "CS", Rows: 2, Cols: 2}, examDate)

	require.NoError(t, SwapSeats(a, 1, 1, b, 2, 2))
	assert.Nil(t, a.At(0, 0))
	assert.Equal(t, "c1", b.At(1, 1).StudentID)
}

func TestSwapSeatsErrors(t *testing.T) {
	p := seatedPlan(t)

	assert.Error(t, SwapSeats(p, 0, 1, p, 1, 3), "rows are 1-indexed")
	assert.Error(t, SwapSeats(p, 1, 1, p, 3, 1), "out of range")
	assert.Error(t, SwapSeats(p, 1, 1, p, 1, 1), "same seat")
	assert.Error(t, SwapSeats(p, 1, 2, p, 2, 1), "both empty")
}

func TestPlanPlaceRejectsDoubleBooking(t *testing.T) {
	p := NewPlan(Venue{ID: "v1", Name: "Hall 1", Rows: 2, Cols: 2}, examDate)
	require.NoError(t, p.Place(1, 1, &Occupant{StudentID: "a"}))
	assert.Error(t, p.Place(1, 1, &Occupant{StudentID: "b"}))
	assert.Error(t, p.Place(3, 1, &Occupant{StudentID: "c"}))
}

func TestSeatsAreLabeled(t *testing.T) {
	p := seatedPlan(t)
	seats := p.Seats()
	require.Len(t, seats, 8)

	assert.Equal(t, "R1C1", seats[0].Label)
	assert.Equal(t, "c1", seats[0].Occupant.StudentID)
	assert.Equal(t, "R2C4", seats[7].Label)
	assert.Nil(t, seats[1].Occupant)
}
package seating

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Reasons attached to unassigned entries.
const (
	ReasonNoCapacity = "no remaining venue capacity"
	ReasonNoVenue    = "no venue for department"
)

// Unassigned is a sitting the planner could not seat. Capacity shortfall is
// reported as data, never as an error: a partial plan is still actionable.
type Unassigned struct {
	Sitting
	Reason string
}

// NewPlan builds an empty plan for a venue.
func NewPlan(v Venue, examDate time.Time) *Plan {
	grid := make([][]*Occupant, v.Rows)
	for r := range grid {
		grid[r] = make([]*Occupant, v.Cols)
	}
	return &Plan{
		VenueID:    v.ID,
		VenueName:  v.Name,
		Department: v.Department,
		Rows:       v.Rows,
		Cols:       v.Cols,
		Capacity:   v.Capacity(),
		Date:       examDate,
		grid:       grid,
	}
}

// Place puts an occupant on a 1-indexed seat. Used when reloading a
// persisted plan; it refuses to double-book a seat.
func (p *Plan) Place(row, col int, occ *Occupant) error {
	if row < 1 || row > p.Rows || col < 1 || col > p.Cols {
		return fmt.Errorf("seat %s out of range for venue %s (%dx%d)", SeatLabel(row-1, col-1), p.VenueName, p.Rows, p.Cols)
	}
	if p.grid[row-1][col-1] != nil {
		return fmt.Errorf("seat %s in venue %s is already occupied", SeatLabel(row-1, col-1), p.VenueName)
	}
	p.grid[row-1][col-1] = occ
	return nil
}

// venueFill walks a plan's checkerboard positions: row r starts at column
// r mod 2 and steps by two, so no two filled seats of one pass are adjacent
// horizontally or vertically whenever the grid is at least two wide.
type venueFill struct {
	plan *Plan
	row  int
	col  int
}

func newVenueFill(v Venue, examDate time.Time) *venueFill {
	return &venueFill{plan: NewPlan(v, examDate)}
}

// place seats one sitting on the next checkerboard position. Returns false
// when the venue's pattern capacity is exhausted.
func (f *venueFill) place(s Sitting) bool {
	for f.row < f.plan.Rows {
		if f.col >= f.plan.Cols {
			f.row++
			f.col = f.row % 2
			continue
		}
		f.plan.grid[f.row][f.col] = &Occupant{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			RegNumber:   s.RegNumber,
			CourseCode:  s.CourseCode,
		}
		f.col += 2
		return true
	}
	return false
}

// AssignSeats lays out one exam day's sitting across the available venues.
//
// Students and venues are partitioned by department; department-agnostic
// venues form a shared fallback pool for departments without a venue of
// their own. Within a department the interleaved order is consumed into the
// department's venues in roster order. Whatever does not fit is returned in
// the unassigned list; cross-department spillover is never attempted.
func AssignSeats(examDate time.Time, sittings []Sitting, venues []Venue) ([]*Plan, []Unassigned, error) {
	if len(sittings) == 0 {
		return nil, nil, ErrNoEnrollments
	}

	byDept := lo.GroupBy(sittings, func(s Sitting) string { return s.Department })
	depts := lo.Keys(byDept)
	sort.Strings(depts)

	venuesByDept := lo.GroupBy(venues, func(v Venue) string { return v.Department })
	shared := venuesByDept[""]

	// Fallback-pool fills persist across departments so a shared venue is
	// never handed out twice.
	fills := make(map[string]*venueFill, len(venues))
	fillFor := func(v Venue) *venueFill {
		f, ok := fills[v.ID]
		if !ok {
			f = newVenueFill(v, examDate)
			fills[v.ID] = f
		}
		return f
	}

	var plans []*Plan
	var unassigned []Unassigned

	for _, dept := range depts {
		deptVenues := venuesByDept[dept]
		if len(deptVenues) == 0 {
			deptVenues = shared
		}

		if len(deptVenues) == 0 {
			for _, s := range byDept[dept] {
				unassigned = append(unassigned, Unassigned{Sitting: s, Reason: ReasonNoVenue})
			}
			continue
		}

		ordered := Interleave(byDept[dept])
		venueIdx := 0
		for _, s := range ordered {
			seated := false
			for venueIdx < len(deptVenues) {
				f := fillFor(deptVenues[venueIdx])
				if f.place(s) {
					seated = true
					break
				}
				venueIdx++
			}
			if !seated {
				unassigned = append(unassigned, Unassigned{Sitting: s, Reason: ReasonNoCapacity})
			}
		}
	}

	// Emit plans for every venue that was opened, in stable roster order.
	for _, v := range venues {
		if f, ok := fills[v.ID]; ok {
			plans = append(plans, f.plan)
		}
	}

	return plans, unassigned, nil
}

// SwapSeats exchanges the occupants of two 1-indexed seats, possibly across
// venues. One side may be empty, which moves the other occupant. Labels need
// no fixing up: they derive from grid position.
func SwapSeats(a *Plan, aRow, aCol int, b *Plan, bRow, bCol int) error {
	if err := checkBounds(a, aRow, aCol); err != nil {
		return err
	}
	if err := checkBounds(b, bRow, bCol); err != nil {
		return err
	}
	if a == b && aRow == bRow && aCol == bCol {
		return fmt.Errorf("cannot swap seat %s with itself", SeatLabel(aRow-1, aCol-1))
	}

	occA := a.grid[aRow-1][aCol-1]
	occB := b.grid[bRow-1][bCol-1]
	if occA == nil && occB == nil {
		return fmt.Errorf("both seats are empty")
	}

	a.grid[aRow-1][aCol-1] = occB
	b.grid[bRow-1][bCol-1] = occA
	return nil
}

func checkBounds(p *Plan, row, col int) error {
	if row < 1 || row > p.Rows || col < 1 || col > p.Cols {
		return fmt.Errorf("seat %s out of range for venue %s (%dx%d)", SeatLabel(row-1, col-1), p.VenueName, p.Rows, p.Cols)
	}
	return nil
}

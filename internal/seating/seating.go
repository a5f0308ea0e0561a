// Package seating implements the exam seat assignment engine: a
// deterministic interleaved bin-packing allocator that lays one exam day's
// sitting out across physical venues in a checkerboard pattern.
//
// Like the date engine, the package is pure computation with no I/O and no
// state between runs.
package seating

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
)

// ErrNoEnrollments means there were no students to place for the date.
var ErrNoEnrollments = errors.New("no enrolled students for the exam date")

// Sitting is one (student, course) pair taking an exam on the date being
// laid out. A student writing two papers on different dates appears in two
// separate runs, never twice in one.
type Sitting struct {
	StudentID   string
	StudentName string
	RegNumber   string
	Department  string
	CourseCode  string
}

// Venue is a physical exam room. An empty Department marks the venue as
// department-agnostic: it serves as the fallback pool for departments
// without a venue of their own.
type Venue struct {
	ID         string
	Name       string
	Department string
	Rows       int
	Cols       int
}

// Capacity is the venue's total seat count before checkerboard thinning.
func (v Venue) Capacity() int {
	return v.Rows * v.Cols
}

// Occupant is a seated student-course pair.
type Occupant struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	RegNumber   string `json:"reg_number"`
	CourseCode  string `json:"course_code"`
}

// Seat is one grid position of a plan, 1-indexed and carrying its
// human-facing label. Empty seats have a nil Occupant.
type Seat struct {
	Row      int       `json:"row"`
	Col      int       `json:"col"`
	Label    string    `json:"label"`
	Occupant *Occupant `json:"occupant,omitempty"`
}

// Plan is the produced seating of one venue: a row-major sparse grid of
// occupants. Seat labels derive from grid position, so moving an occupant
// can never leave a stale label behind.
type Plan struct {
	VenueID    string
	VenueName  string
	Department string
	Rows       int
	Cols       int
	Capacity   int
	Date       time.Time

	grid [][]*Occupant
}

// SeatLabel renders the human-facing label for a 0-indexed grid position.
func SeatLabel(row, col int) string {
	return fmt.Sprintf("R%dC%d", row+1, col+1)
}

// At returns the occupant at a 0-indexed position, or nil.
func (p *Plan) At(row, col int) *Occupant {
	return p.grid[row][col]
}

// OccupantCount is the number of filled seats in the plan.
func (p *Plan) OccupantCount() int {
	n := 0
	for _, row := range p.grid {
		for _, occ := range row {
			if occ != nil {
				n++
			}
		}
	}
	return n
}

// Seats flattens the grid into labeled seats in row-major order.
func (p *Plan) Seats() []Seat {
	seats := make([]Seat, 0, p.Capacity)
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			seats = append(seats, Seat{
				Row:      r + 1,
				Col:      c + 1,
				Label:    SeatLabel(r, c),
				Occupant: p.grid[r][c],
			})
		}
	}
	return seats
}

// Interleave orders one department's sitting so consecutive seats rarely
// share a course: students are grouped by course code, groups are sorted by
// code, and the order is built by round-robin draw across the groups.
func Interleave(sittings []Sitting) []Sitting {
	groups := lo.GroupBy(sittings, func(s Sitting) string { return s.CourseCode })
	codes := lo.Keys(groups)
	sort.Strings(codes)

	ordered := make([]Sitting, 0, len(sittings))
	for round := 0; len(ordered) < len(sittings); round++ {
		for _, code := range codes {
			if round < len(groups[code]) {
				ordered = append(ordered, groups[code][round])
			}
		}
	}
	return ordered
}

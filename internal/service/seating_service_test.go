package service

import (
	"testing"
	"time"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/seating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergedItem(key string, codes ...string) model.ScheduleItem {
	return model.ScheduleItem{CourseKey: key, CourseCodes: codes}
}

func enrolledSitting(studentID, course string) seating.Sitting {
	return seating.Sitting{
		StudentID:   studentID,
		StudentName: "Student " + studentID,
		RegNumber:   "REG" + studentID,
		Department:  "CS",
		CourseCode:  course,
	}
}

func TestUnitKeyByCode(t *testing.T) {
	items := []model.ScheduleItem{
		mergedItem("301", "BCA301", "MCA301"),
		mergedItem("BCA302", "BCA302"),
	}

	keys := unitKeyByCode(items)
	assert.Equal(t, "301", keys["BCA301"])
	assert.Equal(t, "301", keys["MCA301"])
	assert.Equal(t, "BCA302", keys["BCA302"])
}

func TestDedupeSittingsMergedVariants(t *testing.T) {
	// s1 is enrolled under both code variants of the merged unit; the
	// enrollment join returns one row per code, but s1 sits one exam.
	items := []model.ScheduleItem{
		mergedItem("301", "BCA301", "MCA301"),
		mergedItem("BCA302", "BCA302"),
	}
	sittings := []seating.Sitting{
		enrolledSitting("s1", "BCA301"),
		enrolledSitting("s1", "MCA301"),
		enrolledSitting("s2", "MCA301"),
		enrolledSitting("s1", "BCA302"),
	}

	deduped := dedupeSittings(sittings, unitKeyByCode(items))

	require.Len(t, deduped, 3)
	assert.Equal(t, "s1", deduped[0].StudentID)
	assert.Equal(t, "BCA301", deduped[0].CourseCode) // first variant wins
	assert.Equal(t, "s2", deduped[1].StudentID)
	assert.Equal(t, "s1", deduped[2].StudentID)
	assert.Equal(t, "BCA302", deduped[2].CourseCode) // distinct unit kept
}

func TestDedupeSittingsSingleSeatPerStudent(t *testing.T) {
	items := []model.ScheduleItem{mergedItem("301", "BCA301", "MCA301")}
	sittings := []seating.Sitting{
		enrolledSitting("s1", "BCA301"),
		enrolledSitting("s1", "MCA301"),
		enrolledSitting("s2", "BCA301"),
	}
	venues := []seating.Venue{{ID: "1", Name: "Hall A", Rows: 2, Cols: 4}}
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	deduped := dedupeSittings(sittings, unitKeyByCode(items))
	plans, unassigned, err := seating.AssignSeats(date, deduped, venues)

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Empty(t, unassigned)
	assert.Equal(t, 2, plans[0].OccupantCount())

	seatsByStudent := map[string]int{}
	for _, seat := range plans[0].Seats() {
		if seat.Occupant != nil {
			seatsByStudent[seat.Occupant.StudentID]++
		}
	}
	assert.Equal(t, 1, seatsByStudent["s1"])
	assert.Equal(t, 1, seatsByStudent["s2"])
}

func TestDedupeSittingsUnmappedCodePassesThrough(t *testing.T) {
	// Codes without a schedule item fall back to themselves as the unit
	// key, so unrelated sittings are never collapsed.
	sittings := []seating.Sitting{
		enrolledSitting("s1", "BCA301"),
		enrolledSitting("s1", "BCA302"),
	}

	deduped := dedupeSittings(sittings, map[string]string{})
	assert.Len(t, deduped, 2)
}

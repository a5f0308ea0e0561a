package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCandidateDatesSkipsWeekendsAndHolidays(t *testing.T) {
	// Mon 2026-01-05 through Sun 2026-01-11, with Wednesday a holiday.
	dates := CandidateDates(
		date(2026, time.January, 5),
		date(2026, time.January, 11),
		[]time.Time{date(2026, time.January, 7)},
	)

	assert.Equal(t, []time.Time{
		date(2026, time.January, 5),
		date(2026, time.January, 6),
		date(2026, time.January, 8),
		date(2026, time.January, 9),
	}, dates)
}

func TestCandidateDatesEmptyWindow(t *testing.T) {
	// A weekend-only window yields nothing.
	dates := CandidateDates(date(2026, time.January, 10), date(2026, time.January, 11), nil)
	assert.Empty(t, dates)
}

func TestDayCapacity(t *testing.T) {
	friday := date(2026, time.January, 9)
	monday := date(2026, time.January, 5)

	assert.Equal(t, 1, DayCapacity(friday, time.Friday))
	assert.Equal(t, 2, DayCapacity(monday, time.Friday))
}

func TestSlotFor(t *testing.T) {
	assert.Equal(t, SlotShortDay, SlotFor(time.Friday, time.Friday))
	assert.Equal(t, SlotRegular, SlotFor(time.Monday, time.Friday))
}

func TestDayNormalizesWallClockTime(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	a := Day(time.Date(2026, time.March, 3, 23, 15, 0, 0, loc))
	b := Day(time.Date(2026, time.March, 3, 1, 0, 0, 0, loc))
	assert.True(t, a.Equal(b))
}

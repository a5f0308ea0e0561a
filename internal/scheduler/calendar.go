package scheduler

import "time"

// Exam slots are a pure function of the weekday: the short day runs a single
// morning paper, every other day runs two papers in the regular slot.
const (
	SlotRegular  = "10:00 - 13:00"
	SlotShortDay = "08:00 - 11:00"
)

// Day truncates t to a calendar date in UTC. All engine date arithmetic and
// map keys go through this so equal dates always compare equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CandidateDates enumerates every schedulable day in [start, end]: weekends
// and holiday dates are excluded. The result is in chronological order.
func CandidateDates(start, end time.Time, holidays []time.Time) []time.Time {
	excluded := make(map[time.Time]bool, len(holidays))
	for _, h := range holidays {
		excluded[Day(h)] = true
	}

	var dates []time.Time
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if excluded[d] {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// DayCapacity returns how many exams a date may host: one on the short day,
// two otherwise.
func DayCapacity(d time.Time, shortDay time.Weekday) int {
	if d.Weekday() == shortDay {
		return 1
	}
	return 2
}

// SlotFor maps a weekday to its exam time slot.
func SlotFor(wd, shortDay time.Weekday) string {
	if wd == shortDay {
		return SlotShortDay
	}
	return SlotRegular
}

// daysBetween returns the absolute difference between two dates in whole
// days. Both arguments must already be Day-truncated.
func daysBetween(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}

package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"BCA301", "301"},
		{"MCA301", "301"},
		{"bca-301", "301"},
		{"BSC 205A", "205A"},
		{"MSC205A", "205A"},
		{"301", "301"},
		{"PHY", "PHY"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeCode(c.raw), "raw=%s", c.raw)
	}
}

func TestBuildUnitsMergesCodeVariants(t *testing.T) {
	courses := []Course{
		{Code: "BCA301", Name: "Operating Systems", Semester: 3, Program: "UG", GapDays: 2, Teacher: "R. Sharma"},
		{Code: "MCA301", Name: "Operating Systems", Semester: 9, Program: "PG", GapDays: 3, Teacher: "K. Iyer"},
		{Code: "BCA105", Name: "Digital Logic", Semester: 1, Program: "UG"},
	}
	enrollments := map[string][]string{
		"s1": {"BCA301"},
		"s2": {"MCA301"},
		"s3": {"BCA301", "BCA105"},
	}

	units := BuildUnits(courses, enrollments)
	assert.Len(t, units, 2)

	var merged *Unit
	for _, u := range units {
		if u.Key == "301" {
			merged = u
		}
	}
	if assert.NotNil(t, merged) {
		assert.ElementsMatch(t, []string{"BCA301", "MCA301"}, merged.Codes)
		assert.Equal(t, "R. Sharma, K. Iyer", merged.Teachers)
		assert.Equal(t, 3, merged.GapDays, "merged gap is the max of constituents")
		assert.Equal(t, []string{"s1", "s2", "s3"}, merged.Students)
	}
}

func TestBuildUnitsPriorityOrder(t *testing.T) {
	courses := []Course{
		{Code: "CS101", Name: "Intro", Semester: 1, GapDays: 2},
		{Code: "CS601", Name: "Compilers", Semester: 6, GapDays: 2},
		{Code: "CS601L", Name: "Compilers Lab", Semester: 6, GapDays: 2, IsLab: true},
	}
	units := BuildUnits(courses, nil)

	// 601 and 601L normalize to different keys; the lab penalty puts the
	// lab after the theory paper, and the low semester course goes last.
	assert.Equal(t, "601", units[0].Key)
	assert.Equal(t, "601L", units[1].Key)
	assert.Equal(t, "101", units[2].Key)
}

func TestBuildUnitsStableTieBreak(t *testing.T) {
	// Identical priorities keep original input order.
	courses := []Course{
		{Code: "MA201", Semester: 2, GapDays: 2},
		{Code: "PH201A", Semester: 2, GapDays: 2},
		{Code: "CH201B", Semester: 2, GapDays: 2},
	}
	units := BuildUnits(courses, nil)
	assert.Equal(t, "201", units[0].Key)
	assert.Equal(t, "201A", units[1].Key)
	assert.Equal(t, "201B", units[2].Key)
}

func TestUnitPriorityScore(t *testing.T) {
	u := &Unit{Semester: 5, GapDays: 3, Students: []string{"a", "b", "c", "d"}}
	assert.Equal(t, 10*5+5*3+2*4, u.Priority())

	u.IsLab = true
	assert.Equal(t, 10*5+5*3+2*4-5, u.Priority())
}

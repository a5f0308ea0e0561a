package scheduler

import (
	"sort"
	"strings"
)

// NormalizeCode reduces a raw course code to its scheduling key. Program
// prefixes differ between code variants of the same subject (e.g. BCA-301
// and MCA-301), so the key is the code with its leading letter prefix
// stripped. Codes with no trailing part keep the full cleaned code as key.
func NormalizeCode(raw string) string {
	code := strings.ToUpper(raw)
	code = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(code)

	i := 0
	for i < len(code) && code[i] >= 'A' && code[i] <= 'Z' {
		i++
	}
	if i == len(code) || i == 0 {
		return code
	}
	return code[i:]
}

// Unit is one merged scheduling unit: the atomic thing the engine places on
// a date. Cross-program code variants of the same subject collapse into a
// single unit and are scheduled exactly once.
type Unit struct {
	Key      string
	Codes    []string
	Name     string
	Semester int
	Program  string
	GapDays  int
	IsLab    bool
	Teachers string

	// Students enrolled in any constituent code, sorted for determinism.
	Students []string

	// index preserves original input order as the stable tie-break among
	// units with equal priority.
	index int
}

// Priority scores a unit for placement order. Higher scores mean more
// constrained units, which are placed first to keep backtracking shallow.
func (u *Unit) Priority() int {
	p := 10*u.Semester + 5*u.GapDays + 2*len(u.Students)
	if u.IsLab {
		p -= 5
	}
	return p
}

// BuildUnits merges course code variants into scheduling units, attaches the
// enrolled student set of each unit, and returns the units sorted by
// descending priority (ties broken by original course order).
func BuildUnits(courses []Course, enrollments map[string][]string) []*Unit {
	byKey := make(map[string]*Unit)
	var units []*Unit

	for i, c := range courses {
		key := NormalizeCode(c.Code)
		u, ok := byKey[key]
		if !ok {
			gap := c.GapDays
			if gap <= 0 {
				gap = DefaultGapDays
			}
			u = &Unit{
				Key:      key,
				Codes:    []string{c.Code},
				Name:     c.Name,
				Semester: c.Semester,
				Program:  c.Program,
				GapDays:  gap,
				IsLab:    c.IsLab,
				Teachers: c.Teacher,
				index:    i,
			}
			byKey[key] = u
			units = append(units, u)
			continue
		}

		// Merge a code variant into the existing unit.
		u.Codes = append(u.Codes, c.Code)
		if c.GapDays > u.GapDays {
			u.GapDays = c.GapDays
		}
		if c.IsLab {
			u.IsLab = true
		}
		if c.Teacher != "" && !strings.Contains(u.Teachers, c.Teacher) {
			if u.Teachers == "" {
				u.Teachers = c.Teacher
			} else {
				u.Teachers += ", " + c.Teacher
			}
		}
	}

	attachStudents(units, byKey, enrollments)

	sort.SliceStable(units, func(i, j int) bool {
		pi, pj := units[i].Priority(), units[j].Priority()
		if pi != pj {
			return pi > pj
		}
		return units[i].index < units[j].index
	})

	return units
}

func attachStudents(units []*Unit, byKey map[string]*Unit, enrollments map[string][]string) {
	seen := make(map[string]map[string]bool, len(units))
	for _, u := range units {
		seen[u.Key] = make(map[string]bool)
	}

	for student, codes := range enrollments {
		for _, code := range codes {
			u, ok := byKey[NormalizeCode(code)]
			if !ok || seen[u.Key][student] {
				continue
			}
			seen[u.Key][student] = true
			u.Students = append(u.Students, student)
		}
	}

	for _, u := range units {
		sort.Strings(u.Students)
	}
}

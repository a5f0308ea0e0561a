package main

import (
	"context"
	"fmt"
	"time"

	"github.com/campuskit/examsched-backend/internal/config"
	"github.com/campuskit/examsched-backend/internal/database"
	"github.com/campuskit/examsched-backend/internal/logger"
	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/repository"
)

// Seeds a small demo campus: two departments, cross-program course variants,
// a shared hall, and enough enrollments to make the engines do real work.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseRepo := repository.NewCourseRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	venueRepo := repository.NewVenueRepository(pool)
	holidayRepo := repository.NewHolidayRepository(pool)

	fmt.Println("=== Seeding Demo Data ===")

	courses := []model.Course{
		{Code: "BCA301", Name: "Operating Systems", Semester: 3, Program: model.ProgramUG, GapDays: 2, Teacher: "R. Sharma", Department: "CS"},
		{Code: "MCA301", Name: "Operating Systems", Semester: 9, Program: model.ProgramPG, GapDays: 3, Teacher: "K. Iyer", Department: "CS"},
		{Code: "BCA302", Name: "Database Systems", Semester: 3, Program: model.ProgramUG, GapDays: 2, Teacher: "S. Nair", Department: "CS"},
		{Code: "BCA303", Name: "Computer Networks Lab", Semester: 3, Program: model.ProgramUG, GapDays: 1, IsLab: true, Teacher: "A. Menon", Department: "CS"},
		{Code: "BBA201", Name: "Financial Accounting", Semester: 2, Program: model.ProgramUG, GapDays: 2, Teacher: "P. Gupta", Department: "Commerce"},
		{Code: "BBA202", Name: "Business Statistics", Semester: 2, Program: model.ProgramUG, GapDays: 2, Teacher: "M. Rao", Department: "Commerce"},
	}
	courseIDs := make(map[string]int, len(courses))
	for i := range courses {
		c := &courses[i]
		if err := courseRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("code", c.Code).Msg("Failed to create course")
		}
		courseIDs[c.Code] = c.ID
	}
	fmt.Printf("Created %d courses\n", len(courses))

	type seedStudent struct {
		regNumber  string
		name       string
		department string
		courses    []string
	}
	students := []seedStudent{
		{"CS2024001", "Aarav Joshi", "CS", []string{"BCA301", "BCA302", "BCA303"}},
		{"CS2024002", "Diya Patel", "CS", []string{"BCA301", "BCA302"}},
		{"CS2024003", "Ishaan Reddy", "CS", []string{"BCA302", "BCA303"}},
		{"CS2023101", "Meera Krishnan", "CS", []string{"MCA301"}},
		{"CM2024001", "Rohan Desai", "Commerce", []string{"BBA201", "BBA202"}},
		{"CM2024002", "Sana Sheikh", "Commerce", []string{"BBA201", "BBA202"}},
		{"CM2024003", "Vikram Singh", "Commerce", []string{"BBA202"}},
	}
	for _, ss := range students {
		st := &model.Student{RegNumber: ss.regNumber, Name: ss.name, Department: ss.department}
		if err := studentRepo.Create(ctx, st); err != nil {
			log.Fatal().Err(err).Str("reg_number", ss.regNumber).Msg("Failed to create student")
		}
		ids := make([]int, 0, len(ss.courses))
		for _, code := range ss.courses {
			ids = append(ids, courseIDs[code])
		}
		if err := enrollmentRepo.SetForStudent(ctx, st.ID, ids); err != nil {
			log.Fatal().Err(err).Str("reg_number", ss.regNumber).Msg("Failed to enroll student")
		}
	}
	fmt.Printf("Created %d students with enrollments\n", len(students))

	venues := []model.Venue{
		{Name: "CS Block Hall A", Department: "CS", Rows: 5, Cols: 6},
		{Name: "Commerce Hall B", Department: "Commerce", Rows: 4, Cols: 6},
		{Name: "Main Auditorium", Rows: 10, Cols: 8}, // shared fallback
	}
	for i := range venues {
		if err := venueRepo.Create(ctx, &venues[i]); err != nil {
			log.Fatal().Err(err).Str("name", venues[i].Name).Msg("Failed to create venue")
		}
	}
	fmt.Printf("Created %d venues\n", len(venues))

	now := time.Now()
	holiday := &model.Holiday{
		Date: time.Date(now.Year(), now.Month(), 26, 0, 0, 0, 0, time.UTC),
		Name: "Founders Day",
	}
	if err := holidayRepo.Create(ctx, holiday); err != nil {
		log.Fatal().Err(err).Msg("Failed to create holiday")
	}
	fmt.Println("Created 1 holiday")

	fmt.Println("Done. Log in as an admin and queue a schedule run.")
}

package repository

import (
	"context"
	"strconv"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/seating"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// SetForStudent replaces a student's enrolled course set atomically.
func (r *EnrollmentRepository) SetForStudent(ctx context.Context, studentID int, courseIDs []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1`, studentID); err != nil {
		return err
	}
	for _, courseID := range courseIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			studentID, courseID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// GetByStudent lists the course IDs a student is enrolled in.
func (r *EnrollmentRepository) GetByStudent(ctx context.Context, studentID int) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, course_id, created_at FROM enrollments WHERE student_id = $1 ORDER BY course_id ASC`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// GetEnrollmentMap assembles the scheduler's enrollment input: student ID to
// the raw course codes that student is sitting.
func (r *EnrollmentRepository) GetEnrollmentMap(ctx context.Context) (map[string][]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.student_id, c.code
		 FROM enrollments e JOIN courses c ON c.id = e.course_id
		 ORDER BY e.student_id, c.code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make(map[string][]string)
	for rows.Next() {
		var studentID int
		var code string
		if err := rows.Scan(&studentID, &code); err != nil {
			return nil, err
		}
		key := strconv.Itoa(studentID)
		enrollments[key] = append(enrollments[key], code)
	}
	return enrollments, rows.Err()
}

// GetSittingsForCodes assembles the seat engine's input: every enrolled
// (student, course) pair whose course code is in codes.
func (r *EnrollmentRepository) GetSittingsForCodes(ctx context.Context, codes []string) ([]seating.Sitting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.name, s.reg_number, s.department, c.code
		 FROM enrollments e
		 JOIN students s ON s.id = e.student_id
		 JOIN courses c ON c.id = e.course_id
		 WHERE c.code = ANY($1)
		 ORDER BY c.code, s.reg_number`, codes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sittings []seating.Sitting
	for rows.Next() {
		var id int
		var s seating.Sitting
		if err := rows.Scan(&id, &s.StudentName, &s.RegNumber, &s.Department, &s.CourseCode); err != nil {
			return nil, err
		}
		s.StudentID = strconv.Itoa(id)
		sittings = append(sittings, s)
	}
	return sittings, rows.Err()
}

package repository

import (
	"context"
	"time"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatingRepository struct {
	pool *pgxpool.Pool
}

func NewSeatingRepository(pool *pgxpool.Pool) *SeatingRepository {
	return &SeatingRepository{pool: pool}
}

// ReplaceForDate swaps out one exam date's seat assignments atomically.
// Regeneration and manual swaps both go through here, so the stored plan is
// always a complete, consistent snapshot.
func (r *SeatingRepository) ReplaceForDate(ctx context.Context, examDate time.Time, seats []model.SeatAssignment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM seat_assignments WHERE exam_date = $1`, examDate); err != nil {
		return err
	}
	for i := range seats {
		seat := &seats[i]
		seat.ExamDate = examDate
		if err := tx.QueryRow(ctx,
			`INSERT INTO seat_assignments (exam_date, venue_id, row_num, col_num, label, student_id, course_code)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id, created_at`,
			seat.ExamDate, seat.VenueID, seat.Row, seat.Col, seat.Label, seat.StudentID, seat.CourseCode).
			Scan(&seat.ID, &seat.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// SeatRow is a seat assignment joined with its student's display fields.
type SeatRow struct {
	model.SeatAssignment
	StudentName string
	RegNumber   string
	Department  string
}

// GetByDate lists one exam date's stored seats with student details.
func (r *SeatingRepository) GetByDate(ctx context.Context, examDate time.Time) ([]SeatRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sa.id, sa.exam_date, sa.venue_id, sa.row_num, sa.col_num, sa.label, sa.student_id, sa.course_code, sa.created_at,
		        s.name, s.reg_number, s.department
		 FROM seat_assignments sa
		 JOIN students s ON s.id = sa.student_id
		 WHERE sa.exam_date = $1
		 ORDER BY sa.venue_id, sa.row_num, sa.col_num`, examDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []SeatRow
	for rows.Next() {
		var sr SeatRow
		if err := rows.Scan(&sr.ID, &sr.ExamDate, &sr.VenueID, &sr.Row, &sr.Col, &sr.Label,
			&sr.StudentID, &sr.CourseCode, &sr.CreatedAt,
			&sr.StudentName, &sr.RegNumber, &sr.Department); err != nil {
			return nil, err
		}
		seats = append(seats, sr)
	}
	return seats, rows.Err()
}

func (r *SeatingRepository) DeleteForDate(ctx context.Context, examDate time.Time) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM seat_assignments WHERE exam_date = $1`, examDate)
	return err
}

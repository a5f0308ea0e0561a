package repository

import (
	"context"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (code, name, semester, program, gap_days, is_lab, teacher, department)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		c.Code, c.Name, c.Semester, c.Program, c.GapDays, c.IsLab, c.Teacher, c.Department).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CourseRepository) GetAll(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, semester, program, gap_days, is_lab, teacher, department, created_at, updated_at
		 FROM courses ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Semester, &c.Program, &c.GapDays,
			&c.IsLab, &c.Teacher, &c.Department, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	var c model.Course
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, name, semester, program, gap_days, is_lab, teacher, department, created_at, updated_at
		 FROM courses WHERE id = $1`, id).
		Scan(&c.ID, &c.Code, &c.Name, &c.Semester, &c.Program, &c.GapDays,
			&c.IsLab, &c.Teacher, &c.Department, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE courses SET code = $1, name = $2, semester = $3, program = $4, gap_days = $5,
		 is_lab = $6, teacher = $7, department = $8, updated_at = NOW() WHERE id = $9`,
		c.Code, c.Name, c.Semester, c.Program, c.GapDays, c.IsLab, c.Teacher, c.Department, c.ID)
	return err
}

func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

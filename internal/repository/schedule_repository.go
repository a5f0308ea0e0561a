package repository

import (
	"context"
	"errors"
	"time"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) CreateRun(ctx context.Context, run *model.ScheduleRun) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO schedule_runs (id, status, window_start, window_end, requested_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		run.ID, run.Status, run.WindowStart, run.WindowEnd, run.RequestedBy).
		Scan(&run.CreatedAt, &run.UpdatedAt)
}

func (r *ScheduleRepository) UpdateRunStatus(ctx context.Context, id uuid.UUID, status model.RunStatus, failureCode, failureDetail string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE schedule_runs SET status = $1, failure_code = NULLIF($2, ''), failure_detail = NULLIF($3, ''), updated_at = NOW()
		 WHERE id = $4`,
		status, failureCode, failureDetail, id)
	return err
}

func (r *ScheduleRepository) GetRun(ctx context.Context, id uuid.UUID) (*model.ScheduleRun, error) {
	var run model.ScheduleRun
	err := r.pool.QueryRow(ctx,
		`SELECT id, status, window_start, window_end, requested_by,
		        COALESCE(failure_code, ''), COALESCE(failure_detail, ''), created_at, updated_at
		 FROM schedule_runs WHERE id = $1`, id).
		Scan(&run.ID, &run.Status, &run.WindowStart, &run.WindowEnd, &run.RequestedBy,
			&run.FailureCode, &run.FailureDetail, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// HasActiveRun reports whether a run is currently queued or executing.
func (r *ScheduleRepository) HasActiveRun(ctx context.Context) (bool, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM schedule_runs WHERE status IN ($1, $2) LIMIT 1`,
		model.RunStatusPending, model.RunStatusRunning).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetLatestCompletedRun returns the most recent COMPLETED run, or pgx.ErrNoRows.
func (r *ScheduleRepository) GetLatestCompletedRun(ctx context.Context) (*model.ScheduleRun, error) {
	var run model.ScheduleRun
	err := r.pool.QueryRow(ctx,
		`SELECT id, status, window_start, window_end, requested_by,
		        COALESCE(failure_code, ''), COALESCE(failure_detail, ''), created_at, updated_at
		 FROM schedule_runs WHERE status = $1 ORDER BY updated_at DESC LIMIT 1`,
		model.RunStatusCompleted).
		Scan(&run.ID, &run.Status, &run.WindowStart, &run.WindowEnd, &run.RequestedBy,
			&run.FailureCode, &run.FailureDetail, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// SaveItems persists a completed run's calendar in one transaction.
func (r *ScheduleRepository) SaveItems(ctx context.Context, runID uuid.UUID, items []model.ScheduleItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range items {
		item := &items[i]
		item.RunID = runID
		if err := tx.QueryRow(ctx,
			`INSERT INTO schedule_items
			   (run_id, course_key, course_codes, course_name, teachers, exam_date, weekday, slot, semester, program, gap_days, is_first_paper)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 RETURNING id, created_at`,
			item.RunID, item.CourseKey, item.CourseCodes, item.CourseName, item.Teachers,
			item.ExamDate, item.Weekday, item.Slot, item.Semester, item.Program,
			item.GapDays, item.IsFirstPaper).
			Scan(&item.ID, &item.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *ScheduleRepository) GetItemsByRun(ctx context.Context, runID uuid.UUID) ([]model.ScheduleItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, run_id, course_key, course_codes, course_name, teachers, exam_date, weekday, slot,
		        semester, program, gap_days, is_first_paper, created_at
		 FROM schedule_items WHERE run_id = $1 ORDER BY exam_date ASC, semester ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

// GetItemsForDate lists a run's items sitting on one exam date.
func (r *ScheduleRepository) GetItemsForDate(ctx context.Context, runID uuid.UUID, examDate time.Time) ([]model.ScheduleItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, run_id, course_key, course_codes, course_name, teachers, exam_date, weekday, slot,
		        semester, program, gap_days, is_first_paper, created_at
		 FROM schedule_items WHERE run_id = $1 AND exam_date = $2 ORDER BY semester ASC`, runID, examDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows pgx.Rows) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	for rows.Next() {
		var it model.ScheduleItem
		if err := rows.Scan(&it.ID, &it.RunID, &it.CourseKey, &it.CourseCodes, &it.CourseName,
			&it.Teachers, &it.ExamDate, &it.Weekday, &it.Slot, &it.Semester, &it.Program,
			&it.GapDays, &it.IsFirstPaper, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

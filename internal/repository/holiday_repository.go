package repository

import (
	"context"
	"time"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HolidayRepository struct {
	pool *pgxpool.Pool
}

func NewHolidayRepository(pool *pgxpool.Pool) *HolidayRepository {
	return &HolidayRepository{pool: pool}
}

func (r *HolidayRepository) Create(ctx context.Context, h *model.Holiday) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO holidays (holiday_date, name) VALUES ($1, $2) RETURNING id, created_at`,
		h.Date, h.Name).Scan(&h.ID, &h.CreatedAt)
}

func (r *HolidayRepository) GetAll(ctx context.Context) ([]model.Holiday, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, holiday_date, name, created_at FROM holidays ORDER BY holiday_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []model.Holiday
	for rows.Next() {
		var h model.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// GetDates lists holiday dates only, for the scheduler's exclusion set.
func (r *HolidayRepository) GetDates(ctx context.Context) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx, `SELECT holiday_date FROM holidays ORDER BY holiday_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *HolidayRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	return err
}

package repository

import (
	"context"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueRepository struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{pool: pool}
}

func (r *VenueRepository) Create(ctx context.Context, v *model.Venue) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO venues (name, department, row_count, col_count) VALUES ($1, NULLIF($2, ''), $3, $4)
		 RETURNING id, created_at, updated_at`,
		v.Name, v.Department, v.Rows, v.Cols).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return err
	}
	v.Capacity = v.Rows * v.Cols
	return nil
}

func (r *VenueRepository) GetAll(ctx context.Context) ([]model.Venue, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, COALESCE(department, ''), row_count, col_count, created_at, updated_at
		 FROM venues ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []model.Venue
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Department, &v.Rows, &v.Cols, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		v.Capacity = v.Rows * v.Cols
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *VenueRepository) GetByID(ctx context.Context, id int) (*model.Venue, error) {
	var v model.Venue
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(department, ''), row_count, col_count, created_at, updated_at
		 FROM venues WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Department, &v.Rows, &v.Cols, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.Capacity = v.Rows * v.Cols
	return &v, nil
}

func (r *VenueRepository) Update(ctx context.Context, v *model.Venue) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE venues SET name = $1, department = NULLIF($2, ''), row_count = $3, col_count = $4, updated_at = NOW()
		 WHERE id = $5`,
		v.Name, v.Department, v.Rows, v.Cols, v.ID)
	return err
}

func (r *VenueRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	return err
}

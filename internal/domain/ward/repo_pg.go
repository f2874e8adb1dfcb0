package ward

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const wardCols = `id, ward_name, ward_type, ward_mode, total_beds, cost_per_day, room_type`

func scanWard(row pgx.Row) (*Ward, error) {
	var w Ward
	err := row.Scan(&w.ID, &w.WardName, &w.WardType, &w.WardMode, &w.TotalBeds, &w.CostPerDay, &w.RoomType)
	return &w, err
}

func (r *repoPG) Create(ctx context.Context, w *Ward) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO wards (ward_name, ward_type, ward_mode, total_beds, cost_per_day, room_type)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		w.WardName, w.WardType, w.WardMode, w.TotalBeds, w.CostPerDay, w.RoomType).Scan(&w.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Ward, error) {
	return scanWard(r.pool.QueryRow(ctx, `SELECT `+wardCols+` FROM wards WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Ward, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wards`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+wardCols+` FROM wards ORDER BY id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Ward
	for rows.Next() {
		w, err := scanWard(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

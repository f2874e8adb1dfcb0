package feedback

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, f *Feedback) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO feedback (username, email, message)
		VALUES ($1,$2,$3)
		RETURNING id, created_at`,
		f.Username, f.Email, f.Message).Scan(&f.ID, &f.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Feedback, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, username, email, message, created_at
		FROM feedback ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Username, &f.Email, &f.Message, &f.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

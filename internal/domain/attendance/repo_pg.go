package attendance

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO attendance (staff_id, date_of_attendance, incoming_time,
			outgoing_time, status, task_involved)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		rec.StaffID, rec.DateOfAttendance, rec.IncomingTime,
		rec.OutgoingTime, rec.Status, rec.TaskInvolved).Scan(&rec.ID)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.staff_id, acc.username, a.date_of_attendance,
			a.incoming_time, a.outgoing_time, a.status, a.task_involved
		FROM attendance a
		JOIN accounts acc ON acc.id = a.staff_id
		ORDER BY a.date_of_attendance DESC, a.id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.StaffID, &rec.StaffUsername, &rec.DateOfAttendance,
			&rec.IncomingTime, &rec.OutgoingTime, &rec.Status, &rec.TaskInvolved); err != nil {
			return nil, 0, err
		}
		items = append(items, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

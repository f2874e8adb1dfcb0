package attendance

import "context"

type Repository interface {
	// Create inserts the record; the unique (staff_id, date_of_attendance)
	// index surfaces duplicates as a pg unique violation.
	Create(ctx context.Context, rec *Record) error
	List(ctx context.Context, limit, offset int) ([]*Record, int, error)
}

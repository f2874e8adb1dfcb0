package billing

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id int64) (*Bill, error)
	UpdatePayment(ctx context.Context, id int64, status string, method *string) error
	List(ctx context.Context, status string, limit, offset int) ([]*Bill, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Bill, int, error)
	// PatientPrefill reads the patient fields a new bill is seeded from.
	PatientPrefill(ctx context.Context, patientID int64) (*Prefill, error)
}

package patient

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	// Discharge stamps discharge_date and clears is_admitted for a patient
	// that is still admitted. Returns the number of rows changed so the
	// service can treat a repeat discharge as a no-op.
	Discharge(ctx context.Context, id int64, at time.Time) (int64, error)
	// Delete removes the patient and its bills in the same transaction.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, admittedOnly bool, limit, offset int) ([]*Patient, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error)
	Bills(ctx context.Context, patientID int64) ([]*BillSummary, error)
}

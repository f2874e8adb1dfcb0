package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	// Delete removes the doctor and nulls consult_doctor_id on patients and
	// bills in the same transaction.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Doctor, int, error)
	// ConsultedPatients returns the doctor's most recently admitted patients.
	ConsultedPatients(ctx context.Context, doctorID int64, limit int) ([]*ConsultedPatient, error)
}

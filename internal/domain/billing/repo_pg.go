package billing

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const billCols = `b.id, b.patient_id, p.patient_name, b.consult_doctor_id, b.diagnosis,
	b.contact_number, b.amount, b.bill_date, b.payment_status, b.payment_method, b.created_by`

const billFrom = `FROM bills b JOIN patients p ON p.id = b.patient_id`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.PatientID, &b.PatientName, &b.ConsultDoctorID, &b.Diagnosis,
		&b.ContactNumber, &b.Amount, &b.BillDate, &b.PaymentStatus, &b.PaymentMethod, &b.CreatedBy)
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Bill) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO bills (patient_id, consult_doctor_id, diagnosis, contact_number,
			amount, bill_date, payment_status, payment_method, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`,
		b.PatientID, b.ConsultDoctorID, b.Diagnosis, b.ContactNumber,
		b.Amount, b.BillDate, b.PaymentStatus, b.PaymentMethod, b.CreatedBy).Scan(&b.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Bill, error) {
	return scanBill(r.pool.QueryRow(ctx, `SELECT `+billCols+` `+billFrom+` WHERE b.id = $1`, id))
}

// UpdatePayment changes payment state only; bill_date and amount are
// immutable after creation.
func (r *repoPG) UpdatePayment(ctx context.Context, id int64, status string, method *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bills SET payment_status = $2, payment_method = $3 WHERE id = $1`,
		id, status, method)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, status string, limit, offset int) ([]*Bill, int, error) {
	if status == "" {
		var total int
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) `+billFrom).Scan(&total); err != nil {
			return nil, 0, err
		}
		rows, err := r.pool.Query(ctx,
			`SELECT `+billCols+` `+billFrom+` ORDER BY b.bill_date DESC LIMIT $1 OFFSET $2`,
			limit, offset)
		if err != nil {
			return nil, 0, err
		}
		defer rows.Close()
		return collectBills(rows, total)
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) `+billFrom+` WHERE b.payment_status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+billCols+` `+billFrom+` WHERE b.payment_status = $1 ORDER BY b.bill_date DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectBills(rows, total)
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Bill, int, error) {
	pattern := "%" + query + "%"
	where := `WHERE p.patient_name ILIKE $1 OR b.id::text ILIKE $1`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) `+billFrom+` `+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+billCols+` `+billFrom+` `+where+` ORDER BY b.bill_date DESC LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectBills(rows, total)
}

func (r *repoPG) PatientPrefill(ctx context.Context, patientID int64) (*Prefill, error) {
	var pf Prefill
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_name, consult_doctor_id, diagnosis, mobile_number, fee
		FROM patients WHERE id = $1`, patientID).
		Scan(&pf.PatientID, &pf.PatientName, &pf.ConsultDoctorID, &pf.Diagnosis, &pf.ContactNumber, &pf.Amount)
	if err != nil {
		return nil, err
	}
	return &pf, nil
}

func collectBills(rows pgx.Rows, total int) ([]*Bill, int, error) {
	var items []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, patient_name, age, gender, address, consult_doctor_id,
	problem, admission_date, discharge_date, is_admitted, fee, diagnosis,
	mobile_number, email`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.PatientName, &p.Age, &p.Gender, &p.Address, &p.ConsultDoctorID,
		&p.Problem, &p.AdmissionDate, &p.DischargeDate, &p.IsAdmitted, &p.Fee, &p.Diagnosis,
		&p.MobileNumber, &p.Email)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (patient_name, age, gender, address, consult_doctor_id,
			problem, admission_date, is_admitted, fee, diagnosis, mobile_number, email)
		VALUES ($1,$2,$3,$4,$5,$6,$7,TRUE,$8,$9,$10,$11)
		RETURNING id`,
		p.PatientName, p.Age, p.Gender, p.Address, p.ConsultDoctorID,
		p.Problem, p.AdmissionDate, p.Fee, p.Diagnosis, p.MobileNumber, p.Email).Scan(&p.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET patient_name=$2, age=$3, gender=$4, address=$5,
			consult_doctor_id=$6, problem=$7, fee=$8, diagnosis=$9,
			mobile_number=$10, email=$11
		WHERE id = $1`,
		p.ID, p.PatientName, p.Age, p.Gender, p.Address,
		p.ConsultDoctorID, p.Problem, p.Fee, p.Diagnosis,
		p.MobileNumber, p.Email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Discharge is guarded by is_admitted so a concurrent double-submit cannot
// move an already-set discharge timestamp.
func (r *repoPG) Discharge(ctx context.Context, id int64, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET discharge_date = $2, is_admitted = FALSE
		WHERE id = $1 AND is_admitted = TRUE`, id, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bills WHERE patient_id = $1`, id); err != nil {
		return fmt.Errorf("delete bills: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *repoPG) List(ctx context.Context, admittedOnly bool, limit, offset int) ([]*Patient, int, error) {
	where := ""
	if admittedOnly {
		where = `WHERE is_admitted = TRUE`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients `+where).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients `+where+` ORDER BY admission_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + query + "%"
	where := `WHERE patient_name ILIKE $1 OR mobile_number ILIKE $1 OR email ILIKE $1 OR id::text ILIKE $1`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients `+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients `+where+` ORDER BY admission_date DESC LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func (r *repoPG) Bills(ctx context.Context, patientID int64) ([]*BillSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, amount, bill_date, payment_status
		FROM bills WHERE patient_id = $1
		ORDER BY bill_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*BillSummary
	for rows.Next() {
		var b BillSummary
		if err := rows.Scan(&b.ID, &b.Amount, &b.BillDate, &b.PaymentStatus); err != nil {
			return nil, err
		}
		items = append(items, &b)
	}
	return items, rows.Err()
}

func collectPatients(rows pgx.Rows, total int) ([]*Patient, int, error) {
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

package doctor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const doctorCols = `id, doctor_name, father_name, gender, dob, address,
	qualification, experience, last_worked_hospital, salary`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.DoctorName, &d.FatherName, &d.Gender, &d.DOB, &d.Address,
		&d.Qualification, &d.Experience, &d.LastWorkedHospital, &d.Salary)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO doctors (doctor_name, father_name, gender, dob, address,
			qualification, experience, last_worked_hospital, salary)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`,
		d.DoctorName, d.FatherName, d.Gender, d.DOB, d.Address,
		d.Qualification, d.Experience, d.LastWorkedHospital, d.Salary).Scan(&d.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, d *Doctor) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE doctors SET doctor_name=$2, father_name=$3, gender=$4, dob=$5, address=$6,
			qualification=$7, experience=$8, last_worked_hospital=$9, salary=$10
		WHERE id = $1`,
		d.ID, d.DoctorName, d.FatherName, d.Gender, d.DOB, d.Address,
		d.Qualification, d.Experience, d.LastWorkedHospital, d.Salary)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE patients SET consult_doctor_id = NULL WHERE consult_doctor_id = $1`, id); err != nil {
		return fmt.Errorf("detach patients: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE bills SET consult_doctor_id = NULL WHERE consult_doctor_id = $1`, id); err != nil {
		return fmt.Errorf("detach bills: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectDoctors(rows, total)
}

func (r *repoPG) Search(ctx context.Context, query string, limit, offset int) ([]*Doctor, int, error) {
	pattern := "%" + query + "%"
	where := `WHERE doctor_name ILIKE $1 OR qualification ILIKE $1 OR id::text ILIKE $1`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors `+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+doctorCols+` FROM doctors `+where+` ORDER BY id DESC LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectDoctors(rows, total)
}

func (r *repoPG) ConsultedPatients(ctx context.Context, doctorID int64, limit int) ([]*ConsultedPatient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_name, problem, admission_date, is_admitted
		FROM patients WHERE consult_doctor_id = $1
		ORDER BY admission_date DESC LIMIT $2`, doctorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*ConsultedPatient
	for rows.Next() {
		var p ConsultedPatient
		if err := rows.Scan(&p.ID, &p.PatientName, &p.Problem, &p.AdmissionDate, &p.IsAdmitted); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func collectDoctors(rows pgx.Rows, total int) ([]*Doctor, int, error) {
	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

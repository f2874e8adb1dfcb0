package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/domain/billing"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

// whereRange builds a WHERE fragment bounding col to the range. Timestamp
// columns take an exclusive upper bound at the day after End so the end date
// stays inclusive; plain DATE columns compare directly.
func whereRange(col string, rng DateRange, dateColumn bool) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if rng.Start != nil {
		args = append(args, *rng.Start)
		conds = append(conds, fmt.Sprintf("%s >= $%d", col, len(args)))
	}
	if rng.End != nil {
		if dateColumn {
			args = append(args, *rng.End)
			conds = append(conds, fmt.Sprintf("%s <= $%d", col, len(args)))
		} else {
			args = append(args, rng.End.AddDate(0, 0, 1))
			conds = append(conds, fmt.Sprintf("%s < $%d", col, len(args)))
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *repoPG) AdmissionTotals(ctx context.Context, rng DateRange) (*AdmissionTotals, error) {
	where, args := whereRange("admission_date", rng, false)
	var t AdmissionTotals
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN is_admitted THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN NOT is_admitted THEN 1 ELSE 0 END), 0)
		FROM patients `+where, args...).Scan(&t.Total, &t.Admitted, &t.Discharged)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) AdmissionsByDoctor(ctx context.Context, rng DateRange) ([]*DoctorCount, error) {
	where, args := whereRange("p.admission_date", rng, false)
	rows, err := r.pool.Query(ctx, `
		SELECT COALESCE(d.doctor_name, 'unassigned'), COUNT(*)
		FROM patients p
		LEFT JOIN doctors d ON d.id = p.consult_doctor_id
		`+where+`
		GROUP BY 1
		ORDER BY 2 DESC, 1`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DoctorCount
	for rows.Next() {
		var dc DoctorCount
		if err := rows.Scan(&dc.DoctorName, &dc.Count); err != nil {
			return nil, err
		}
		items = append(items, &dc)
	}
	return items, rows.Err()
}

func (r *repoPG) AdmissionRows(ctx context.Context, rng DateRange, limit int) ([]*AdmissionRow, error) {
	where, args := whereRange("p.admission_date", rng, false)
	args = append(args, limit)
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.patient_name, d.doctor_name, p.problem,
			p.admission_date, p.discharge_date, p.is_admitted
		FROM patients p
		LEFT JOIN doctors d ON d.id = p.consult_doctor_id
		`+where+`
		ORDER BY p.admission_date DESC
		LIMIT $`+fmt.Sprint(len(args)), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*AdmissionRow
	for rows.Next() {
		var ar AdmissionRow
		if err := rows.Scan(&ar.ID, &ar.PatientName, &ar.DoctorName, &ar.Problem,
			&ar.AdmissionDate, &ar.DischargeDate, &ar.IsAdmitted); err != nil {
			return nil, err
		}
		items = append(items, &ar)
	}
	return items, rows.Err()
}

func (r *repoPG) RevenueTotals(ctx context.Context, rng DateRange) (*RevenueTotals, error) {
	where, args := whereRange("bill_date", rng, false)
	var t RevenueTotals
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(amount), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'partial' THEN amount ELSE 0 END), 0)
		FROM bills `+where, args...).
		Scan(&t.BillCount, &t.TotalAmount, &t.PaidAmount, &t.PendingAmount, &t.PartialAmount)
	if err != nil {
		return nil, err
	}
	t.TotalTax = billing.TaxOn(t.TotalAmount)
	t.TotalWithTax = t.TotalAmount.Add(t.TotalTax)
	return &t, nil
}

func (r *repoPG) RevenueByMethod(ctx context.Context, rng DateRange) ([]*MethodRevenue, error) {
	where, args := whereRange("bill_date", rng, false)
	rows, err := r.pool.Query(ctx, `
		SELECT COALESCE(payment_method, 'unspecified'), COUNT(*), COALESCE(SUM(amount), 0)
		FROM bills
		`+where+`
		GROUP BY 1
		ORDER BY 3 DESC, 1`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MethodRevenue
	for rows.Next() {
		var mr MethodRevenue
		if err := rows.Scan(&mr.Method, &mr.Count, &mr.Amount); err != nil {
			return nil, err
		}
		items = append(items, &mr)
	}
	return items, rows.Err()
}

func (r *repoPG) RevenueByDoctor(ctx context.Context, rng DateRange) ([]*DoctorRevenue, error) {
	where, args := whereRange("b.bill_date", rng, false)
	rows, err := r.pool.Query(ctx, `
		SELECT COALESCE(d.doctor_name, 'unassigned'), COUNT(*), COALESCE(SUM(b.amount), 0)
		FROM bills b
		LEFT JOIN doctors d ON d.id = b.consult_doctor_id
		`+where+`
		GROUP BY 1
		ORDER BY 3 DESC, 1`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*DoctorRevenue
	for rows.Next() {
		var dr DoctorRevenue
		if err := rows.Scan(&dr.DoctorName, &dr.Count, &dr.Amount); err != nil {
			return nil, err
		}
		items = append(items, &dr)
	}
	return items, rows.Err()
}

func (r *repoPG) RevenueRows(ctx context.Context, rng DateRange, limit int) ([]*RevenueRow, error) {
	where, args := whereRange("b.bill_date", rng, false)
	args = append(args, limit)
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, p.patient_name, b.amount, b.bill_date, b.payment_status, b.payment_method
		FROM bills b
		JOIN patients p ON p.id = b.patient_id
		`+where+`
		ORDER BY b.bill_date DESC
		LIMIT $`+fmt.Sprint(len(args)), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*RevenueRow
	for rows.Next() {
		var rr RevenueRow
		if err := rows.Scan(&rr.ID, &rr.PatientName, &rr.Amount, &rr.BillDate,
			&rr.PaymentStatus, &rr.PaymentMethod); err != nil {
			return nil, err
		}
		rr.Tax = billing.TaxOn(rr.Amount)
		rr.Total = rr.Amount.Add(rr.Tax)
		items = append(items, &rr)
	}
	return items, rows.Err()
}

func (r *repoPG) AttendanceTotals(ctx context.Context, rng DateRange) (*AttendanceTotals, error) {
	where, args := whereRange("date_of_attendance", rng, true)
	var t AttendanceTotals
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'leave' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'half_day' THEN 1 ELSE 0 END), 0)
		FROM attendance `+where, args...).
		Scan(&t.Total, &t.Present, &t.Absent, &t.Leave, &t.HalfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) AttendanceByStaff(ctx context.Context, rng DateRange) ([]*StaffAttendance, error) {
	where, args := whereRange("a.date_of_attendance", rng, true)
	rows, err := r.pool.Query(ctx, `
		SELECT acc.username, COUNT(*),
			COALESCE(SUM(CASE WHEN a.status = 'present' THEN 1 ELSE 0 END), 0)
		FROM attendance a
		JOIN accounts acc ON acc.id = a.staff_id
		`+where+`
		GROUP BY 1
		ORDER BY 2 DESC, 1`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*StaffAttendance
	for rows.Next() {
		var sa StaffAttendance
		if err := rows.Scan(&sa.Username, &sa.Total, &sa.Present); err != nil {
			return nil, err
		}
		items = append(items, &sa)
	}
	return items, rows.Err()
}

func (r *repoPG) AttendanceRows(ctx context.Context, rng DateRange, limit int) ([]*AttendanceRow, error) {
	where, args := whereRange("a.date_of_attendance", rng, true)
	args = append(args, limit)
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, acc.username, a.date_of_attendance, a.status,
			a.incoming_time, a.outgoing_time, a.task_involved
		FROM attendance a
		JOIN accounts acc ON acc.id = a.staff_id
		`+where+`
		ORDER BY a.date_of_attendance DESC, a.id DESC
		LIMIT $`+fmt.Sprint(len(args)), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*AttendanceRow
	for rows.Next() {
		var ar AttendanceRow
		if err := rows.Scan(&ar.ID, &ar.Username, &ar.Date, &ar.Status,
			&ar.IncomingTime, &ar.OutgoingTime, &ar.TaskInvolved); err != nil {
			return nil, err
		}
		items = append(items, &ar)
	}
	return items, rows.Err()
}

func (r *repoPG) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var s DashboardStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patients),
			(SELECT COUNT(*) FROM patients WHERE is_admitted),
			(SELECT COUNT(*) FROM doctors),
			(SELECT COUNT(*) FROM wards),
			(SELECT COALESCE(SUM(amount), 0) FROM bills WHERE payment_status = 'paid'),
			(SELECT COUNT(*) FROM bills WHERE payment_status <> 'paid')`).
		Scan(&s.TotalPatients, &s.AdmittedPatients, &s.TotalDoctors, &s.TotalWards,
			&s.TotalRevenue, &s.PendingBills)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

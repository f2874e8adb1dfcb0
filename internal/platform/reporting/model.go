// Package reporting produces date-ranged management reports and the
// dashboard summary over the clinical and billing tables.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"
)

// detailLimit caps the detail rows attached to a report. Aggregates always
// cover the full filtered set.
const detailLimit = 50

// dashboardRecent bounds the recent-activity lists on the dashboard.
const dashboardRecent = 5

// DateRange bounds a report to an inclusive calendar window. Nil bounds are
// open ended.
type DateRange struct {
	Start *time.Time `json:"start_date,omitempty"`
	End   *time.Time `json:"end_date,omitempty"`
}

// AdmissionTotals aggregates the full filtered admission set.
type AdmissionTotals struct {
	Total      int `json:"total"`
	Admitted   int `json:"admitted"`
	Discharged int `json:"discharged"`
}

// DoctorCount is an admissions-per-doctor aggregate row.
type DoctorCount struct {
	DoctorName string `json:"doctor_name"`
	Count      int    `json:"count"`
}

// AdmissionRow is one patient line in the admissions detail.
type AdmissionRow struct {
	ID            int64      `json:"id"`
	PatientName   string     `json:"patient_name"`
	DoctorName    *string    `json:"doctor_name"`
	Problem       string     `json:"problem"`
	AdmissionDate time.Time  `json:"admission_date"`
	DischargeDate *time.Time `json:"discharge_date"`
	IsAdmitted    bool       `json:"is_admitted"`
}

// AdmissionsReport is the admissions report body.
type AdmissionsReport struct {
	Range    DateRange       `json:"range"`
	Totals   AdmissionTotals `json:"totals"`
	ByDoctor []*DoctorCount  `json:"by_doctor"`
	Patients []*AdmissionRow `json:"patients"`
}

// RevenueTotals aggregates the full filtered bill set. Tax is derived from
// the base amounts, never stored.
type RevenueTotals struct {
	BillCount     int             `json:"bill_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	TotalWithTax  decimal.Decimal `json:"total_with_tax"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PartialAmount decimal.Decimal `json:"partial_amount"`
}

// MethodRevenue is a revenue-per-payment-method aggregate row.
type MethodRevenue struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DoctorRevenue is a revenue-per-doctor aggregate row.
type DoctorRevenue struct {
	DoctorName string          `json:"doctor_name"`
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
}

// RevenueRow is one bill line in the revenue detail.
type RevenueRow struct {
	ID            int64           `json:"id"`
	PatientName   string          `json:"patient_name"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	BillDate      time.Time       `json:"bill_date"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod *string         `json:"payment_method"`
}

// RevenueReport is the revenue report body.
type RevenueReport struct {
	Range    DateRange        `json:"range"`
	Totals   RevenueTotals    `json:"totals"`
	ByMethod []*MethodRevenue `json:"by_payment_method"`
	ByDoctor []*DoctorRevenue `json:"by_doctor"`
	Bills    []*RevenueRow    `json:"bills"`
}

// AttendanceTotals aggregates the full filtered attendance set.
type AttendanceTotals struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	HalfDay int `json:"half_day"`
}

// StaffAttendance is an attendance-per-staff aggregate row.
type StaffAttendance struct {
	Username string `json:"username"`
	Total    int    `json:"total"`
	Present  int    `json:"present"`
}

// AttendanceRow is one record line in the attendance detail.
type AttendanceRow struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Date         time.Time  `json:"date_of_attendance"`
	Status       string     `json:"status"`
	IncomingTime *time.Time `json:"incoming_time"`
	OutgoingTime *time.Time `json:"outgoing_time"`
	TaskInvolved string     `json:"task_involved"`
}

// AttendanceReport is the attendance report body.
type AttendanceReport struct {
	Range   DateRange          `json:"range"`
	Totals  AttendanceTotals   `json:"totals"`
	ByStaff []*StaffAttendance `json:"by_staff"`
	Records []*AttendanceRow   `json:"records"`
}

// DashboardStats is the headline figures on the dashboard.
type DashboardStats struct {
	TotalPatients    int             `json:"total_patients"`
	AdmittedPatients int             `json:"admitted_patients"`
	TotalDoctors     int             `json:"total_doctors"`
	TotalWards       int             `json:"total_wards"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	PendingBills     int             `json:"pending_bills"`
}

// Dashboard is the dashboard body: headline stats plus recent activity.
type Dashboard struct {
	Stats          DashboardStats  `json:"stats"`
	RecentPatients []*AdmissionRow `json:"recent_patients"`
	RecentBills    []*RevenueRow   `json:"recent_bills"`
}

package patient

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient is an admitted or discharged hospital patient.
type Patient struct {
	ID              int64           `json:"id"`
	PatientName     string          `json:"patient_name"`
	Age             int             `json:"age"`
	Gender          string          `json:"gender"`
	Address         string          `json:"address"`
	ConsultDoctorID *int64          `json:"consult_doctor_id"`
	Problem         string          `json:"problem"`
	AdmissionDate   time.Time       `json:"admission_date"`
	DischargeDate   *time.Time      `json:"discharge_date"`
	IsAdmitted      bool            `json:"is_admitted"`
	Fee             decimal.Decimal `json:"fee"`
	Diagnosis       string          `json:"diagnosis"`
	MobileNumber    string          `json:"mobile_number"`
	Email           string          `json:"email"`
}

// Input carries the form fields for creating or editing a patient.
type Input struct {
	PatientName     string `form:"patient_name" json:"patient_name"`
	Age             string `form:"age" json:"age"`
	Gender          string `form:"gender" json:"gender"`
	Address         string `form:"address" json:"address"`
	ConsultDoctorID string `form:"consult_doctor_id" json:"consult_doctor_id"`
	Problem         string `form:"problem" json:"problem"`
	Fee             string `form:"fee" json:"fee"`
	Diagnosis       string `form:"diagnosis" json:"diagnosis"`
	MobileNumber    string `form:"mobile_number" json:"mobile_number"`
	Email           string `form:"email" json:"email"`
}

// BillSummary is the bill row shown on a patient's detail page.
type BillSummary struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	BillDate      time.Time       `json:"bill_date"`
	PaymentStatus string          `json:"payment_status"`
}

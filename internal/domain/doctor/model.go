package doctor

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor is a practitioner on the hospital's payroll.
type Doctor struct {
	ID                 int64           `json:"id"`
	DoctorName         string          `json:"doctor_name"`
	FatherName         string          `json:"father_name"`
	Gender             string          `json:"gender"`
	DOB                time.Time       `json:"dob"`
	Address            string          `json:"address"`
	Qualification      string          `json:"qualification"`
	Experience         int             `json:"experience"`
	LastWorkedHospital string          `json:"last_worked_hospital"`
	Salary             decimal.Decimal `json:"salary"`
}

// ConsultedPatient is the slim patient row shown on a doctor's detail page.
type ConsultedPatient struct {
	ID            int64     `json:"id"`
	PatientName   string    `json:"patient_name"`
	Problem       string    `json:"problem"`
	AdmissionDate time.Time `json:"admission_date"`
	IsAdmitted    bool      `json:"is_admitted"`
}

// Input carries the form fields for creating or editing a doctor. Numeric
// and date fields arrive as strings and are parsed during validation.
type Input struct {
	DoctorName         string `form:"doctor_name" json:"doctor_name"`
	FatherName         string `form:"father_name" json:"father_name"`
	Gender             string `form:"gender" json:"gender"`
	DOB                string `form:"dob" json:"dob"`
	Address            string `form:"address" json:"address"`
	Qualification      string `form:"qualification" json:"qualification"`
	Experience         string `form:"experience" json:"experience"`
	LastWorkedHospital string `form:"last_worked_hospital" json:"last_worked_hospital"`
	Salary             string `form:"salary" json:"salary"`
}

package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// taxRate is applied to the base amount when a bill is presented. Tax is
// derived on read and never stored.
var taxRate = decimal.NewFromFloat(0.18)

// Bill is a charge raised against a patient.
type Bill struct {
	ID              int64           `json:"id"`
	PatientID       int64           `json:"patient_id"`
	PatientName     string          `json:"patient_name,omitempty"`
	ConsultDoctorID *int64          `json:"consult_doctor_id"`
	Diagnosis       string          `json:"diagnosis"`
	ContactNumber   string          `json:"contact_number"`
	Amount          decimal.Decimal `json:"amount"`
	BillDate        time.Time       `json:"bill_date"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentMethod   *string         `json:"payment_method"`
	CreatedBy       *uuid.UUID      `json:"created_by"`
}

// TaxOn returns the derived tax for a billed amount. The product is kept
// exact; callers round or format only when presenting it.
func TaxOn(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(taxRate)
}

// Tax returns the derived tax on the bill's base amount.
func (b *Bill) Tax() decimal.Decimal {
	return TaxOn(b.Amount)
}

// Total returns amount plus derived tax.
func (b *Bill) Total() decimal.Decimal {
	return b.Amount.Add(b.Tax())
}

// Input carries the form fields for generating a bill.
type Input struct {
	ConsultDoctorID string `form:"consult_doctor_id" json:"consult_doctor_id"`
	Diagnosis       string `form:"diagnosis" json:"diagnosis"`
	ContactNumber   string `form:"contact_number" json:"contact_number"`
	Amount          string `form:"amount" json:"amount"`
	PaymentStatus   string `form:"payment_status" json:"payment_status"`
	PaymentMethod   string `form:"payment_method" json:"payment_method"`
}

// PaymentInput carries the form fields for updating a bill's payment state.
type PaymentInput struct {
	PaymentStatus string `form:"payment_status" json:"payment_status"`
	PaymentMethod string `form:"payment_method" json:"payment_method"`
}

// Prefill is the suggested bill content drawn from the patient record.
type Prefill struct {
	PatientID       int64           `json:"patient_id"`
	PatientName     string          `json:"patient_name"`
	ConsultDoctorID *int64          `json:"consult_doctor_id"`
	Diagnosis       string          `json:"diagnosis"`
	ContactNumber   string          `json:"contact_number"`
	Amount          decimal.Decimal `json:"amount"`
}

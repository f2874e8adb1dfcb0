package billing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	bills Repository
}

func NewService(bills Repository) *Service {
	return &Service{bills: bills}
}

var (
	validPaymentStatuses = []string{"paid", "pending", "partial"}
	validPaymentMethods  = []string{"cash", "card", "upi", "insurance", "other"}
)

// Prefill returns the suggested content for a new bill, drawn from the
// patient: consulting doctor, diagnosis, contact number, and amount seeded
// from the patient's fee.
func (s *Service) Prefill(ctx context.Context, patientID int64) (*Prefill, error) {
	return s.bills.PatientPrefill(ctx, patientID)
}

// Generate creates a bill against the patient. bill_date is stamped now and
// never changes afterwards; createdBy records the logged-in account.
func (s *Service) Generate(ctx context.Context, patientID int64, in Input, createdBy string) (*Bill, error) {
	if _, err := s.bills.PatientPrefill(ctx, patientID); err != nil {
		return nil, err
	}

	var errs validate.Errors
	errs.Required("diagnosis", in.Diagnosis)
	errs.Required("contact_number", in.ContactNumber)
	errs.Mobile("contact_number", in.ContactNumber)
	amount := errs.Amount("amount", in.Amount)

	status := in.PaymentStatus
	if status == "" {
		status = "pending"
	}
	errs.OneOf("payment_status", status, validPaymentStatuses)
	errs.OneOf("payment_method", in.PaymentMethod, validPaymentMethods)

	var doctorID *int64
	if in.ConsultDoctorID != "" {
		id, err := strconv.ParseInt(in.ConsultDoctorID, 10, 64)
		if err != nil || id < 1 {
			errs.Add("consult_doctor_id", "must be a valid doctor id")
		} else {
			doctorID = &id
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	b := &Bill{
		PatientID:       patientID,
		ConsultDoctorID: doctorID,
		Diagnosis:       in.Diagnosis,
		ContactNumber:   in.ContactNumber,
		Amount:          amount,
		BillDate:        time.Now(),
		PaymentStatus:   status,
	}
	if in.PaymentMethod != "" {
		method := in.PaymentMethod
		b.PaymentMethod = &method
	}
	if createdBy != "" {
		if accountID, err := uuid.Parse(createdBy); err == nil {
			b.CreatedBy = &accountID
		}
	}

	if err := s.bills.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create bill: %w", err)
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *Service) UpdatePayment(ctx context.Context, id int64, in PaymentInput) (*Bill, error) {
	if _, err := s.bills.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var errs validate.Errors
	errs.Required("payment_status", in.PaymentStatus)
	errs.OneOf("payment_status", in.PaymentStatus, validPaymentStatuses)
	errs.OneOf("payment_method", in.PaymentMethod, validPaymentMethods)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var method *string
	if in.PaymentMethod != "" {
		m := in.PaymentMethod
		method = &m
	}
	if err := s.bills.UpdatePayment(ctx, id, in.PaymentStatus, method); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return s.bills.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Bill, int, error) {
	if status != "" {
		var errs validate.Errors
		errs.OneOf("status", status, validPaymentStatuses)
		if err := errs.Err(); err != nil {
			return nil, 0, err
		}
	}
	return s.bills.List(ctx, status, limit, offset)
}

// Search matches patient name or bill id substrings. An empty query returns
// no results without hitting the store.
func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Bill, int, error) {
	if query == "" {
		return []*Bill{}, 0, nil
	}
	return s.bills.Search(ctx, query, limit, offset)
}

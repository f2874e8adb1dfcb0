package patient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

var validGenders = []string{"male", "female", "other"}

func (s *Service) validateInput(in Input) (*Patient, error) {
	var errs validate.Errors
	errs.Required("patient_name", in.PatientName)
	errs.Required("gender", in.Gender)
	errs.OneOf("gender", in.Gender, validGenders)
	errs.Required("address", in.Address)
	errs.Required("problem", in.Problem)
	errs.Required("mobile_number", in.MobileNumber)
	errs.Mobile("mobile_number", in.MobileNumber)
	errs.Required("email", in.Email)
	errs.Email("email", in.Email)

	age := 0
	if in.Age == "" {
		errs.Add("age", "is required")
	} else {
		var err error
		age, err = strconv.Atoi(in.Age)
		if err != nil {
			errs.Add("age", "must be a whole number")
		} else if age < 0 || age > 150 {
			errs.Add("age", "must be between 0 and 150")
		}
	}

	var doctorID *int64
	if in.ConsultDoctorID != "" {
		id, err := strconv.ParseInt(in.ConsultDoctorID, 10, 64)
		if err != nil || id < 1 {
			errs.Add("consult_doctor_id", "must be a valid doctor id")
		} else {
			doctorID = &id
		}
	}

	fee := errs.Amount("fee", in.Fee)

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &Patient{
		PatientName:     in.PatientName,
		Age:             age,
		Gender:          in.Gender,
		Address:         in.Address,
		ConsultDoctorID: doctorID,
		Problem:         in.Problem,
		Fee:             fee,
		Diagnosis:       in.Diagnosis,
		MobileNumber:    in.MobileNumber,
		Email:           in.Email,
	}, nil
}

// Create admits the patient: admission_date is stamped now and is_admitted
// starts true.
func (s *Service) Create(ctx context.Context, in Input) (*Patient, error) {
	p, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}
	p.AdmissionDate = time.Now()
	p.IsAdmitted = true
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// Update edits demographics and clinical fields; admission and discharge
// state are only changed through Create and Discharge.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Patient, error) {
	existing, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.AdmissionDate = existing.AdmissionDate
	p.DischargeDate = existing.DischargeDate
	p.IsAdmitted = existing.IsAdmitted
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

// Discharge sets the discharge timestamp once. Discharging an already
// discharged patient is a no-op that returns the unchanged record.
func (s *Service) Discharge(ctx context.Context, id int64) (*Patient, error) {
	if _, err := s.patients.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.patients.Discharge(ctx, id, time.Now()); err != nil {
		return nil, fmt.Errorf("discharge patient: %w", err)
	}
	return s.patients.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, admittedOnly bool, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, admittedOnly, limit, offset)
}

// Search matches name, mobile, email, or id substrings. An empty query
// returns no results without hitting the store.
func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	if query == "" {
		return []*Patient{}, 0, nil
	}
	return s.patients.Search(ctx, query, limit, offset)
}

func (s *Service) Bills(ctx context.Context, patientID int64) ([]*BillSummary, error) {
	return s.patients.Bills(ctx, patientID)
}

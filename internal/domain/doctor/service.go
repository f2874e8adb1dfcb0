package doctor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

var validGenders = []string{"male", "female", "other"}

func (s *Service) validateInput(in Input) (*Doctor, error) {
	var errs validate.Errors
	errs.Required("doctor_name", in.DoctorName)
	errs.Required("father_name", in.FatherName)
	errs.Required("gender", in.Gender)
	errs.OneOf("gender", in.Gender, validGenders)
	errs.Required("address", in.Address)
	errs.Required("qualification", in.Qualification)

	dob := errs.Date("dob", in.DOB)

	experience := 0
	if in.Experience == "" {
		errs.Add("experience", "is required")
	} else {
		var err error
		experience, err = strconv.Atoi(in.Experience)
		if err != nil {
			errs.Add("experience", "must be a whole number")
		} else {
			errs.NonNegativeInt("experience", experience)
		}
	}

	salary := errs.Amount("salary", in.Salary)

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &Doctor{
		DoctorName:         in.DoctorName,
		FatherName:         in.FatherName,
		Gender:             in.Gender,
		DOB:                dob,
		Address:            in.Address,
		Qualification:      in.Qualification,
		Experience:         experience,
		LastWorkedHospital: in.LastWorkedHospital,
		Salary:             salary,
	}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*Doctor, error) {
	d, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*Doctor, error) {
	if _, err := s.doctors.GetByID(ctx, id); err != nil {
		return nil, err
	}
	d, err := s.validateInput(in)
	if err != nil {
		return nil, err
	}
	d.ID = id
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

// Search matches name, qualification, or id substrings. An empty query
// returns no results without hitting the store.
func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Doctor, int, error) {
	if query == "" {
		return []*Doctor{}, 0, nil
	}
	return s.doctors.Search(ctx, query, limit, offset)
}

// recentPatientCount bounds the consulting-patient list on a detail page.
const recentPatientCount = 10

func (s *Service) ConsultedPatients(ctx context.Context, doctorID int64) ([]*ConsultedPatient, error) {
	return s.doctors.ConsultedPatients(ctx, doctorID, recentPatientCount)
}

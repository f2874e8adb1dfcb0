package reporting

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	reports Repository
}

func NewService(reports Repository) *Service {
	return &Service{reports: reports}
}

// ParseRange validates optional start_date and end_date query values. Both
// bounds are inclusive; an empty value leaves that side open.
func ParseRange(startStr, endStr string) (DateRange, error) {
	var errs validate.Errors
	rng := DateRange{
		Start: errs.OptionalDate("start_date", startStr),
		End:   errs.OptionalDate("end_date", endStr),
	}
	if rng.Start != nil && rng.End != nil && rng.End.Before(*rng.Start) {
		errs.Add("end_date", "must not be before start_date")
	}
	if err := errs.Err(); err != nil {
		return DateRange{}, err
	}
	return rng, nil
}

func (s *Service) Admissions(ctx context.Context, rng DateRange) (*AdmissionsReport, error) {
	totals, err := s.reports.AdmissionTotals(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("admission totals: %w", err)
	}
	byDoctor, err := s.reports.AdmissionsByDoctor(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("admissions by doctor: %w", err)
	}
	patients, err := s.reports.AdmissionRows(ctx, rng, detailLimit)
	if err != nil {
		return nil, fmt.Errorf("admission rows: %w", err)
	}
	return &AdmissionsReport{Range: rng, Totals: *totals, ByDoctor: byDoctor, Patients: patients}, nil
}

func (s *Service) Revenue(ctx context.Context, rng DateRange) (*RevenueReport, error) {
	totals, err := s.reports.RevenueTotals(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("revenue totals: %w", err)
	}
	byMethod, err := s.reports.RevenueByMethod(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("revenue by method: %w", err)
	}
	byDoctor, err := s.reports.RevenueByDoctor(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("revenue by doctor: %w", err)
	}
	bills, err := s.reports.RevenueRows(ctx, rng, detailLimit)
	if err != nil {
		return nil, fmt.Errorf("revenue rows: %w", err)
	}
	return &RevenueReport{Range: rng, Totals: *totals, ByMethod: byMethod, ByDoctor: byDoctor, Bills: bills}, nil
}

func (s *Service) Attendance(ctx context.Context, rng DateRange) (*AttendanceReport, error) {
	totals, err := s.reports.AttendanceTotals(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("attendance totals: %w", err)
	}
	byStaff, err := s.reports.AttendanceByStaff(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("attendance by staff: %w", err)
	}
	records, err := s.reports.AttendanceRows(ctx, rng, detailLimit)
	if err != nil {
		return nil, fmt.Errorf("attendance rows: %w", err)
	}
	return &AttendanceReport{Range: rng, Totals: *totals, ByStaff: byStaff, Records: records}, nil
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	stats, err := s.reports.DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	patients, err := s.reports.AdmissionRows(ctx, DateRange{}, dashboardRecent)
	if err != nil {
		return nil, fmt.Errorf("recent patients: %w", err)
	}
	bills, err := s.reports.RevenueRows(ctx, DateRange{}, dashboardRecent)
	if err != nil {
		return nil, fmt.Errorf("recent bills: %w", err)
	}
	return &Dashboard{Stats: *stats, RecentPatients: patients, RecentBills: bills}, nil
}

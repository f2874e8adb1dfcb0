package reporting

import "context"

type Repository interface {
	AdmissionTotals(ctx context.Context, rng DateRange) (*AdmissionTotals, error)
	AdmissionsByDoctor(ctx context.Context, rng DateRange) ([]*DoctorCount, error)
	AdmissionRows(ctx context.Context, rng DateRange, limit int) ([]*AdmissionRow, error)

	RevenueTotals(ctx context.Context, rng DateRange) (*RevenueTotals, error)
	RevenueByMethod(ctx context.Context, rng DateRange) ([]*MethodRevenue, error)
	RevenueByDoctor(ctx context.Context, rng DateRange) ([]*DoctorRevenue, error)
	RevenueRows(ctx context.Context, rng DateRange, limit int) ([]*RevenueRow, error)

	AttendanceTotals(ctx context.Context, rng DateRange) (*AttendanceTotals, error)
	AttendanceByStaff(ctx context.Context, rng DateRange) ([]*StaffAttendance, error)
	AttendanceRows(ctx context.Context, rng DateRange, limit int) ([]*AttendanceRow, error)

	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

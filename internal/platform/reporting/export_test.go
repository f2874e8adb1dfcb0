package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAdmissionsWorkbook(t *testing.T) {
	doctor := "Dr. Rao"
	rep := &AdmissionsReport{
		Totals:   AdmissionTotals{Total: 2, Admitted: 1, Discharged: 1},
		ByDoctor: []*DoctorCount{{DoctorName: doctor, Count: 2}},
		Patients: []*AdmissionRow{
			{ID: 1, PatientName: "Ravi Kumar", DoctorName: &doctor, Problem: "fever",
				AdmissionDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), IsAdmitted: true},
		},
	}

	f, err := AdmissionsWorkbook(rep)
	if err != nil {
		t.Fatalf("AdmissionsWorkbook() error: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Admissions", "A1")
	if err != nil {
		t.Fatalf("GetCellValue() error: %v", err)
	}
	if got != "Admissions Report" {
		t.Errorf("unexpected title cell: %q", got)
	}
	got, err = f.GetCellValue("Admissions", "B2")
	if err != nil {
		t.Fatalf("GetCellValue() error: %v", err)
	}
	if got != "2" {
		t.Errorf("unexpected total cell: %q", got)
	}
}

func TestRevenueWorkbook(t *testing.T) {
	rep := &RevenueReport{
		Totals: RevenueTotals{BillCount: 1, TotalAmount: decimal.NewFromInt(1000),
			TotalTax: decimal.NewFromInt(180), TotalWithTax: decimal.NewFromInt(1180),
			PaidAmount: decimal.NewFromInt(1000)},
		ByMethod: []*MethodRevenue{{Method: "cash", Count: 1, Amount: decimal.NewFromInt(1000)}},
		Bills: []*RevenueRow{
			{ID: 1, PatientName: "Ravi Kumar", Amount: decimal.NewFromInt(1000),
				Tax: decimal.NewFromInt(180), Total: decimal.NewFromInt(1180),
				BillDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), PaymentStatus: "paid"},
		},
	}

	f, err := RevenueWorkbook(rep)
	if err != nil {
		t.Fatalf("RevenueWorkbook() error: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Revenue", "B4")
	if err != nil {
		t.Fatalf("GetCellValue() error: %v", err)
	}
	if got != "180.00" {
		t.Errorf("unexpected tax cell: %q", got)
	}
}

func TestAttendanceWorkbook(t *testing.T) {
	in := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rep := &AttendanceReport{
		Totals:  AttendanceTotals{Total: 1, Present: 1},
		ByStaff: []*StaffAttendance{{Username: "asha", Total: 1, Present: 1}},
		Records: []*AttendanceRow{
			{ID: 1, Username: "asha", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Status: "present", IncomingTime: &in, TaskInvolved: "ward rounds"},
		},
	}

	f, err := AttendanceWorkbook(rep)
	if err != nil {
		t.Fatalf("AttendanceWorkbook() error: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Attendance", "A1")
	if err != nil {
		t.Fatalf("GetCellValue() error: %v", err)
	}
	if got != "Attendance Report" {
		t.Errorf("unexpected title cell: %q", got)
	}
}

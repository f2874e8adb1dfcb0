package reporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the media type of an exported workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04"
	clockFormat    = "15:04"
)

func newWorkbook(sheet string) (*excelize.File, int, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, 0, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, 0, err
	}
	return f, style, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func setHeaderRow(f *excelize.File, sheet string, row, style int, values []interface{}) error {
	if err := setRow(f, sheet, row, values); err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func rangeLabel(rng DateRange) string {
	start, end := "open", "open"
	if rng.Start != nil {
		start = rng.Start.Format(dateFormat)
	}
	if rng.End != nil {
		end = rng.End.Format(dateFormat)
	}
	return fmt.Sprintf("%s to %s", start, end)
}

// AdmissionsWorkbook renders the admissions report as an XLSX workbook.
func AdmissionsWorkbook(rep *AdmissionsReport) (*excelize.File, error) {
	f, style, err := newWorkbook("Admissions")
	if err != nil {
		return nil, err
	}
	sheet := "Admissions"

	rows := [][]interface{}{
		{"Admissions Report", rangeLabel(rep.Range)},
		{"Total", rep.Totals.Total},
		{"Admitted", rep.Totals.Admitted},
		{"Discharged", rep.Totals.Discharged},
	}
	for i, r := range rows {
		if err := setRow(f, sheet, i+1, r); err != nil {
			return nil, err
		}
	}

	row := len(rows) + 2
	if err := setHeaderRow(f, sheet, row, style, []interface{}{"Doctor", "Admissions"}); err != nil {
		return nil, err
	}
	for _, dc := range rep.ByDoctor {
		row++
		if err := setRow(f, sheet, row, []interface{}{dc.DoctorName, dc.Count}); err != nil {
			return nil, err
		}
	}

	row += 2
	header := []interface{}{"ID", "Patient", "Doctor", "Problem", "Admitted On", "Discharged On", "Status"}
	if err := setHeaderRow(f, sheet, row, style, header); err != nil {
		return nil, err
	}
	for _, p := range rep.Patients {
		row++
		doctor := ""
		if p.DoctorName != nil {
			doctor = *p.DoctorName
		}
		discharged := ""
		if p.DischargeDate != nil {
			discharged = p.DischargeDate.Format(dateTimeFormat)
		}
		status := "discharged"
		if p.IsAdmitted {
			status = "admitted"
		}
		vals := []interface{}{p.ID, p.PatientName, doctor, p.Problem,
			p.AdmissionDate.Format(dateTimeFormat), discharged, status}
		if err := setRow(f, sheet, row, vals); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// RevenueWorkbook renders the revenue report as an XLSX workbook.
func RevenueWorkbook(rep *RevenueReport) (*excelize.File, error) {
	f, style, err := newWorkbook("Revenue")
	if err != nil {
		return nil, err
	}
	sheet := "Revenue"

	rows := [][]interface{}{
		{"Revenue Report", rangeLabel(rep.Range)},
		{"Bills", rep.Totals.BillCount},
		{"Total Amount", rep.Totals.TotalAmount.StringFixed(2)},
		{"Total Tax", rep.Totals.TotalTax.StringFixed(2)},
		{"Total With Tax", rep.Totals.TotalWithTax.StringFixed(2)},
		{"Paid", rep.Totals.PaidAmount.StringFixed(2)},
		{"Pending", rep.Totals.PendingAmount.StringFixed(2)},
		{"Partial", rep.Totals.PartialAmount.StringFixed(2)},
	}
	for i, r := range rows {
		if err := setRow(f, sheet, i+1, r); err != nil {
			return nil, err
		}
	}

	row := len(rows) + 2
	if err := setHeaderRow(f, sheet, row, style, []interface{}{"Payment Method", "Bills", "Amount"}); err != nil {
		return nil, err
	}
	for _, mr := range rep.ByMethod {
		row++
		if err := setRow(f, sheet, row, []interface{}{mr.Method, mr.Count, mr.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}

	row += 2
	if err := setHeaderRow(f, sheet, row, style, []interface{}{"Doctor", "Bills", "Amount"}); err != nil {
		return nil, err
	}
	for _, dr := range rep.ByDoctor {
		row++
		if err := setRow(f, sheet, row, []interface{}{dr.DoctorName, dr.Count, dr.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}

	row += 2
	header := []interface{}{"ID", "Patient", "Amount", "Tax", "Total", "Billed On", "Status", "Method"}
	if err := setHeaderRow(f, sheet, row, style, header); err != nil {
		return nil, err
	}
	for _, b := range rep.Bills {
		row++
		method := ""
		if b.PaymentMethod != nil {
			method = *b.PaymentMethod
		}
		vals := []interface{}{b.ID, b.PatientName, b.Amount.StringFixed(2), b.Tax.StringFixed(2),
			b.Total.StringFixed(2), b.BillDate.Format(dateTimeFormat), b.PaymentStatus, method}
		if err := setRow(f, sheet, row, vals); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// AttendanceWorkbook renders the attendance report as an XLSX workbook.
func AttendanceWorkbook(rep *AttendanceReport) (*excelize.File, error) {
	f, style, err := newWorkbook("Attendance")
	if err != nil {
		return nil, err
	}
	sheet := "Attendance"

	rows := [][]interface{}{
		{"Attendance Report", rangeLabel(rep.Range)},
		{"Total", rep.Totals.Total},
		{"Present", rep.Totals.Present},
		{"Absent", rep.Totals.Absent},
		{"Leave", rep.Totals.Leave},
		{"Half Day", rep.Totals.HalfDay},
	}
	for i, r := range rows {
		if err := setRow(f, sheet, i+1, r); err != nil {
			return nil, err
		}
	}

	row := len(rows) + 2
	if err := setHeaderRow(f, sheet, row, style, []interface{}{"Staff", "Records", "Present"}); err != nil {
		return nil, err
	}
	for _, sa := range rep.ByStaff {
		row++
		if err := setRow(f, sheet, row, []interface{}{sa.Username, sa.Total, sa.Present}); err != nil {
			return nil, err
		}
	}

	row += 2
	header := []interface{}{"ID", "Staff", "Date", "Status", "In", "Out", "Task"}
	if err := setHeaderRow(f, sheet, row, style, header); err != nil {
		return nil, err
	}
	for _, rec := range rep.Records {
		row++
		in, out := "", ""
		if rec.IncomingTime != nil {
			in = rec.IncomingTime.Format(clockFormat)
		}
		if rec.OutgoingTime != nil {
			out = rec.OutgoingTime.Format(clockFormat)
		}
		vals := []interface{}{rec.ID, rec.Username, rec.Date.Format(dateFormat),
			rec.Status, in, out, rec.TaskInvolved}
		if err := setRow(f, sheet, row, vals); err != nil {
			return nil, err
		}
	}
	return f, nil
}

/*
Package report renders payroll summaries as spreadsheet files.

PURPOSE:
  The canonical persistence format is the CSV registry file; this package
  produces a human-facing .xlsx summary on top of it: one row per record
  with identity, service years, and the base pay of the record's variant
  (no bonuses applied). Generic records have no salary rule and show "n/a".
*/
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/warp/payroll-engine/payroll"
)

const sheetName = "Payroll"

var header = []string{"Employee ID", "Name", "Role", "Join Date", "Years of Service", "Base Pay"}

// WritePayroll writes the summary workbook to path. asOf anchors
// years-of-service; a zero date means today.
func WritePayroll(path string, employees []payroll.Employee, asOf payroll.Date) error {
	if asOf.IsZero() {
		asOf = payroll.Today()
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return err
		}
	}

	for row, e := range employees {
		basePay := basePayCell(e)

		joinDate := ""
		years := 0
		if !e.JoinDate().IsZero() {
			joinDate = e.JoinDate().String()
			years = e.YearsOfService(asOf)
		}

		values := []interface{}{e.ID(), e.Name(), string(e.Role()), joinDate, years, basePay}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// basePayCell reads each variant's base amount directly so the report never
// triggers the part-time rule's hours mutation.
func basePayCell(e payroll.Employee) string {
	switch v := e.(type) {
	case *payroll.FullTime:
		return v.MonthlySalary.StringFixed(2)
	case *payroll.PartTime:
		return v.HourlyRate.Mul(v.MonthlyHours).StringFixed(2)
	case *payroll.Intern:
		return v.Stipend.StringFixed(2)
	default:
		return "n/a"
	}
}

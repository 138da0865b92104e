package salary

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Salaries"
	entriesSheet = "Daily Entries"
)

var (
	summaryHeader = []interface{}{"Employee ID", "Name", "Month", "Days", "Base Salary", "OT Salary", "Gross Salary", "Net Salary"}
	entriesHeader = []interface{}{"Employee ID", "Date", "In", "Out", "Working Hours", "OT Hours", "Salary Type", "Day Salary", "OT Salary"}
)

func (s *SalaryServiceImpl) ExportMonth(ctx context.Context, month salary.Month) ([]byte, error) {
	records, err := s.salaryRepo.ListByMonth(ctx, month.Label())
	if err != nil {
		return nil, err
	}
	return renderWorkbook(records)
}

// renderWorkbook writes one summary row per record and one row per daily
// entry on a second sheet. Amounts are written as numbers.
func renderWorkbook(records []salary.SalaryRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(entriesSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetSheetRow(entriesSheet, "A1", &entriesHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	entryRow := 2
	for i, r := range records {
		row := []interface{}{
			r.EmployeeID,
			r.Name,
			r.Month,
			len(r.Entries),
			r.TotalBaseSalary.InexactFloat64(),
			r.TotalOTSalary.InexactFloat64(),
			r.GrossSalary.InexactFloat64(),
			r.NetSalary.InexactFloat64(),
		}
		if err := f.SetSheetRow(summarySheet, cell(i+2), &row); err != nil {
			return nil, fmt.Errorf("failed to write salary row: %w", err)
		}

		for _, e := range r.Entries {
			entry := []interface{}{
				r.EmployeeID,
				e.Date.Format("2006-01-02"),
				e.InTime,
				e.OutTime,
				e.WorkingHours.InexactFloat64(),
				e.OTHours.InexactFloat64(),
				string(e.SalaryType),
				e.DaySalary.InexactFloat64(),
				e.OTSalary.InexactFloat64(),
			}
			if err := f.SetSheetRow(entriesSheet, cell(entryRow), &entry); err != nil {
				return nil, fmt.Errorf("failed to write entry row: %w", err)
			}
			entryRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(row int) string {
	name, _ := excelize.CoordinatesToCellName(1, row)
	return name
}

package salary

import (
	"context"
)

type SalaryService interface {
	// CurrentMonth is the month used when a caller does not name one.
	CurrentMonth() Month

	// Calculate recomputes and stores every eligible employee's record for
	// month and returns them in directory order.
	Calculate(ctx context.Context, month Month) ([]SalaryRecordResponse, error)

	GetSalary(ctx context.Context, employeeID string, month Month) (SalaryRecordResponse, error)
	ListSalaries(ctx context.Context, month Month) ([]SalaryRecordResponse, error)
	GetMonthSummary(ctx context.Context, month Month) (MonthSummaryResponse, error)

	// ExportMonth renders the stored records of month as an XLSX workbook.
	ExportMonth(ctx context.Context, month Month) ([]byte, error)
}

package salary

import "context"

type SalaryRepository interface {
	// Upsert inserts the record or replaces the one stored under the same
	// (EmployeeID, Month), keeping its ID and CreatedAt.
	Upsert(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	GetByEmployeeMonth(ctx context.Context, employeeID string, month string) (SalaryRecord, error)
	ListByMonth(ctx context.Context, month string) ([]SalaryRecord, error)
	GetMonthSummary(ctx context.Context, month string) (MonthSummary, error)
}

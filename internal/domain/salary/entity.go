package salary

import (
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// DailyEntry is one paid day. WorkingHours holds the employee's configured
// standard hours, not the time actually worked; overtime is carried apart.
type DailyEntry struct {
	Date         time.Time           `json:"date"`
	InTime       string              `json:"in_time"`
	OutTime      string              `json:"out_time"`
	WorkingHours decimal.Decimal     `json:"working_hours"`
	OTHours      decimal.Decimal     `json:"ot_hours"`
	SalaryType   employee.SalaryType `json:"salary_type"`
	DaySalary    decimal.Decimal     `json:"day_salary"`
	OTSalary     decimal.Decimal     `json:"ot_salary"`
}

// SalaryRecord is the monthly result for one employee. At most one exists per
// (EmployeeID, Month).
type SalaryRecord struct {
	ID              string
	EmployeeID      string
	Month           string
	Name            string
	Entries         []DailyEntry
	TotalBaseSalary decimal.Decimal
	TotalOTSalary   decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Error marks an employee skipped during calculation. Never persisted.
	Error string
}

// MonthSummary aggregates every stored record of one month.
type MonthSummary struct {
	Month           string
	TotalEmployees  int
	TotalEntries    int
	TotalBaseSalary decimal.Decimal
	TotalOTSalary   decimal.Decimal
	TotalGross      decimal.Decimal
	TotalNet        decimal.Decimal
}

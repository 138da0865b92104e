package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the pay configuration of one person on the payroll.
// WorkingHours and SalaryType are nullable: rows imported before they became
// mandatory may lack them, and such employees are skipped by payroll.
type Employee struct {
	ID           string
	EmployeeID   string // business key, e.g. "EMP001"
	Name         string
	PhoneNumber  string
	NIC          string
	Salary       decimal.Decimal
	WorkingHours *decimal.Decimal
	SalaryType   *SalaryType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SalaryType string

const (
	SalaryTypeMonthly SalaryType = "Monthly"
	SalaryTypeDaily   SalaryType = "Daily"
)

func (t SalaryType) IsValid() bool {
	return t == SalaryTypeMonthly || t == SalaryTypeDaily
}

// HasPayrollConfig reports whether the employee carries standard working
// hours and a salary type. A zero hour value counts as missing.
func (e Employee) HasPayrollConfig() bool {
	if e.WorkingHours == nil || e.WorkingHours.IsZero() {
		return false
	}
	return e.SalaryType != nil && *e.SalaryType != ""
}

package salary

import (
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

var (
	// Monthly salaries are spread over a flat 30 days whatever the month length.
	monthlyDivisor = decimal.NewFromInt(30)
	// Used for the overtime rate when no standard hours are configured.
	fallbackStandardHours = decimal.NewFromInt(8)
)

type DayPay struct {
	DaySalary decimal.Decimal
	OTSalary  decimal.Decimal
}

// ComputePay splits one day into base pay and overtime pay, both rounded to
// two places. The overtime rate is the full salary amount divided by the
// standard hours.
func ComputePay(amount decimal.Decimal, salaryType employee.SalaryType, standardHours, overtimeHours decimal.Decimal) DayPay {
	daySalary := amount
	if salaryType != employee.SalaryTypeDaily {
		daySalary = amount.Div(monthlyDivisor)
	}

	hours := standardHours
	if hours.IsZero() {
		hours = fallbackStandardHours
	}
	otRate := amount.Div(hours)

	return DayPay{
		DaySalary: daySalary.Round(2),
		OTSalary:  overtimeHours.Mul(otRate).Round(2),
	}
}

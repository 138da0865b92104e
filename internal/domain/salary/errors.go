package salary

import "errors"

var (
	ErrSalaryRecordNotFound = errors.New("salary record not found")
	ErrInvalidMonth         = errors.New(`month must look like "May 2025"`)
	ErrMissingPayrollConfig = errors.New("Missing workingHours or salaryType")
	ErrUnknownPairPolicy    = errors.New("unknown attendance pair policy")
)

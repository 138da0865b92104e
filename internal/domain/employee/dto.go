package employee

import (
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var maxWorkingHours = decimal.NewFromInt(24)

type RegisterEmployeeRequest struct {
	EmployeeID   string           `json:"employee_id"`
	Name         string           `json:"name"`
	PhoneNumber  string           `json:"phone_number"`
	NIC          string           `json:"nic"`
	Salary       decimal.Decimal  `json:"salary"`
	WorkingHours *decimal.Decimal `json:"working_hours"`
	SalaryType   string           `json:"salary_type,omitempty"` // defaults to Monthly
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: ErrInvalidEmployeeID.Error()})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: ErrInvalidPhoneNumber.Error()})
	}
	if !validator.IsValidNIC(r.NIC) {
		errs = append(errs, validator.ValidationError{Field: "nic", Message: ErrInvalidNIC.Error()})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be positive"})
	}
	errs = append(errs, validateWorkingHours(r.WorkingHours, true)...)
	if r.SalaryType != "" && !SalaryType(r.SalaryType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: ErrInvalidSalaryType.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries a partial update; nil fields are left as is.
type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	EmployeeID   *string          `json:"employee_id,omitempty"`
	Name         *string          `json:"name,omitempty"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	NIC          *string          `json:"nic,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	WorkingHours *decimal.Decimal `json:"working_hours,omitempty"`
	SalaryType   *string          `json:"salary_type,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.EmployeeID != nil && !validator.IsValidEmployeeCode(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: ErrInvalidEmployeeID.Error()})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: ErrInvalidPhoneNumber.Error()})
	}
	if r.NIC != nil && !validator.IsValidNIC(*r.NIC) {
		errs = append(errs, validator.ValidationError{Field: "nic", Message: ErrInvalidNIC.Error()})
	}
	if r.Salary != nil && !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be positive"})
	}
	errs = append(errs, validateWorkingHours(r.WorkingHours, false)...)
	if r.SalaryType != nil && !SalaryType(*r.SalaryType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: ErrInvalidSalaryType.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateWorkingHours(hours *decimal.Decimal, required bool) validator.ValidationErrors {
	if hours == nil {
		if required {
			return validator.ValidationErrors{{Field: "working_hours", Message: "working_hours is required"}}
		}
		return nil
	}
	if !hours.IsPositive() || hours.GreaterThan(maxWorkingHours) {
		return validator.ValidationErrors{{Field: "working_hours", Message: "working_hours must be greater than 0 and at most 24"}}
	}
	return nil
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	Name         string           `json:"name"`
	PhoneNumber  string           `json:"phone_number"`
	NIC          string           `json:"nic"`
	Salary       decimal.Decimal  `json:"salary"`
	WorkingHours *decimal.Decimal `json:"working_hours"`
	SalaryType   *string          `json:"salary_type"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	var salaryType *string
	if e.SalaryType != nil {
		s := string(*e.SalaryType)
		salaryType = &s
	}
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		Name:         e.Name,
		PhoneNumber:  e.PhoneNumber,
		NIC:          e.NIC,
		Salary:       e.Salary,
		WorkingHours: e.WorkingHours,
		SalaryType:   salaryType,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeIDExists   = errors.New("employee ID already exists")
	ErrNICExists          = errors.New("NIC already exists")
	ErrInvalidSalaryType  = errors.New("salary type must be Monthly or Daily")
	ErrInvalidEmployeeID  = errors.New("invalid employee ID format")
	ErrInvalidNIC         = errors.New("invalid NIC format")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

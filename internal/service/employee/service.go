package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	tx           postgresql.Transactor
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(tx postgresql.Transactor, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
	}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	salaryType := employee.SalaryTypeMonthly
	if req.SalaryType != "" {
		salaryType = employee.SalaryType(req.SalaryType)
	}

	newEmployee := employee.Employee{
		EmployeeID:   strings.TrimSpace(req.EmployeeID),
		Name:         strings.TrimSpace(req.Name),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		NIC:          strings.ToUpper(strings.TrimSpace(req.NIC)),
		Salary:       req.Salary,
		WorkingHours: req.WorkingHours,
		SalaryType:   &salaryType,
	}

	var created employee.Employee
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.checkUnique(txCtx, nil, &newEmployee.EmployeeID, &newEmployee.NIC); err != nil {
			return err
		}

		var err error
		created, err = s.employeeRepo.Create(txCtx, newEmployee)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee registered", "employee_id", created.EmployeeID)
	return employee.ToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToResponse(e))
	}
	return result, nil
}

// GetByEmployeeID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService. Salary changes only affect
// stored salary records once the month is recalculated.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		var codeCheck, nicCheck *string
		if req.EmployeeID != nil {
			existing.EmployeeID = strings.TrimSpace(*req.EmployeeID)
			codeCheck = &existing.EmployeeID
		}
		if req.NIC != nil {
			existing.NIC = strings.ToUpper(strings.TrimSpace(*req.NIC))
			nicCheck = &existing.NIC
		}
		if codeCheck != nil || nicCheck != nil {
			if err := s.checkUnique(txCtx, &existing.ID, codeCheck, nicCheck); err != nil {
				return err
			}
		}

		if req.Name != nil {
			existing.Name = strings.TrimSpace(*req.Name)
		}
		if req.PhoneNumber != nil {
			existing.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
		}
		if req.Salary != nil {
			existing.Salary = *req.Salary
		}
		if req.WorkingHours != nil {
			existing.WorkingHours = req.WorkingHours
		}
		if req.SalaryType != nil {
			salaryType := employee.SalaryType(*req.SalaryType)
			existing.SalaryType = &salaryType
		}

		updated, err = s.employeeRepo.Update(txCtx, existing)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("employee deleted", "id", id)
	return nil
}

func (s *EmployeeServiceImpl) checkUnique(ctx context.Context, excludeID *string, employeeID, nic *string) error {
	idTaken, nicTaken, err := s.employeeRepo.ExistsByEmployeeIDOrNIC(ctx, excludeID, employeeID, nic)
	if err != nil {
		return fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	if idTaken {
		return employee.ErrEmployeeIDExists
	}
	if nicTaken {
		return employee.ErrNICExists
	}
	return nil
}

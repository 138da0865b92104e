package employee

import "context"

type EmployeeRepository interface {
	// ListAll returns every employee ordered by employee ID.
	ListAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	// ExistsByEmployeeIDOrNIC checks uniqueness, ignoring the row with excludeID.
	ExistsByEmployeeIDOrNIC(ctx context.Context, excludeID *string, employeeID, nic *string) (employeeIDTaken bool, nicTaken bool, err error)
}

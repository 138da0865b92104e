package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full back-office access, may trigger payroll
	RoleStaff Role = "staff" // Data entry: employees and attendance
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user may run payroll operations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

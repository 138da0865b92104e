package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance punches.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	Update(ctx context.Context, attendance Attendance) (Attendance, error)
	Delete(ctx context.Context, id string) error

	// List retrieves punches with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// FindByEmployeeAndRange returns the employee's punches with
	// start <= timestamp < end in the order they were recorded.
	FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}

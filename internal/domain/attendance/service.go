package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Mark records a new punch for an existing employee
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance retrieves punches with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// UpdateAttendance corrects a punch; payroll picks it up on the next recompute
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a punch
	DeleteAttendance(ctx context.Context, id string) error
}

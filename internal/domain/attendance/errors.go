package attendance

import "errors"

var (
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrInvalidStatus        = errors.New("status must be In, Out or Break")
	ErrNegativeBreak        = errors.New("break duration must not be negative")
	ErrInvalidTimestamp     = errors.New("date must be an RFC3339 timestamp")
	ErrInvalidDateRange     = errors.New("from must not be after to")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrBreakDurationTooLong = errors.New("break duration must not exceed 1440 minutes")
)

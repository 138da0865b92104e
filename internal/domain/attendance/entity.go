package attendance

import (
	"time"
)

type Status string

const (
	StatusIn    Status = "In"
	StatusOut   Status = "Out"
	StatusBreak Status = "Break"
)

func (s Status) IsValid() bool {
	return s == StatusIn || s == StatusOut || s == StatusBreak
}

// Attendance is a single punch. Several punches of any status may exist for
// the same employee on the same day.
type Attendance struct {
	ID            string
	EmployeeID    string
	Status        Status
	BreakDuration int // minutes, only meaningful for Break punches
	Timestamp     time.Time
	PairID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/attendance"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
}

// NewAttendanceService builds the service. Date filters are interpreted in
// loc, the payroll time zone.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
	}
}

// breakFor keeps break minutes only on Break punches.
func breakFor(status attendance.Status, minutes int) int {
	if status != attendance.StatusBreak {
		return 0
	}
	return minutes
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	status := attendance.Status(req.Status)
	minutes := 0
	if req.BreakDuration != nil {
		minutes = *req.BreakDuration
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    emp.EmployeeID,
		Status:        status,
		BreakDuration: breakFor(status, minutes),
		Timestamp:     req.Timestamp,
		PairID:        uuid.NewString(),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	created.EmployeeName = &emp.Name

	return attendance.ToResponse(created), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Dates are whole local days: [start 00:00, end+1 00:00).
	if filter.StartDate != nil && *filter.StartDate != "" {
		from, err := time.ParseInLocation("2006-01-02", *filter.StartDate, s.loc)
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		filter.From = &from
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", *filter.EndDate, s.loc)
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		to := end.AddDate(0, 0, 1)
		filter.To = &to
	}

	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		responses = append(responses, attendance.ToResponse(a))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService. The break
// duration follows the punch's status after the update: it is cleared when
// the punch is no longer a Break.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		existing.Status = attendance.Status(*req.Status)
	}
	if req.Timestamp != nil {
		existing.Timestamp = *req.Timestamp
	}
	minutes := existing.BreakDuration
	if req.BreakDuration != nil {
		minutes = *req.BreakDuration
	}
	existing.BreakDuration = breakFor(existing.Status, minutes)

	updated, err := s.attendanceRepo.Update(ctx, existing)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

package attendance

import (
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
)

const maxBreakMinutes = 24 * 60

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID    string `json:"employee_id"`
	Status        string `json:"status"`
	BreakDuration *int   `json:"break_duration,omitempty"` // minutes, Break only
	Date          string `json:"date"`                     // RFC3339 punch time

	Timestamp time.Time `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	errs = append(errs, validateBreak(r.BreakDuration)...)

	if t, ok := validator.IsValidDateTime(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: ErrInvalidTimestamp.Error(),
		})
	} else {
		r.Timestamp = t
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest fixes a wrong punch. Nil fields keep their value.
type UpdateAttendanceRequest struct {
	ID            string  `json:"-"`
	Status        *string `json:"status,omitempty"`
	BreakDuration *int    `json:"break_duration,omitempty"`
	Date          *string `json:"date,omitempty"`

	Timestamp *time.Time `json:"-"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	errs = append(errs, validateBreak(r.BreakDuration)...)

	if r.Date != nil {
		if t, ok := validator.IsValidDateTime(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: ErrInvalidTimestamp.Error(),
			})
		} else {
			r.Timestamp = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateBreak(minutes *int) validator.ValidationErrors {
	if minutes == nil {
		return nil
	}
	if *minutes < 0 {
		return validator.ValidationErrors{{Field: "break_duration", Message: ErrNegativeBreak.Error()}}
	}
	if *minutes > maxBreakMinutes {
		return validator.ValidationErrors{{Field: "break_duration", Message: ErrBreakDurationTooLong.Error()}}
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD, inclusive
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD, inclusive

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortOrder string `json:"sort_order"` // asc, desc

	// Resolved by the service in the payroll time zone
	From *time.Time `json:"-"`
	To   *time.Time `json:"-"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	var start, end time.Time
	var hasStart, hasEnd bool
	if f.StartDate != nil && *f.StartDate != "" {
		if start, hasStart = validator.IsValidDate(*f.StartDate); !hasStart {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if end, hasEnd = validator.IsValidDate(*f.EndDate); !hasEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if hasStart && hasEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if f.SortOrder == "" {
		f.SortOrder = "desc"
	} else if f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Status        string  `json:"status"`
	BreakDuration int     `json:"break_duration"`
	Date          string  `json:"date"`
	PairID        string  `json:"pair_id"`
	CreatedAt     string  `json:"created_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Status:        string(a.Status),
		BreakDuration: a.BreakDuration,
		Date:          a.Timestamp.Format(time.RFC3339),
		PairID:        a.PairID,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

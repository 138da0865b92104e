package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/attendance"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers = 8
	punchLayout    = "03:04 PM"
)

type Options struct {
	Location   *time.Location
	Workers    int
	PairPolicy PairPolicy
	Clock      clock.Clock
}

type SalaryServiceImpl struct {
	salaryRepo     salary.SalaryRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository

	loc     *time.Location
	workers int
	policy  PairPolicy
	clock   clock.Clock
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	opts Options,
) salary.SalaryService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.PairPolicy == nil {
		opts.PairPolicy = FirstRecorded
	}
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}

	return &SalaryServiceImpl{
		salaryRepo:     salaryRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loc:            opts.Location,
		workers:        opts.Workers,
		policy:         opts.PairPolicy,
		clock:          opts.Clock,
	}
}

func (s *SalaryServiceImpl) CurrentMonth() salary.Month {
	return salary.MonthOf(s.clock.Now().In(s.loc))
}

// Calculate implements salary.SalaryService.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, month salary.Month) ([]salary.SalaryRecordResponse, error) {
	records, err := s.calculateAll(ctx, month)
	if err != nil {
		return nil, err
	}

	result := make([]salary.SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		if r.Error != "" {
			continue
		}
		result = append(result, salary.ToRecordResponse(r))
	}

	slog.Info("salaries calculated", "month", month.Label(), "employees", len(records), "records", len(result))
	return result, nil
}

// calculateAll returns one result per employee in directory order, including
// the ones skipped for missing configuration.
func (s *SalaryServiceImpl) calculateAll(ctx context.Context, month salary.Month) ([]salary.SalaryRecord, error) {
	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	start, end := month.Range(s.loc)
	results := make([]salary.SalaryRecord, len(employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			record, err := s.calculateEmployee(gCtx, emp, month, start, end)
			if err != nil {
				return err
			}
			results[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *SalaryServiceImpl) calculateEmployee(ctx context.Context, emp employee.Employee, month salary.Month, start, end time.Time) (salary.SalaryRecord, error) {
	if !emp.HasPayrollConfig() {
		slog.Warn("skipping employee without payroll configuration",
			"employee_id", emp.EmployeeID,
			"month", month.Label(),
		)
		return salary.SalaryRecord{
			EmployeeID: emp.EmployeeID,
			Month:      month.Label(),
			Name:       emp.Name,
			Error:      salary.ErrMissingPayrollConfig.Error(),
		}, nil
	}

	punches, err := s.attendanceRepo.FindByEmployeeAndRange(ctx, emp.EmployeeID, start, end)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("failed to fetch attendance of employee %s: %w", emp.EmployeeID, err)
	}

	record := buildRecord(emp, month, ResolveDays(punches, s.loc, s.policy), s.loc)

	saved, err := s.salaryRepo.Upsert(ctx, record)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("failed to save salary of employee %s: %w", emp.EmployeeID, err)
	}
	return saved, nil
}

// buildRecord prices every resolved day and sums the rounded amounts.
func buildRecord(emp employee.Employee, month salary.Month, days []DailyPair, loc *time.Location) salary.SalaryRecord {
	standard := *emp.WorkingHours
	salaryType := *emp.SalaryType

	record := salary.SalaryRecord{
		EmployeeID:      emp.EmployeeID,
		Month:           month.Label(),
		Name:            emp.Name,
		Entries:         make([]salary.DailyEntry, 0, len(days)),
		TotalBaseSalary: decimal.Zero,
		TotalOTSalary:   decimal.Zero,
	}

	for _, day := range days {
		hours := ComputeHours(day.In, day.Out, day.BreakMinutes, standard)
		pay := ComputePay(emp.Salary, salaryType, standard, hours.Overtime)

		record.Entries = append(record.Entries, salary.DailyEntry{
			Date:         day.Date,
			InTime:       day.In.In(loc).Format(punchLayout),
			OutTime:      day.Out.In(loc).Format(punchLayout),
			WorkingHours: standard,
			OTHours:      hours.Overtime.Round(1),
			SalaryType:   salaryType,
			DaySalary:    pay.DaySalary,
			OTSalary:     pay.OTSalary,
		})
		record.TotalBaseSalary = record.TotalBaseSalary.Add(pay.DaySalary)
		record.TotalOTSalary = record.TotalOTSalary.Add(pay.OTSalary)
	}

	record.GrossSalary = record.TotalBaseSalary.Add(record.TotalOTSalary)
	// No deductions yet.
	record.NetSalary = record.GrossSalary
	return record
}

func (s *SalaryServiceImpl) GetSalary(ctx context.Context, employeeID string, month salary.Month) (salary.SalaryRecordResponse, error) {
	record, err := s.salaryRepo.GetByEmployeeMonth(ctx, employeeID, month.Label())
	if err != nil {
		return salary.SalaryRecordResponse{}, err
	}
	return salary.ToRecordResponse(record), nil
}

func (s *SalaryServiceImpl) ListSalaries(ctx context.Context, month salary.Month) ([]salary.SalaryRecordResponse, error) {
	records, err := s.salaryRepo.ListByMonth(ctx, month.Label())
	if err != nil {
		return nil, err
	}
	return salary.ToRecordResponses(records), nil
}

func (s *SalaryServiceImpl) GetMonthSummary(ctx context.Context, month salary.Month) (salary.MonthSummaryResponse, error) {
	summary, err := s.salaryRepo.GetMonthSummary(ctx, month.Label())
	if err != nil {
		return salary.MonthSummaryResponse{}, err
	}
	return salary.ToSummaryResponse(summary), nil
}

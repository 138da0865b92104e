package salary

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/attendance"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errStoreDown = errors.New("store down")

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]employee.Employee(nil), f.employees...), nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	mu      sync.Mutex
	punches []attendance.Attendance
	delay   map[string]time.Duration
	failFor string
}

func (f *fakeAttendanceRepo) add(employeeID string, status attendance.Status, ts time.Time, breakMinutes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.punches = append(f.punches, attendance.Attendance{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		Status:        status,
		BreakDuration: breakMinutes,
		Timestamp:     ts,
		PairID:        uuid.NewString(),
	})
}

func (f *fakeAttendanceRepo) FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if d := f.delay[employeeID]; d > 0 {
		time.Sleep(d)
	}
	if employeeID == f.failFor {
		return nil, errStoreDown
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var result []attendance.Attendance
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.Timestamp.Before(start) && p.Timestamp.Before(end) {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeSalaryRepo struct {
	mu      sync.Mutex
	records map[string]salary.SalaryRecord
	upserts int
	now     func() time.Time
	err     error
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{
		records: make(map[string]salary.SalaryRecord),
		now:     time.Now,
	}
}

func salaryKey(employeeID, month string) string {
	return employeeID + "|" + month
}

func (f *fakeSalaryRepo) Upsert(ctx context.Context, record salary.SalaryRecord) (salary.SalaryRecord, error) {
	if f.err != nil {
		return salary.SalaryRecord{}, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++

	key := salaryKey(record.EmployeeID, record.Month)
	now := f.now()
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		record.ID = uuid.NewString()
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	f.records[key] = record
	return record, nil
}

func (f *fakeSalaryRepo) GetByEmployeeMonth(ctx context.Context, employeeID string, month string) (salary.SalaryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[salaryKey(employeeID, month)]
	if !ok {
		return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
	}
	return record, nil
}

func (f *fakeSalaryRepo) ListByMonth(ctx context.Context, month string) ([]salary.SalaryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []salary.SalaryRecord
	for _, r := range f.records {
		if r.Month == month {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID < result[j].EmployeeID })
	return result, nil
}

func (f *fakeSalaryRepo) GetMonthSummary(ctx context.Context, month string) (salary.MonthSummary, error) {
	records, _ := f.ListByMonth(ctx, month)
	summary := salary.MonthSummary{Month: month}
	for _, r := range records {
		summary.TotalEmployees++
		summary.TotalEntries += len(r.Entries)
		summary.TotalBaseSalary = summary.TotalBaseSalary.Add(r.TotalBaseSalary)
		summary.TotalOTSalary = summary.TotalOTSalary.Add(r.TotalOTSalary)
		summary.TotalGross = summary.TotalGross.Add(r.GrossSalary)
		summary.TotalNet = summary.TotalNet.Add(r.NetSalary)
	}
	return summary, nil
}

func newEmployee(code string, amount int64, hours *int64, salaryType *employee.SalaryType) employee.Employee {
	e := employee.Employee{
		ID:         uuid.NewString(),
		EmployeeID: code,
		Name:       "Employee " + code,
		Salary:     decimal.NewFromInt(amount),
		SalaryType: salaryType,
	}
	if hours != nil {
		h := decimal.NewFromInt(*hours)
		e.WorkingHours = &h
	}
	return e
}

func ptr[T any](v T) *T {
	return &v
}

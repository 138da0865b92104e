package salary

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/attendance"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	may2025 = salary.Month{Year: 2025, Month: time.May}
	monthly = ptr(employee.SalaryTypeMonthly)
	daily   = ptr(employee.SalaryTypeDaily)
)

func mayAt(d, hour, minute int) time.Time {
	return time.Date(2025, time.May, d, hour, minute, 0, 0, time.UTC)
}

// workDay records In, a Break and Out in that order.
func workDay(repo *fakeAttendanceRepo, employeeID string, d, inHour, outHour, breakMinutes int) {
	repo.add(employeeID, attendance.StatusIn, mayAt(d, inHour, 0), 0)
	if breakMinutes > 0 {
		repo.add(employeeID, attendance.StatusBreak, mayAt(d, 12, 0), breakMinutes)
	}
	repo.add(employeeID, attendance.StatusOut, mayAt(d, outHour, 0), 0)
}

type fixture struct {
	employees  *fakeEmployeeRepo
	attendance *fakeAttendanceRepo
	salaries   *fakeSalaryRepo
	svc        *SalaryServiceImpl
}

func newFixture(employees ...employee.Employee) *fixture {
	f := &fixture{
		employees:  &fakeEmployeeRepo{employees: employees},
		attendance: &fakeAttendanceRepo{delay: map[string]time.Duration{}},
		salaries:   newFakeSalaryRepo(),
	}
	f.svc = NewSalaryService(f.salaries, f.employees, f.attendance, Options{
		Location: time.UTC,
		Workers:  3,
		Clock:    clock.Fixed(mayAt(20, 10, 0)),
	}).(*SalaryServiceImpl)
	return f
}

func TestSalaryService_Calculate_WorkedExample(t *testing.T) {
	f := newFixture(newEmployee("EMP001", 30000, ptr[int64](8), monthly))
	workDay(f.attendance, "EMP001", 10, 8, 18, 60)

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "EMP001", r.EmployeeID)
	assert.Equal(t, "May 2025", r.Month)
	require.Len(t, r.Entries, 1)

	e := r.Entries[0]
	assert.Equal(t, "2025-05-10", e.Date)
	assert.Equal(t, "08:00 AM", e.InTime)
	assert.Equal(t, "06:00 PM", e.OutTime)
	assert.Equal(t, "8", e.WorkingHours)
	assert.Equal(t, "1.0", e.OTHours)
	assert.Equal(t, "Monthly", e.SalaryType)
	assert.Equal(t, "1000.00", e.DaySalary)
	assert.Equal(t, "3750.00", e.OTSalary)

	assert.Equal(t, "1000.00", r.TotalBaseSalary)
	assert.Equal(t, "3750.00", r.TotalOTSalary)
	assert.Equal(t, "4750.00", r.GrossSalary)
	assert.Equal(t, r.GrossSalary, r.NetSalary)
}

func TestSalaryService_Calculate_DailyEmployee(t *testing.T) {
	f := newFixture(newEmployee("EMP002", 1500, ptr[int64](8), daily))
	workDay(f.attendance, "EMP002", 10, 8, 18, 60)
	workDay(f.attendance, "EMP002", 11, 9, 17, 0)

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Entries, 2)

	for _, e := range records[0].Entries {
		assert.Equal(t, "1500.00", e.DaySalary)
	}
	assert.Equal(t, "187.50", records[0].Entries[0].OTSalary)
	assert.Equal(t, "0.00", records[0].Entries[1].OTSalary)
	assert.Equal(t, "3000.00", records[0].TotalBaseSalary)
	assert.Equal(t, "3187.50", records[0].GrossSalary)
}

func TestSalaryService_Calculate_Idempotent(t *testing.T) {
	f := newFixture(
		newEmployee("EMP001", 30000, ptr[int64](8), monthly),
		newEmployee("EMP002", 1500, ptr[int64](8), daily),
	)
	workDay(f.attendance, "EMP001", 5, 8, 18, 60)
	workDay(f.attendance, "EMP002", 6, 8, 17, 30)

	ctx := context.Background()
	first, err := f.svc.Calculate(ctx, may2025)
	require.NoError(t, err)

	f.salaries.now = func() time.Time { return time.Now().Add(time.Hour) }
	second, err := f.svc.Calculate(ctx, may2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, f.salaries.records, 2)
	assert.Equal(t, 4, f.salaries.upserts)
}

func TestSalaryService_Calculate_MissingConfigExcluded(t *testing.T) {
	zero := decimal.Zero
	noHours := newEmployee("EMP002", 20000, nil, monthly)
	zeroHours := newEmployee("EMP003", 20000, nil, monthly)
	zeroHours.WorkingHours = &zero
	noType := newEmployee("EMP004", 20000, ptr[int64](8), nil)

	f := newFixture(
		newEmployee("EMP001", 30000, ptr[int64](8), monthly),
		noHours,
		zeroHours,
		noType,
	)
	for _, id := range []string{"EMP001", "EMP002", "EMP003", "EMP004"} {
		workDay(f.attendance, id, 10, 8, 18, 60)
	}

	ctx := context.Background()
	all, err := f.svc.calculateAll(ctx, may2025)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Empty(t, all[0].Error)
	for _, r := range all[1:] {
		assert.Equal(t, salary.ErrMissingPayrollConfig.Error(), r.Error, r.EmployeeID)
		assert.True(t, r.GrossSalary.IsZero())
	}

	records, err := f.svc.Calculate(ctx, may2025)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "EMP001", records[0].EmployeeID)

	_, err = f.salaries.GetByEmployeeMonth(ctx, "EMP002", "May 2025")
	assert.ErrorIs(t, err, salary.ErrSalaryRecordNotFound)
}

func TestSalaryService_Calculate_DayWithoutOutDropped(t *testing.T) {
	f := newFixture(newEmployee("EMP001", 30000, ptr[int64](8), monthly))
	workDay(f.attendance, "EMP001", 10, 8, 18, 60)
	f.attendance.add("EMP001", attendance.StatusIn, mayAt(11, 8, 0), 0)

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Entries, 1)
	assert.Equal(t, "2025-05-10", records[0].Entries[0].Date)
}

func TestSalaryService_Calculate_NoPunchesStillStored(t *testing.T) {
	f := newFixture(newEmployee("EMP001", 30000, ptr[int64](8), monthly))

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Entries)
	assert.Equal(t, "0.00", records[0].GrossSalary)
}

func TestSalaryService_Calculate_MonthBoundaries(t *testing.T) {
	f := newFixture(newEmployee("EMP001", 30000, ptr[int64](8), monthly))
	// Last day of the month counts.
	f.attendance.add("EMP001", attendance.StatusIn, mayAt(31, 14, 0), 0)
	f.attendance.add("EMP001", attendance.StatusOut, mayAt(31, 22, 0), 0)
	// Neighbouring months do not.
	f.attendance.add("EMP001", attendance.StatusIn, time.Date(2025, time.April, 30, 8, 0, 0, 0, time.UTC), 0)
	f.attendance.add("EMP001", attendance.StatusOut, time.Date(2025, time.April, 30, 17, 0, 0, 0, time.UTC), 0)
	f.attendance.add("EMP001", attendance.StatusIn, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 0)
	f.attendance.add("EMP001", attendance.StatusOut, time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC), 0)

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Entries, 1)
	assert.Equal(t, "2025-05-31", records[0].Entries[0].Date)
}

func TestSalaryService_Calculate_TotalsMatchEntries(t *testing.T) {
	f := newFixture(newEmployee("EMP001", 25000, ptr[int64](9), monthly))
	for d := 1; d <= 20; d++ {
		f.attendance.add("EMP001", attendance.StatusIn, mayAt(d, 8, 0), 0)
		f.attendance.add("EMP001", attendance.StatusBreak, mayAt(d, 12, 0), d%4*10)
		f.attendance.add("EMP001", attendance.StatusOut, mayAt(d, 17, d), 0)
	}

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records, 1)
	r := records[0]
	require.Len(t, r.Entries, 20)

	base, ot := decimal.Zero, decimal.Zero
	for _, e := range r.Entries {
		base = base.Add(decimal.RequireFromString(e.DaySalary))
		ot = ot.Add(decimal.RequireFromString(e.OTSalary))
	}
	assert.Equal(t, base.StringFixed(2), r.TotalBaseSalary)
	assert.Equal(t, ot.StringFixed(2), r.TotalOTSalary)
	assert.Equal(t, base.Add(ot).StringFixed(2), r.GrossSalary)
}

func TestSalaryService_Calculate_RecomputePicksUpCorrection(t *testing.T) {
	f := newFixture(
		newEmployee("EMP001", 30000, ptr[int64](8), monthly),
		newEmployee("EMP002", 30000, ptr[int64](8), monthly),
	)
	workDay(f.attendance, "EMP001", 10, 8, 18, 60)
	workDay(f.attendance, "EMP002", 10, 8, 18, 60)

	ctx := context.Background()
	before, err := f.svc.Calculate(ctx, may2025)
	require.NoError(t, err)

	// EMP002 actually left at 17:00.
	f.attendance.mu.Lock()
	for i, p := range f.attendance.punches {
		if p.EmployeeID == "EMP002" && p.Status == attendance.StatusOut {
			f.attendance.punches[i].Timestamp = mayAt(10, 17, 0)
		}
	}
	f.attendance.mu.Unlock()

	after, err := f.svc.Calculate(ctx, may2025)
	require.NoError(t, err)

	assert.Equal(t, before[0], after[0])
	assert.Equal(t, "3750.00", before[1].TotalOTSalary)
	assert.Equal(t, "0.00", after[1].TotalOTSalary)
	assert.Equal(t, before[1].ID, after[1].ID)
	assert.Len(t, f.salaries.records, 2)
}

func TestSalaryService_Calculate_PreservesDirectoryOrder(t *testing.T) {
	var employees []employee.Employee
	f := newFixture()
	for i := 0; i < 12; i++ {
		code := fmt.Sprintf("EMP%03d", i)
		employees = append(employees, newEmployee(code, 30000, ptr[int64](8), monthly))
		workDay(f.attendance, code, 10, 8, 18, 60)
		// Earlier employees finish last.
		f.attendance.delay[code] = time.Duration(12-i) * 2 * time.Millisecond
	}
	f.employees.employees = employees

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records, len(employees))
	for i, r := range records {
		assert.Equal(t, employees[i].EmployeeID, r.EmployeeID)
	}
}

func TestSalaryService_Calculate_StoreErrorsAbort(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		f := newFixture()
		f.employees.err = errStoreDown

		_, err := f.svc.Calculate(context.Background(), may2025)
		assert.ErrorIs(t, err, errStoreDown)
	})

	t.Run("attendance", func(t *testing.T) {
		f := newFixture(
			newEmployee("EMP001", 30000, ptr[int64](8), monthly),
			newEmployee("EMP002", 30000, ptr[int64](8), monthly),
		)
		f.attendance.failFor = "EMP002"

		records, err := f.svc.Calculate(context.Background(), may2025)
		assert.ErrorIs(t, err, errStoreDown)
		assert.Nil(t, records)
	})

	t.Run("salary store", func(t *testing.T) {
		f := newFixture(newEmployee("EMP001", 30000, ptr[int64](8), monthly))
		f.salaries.err = errStoreDown

		_, err := f.svc.Calculate(context.Background(), may2025)
		assert.ErrorIs(t, err, errStoreDown)
	})
}

func TestSalaryService_EarliestLatestPolicy(t *testing.T) {
	f := newFixture(newEmployee("EMP001", 30000, ptr[int64](8), monthly))
	f.svc.policy = EarliestInLatestOut
	// Recorded out of order: the late In comes first.
	f.attendance.add("EMP001", attendance.StatusIn, mayAt(10, 9, 0), 0)
	f.attendance.add("EMP001", attendance.StatusIn, mayAt(10, 8, 0), 0)
	f.attendance.add("EMP001", attendance.StatusOut, mayAt(10, 18, 0), 0)

	records, err := f.svc.Calculate(context.Background(), may2025)
	require.NoError(t, err)
	require.Len(t, records[0].Entries, 1)
	assert.Equal(t, "08:00 AM", records[0].Entries[0].InTime)
	assert.Equal(t, "2.0", records[0].Entries[0].OTHours)
}

func TestSalaryService_CurrentMonth(t *testing.T) {
	f := newFixture()
	assert.Equal(t, may2025, f.svc.CurrentMonth())

	// 23:30 UTC on 31 May is already June east of Greenwich.
	tokyo := time.FixedZone("JST", 9*3600)
	svc := NewSalaryService(f.salaries, f.employees, f.attendance, Options{
		Location: tokyo,
		Clock:    clock.Fixed(mayAt(31, 23, 30)),
	})
	assert.Equal(t, salary.Month{Year: 2025, Month: time.June}, svc.CurrentMonth())
}

func TestSalaryService_ReadOperations(t *testing.T) {
	f := newFixture(
		newEmployee("EMP002", 1500, ptr[int64](8), daily),
		newEmployee("EMP001", 30000, ptr[int64](8), monthly),
	)
	workDay(f.attendance, "EMP001", 10, 8, 18, 60)
	workDay(f.attendance, "EMP002", 10, 8, 18, 60)

	ctx := context.Background()
	_, err := f.svc.Calculate(ctx, may2025)
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		r, err := f.svc.GetSalary(ctx, "EMP001", may2025)
		require.NoError(t, err)
		assert.Equal(t, "4750.00", r.GrossSalary)

		_, err = f.svc.GetSalary(ctx, "EMP001", salary.Month{Year: 2025, Month: time.June})
		assert.ErrorIs(t, err, salary.ErrSalaryRecordNotFound)
	})

	t.Run("list", func(t *testing.T) {
		records, err := f.svc.ListSalaries(ctx, may2025)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "EMP001", records[0].EmployeeID)
		assert.Equal(t, "EMP002", records[1].EmployeeID)
	})

	t.Run("summary", func(t *testing.T) {
		summary, err := f.svc.GetMonthSummary(ctx, may2025)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalEmployees)
		assert.Equal(t, 2, summary.TotalEntries)
		assert.Equal(t, "2500.00", summary.TotalBaseSalary)
		assert.Equal(t, "3937.50", summary.TotalOTSalary)
		assert.Equal(t, "6437.50", summary.TotalGross)
		assert.Equal(t, summary.TotalGross, summary.TotalNet)
	})
}

package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(employeeID string, gross int64) salary.SalaryRecord {
	amount := decimal.NewFromInt(gross)
	return salary.SalaryRecord{
		EmployeeID: employeeID,
		Month:      "May 2025",
		Name:       "Employee " + employeeID,
		Entries: []salary.DailyEntry{{
			Date:         time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
			InTime:       "08:00 AM",
			OutTime:      "06:00 PM",
			WorkingHours: decimal.NewFromInt(8),
			OTHours:      decimal.NewFromInt(1),
			SalaryType:   employee.SalaryTypeMonthly,
			DaySalary:    amount,
			OTSalary:     decimal.Zero,
		}},
		TotalBaseSalary: amount,
		TotalOTSalary:   decimal.Zero,
		GrossSalary:     amount,
		NetSalary:       amount,
	}
}

func TestSalaryRepository_Upsert(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewSalaryRepository(setup.DB)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, sampleRecord("EMP001", 1000))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	require.Len(t, first.Entries, 1)
	assert.Equal(t, "08:00 AM", first.Entries[0].InTime)
	assert.True(t, first.GrossSalary.Equal(decimal.NewFromInt(1000)))

	updated := sampleRecord("EMP001", 1500)
	updated.Name = "Renamed"
	second, err := repo.Upsert(ctx, updated)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.Equal(t, "Renamed", second.Name)
	assert.True(t, second.GrossSalary.Equal(decimal.NewFromInt(1500)))

	records, err := repo.ListByMonth(ctx, "May 2025")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSalaryRepository_Queries(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewSalaryRepository(setup.DB)
	ctx := context.Background()

	for _, r := range []salary.SalaryRecord{sampleRecord("EMP002", 500), sampleRecord("EMP001", 1000)} {
		_, err := repo.Upsert(ctx, r)
		require.NoError(t, err)
	}
	empty := sampleRecord("EMP003", 0)
	empty.Entries = nil
	_, err := repo.Upsert(ctx, empty)
	require.NoError(t, err)

	got, err := repo.GetByEmployeeMonth(ctx, "EMP002", "May 2025")
	require.NoError(t, err)
	assert.True(t, got.NetSalary.Equal(decimal.NewFromInt(500)))

	_, err = repo.GetByEmployeeMonth(ctx, "EMP002", "June 2025")
	assert.ErrorIs(t, err, salary.ErrSalaryRecordNotFound)

	records, err := repo.ListByMonth(ctx, "May 2025")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "EMP001", records[0].EmployeeID)
	assert.Empty(t, records[2].Entries)

	summary, err := repo.GetMonthSummary(ctx, "May 2025")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalEmployees)
	assert.Equal(t, 2, summary.TotalEntries)
	assert.True(t, summary.TotalGross.Equal(decimal.NewFromInt(1500)))

	none, err := repo.GetMonthSummary(ctx, "June 2025")
	require.NoError(t, err)
	assert.Zero(t, none.TotalEmployees)
	assert.True(t, none.TotalNet.IsZero())
}

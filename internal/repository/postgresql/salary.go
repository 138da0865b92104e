package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const salaryColumns = `
	id, employee_id, month, name, entries, total_base_salary, total_ot_salary,
	gross_salary, net_salary, created_at, updated_at
`

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

func scanSalaryRecord(row pgx.Row) (salary.SalaryRecord, error) {
	var r salary.SalaryRecord
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Month, &r.Name, &r.Entries,
		&r.TotalBaseSalary, &r.TotalOTSalary, &r.GrossSalary, &r.NetSalary,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Upsert implements salary.SalaryRepository.
func (r *salaryRepository) Upsert(ctx context.Context, record salary.SalaryRecord) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.Entries == nil {
		record.Entries = []salary.DailyEntry{}
	}

	query := `
		INSERT INTO salaries (
			employee_id, month, name, entries,
			total_base_salary, total_ot_salary, gross_salary, net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			name = EXCLUDED.name,
			entries = EXCLUDED.entries,
			total_base_salary = EXCLUDED.total_base_salary,
			total_ot_salary = EXCLUDED.total_ot_salary,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING ` + salaryColumns

	saved, err := scanSalaryRecord(q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Month,
		record.Name,
		record.Entries,
		record.TotalBaseSalary,
		record.TotalOTSalary,
		record.GrossSalary,
		record.NetSalary,
	))
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return saved, nil
}

// GetByEmployeeMonth implements salary.SalaryRepository.
func (r *salaryRepository) GetByEmployeeMonth(ctx context.Context, employeeID string, month string) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE employee_id = $1 AND month = $2`

	record, err := scanSalaryRecord(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return record, nil
}

// ListByMonth implements salary.SalaryRepository.
func (r *salaryRepository) ListByMonth(ctx context.Context, month string) ([]salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE month = $1 ORDER BY employee_id ASC`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.SalaryRecord
	for rows.Next() {
		record, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetMonthSummary implements salary.SalaryRepository.
func (r *salaryRepository) GetMonthSummary(ctx context.Context, month string) (salary.MonthSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(jsonb_array_length(entries)), 0),
			COALESCE(SUM(total_base_salary), 0),
			COALESCE(SUM(total_ot_salary), 0),
			COALESCE(SUM(gross_salary), 0),
			COALESCE(SUM(net_salary), 0)
		FROM salaries
		WHERE month = $1
	`

	summary := salary.MonthSummary{Month: month}
	err := q.QueryRow(ctx, query, month).Scan(
		&summary.TotalEmployees,
		&summary.TotalEntries,
		&summary.TotalBaseSalary,
		&summary.TotalOTSalary,
		&summary.TotalGross,
		&summary.TotalNet,
	)
	if err != nil {
		return salary.MonthSummary{}, fmt.Errorf("failed to get salary summary: %w", err)
	}

	return summary, nil
}

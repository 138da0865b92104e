package cron

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/storage"
)

const RecomputeCurrentMonthJob = "recompute_current_month_salaries"

type SalaryJobs struct {
	salaryService salary.SalaryService
	archive       storage.FileStorage
}

// NewSalaryJobs builds the payroll jobs. archive may be nil, in which case
// workbooks are not kept.
func NewSalaryJobs(salaryService salary.SalaryService, archive storage.FileStorage) *SalaryJobs {
	return &SalaryJobs{salaryService: salaryService, archive: archive}
}

// ArchiveKey is where the workbook of a month is stored.
func ArchiveKey(month salary.Month) string {
	return fmt.Sprintf("salaries/%04d-%02d.xlsx", month.Year, int(month.Month))
}

// RegisterJobs schedules the recompute every interval. A zero interval
// leaves recomputation to explicit requests.
func (j *SalaryJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(Job{
		Name:     RecomputeCurrentMonthJob,
		Interval: interval,
		Timeout:  interval,
		Fn:       j.RecomputeCurrentMonth,
	})
}

// RecomputeCurrentMonth refreshes the stored salaries of the running month
// so corrected punches show up without an admin request.
func (j *SalaryJobs) RecomputeCurrentMonth(ctx context.Context) error {
	return j.Recompute(ctx, j.salaryService.CurrentMonth())
}

// Recompute rebuilds a month and, when an archive is set, replaces its
// stored workbook.
func (j *SalaryJobs) Recompute(ctx context.Context, month salary.Month) error {
	records, err := j.salaryService.Calculate(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to recompute salaries for %s: %w", month.Label(), err)
	}
	slog.Info("Salaries recomputed", "month", month.Label(), "records", len(records))

	if j.archive == nil {
		return nil
	}

	data, err := j.salaryService.ExportMonth(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to export salaries for %s: %w", month.Label(), err)
	}
	key, err := j.archive.Save(ctx, ArchiveKey(month), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to archive salaries for %s: %w", month.Label(), err)
	}
	slog.Info("Salary workbook archived", "month", month.Label(), "key", key)
	return nil
}

// Command recompute rebuilds the stored salary records of one month and
// prints the resulting totals. When PAYROLL_EXPORT_DIR is set the month's
// workbook is archived there too.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/backoffice-go/internal/config"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/cron"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/storage"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	salaryService "github.com/cmlabs-hris/backoffice-go/internal/service/salary"
)

func main() {
	monthFlag := flag.String("month", "", `month to recompute, e.g. "May 2025" (default: current month)`)
	flag.Parse()

	if err := run(*monthFlag); err != nil {
		slog.Error("Recompute failed", "error", err)
		os.Exit(1)
	}
}

func run(monthLabel string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	pairPolicy, err := salaryService.PairPolicyByName(cfg.Payroll.PairPolicy)
	if err != nil {
		return err
	}

	svc := salaryService.NewSalaryService(
		postgresql.NewSalaryRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewAttendanceRepository(db),
		salaryService.Options{
			Location:   cfg.Payroll.Location,
			Workers:    cfg.Payroll.Workers,
			PairPolicy: pairPolicy,
		},
	)

	month := svc.CurrentMonth()
	if monthLabel != "" {
		if month, err = salary.ParseMonth(monthLabel); err != nil {
			return err
		}
	}

	var archive storage.FileStorage
	if cfg.Payroll.ExportDir != "" {
		local, err := storage.NewLocalStorage(cfg.Payroll.ExportDir)
		if err != nil {
			return fmt.Errorf("failed to initialize export storage: %w", err)
		}
		archive = local
	}

	if err := cron.NewSalaryJobs(svc, archive).Recompute(ctx, month); err != nil {
		return err
	}

	summary, err := svc.GetMonthSummary(ctx, month)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

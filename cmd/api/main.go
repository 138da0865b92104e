package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/config"
	appHTTP "github.com/cmlabs-hris/backoffice-go/internal/handler/http"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/cron"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/storage"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/backoffice-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/backoffice-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/backoffice-go/internal/service/employee"
	salaryService "github.com/cmlabs-hris/backoffice-go/internal/service/salary"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})).With(slog.String("app", cfg.App.Name)))

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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(postgresql.NewTransactor(db), employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Payroll.Location)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo, attendanceRepo, salaryService.Options{
		Location:   cfg.Payroll.Location,
		Workers:    cfg.Payroll.Workers,
		PairPolicy: pairPolicy,
	})

	var archive storage.FileStorage
	if cfg.Payroll.ExportDir != "" {
		local, err := storage.NewLocalStorage(cfg.Payroll.ExportDir)
		if err != nil {
			return fmt.Errorf("failed to initialize export storage: %w", err)
		}
		archive = local
	}

	scheduler := cron.NewScheduler()
	cron.NewSalaryJobs(salarySvc, archive).RegisterJobs(scheduler, cfg.Payroll.RecomputeInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewSalaryHandler(salarySvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", cfg.Payroll.Timezone, "workers", cfg.Payroll.Workers)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

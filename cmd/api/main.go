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

	"github.com/cmlabs-hris/hris-mobile-api/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-mobile-api/internal/handler/http"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/logger"
	"github.com/cmlabs-hris/hris-mobile-api/internal/repository/postgresql"
	announcementService "github.com/cmlabs-hris/hris-mobile-api/internal/service/announcement"
	attendanceService "github.com/cmlabs-hris/hris-mobile-api/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-mobile-api/internal/service/auth"
	documentService "github.com/cmlabs-hris/hris-mobile-api/internal/service/document"
	employeeService "github.com/cmlabs-hris/hris-mobile-api/internal/service/employee"
	eventService "github.com/cmlabs-hris/hris-mobile-api/internal/service/event"
	expenseService "github.com/cmlabs-hris/hris-mobile-api/internal/service/expense"
	"github.com/cmlabs-hris/hris-mobile-api/internal/service/leave"
	payrollService "github.com/cmlabs-hris/hris-mobile-api/internal/service/payroll"
	"github.com/cmlabs-hris/hris-mobile-api/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(os.Stdout, logger.Options{
		App:     cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.SlogLevel(),
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDBWithConfig(cfg.DatabaseURL(), database.PoolConfig{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.App.AutoMigrate {
		if err := migrations.Apply(ctx, db); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payslipRepo := postgresql.NewPayrollRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	loc := cfg.App.Timezone
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := serviceAuth.NewAuthService(tx, userRepo, JWTService, refreshTokenRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, leaveRequestRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, loc)
	leaveSvc := leave.NewLeaveService(tx, leaveTypeRepo, leaveRequestRepo)
	payrollSvc := payrollService.NewPayrollService(payslipRepo, attendanceRepo, loc)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, loc)
	eventSvc := eventService.NewEventService(eventRepo, loc)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Logger:         log,
		},
		JWTService,
		employeeSvc,
		appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(JWTService, authSvc),
			Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
			Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
			Leave:        appHTTP.NewLeaveHandler(leaveSvc),
			Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
			Expense:      appHTTP.NewExpenseHandler(expenseSvc),
			Document:     appHTTP.NewDocumentHandler(documentSvc),
			Event:        appHTTP.NewEventHandler(eventSvc),
			Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		},
	)

	scheduler := cron.NewScheduler(log)
	cron.NewTokenJobs(refreshTokenRepo, 24*time.Hour).RegisterJobs(scheduler, time.Hour)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

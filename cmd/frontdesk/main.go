package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/config"
	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
	v1 "github.com/harborview/frontdesk/internal/handler/v1"
	"github.com/harborview/frontdesk/internal/repository/memory"
	"github.com/harborview/frontdesk/internal/repository/postgres"
	"github.com/harborview/frontdesk/internal/repository/recordapi"
	"github.com/harborview/frontdesk/internal/service"
	"github.com/harborview/frontdesk/pkg/database"
	"github.com/harborview/frontdesk/pkg/logger"
	"github.com/harborview/frontdesk/pkg/metrics"
	"github.com/harborview/frontdesk/pkg/tracer"
)

// repositories is the storage surface main wires per STORE_DRIVER.
type repositories struct {
	patients     patient.Repository
	appointments appointment.Repository
	departments  department.Repository
	staff        staff.Repository
	audit        service.AuditRepository
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	log.Info("starting",
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("store_driver", cfg.Store.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		tp, err := tracer.Init(cfg.Tracing)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Warn("tracer shutdown", zap.Error(err))
			}
		}()
	}

	repos, err := buildRepositories(cfg, log)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector("frontdesk")

	auditSvc := service.NewAuditService(repos.audit, collector, log)
	defer auditSvc.Shutdown()

	svcs := v1.Services{
		Patients:     service.NewPatientService(repos.patients, auditSvc, collector, log),
		Appointments: service.NewAppointmentService(repos.appointments, repos.patients, repos.staff, auditSvc, collector, log),
		Departments:  service.NewDepartmentService(repos.departments, repos.staff, auditSvc, collector, log),
		Staff:        service.NewStaffService(repos.staff, auditSvc, log),
		Reports:      service.NewReportService(repos.patients, repos.appointments, repos.departments, collector, log, cfg.Reporting.TopDepartments),
		Dashboard:    service.NewDashboardService(repos.patients, repos.appointments, repos.departments, log),
	}

	router := v1.NewRouter(cfg, log, collector, svcs)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}

func buildRepositories(cfg *config.Config, log *zap.Logger) (*repositories, error) {
	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore(cfg.Store.MockLatency)
		if cfg.Store.Seed {
			store.Seed()
			log.Info("memory store seeded")
		}
		return &repositories{
			patients:     store.Patients(),
			appointments: store.Appointments(),
			departments:  store.Departments(),
			staff:        store.Staff(),
			audit:        store.Audit(),
		}, nil

	case "postgres":
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := database.Migrate(db, log); err != nil {
			return nil, fmt.Errorf("migrating: %w", err)
		}
		return &repositories{
			patients:     postgres.NewPatientRepository(db),
			appointments: postgres.NewAppointmentRepository(db),
			departments:  postgres.NewDepartmentRepository(db),
			staff:        postgres.NewStaffRepository(db),
			audit:        postgres.NewAuditRepository(db),
		}, nil

	case "recordapi":
		client := recordapi.NewClient(cfg.RecordAPI)
		// The record store has no audit table; entries stay in process.
		auditStore := memory.NewStore(0)
		return &repositories{
			patients:     recordapi.NewPatientRepository(client),
			appointments: recordapi.NewAppointmentRepository(client),
			departments:  recordapi.NewDepartmentRepository(client),
			staff:        recordapi.NewStaffRepository(client),
			audit:        auditStore.Audit(),
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

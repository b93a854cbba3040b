package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/report"
	"github.com/harborview/frontdesk/pkg/metrics"
)

type ReportService struct {
	patientRepo     patient.Repository
	appointmentRepo appointment.Repository
	departmentRepo  department.Repository
	collector       *metrics.Collector
	log             *zap.Logger
	topDepartments  int
}

func NewReportService(
	patientRepo patient.Repository,
	appointmentRepo appointment.Repository,
	departmentRepo department.Repository,
	collector *metrics.Collector,
	log *zap.Logger,
	topDepartments int,
) *ReportService {
	return &ReportService{
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		departmentRepo:  departmentRepo,
		collector:       collector,
		log:             log,
		topDepartments:  topDepartments,
	}
}

// Overview is the reports-screen payload: the full metrics plus the busiest
// departments for the bar list.
type Overview struct {
	Range          report.Window               `json:"range"`
	Metrics        report.Metrics              `json:"metrics"`
	TopDepartments []report.DepartmentActivity `json:"top_departments"`
}

// BuildOverview loads the three collections concurrently and aggregates
// them. A failure in any one load fails the whole report; there is no
// partial-success state, and retry is caller-initiated.
func (s *ReportService) BuildOverview(ctx context.Context, window report.Window) (*Overview, error) {
	start := time.Now()

	var (
		patients     []*patient.Patient
		appointments []*appointment.Appointment
		departments  []*department.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		patients, err = s.patientRepo.List(gctx, &patient.ListPatientsQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = s.appointmentRepo.List(gctx, &appointment.ListAppointmentsQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = s.departmentRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to load report data", zap.Error(err))
		return nil, fmt.Errorf("loading report data: %w", err)
	}

	m := report.Aggregate(patients, appointments, departments, window, time.Now())

	s.collector.ReportDuration.Observe(time.Since(start).Seconds())

	return &Overview{
		Range:          window,
		Metrics:        m,
		TopDepartments: report.TopDepartments(m.AppointmentsByDepartment, s.topDepartments),
	}, nil
}

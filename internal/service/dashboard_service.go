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
)

type DashboardService struct {
	patientRepo     patient.Repository
	appointmentRepo appointment.Repository
	departmentRepo  department.Repository
	log             *zap.Logger
}

func NewDashboardService(
	patientRepo patient.Repository,
	appointmentRepo appointment.Repository,
	departmentRepo department.Repository,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		departmentRepo:  departmentRepo,
		log:             log,
	}
}

type QueueSummary struct {
	DepartmentID   string               `json:"department_id"`
	DepartmentName string               `json:"department_name"`
	Waiting        int                  `json:"waiting"`
	AvgWaitMins    int                  `json:"avg_wait_mins"`
	Load           department.QueueLoad `json:"load"`
}

type DashboardSummary struct {
	TotalPatients      int            `json:"total_patients"`
	TodaysAppointments int            `json:"todays_appointments"`
	ActiveDepartments  int            `json:"active_departments"`
	AvgWaitMins        int            `json:"avg_wait_mins"`
	Queues             []QueueSummary `json:"queues"`
}

// Build assembles the landing-screen summary. All three collections load
// concurrently with a single combined error, same as every other screen.
func (s *DashboardService) Build(ctx context.Context) (*DashboardSummary, error) {
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
		s.log.Error("failed to load dashboard data", zap.Error(err))
		return nil, fmt.Errorf("loading dashboard data: %w", err)
	}

	now := time.Now()
	today := 0
	for _, a := range appointments {
		if appointment.InView(a.DateTime, now, appointment.ViewDay) {
			today++
		}
	}

	queues := make([]QueueSummary, 0, len(departments))
	waitTotal := 0
	for _, d := range departments {
		queues = append(queues, QueueSummary{
			DepartmentID:   d.ID,
			DepartmentName: d.Name,
			Waiting:        len(d.ActiveQueue),
			AvgWaitMins:    d.AvgWaitMins,
			Load:           d.Load(),
		})
		waitTotal += d.AvgWaitMins
	}
	avgWait := 0
	if len(departments) > 0 {
		avgWait = waitTotal / len(departments)
	}

	return &DashboardSummary{
		TotalPatients:      len(patients),
		TodaysAppointments: today,
		ActiveDepartments:  len(departments),
		AvgWaitMins:        avgWait,
		Queues:             queues,
	}, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harborview/frontdesk/internal/domain"
	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
	"github.com/harborview/frontdesk/pkg/metrics"
)

const (
	unknownPatientName = "Unknown Patient"
	unknownDoctorName  = "Unknown Doctor"
)

type AppointmentService struct {
	repo        appointment.Repository
	patientRepo patient.Repository
	staffRepo   staff.Repository
	auditSvc    *AuditService
	collector   *metrics.Collector
	log         *zap.Logger
}

func NewAppointmentService(
	repo appointment.Repository,
	patientRepo patient.Repository,
	staffRepo staff.Repository,
	auditSvc *AuditService,
	collector *metrics.Collector,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:        repo,
		patientRepo: patientRepo,
		staffRepo:   staffRepo,
		auditSvc:    auditSvc,
		collector:   collector,
		log:         log,
	}
}

// AppointmentDetail is an appointment enriched with the display names the
// appointments screen renders. Dangling patient or doctor references resolve
// to placeholder names, never an error.
type AppointmentDetail struct {
	*appointment.Appointment
	PatientName string                 `json:"patient_name"`
	DoctorName  string                 `json:"doctor_name"`
	StatusInfo  appointment.StatusInfo `json:"status_info"`
}

func (s *AppointmentService) Schedule(ctx context.Context, cmd *appointment.CreateAppointmentCommand, requestID, ip string) (*appointment.Appointment, error) {
	if cmd.DateTime.IsZero() {
		return nil, appointment.ErrDateTimeRequired
	}
	if cmd.DurationMins == 0 {
		cmd.DurationMins = 30
	}
	if cmd.DurationMins < 5 || cmd.DurationMins > 480 {
		return nil, appointment.ErrInvalidDuration
	}
	if cmd.Status == "" {
		cmd.Status = appointment.StatusScheduled
	}
	if !cmd.Status.IsValid() {
		return nil, appointment.ErrInvalidStatus
	}

	// The patient reference is the one FK the front desk insists on; doctor
	// and department may go stale and degrade to placeholders at read time.
	if _, err := s.patientRepo.GetByID(ctx, cmd.PatientID); err != nil {
		return nil, fmt.Errorf("verifying patient: %w", err)
	}

	a := &appointment.Appointment{
		ID:           domain.NewRecordID(domain.AppointmentIDPrefix),
		PatientID:    cmd.PatientID,
		DoctorID:     cmd.DoctorID,
		DepartmentID: cmd.DepartmentID,
		DateTime:     cmd.DateTime,
		DurationMins: cmd.DurationMins,
		Reason:       cmd.Reason,
		Notes:        cmd.Notes,
		Status:       cmd.Status,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.collector.AppointmentsTotal.WithLabelValues(string(a.Status)).Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "create",
		ResourceType: "appointment",
		ResourceID:   a.ID,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return a, nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*appointment.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDetailed loads appointments, patients, and staff concurrently and
// joins them into display rows. One failed load fails the whole call; the
// caller retries all three together.
func (s *AppointmentService) ListDetailed(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*AppointmentDetail, error) {
	if q == nil {
		q = &appointment.ListAppointmentsQuery{}
	}
	if q.View != "" && !q.View.IsValid() {
		return nil, appointment.ErrInvalidView
	}
	if q.Status != nil && !q.Status.IsValid() {
		return nil, appointment.ErrInvalidStatus
	}

	var (
		appointments []*appointment.Appointment
		patients     []*patient.Patient
		staffList    []*staff.Staff
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = s.repo.List(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		patients, err = s.patientRepo.List(gctx, &patient.ListPatientsQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		staffList, err = s.staffRepo.List(gctx, &staff.ListStaffQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading appointment data: %w", err)
	}

	if q.View != "" {
		selected := q.Date
		if selected.IsZero() {
			selected = time.Now()
		}
		appointments = appointment.FilterByView(appointments, selected, q.View)
	}

	patientNames := make(map[string]string, len(patients))
	for _, p := range patients {
		patientNames[p.ID] = p.Name
	}
	staffNames := make(map[string]string, len(staffList))
	for _, m := range staffList {
		staffNames[m.ID] = m.Name
	}

	details := make([]*AppointmentDetail, 0, len(appointments))
	for _, a := range appointments {
		d := &AppointmentDetail{
			Appointment: a,
			PatientName: unknownPatientName,
			DoctorName:  unknownDoctorName,
			StatusInfo:  a.Status.Info(),
		}
		if name, ok := patientNames[a.PatientID]; ok {
			d.PatientName = name
		}
		if name, ok := staffNames[a.DoctorID]; ok {
			d.DoctorName = name
		}
		details = append(details, d)
	}

	return details, nil
}

func (s *AppointmentService) UpdateAppointment(ctx context.Context, id string, cmd *appointment.UpdateAppointmentCommand, requestID, ip string) (*appointment.Appointment, error) {
	if cmd.DurationMins != nil && (*cmd.DurationMins < 5 || *cmd.DurationMins > 480) {
		return nil, appointment.ErrInvalidDuration
	}

	a, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "update",
		ResourceType: "appointment",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return a, nil
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status appointment.Status, requestID, ip string) (*appointment.Appointment, error) {
	if !status.IsValid() {
		return nil, appointment.ErrInvalidStatus
	}

	a, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.collector.AppointmentsTotal.WithLabelValues(string(status)).Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "update",
		ResourceType: "appointment",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
		Changes:      fmt.Sprintf(`{"status":%q}`, status),
	})

	return a, nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string, requestID, ip string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "delete",
		ResourceType: "appointment",
		ResourceID:   id,
		RequestID:    requestID,
		IPAddress:    ip,
	})

	return nil
}

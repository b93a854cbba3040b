package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

func newAppointmentService(repo *mockAppointmentRepo, patients *mockPatientRepo, members *mockStaffRepo) (*AppointmentService, *AuditService) {
	auditSvc, _ := newTestAudit()
	return NewAppointmentService(repo, patients, members, auditSvc, testCollector, zap.NewNop()), auditSvc
}

func existingPatient(id string) *mockPatientRepo {
	return &mockPatientRepo{
		GetByIDFunc: func(ctx context.Context, got string) (*patient.Patient, error) {
			if got != id {
				return nil, patient.ErrPatientNotFound
			}
			return &patient.Patient{ID: id, Name: "Jane Doe"}, nil
		},
	}
}

func TestScheduleDefaults(t *testing.T) {
	var created *appointment.Appointment
	repo := &mockAppointmentRepo{
		CreateFunc: func(ctx context.Context, a *appointment.Appointment) error {
			created = a
			return nil
		},
	}
	svc, auditSvc := newAppointmentService(repo, existingPatient("PAT-1"), nil)
	defer auditSvc.Shutdown()

	a, err := svc.Schedule(context.Background(), &appointment.CreateAppointmentCommand{
		PatientID: "PAT-1",
		DateTime:  time.Now().Add(24 * time.Hour),
	}, "", "")
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if a.DurationMins != 30 {
		t.Errorf("DurationMins = %d, want default 30", a.DurationMins)
	}
	if a.Status != appointment.StatusScheduled {
		t.Errorf("Status = %s, want default scheduled", a.Status)
	}
	if created == nil {
		t.Fatal("repository did not receive the appointment")
	}
}

func TestScheduleValidation(t *testing.T) {
	repo := &mockAppointmentRepo{
		CreateFunc: func(ctx context.Context, a *appointment.Appointment) error {
			t.Fatal("Create should not be called on invalid input")
			return nil
		},
	}
	svc, auditSvc := newAppointmentService(repo, existingPatient("PAT-1"), nil)
	defer auditSvc.Shutdown()
	ctx := context.Background()
	future := time.Now().Add(24 * time.Hour)

	if _, err := svc.Schedule(ctx, &appointment.CreateAppointmentCommand{PatientID: "PAT-1"}, "", ""); !errors.Is(err, appointment.ErrDateTimeRequired) {
		t.Errorf("missing datetime err = %v, want ErrDateTimeRequired", err)
	}

	if _, err := svc.Schedule(ctx, &appointment.CreateAppointmentCommand{
		PatientID: "PAT-1", DateTime: future, DurationMins: 3,
	}, "", ""); !errors.Is(err, appointment.ErrInvalidDuration) {
		t.Errorf("short duration err = %v, want ErrInvalidDuration", err)
	}

	if _, err := svc.Schedule(ctx, &appointment.CreateAppointmentCommand{
		PatientID: "PAT-1", DateTime: future, Status: appointment.Status("no-show"),
	}, "", ""); !errors.Is(err, appointment.ErrInvalidStatus) {
		t.Errorf("bad status err = %v, want ErrInvalidStatus", err)
	}

	if _, err := svc.Schedule(ctx, &appointment.CreateAppointmentCommand{
		PatientID: "PAT-missing", DateTime: future,
	}, "", ""); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Errorf("unknown patient err = %v, want wrapped ErrPatientNotFound", err)
	}
}

func TestListDetailedJoinsNames(t *testing.T) {
	repo := &mockAppointmentRepo{
		ListFunc: func(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
			return []*appointment.Appointment{
				{ID: "APT-1", PatientID: "PAT-1", DoctorID: "STF-1", Status: appointment.StatusConfirmed},
				{ID: "APT-2", PatientID: "PAT-gone", DoctorID: "STF-gone", Status: appointment.StatusScheduled},
			}, nil
		},
	}
	patients := &mockPatientRepo{
		ListFunc: func(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
			return []*patient.Patient{{ID: "PAT-1", Name: "Jane Doe"}}, nil
		},
	}
	members := &mockStaffRepo{
		ListFunc: func(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
			return []*staff.Staff{{ID: "STF-1", Name: "Dr. Chen"}}, nil
		},
	}
	svc, auditSvc := newAppointmentService(repo, patients, members)
	defer auditSvc.Shutdown()

	details, err := svc.ListDetailed(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListDetailed: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("got %d details, want 2", len(details))
	}

	if details[0].PatientName != "Jane Doe" || details[0].DoctorName != "Dr. Chen" {
		t.Errorf("resolved names = %q, %q", details[0].PatientName, details[0].DoctorName)
	}
	if details[0].StatusInfo.Label != "Confirmed" {
		t.Errorf("StatusInfo = %+v", details[0].StatusInfo)
	}

	// Dangling references resolve to placeholders, never an error.
	if details[1].PatientName != "Unknown Patient" {
		t.Errorf("PatientName = %q, want Unknown Patient", details[1].PatientName)
	}
	if details[1].DoctorName != "Unknown Doctor" {
		t.Errorf("DoctorName = %q, want Unknown Doctor", details[1].DoctorName)
	}
}

func TestListDetailedAppliesView(t *testing.T) {
	selected := time.Date(2026, time.August, 12, 10, 0, 0, 0, time.UTC)
	repo := &mockAppointmentRepo{
		ListFunc: func(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
			return []*appointment.Appointment{
				{ID: "APT-today", PatientID: "PAT-1", DateTime: selected.Add(2 * time.Hour)},
				{ID: "APT-tomorrow", PatientID: "PAT-1", DateTime: selected.AddDate(0, 0, 1)},
			}, nil
		},
	}
	patients := &mockPatientRepo{
		ListFunc: func(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
			return nil, nil
		},
	}
	members := &mockStaffRepo{
		ListFunc: func(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
			return nil, nil
		},
	}
	svc, auditSvc := newAppointmentService(repo, patients, members)
	defer auditSvc.Shutdown()

	details, err := svc.ListDetailed(context.Background(), &appointment.ListAppointmentsQuery{
		View: appointment.ViewDay,
		Date: selected,
	})
	if err != nil {
		t.Fatalf("ListDetailed: %v", err)
	}
	if len(details) != 1 || details[0].ID != "APT-today" {
		t.Errorf("view filter kept %d rows, want only APT-today", len(details))
	}
}

func TestListDetailedInvalidView(t *testing.T) {
	svc, auditSvc := newAppointmentService(&mockAppointmentRepo{}, &mockPatientRepo{}, &mockStaffRepo{})
	defer auditSvc.Shutdown()

	_, err := svc.ListDetailed(context.Background(), &appointment.ListAppointmentsQuery{View: appointment.View("year")})
	if !errors.Is(err, appointment.ErrInvalidView) {
		t.Errorf("err = %v, want ErrInvalidView", err)
	}
}

func TestListDetailedLoadFailureFailsAll(t *testing.T) {
	loadErr := errors.New("store unavailable")
	repo := &mockAppointmentRepo{
		ListFunc: func(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
			return []*appointment.Appointment{{ID: "APT-1"}}, nil
		},
	}
	patients := &mockPatientRepo{
		ListFunc: func(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
			return nil, loadErr
		},
	}
	members := &mockStaffRepo{
		ListFunc: func(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
			return nil, nil
		},
	}
	svc, auditSvc := newAppointmentService(repo, patients, members)
	defer auditSvc.Shutdown()

	if _, err := svc.ListDetailed(context.Background(), nil); !errors.Is(err, loadErr) {
		t.Errorf("err = %v, want wrapped load error", err)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, auditSvc := newAppointmentService(&mockAppointmentRepo{}, &mockPatientRepo{}, &mockStaffRepo{})
	defer auditSvc.Shutdown()

	if _, err := svc.UpdateStatus(context.Background(), "APT-1", appointment.Status("no-show"), "", ""); !errors.Is(err, appointment.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

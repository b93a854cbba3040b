package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/domain"
	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
	"github.com/harborview/frontdesk/pkg/metrics"
)

// One collector for the whole test binary; prometheus registration is global.
var testCollector = metrics.NewCollector("servicetest")

type mockPatientRepo struct {
	CreateFunc  func(ctx context.Context, p *patient.Patient) error
	GetByIDFunc func(ctx context.Context, id string) (*patient.Patient, error)
	ListFunc    func(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error)
	UpdateFunc  func(ctx context.Context, id string, cmd *patient.UpdatePatientCommand) (*patient.Patient, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockPatientRepo) Create(ctx context.Context, p *patient.Patient) error {
	return m.CreateFunc(ctx, p)
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id string) (*patient.Patient, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockPatientRepo) List(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	return m.ListFunc(ctx, q)
}

func (m *mockPatientRepo) Update(ctx context.Context, id string, cmd *patient.UpdatePatientCommand) (*patient.Patient, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *mockPatientRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockAppointmentRepo struct {
	CreateFunc       func(ctx context.Context, a *appointment.Appointment) error
	GetByIDFunc      func(ctx context.Context, id string) (*appointment.Appointment, error)
	ListFunc         func(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error)
	UpdateFunc       func(ctx context.Context, id string, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error)
	UpdateStatusFunc func(ctx context.Context, id string, status appointment.Status) (*appointment.Appointment, error)
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *mockAppointmentRepo) Create(ctx context.Context, a *appointment.Appointment) error {
	return m.CreateFunc(ctx, a)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockAppointmentRepo) List(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
	return m.ListFunc(ctx, q)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, id string, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id string, status appointment.Status) (*appointment.Appointment, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockDepartmentRepo struct {
	CreateFunc  func(ctx context.Context, d *department.Department) error
	GetByIDFunc func(ctx context.Context, id string) (*department.Department, error)
	ListFunc    func(ctx context.Context) ([]*department.Department, error)
	UpdateFunc  func(ctx context.Context, id string, cmd *department.UpdateDepartmentCommand) (*department.Department, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockDepartmentRepo) Create(ctx context.Context, d *department.Department) error {
	return m.CreateFunc(ctx, d)
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id string) (*department.Department, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockDepartmentRepo) List(ctx context.Context) ([]*department.Department, error) {
	return m.ListFunc(ctx)
}

func (m *mockDepartmentRepo) Update(ctx context.Context, id string, cmd *department.UpdateDepartmentCommand) (*department.Department, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockStaffRepo struct {
	CreateFunc  func(ctx context.Context, s *staff.Staff) error
	GetByIDFunc func(ctx context.Context, id string) (*staff.Staff, error)
	ListFunc    func(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error)
	UpdateFunc  func(ctx context.Context, id string, cmd *staff.UpdateStaffCommand) (*staff.Staff, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockStaffRepo) Create(ctx context.Context, s *staff.Staff) error {
	return m.CreateFunc(ctx, s)
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id string) (*staff.Staff, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockStaffRepo) List(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
	return m.ListFunc(ctx, q)
}

func (m *mockStaffRepo) Update(ctx context.Context, id string, cmd *staff.UpdateStaffCommand) (*staff.Staff, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *mockStaffRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

// capturingAuditRepo records entries for assertion after Shutdown drains
// the async worker.
type capturingAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (r *capturingAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *capturingAuditRepo) all() []*domain.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.AuditLog, len(r.entries))
	copy(out, r.entries)
	return out
}

func newTestAudit() (*AuditService, *capturingAuditRepo) {
	repo := &capturingAuditRepo{}
	return NewAuditService(repo, testCollector, zap.NewNop()), repo
}

// Package memory implements the repository interfaces over plain in-memory
// maps. It is the default driver for local development and tests, standing in
// for the mock-delay data service the front-desk UI was originally built
// against: optional artificial latency, ids minted as PREFIX-<epochMillis>,
// and no validation beyond "find by id".
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/harborview/frontdesk/internal/domain"
	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

// Store holds every collection behind one lock. The original mock services
// were single-writer by construction; an HTTP server is not, so reads take a
// shared lock and writes an exclusive one.
type Store struct {
	latency time.Duration

	mu           sync.RWMutex
	patients     map[string]*patient.Patient
	appointments map[string]*appointment.Appointment
	departments  map[string]*department.Department
	staff        map[string]*staff.Staff
	audit        []*domain.AuditLog
}

// NewStore creates an empty store. A non-zero latency is applied to every
// call before touching the data, simulating a remote round trip.
func NewStore(latency time.Duration) *Store {
	return &Store{
		latency:      latency,
		patients:     make(map[string]*patient.Patient),
		appointments: make(map[string]*appointment.Appointment),
		departments:  make(map[string]*department.Department),
		staff:        make(map[string]*staff.Staff),
	}
}

func (s *Store) Patients() *PatientRepository         { return &PatientRepository{s: s} }
func (s *Store) Appointments() *AppointmentRepository { return &AppointmentRepository{s: s} }
func (s *Store) Departments() *DepartmentRepository   { return &DepartmentRepository{s: s} }
func (s *Store) Staff() *StaffRepository              { return &StaffRepository{s: s} }
func (s *Store) Audit() *AuditRepository              { return &AuditRepository{s: s} }

func (s *Store) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type AuditRepository struct {
	s *Store
}

func (r *AuditRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	cp := *entry
	r.s.audit = append(r.s.audit, &cp)
	return nil
}

// Entries returns a snapshot of the audit trail, oldest first.
func (r *AuditRepository) Entries() []*domain.AuditLog {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.AuditLog, len(r.s.audit))
	copy(out, r.s.audit)
	return out
}

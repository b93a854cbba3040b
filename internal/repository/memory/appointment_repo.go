package memory

import (
	"context"

	"github.com/harborview/frontdesk/internal/domain/appointment"
)

type AppointmentRepository struct {
	s *Store
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.appointments[a.ID] = &cp
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *AppointmentRepository) List(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*appointment.Appointment, 0, len(r.s.appointments))
	for _, a := range r.s.appointments {
		if q != nil {
			if q.PatientID != "" && a.PatientID != q.PatientID {
				continue
			}
			if q.DepartmentID != "" && a.DepartmentID != q.DepartmentID {
				continue
			}
			if q.Status != nil && a.Status != *q.Status {
				continue
			}
		}
		cp := *a
		out = append(out, &cp)
	}
	sortByKey(out, func(a *appointment.Appointment) sortKey { return sortKey{a.DateTime, a.ID} })
	return out, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}

	if cmd.DateTime != nil {
		a.DateTime = *cmd.DateTime
	}
	if cmd.DurationMins != nil {
		a.DurationMins = *cmd.DurationMins
	}
	if cmd.Reason != nil {
		a.Reason = *cmd.Reason
	}
	if cmd.Notes != nil {
		a.Notes = *cmd.Notes
	}
	if cmd.DoctorID != nil {
		a.DoctorID = *cmd.DoctorID
	}
	if cmd.DepartmentID != nil {
		a.DepartmentID = *cmd.DepartmentID
	}
	touch(&a.UpdatedAt)

	cp := *a
	return &cp, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status appointment.Status) (*appointment.Appointment, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	a.Status = status
	touch(&a.UpdatedAt)

	cp := *a
	return &cp, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.appointments[id]; !ok {
		return appointment.ErrAppointmentNotFound
	}
	delete(r.s.appointments, id)
	return nil
}

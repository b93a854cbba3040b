package recordapi

import (
	"context"
	"strings"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

// The repository adapters below load whole tables and filter in memory,
// matching the screen-shaped access pattern of the record store: no
// pagination, no server-side filtering.

type PatientRepository struct {
	c *Client
}

func NewPatientRepository(c *Client) *PatientRepository {
	return &PatientRepository{c: c}
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	var stored patientRecord
	if err := r.c.CreateRecord(ctx, "patient", patientToRecord(p), &stored); err != nil {
		return err
	}
	// The store mints its own Id and CreatedOn; the caller's copy takes the
	// stored record so later reads resolve. Fields the wire does not carry
	// stay as given.
	history, meds := p.MedicalHistory, p.CurrentMedications
	*p = *stored.toDomain()
	p.MedicalHistory = history
	p.CurrentMedications = meds
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*patient.Patient, error) {
	var rec patientRecord
	found, err := r.c.GetRecordByID(ctx, "patient", id, patientFields, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, patient.ErrPatientNotFound
	}
	return rec.toDomain(), nil
}

func (r *PatientRepository) List(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	var recs []patientRecord
	if err := r.c.FetchRecords(ctx, "patient", patientFields, &recs); err != nil {
		return nil, err
	}

	search := ""
	if q != nil {
		search = strings.ToLower(strings.TrimSpace(q.Search))
	}

	out := make([]*patient.Patient, 0, len(recs))
	for i := range recs {
		p := recs[i].toDomain()
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Phone), search) &&
			!strings.Contains(strings.ToLower(p.Email), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PatientRepository) Update(ctx context.Context, id string, cmd *patient.UpdatePatientCommand) (*patient.Patient, error) {
	return nil, ErrNotSupported
}

func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	return ErrNotSupported
}

type AppointmentRepository struct {
	c *Client
}

func NewAppointmentRepository(c *Client) *AppointmentRepository {
	return &AppointmentRepository{c: c}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	var stored appointmentRecord
	if err := r.c.CreateRecord(ctx, "appointment", appointmentToRecord(a), &stored); err != nil {
		return err
	}
	*a = *stored.toDomain()
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	var rec appointmentRecord
	found, err := r.c.GetRecordByID(ctx, "appointment", id, appointmentFields, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, appointment.ErrAppointmentNotFound
	}
	return rec.toDomain(), nil
}

func (r *AppointmentRepository) List(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
	var recs []appointmentRecord
	if err := r.c.FetchRecords(ctx, "appointment", appointmentFields, &recs); err != nil {
		return nil, err
	}

	out := make([]*appointment.Appointment, 0, len(recs))
	for i := range recs {
		a := recs[i].toDomain()
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
		out = append(out, a)
	}
	return out, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	return nil, ErrNotSupported
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status appointment.Status) (*appointment.Appointment, error) {
	return nil, ErrNotSupported
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return ErrNotSupported
}

type DepartmentRepository struct {
	c *Client
}

func NewDepartmentRepository(c *Client) *DepartmentRepository {
	return &DepartmentRepository{c: c}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	var stored departmentRecord
	if err := r.c.CreateRecord(ctx, "department", departmentToRecord(d), &stored); err != nil {
		return err
	}
	*d = *stored.toDomain()
	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*department.Department, error) {
	var rec departmentRecord
	found, err := r.c.GetRecordByID(ctx, "department", id, departmentFields, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, department.ErrDepartmentNotFound
	}
	return rec.toDomain(), nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	var recs []departmentRecord
	if err := r.c.FetchRecords(ctx, "department", departmentFields, &recs); err != nil {
		return nil, err
	}
	out := make([]*department.Department, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, id string, cmd *department.UpdateDepartmentCommand) (*department.Department, error) {
	return nil, ErrNotSupported
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	return ErrNotSupported
}

type StaffRepository struct {
	c *Client
}

func NewStaffRepository(c *Client) *StaffRepository {
	return &StaffRepository{c: c}
}

func (r *StaffRepository) Create(ctx context.Context, m *staff.Staff) error {
	var stored staffRecord
	if err := r.c.CreateRecord(ctx, "staff", staffToRecord(m), &stored); err != nil {
		return err
	}
	*m = *stored.toDomain()
	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*staff.Staff, error) {
	var rec staffRecord
	found, err := r.c.GetRecordByID(ctx, "staff", id, staffFields, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, staff.ErrStaffNotFound
	}
	return rec.toDomain(), nil
}

func (r *StaffRepository) List(ctx context.Context, q *staff.ListStaffQuery) ([]*staff.Staff, error) {
	var recs []staffRecord
	if err := r.c.FetchRecords(ctx, "staff", staffFields, &recs); err != nil {
		return nil, err
	}
	out := make([]*staff.Staff, 0, len(recs))
	for i := range recs {
		m := recs[i].toDomain()
		if q != nil {
			if q.DepartmentID != "" && m.DepartmentID != q.DepartmentID {
				continue
			}
			if q.Role != nil && m.Role != *q.Role {
				continue
			}
			if q.Status != nil && m.CurrentStatus != *q.Status {
				continue
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *StaffRepository) Update(ctx context.Context, id string, cmd *staff.UpdateStaffCommand) (*staff.Staff, error) {
	return nil, ErrNotSupported
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	return ErrNotSupported
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborview/frontdesk/internal/domain/appointment"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	var a appointment.Appointment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appointment.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context, q *appointment.ListAppointmentsQuery) ([]*appointment.Appointment, error) {
	tx := r.db.WithContext(ctx).Model(&appointment.Appointment{})
	if q != nil {
		if q.PatientID != "" {
			tx = tx.Where("patient_id = ?", q.PatientID)
		}
		if q.DepartmentID != "" {
			tx = tx.Where("department_id = ?", q.DepartmentID)
		}
		if q.Status != nil {
			tx = tx.Where("status = ?", *q.Status)
		}
	}
	var out []*appointment.Appointment
	if err := tx.Order("date_time, id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return out, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, cmd *appointment.UpdateAppointmentCommand) (*appointment.Appointment, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
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

	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, fmt.Errorf("updating appointment: %w", err)
	}
	return a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status appointment.Status) (*appointment.Appointment, error) {
	res := r.db.WithContext(ctx).Model(&appointment.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("updating appointment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, appointment.ErrAppointmentNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&appointment.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}
	return nil
}

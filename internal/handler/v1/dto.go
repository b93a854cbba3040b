package v1

import (
	"time"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

type createPatientRequest struct {
	Name               string                    `json:"name" binding:"required"`
	DateOfBirth        time.Time                 `json:"date_of_birth" binding:"required"`
	Gender             string                    `json:"gender" binding:"required"`
	BloodType          string                    `json:"blood_type"`
	Phone              string                    `json:"phone"`
	Email              string                    `json:"email"`
	Address            string                    `json:"address"`
	Allergies          []string                  `json:"allergies"`
	EmergencyContact   *patient.EmergencyContact `json:"emergency_contact"`
	MedicalHistory     []patient.HistoryEntry    `json:"medical_history"`
	CurrentMedications []patient.Medication      `json:"current_medications"`
}

func (r *createPatientRequest) toCommand() *patient.CreatePatientCommand {
	return &patient.CreatePatientCommand{
		Name:               r.Name,
		DateOfBirth:        r.DateOfBirth,
		Gender:             patient.Gender(r.Gender),
		BloodType:          patient.BloodType(r.BloodType),
		Phone:              r.Phone,
		Email:              r.Email,
		Address:            r.Address,
		Allergies:          r.Allergies,
		EmergencyContact:   r.EmergencyContact,
		MedicalHistory:     r.MedicalHistory,
		CurrentMedications: r.CurrentMedications,
	}
}

type updatePatientRequest struct {
	Name               *string                   `json:"name"`
	DateOfBirth        *time.Time                `json:"date_of_birth"`
	Gender             *string                   `json:"gender"`
	BloodType          *string                   `json:"blood_type"`
	Phone              *string                   `json:"phone"`
	Email              *string                   `json:"email"`
	Address            *string                   `json:"address"`
	Allergies          *[]string                 `json:"allergies"`
	EmergencyContact   *patient.EmergencyContact `json:"emergency_contact"`
	MedicalHistory     *[]patient.HistoryEntry   `json:"medical_history"`
	CurrentMedications *[]patient.Medication     `json:"current_medications"`
}

func (r *updatePatientRequest) toCommand() *patient.UpdatePatientCommand {
	cmd := &patient.UpdatePatientCommand{
		Name:               r.Name,
		DateOfBirth:        r.DateOfBirth,
		Phone:              r.Phone,
		Email:              r.Email,
		Address:            r.Address,
		Allergies:          r.Allergies,
		EmergencyContact:   r.EmergencyContact,
		MedicalHistory:     r.MedicalHistory,
		CurrentMedications: r.CurrentMedications,
	}
	if r.Gender != nil {
		g := patient.Gender(*r.Gender)
		cmd.Gender = &g
	}
	if r.BloodType != nil {
		b := patient.BloodType(*r.BloodType)
		cmd.BloodType = &b
	}
	return cmd
}

type createAppointmentRequest struct {
	PatientID    string    `json:"patient_id" binding:"required"`
	DoctorID     string    `json:"doctor_id"`
	DepartmentID string    `json:"department_id"`
	DateTime     time.Time `json:"date_time" binding:"required"`
	DurationMins int       `json:"duration_mins"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status"`
}

func (r *createAppointmentRequest) toCommand() *appointment.CreateAppointmentCommand {
	return &appointment.CreateAppointmentCommand{
		PatientID:    r.PatientID,
		DoctorID:     r.DoctorID,
		DepartmentID: r.DepartmentID,
		DateTime:     r.DateTime,
		DurationMins: r.DurationMins,
		Reason:       r.Reason,
		Notes:        r.Notes,
		Status:       appointment.Status(r.Status),
	}
}

type updateAppointmentRequest struct {
	DateTime     *time.Time `json:"date_time"`
	DurationMins *int       `json:"duration_mins"`
	Reason       *string    `json:"reason"`
	Notes        *string    `json:"notes"`
	DoctorID     *string    `json:"doctor_id"`
	DepartmentID *string    `json:"department_id"`
}

func (r *updateAppointmentRequest) toCommand() *appointment.UpdateAppointmentCommand {
	return &appointment.UpdateAppointmentCommand{
		DateTime:     r.DateTime,
		DurationMins: r.DurationMins,
		Reason:       r.Reason,
		Notes:        r.Notes,
		DoctorID:     r.DoctorID,
		DepartmentID: r.DepartmentID,
	}
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type createDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Head        string `json:"head"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	AvgWaitMins int    `json:"avg_wait_mins"`
}

func (r *createDepartmentRequest) toCommand() *department.CreateDepartmentCommand {
	return &department.CreateDepartmentCommand{
		Name:        r.Name,
		Location:    r.Location,
		Head:        r.Head,
		Description: r.Description,
		Phone:       r.Phone,
		Email:       r.Email,
		AvgWaitMins: r.AvgWaitMins,
	}
}

type updateDepartmentRequest struct {
	Name        *string                  `json:"name"`
	Location    *string                  `json:"location"`
	Head        *string                  `json:"head"`
	Description *string                  `json:"description"`
	Phone       *string                  `json:"phone"`
	Email       *string                  `json:"email"`
	AvgWaitMins *int                     `json:"avg_wait_mins"`
	ActiveQueue *[]department.QueueEntry `json:"active_queue"`
}

func (r *updateDepartmentRequest) toCommand() *department.UpdateDepartmentCommand {
	return &department.UpdateDepartmentCommand{
		Name:        r.Name,
		Location:    r.Location,
		Head:        r.Head,
		Description: r.Description,
		Phone:       r.Phone,
		Email:       r.Email,
		AvgWaitMins: r.AvgWaitMins,
		ActiveQueue: r.ActiveQueue,
	}
}

type createStaffRequest struct {
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"required"`
	Specialization string `json:"specialization"`
	DepartmentID   string `json:"department_id"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	CurrentStatus  string `json:"current_status"`
}

func (r *createStaffRequest) toCommand() *staff.CreateStaffCommand {
	return &staff.CreateStaffCommand{
		Name:           r.Name,
		Role:           staff.Role(r.Role),
		Specialization: r.Specialization,
		DepartmentID:   r.DepartmentID,
		Phone:          r.Phone,
		Email:          r.Email,
		CurrentStatus:  staff.AvailabilityStatus(r.CurrentStatus),
	}
}

type updateStaffRequest struct {
	Name           *string `json:"name"`
	Role           *string `json:"role"`
	Specialization *string `json:"specialization"`
	DepartmentID   *string `json:"department_id"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	CurrentStatus  *string `json:"current_status"`
}

func (r *updateStaffRequest) toCommand() *staff.UpdateStaffCommand {
	cmd := &staff.UpdateStaffCommand{
		Name:           r.Name,
		Specialization: r.Specialization,
		DepartmentID:   r.DepartmentID,
		Phone:          r.Phone,
		Email:          r.Email,
	}
	if r.Role != nil {
		role := staff.Role(*r.Role)
		cmd.Role = &role
	}
	if r.CurrentStatus != nil {
		status := staff.AvailabilityStatus(*r.CurrentStatus)
		cmd.CurrentStatus = &status
	}
	return cmd
}

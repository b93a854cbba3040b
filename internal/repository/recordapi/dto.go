package recordapi

import (
	"time"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

// Wire DTOs. The record store speaks snake_case with flattened nested
// objects; each DTO owns the mapping to its domain type so the rest of the
// codebase never sees wire names.

type patientRecord struct {
	ID          string `json:"Id"`
	Name        string `json:"Name"`
	CreatedOn   string `json:"CreatedOn"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	BloodType   string `json:"blood_type"`

	Allergies []string `json:"allergies"`

	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`
}

var patientFields = []string{
	"Id", "Name", "CreatedOn",
	"date_of_birth", "gender", "phone", "email", "address", "blood_type",
	"allergies", "emergency_contact_name", "emergency_contact_phone", "emergency_contact_relationship",
}

func (r *patientRecord) toDomain() *patient.Patient {
	p := &patient.Patient{
		ID:          r.ID,
		Name:        r.Name,
		CreatedAt:   parseWireTime(r.CreatedOn),
		DateOfBirth: parseWireTime(r.DateOfBirth),
		Gender:      patient.Gender(r.Gender),
		BloodType:   patient.BloodType(r.BloodType),
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		Allergies:   r.Allergies,
	}
	if r.EmergencyContactName != "" || r.EmergencyContactPhone != "" {
		p.EmergencyContact = &patient.EmergencyContact{
			Name:         r.EmergencyContactName,
			Phone:        r.EmergencyContactPhone,
			Relationship: r.EmergencyContactRelationship,
		}
	}
	return p
}

func patientToRecord(p *patient.Patient) *patientRecord {
	r := &patientRecord{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: formatWireTime(p.DateOfBirth),
		Gender:      string(p.Gender),
		Phone:       p.Phone,
		Email:       p.Email,
		Address:     p.Address,
		BloodType:   string(p.BloodType),
		Allergies:   p.Allergies,
	}
	if p.EmergencyContact != nil {
		r.EmergencyContactName = p.EmergencyContact.Name
		r.EmergencyContactPhone = p.EmergencyContact.Phone
		r.EmergencyContactRelationship = p.EmergencyContact.Relationship
	}
	return r
}

type appointmentRecord struct {
	ID           string `json:"Id"`
	Name         string `json:"Name"`
	CreatedOn    string `json:"CreatedOn"`
	DateTime     string `json:"date_time"`
	Duration     int    `json:"duration"`
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
	PatientID    string `json:"patient_id"`
	DoctorID     string `json:"doctor_id"`
	DepartmentID string `json:"department_id"`
}

var appointmentFields = []string{
	"Id", "Name", "CreatedOn",
	"date_time", "duration", "reason", "notes", "status", "patient_id", "doctor_id", "department_id",
}

func (r *appointmentRecord) toDomain() *appointment.Appointment {
	return &appointment.Appointment{
		ID:           r.ID,
		CreatedAt:    parseWireTime(r.CreatedOn),
		PatientID:    r.PatientID,
		DoctorID:     r.DoctorID,
		DepartmentID: r.DepartmentID,
		DateTime:     parseWireTime(r.DateTime),
		DurationMins: r.Duration,
		Reason:       r.Reason,
		Notes:        r.Notes,
		Status:       appointment.Status(r.Status),
	}
}

func appointmentToRecord(a *appointment.Appointment) *appointmentRecord {
	name := a.Reason
	if name == "" {
		name = "Appointment"
	}
	return &appointmentRecord{
		ID:           a.ID,
		Name:         name,
		DateTime:     formatWireTime(a.DateTime),
		Duration:     a.DurationMins,
		Reason:       a.Reason,
		Notes:        a.Notes,
		Status:       string(a.Status),
		PatientID:    a.PatientID,
		DoctorID:     a.DoctorID,
		DepartmentID: a.DepartmentID,
	}
}

type departmentRecord struct {
	ID          string `json:"Id"`
	Name        string `json:"Name"`
	CreatedOn   string `json:"CreatedOn"`
	Location    string `json:"location"`
	Head        string `json:"head"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	AvgWaitTime int    `json:"avg_wait_time"`

	ActiveQueue []queueEntryRecord `json:"active_queue"`
}

type queueEntryRecord struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	WaitTime int    `json:"wait_time"`
}

var departmentFields = []string{
	"Id", "Name", "CreatedOn",
	"location", "head", "description", "phone", "email", "avg_wait_time", "active_queue",
}

func (r *departmentRecord) toDomain() *department.Department {
	queue := make([]department.QueueEntry, 0, len(r.ActiveQueue))
	for _, e := range r.ActiveQueue {
		queue = append(queue, department.QueueEntry{Number: e.Number, Name: e.Name, WaitMins: e.WaitTime})
	}
	return &department.Department{
		ID:          r.ID,
		Name:        r.Name,
		CreatedAt:   parseWireTime(r.CreatedOn),
		Location:    r.Location,
		Head:        r.Head,
		Description: r.Description,
		Phone:       r.Phone,
		Email:       r.Email,
		AvgWaitMins: r.AvgWaitTime,
		ActiveQueue: queue,
	}
}

func departmentToRecord(d *department.Department) *departmentRecord {
	queue := make([]queueEntryRecord, 0, len(d.ActiveQueue))
	for _, e := range d.ActiveQueue {
		queue = append(queue, queueEntryRecord{Number: e.Number, Name: e.Name, WaitTime: e.WaitMins})
	}
	return &departmentRecord{
		ID:          d.ID,
		Name:        d.Name,
		Location:    d.Location,
		Head:        d.Head,
		Description: d.Description,
		Phone:       d.Phone,
		Email:       d.Email,
		AvgWaitTime: d.AvgWaitMins,
		ActiveQueue: queue,
	}
}

type staffRecord struct {
	ID             string `json:"Id"`
	Name           string `json:"Name"`
	CreatedOn      string `json:"CreatedOn"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
	DepartmentID   string `json:"department_id"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	CurrentStatus  string `json:"current_status"`
}

var staffFields = []string{
	"Id", "Name", "CreatedOn",
	"role", "specialization", "department_id", "phone", "email", "current_status",
}

func (r *staffRecord) toDomain() *staff.Staff {
	return &staff.Staff{
		ID:             r.ID,
		Name:           r.Name,
		CreatedAt:      parseWireTime(r.CreatedOn),
		Role:           staff.Role(r.Role),
		Specialization: r.Specialization,
		DepartmentID:   r.DepartmentID,
		Phone:          r.Phone,
		Email:          r.Email,
		CurrentStatus:  staff.AvailabilityStatus(r.CurrentStatus),
	}
}

func staffToRecord(m *staff.Staff) *staffRecord {
	return &staffRecord{
		ID:             m.ID,
		Name:           m.Name,
		Role:           string(m.Role),
		Specialization: m.Specialization,
		DepartmentID:   m.DepartmentID,
		Phone:          m.Phone,
		Email:          m.Email,
		CurrentStatus:  string(m.CurrentStatus),
	}
}

func parseWireTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func formatWireTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

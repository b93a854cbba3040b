package memory

import (
	"time"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
)

// Seed loads a demo dataset: four departments, a small staff roster, a
// handful of patients, and appointments spread around the current date so
// the dashboard and reports screens have something to show out of the box.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	date := func(daysAgo int, hour int) time.Time {
		d := now.AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
	}

	departments := []*department.Department{
		{
			ID: "DEPT-1704067200001", Name: "Emergency", Location: "Building A, Ground Floor",
			Head: "Dr. Sarah Chen", AvgWaitMins: 25,
			ActiveQueue: []department.QueueEntry{
				{Number: 1, Name: "Walk-in", WaitMins: 10},
				{Number: 2, Name: "Walk-in", WaitMins: 22},
			},
		},
		{
			ID: "DEPT-1704067200002", Name: "Cardiology", Location: "Building B, 3rd Floor",
			Head: "Dr. Miguel Alvarez", AvgWaitMins: 15,
			ActiveQueue: []department.QueueEntry{{Number: 1, Name: "Referral", WaitMins: 5}},
		},
		{
			ID: "DEPT-1704067200003", Name: "Pediatrics", Location: "Building A, 2nd Floor",
			Head: "Dr. Amara Okafor", AvgWaitMins: 10, ActiveQueue: []department.QueueEntry{},
		},
		{
			ID: "DEPT-1704067200004", Name: "Radiology", Location: "Building C, Basement",
			Head: "Dr. James Whitfield", AvgWaitMins: 40, ActiveQueue: []department.QueueEntry{},
		},
	}
	for i, d := range departments {
		d.CreatedAt = now.AddDate(0, -6, i)
		s.departments[d.ID] = d
	}

	staffMembers := []*staff.Staff{
		{ID: "STF-1704067200001", Name: "Dr. Sarah Chen", Role: staff.RoleDoctor, Specialization: "Emergency Medicine", DepartmentID: "DEPT-1704067200001", CurrentStatus: staff.StatusBusy},
		{ID: "STF-1704067200002", Name: "Dr. Miguel Alvarez", Role: staff.RoleDoctor, Specialization: "Cardiology", DepartmentID: "DEPT-1704067200002", CurrentStatus: staff.StatusAvailable},
		{ID: "STF-1704067200003", Name: "Dr. Amara Okafor", Role: staff.RoleDoctor, Specialization: "Pediatrics", DepartmentID: "DEPT-1704067200003", CurrentStatus: staff.StatusAvailable},
		{ID: "STF-1704067200004", Name: "Nina Kowalski", Role: staff.RoleNurse, DepartmentID: "DEPT-1704067200001", CurrentStatus: staff.StatusAvailable},
		{ID: "STF-1704067200005", Name: "Tom Reyes", Role: staff.RoleReceptionist, DepartmentID: "DEPT-1704067200003", CurrentStatus: staff.StatusOffDuty},
	}
	for i, m := range staffMembers {
		m.CreatedAt = now.AddDate(0, -6, i)
		s.staff[m.ID] = m
	}

	patients := []*patient.Patient{
		{
			ID: "PAT-1704067200001", Name: "Eleanor Vance", Gender: patient.GenderFemale,
			DateOfBirth: time.Date(1954, time.March, 12, 0, 0, 0, 0, time.UTC),
			BloodType:   patient.BloodTypeAPos, Phone: "555-0101", Email: "eleanor.vance@example.com",
			Allergies: []string{"penicillin"},
			EmergencyContact: &patient.EmergencyContact{
				Name: "Robert Vance", Phone: "555-0102", Relationship: "spouse",
			},
			CreatedAt: now.AddDate(0, -3, 0),
		},
		{
			ID: "PAT-1704067200002", Name: "Dev Patel", Gender: patient.GenderMale,
			DateOfBirth: time.Date(1988, time.July, 4, 0, 0, 0, 0, time.UTC),
			BloodType:   patient.BloodTypeONeg, Phone: "555-0110", Email: "dev.patel@example.com",
			CreatedAt: now.AddDate(0, -1, 0),
		},
		{
			ID: "PAT-1704067200003", Name: "Rosa Jimenez", Gender: patient.GenderFemale,
			DateOfBirth: time.Date(2016, time.November, 30, 0, 0, 0, 0, time.UTC),
			Phone:       "555-0115", Email: "jimenez.family@example.com",
			CreatedAt: now.AddDate(0, 0, -2), // registered this week
		},
	}
	for _, p := range patients {
		s.patients[p.ID] = p
	}

	appointments := []*appointment.Appointment{
		{
			ID: "APT-1704067200001", PatientID: "PAT-1704067200001", DoctorID: "STF-1704067200002",
			DepartmentID: "DEPT-1704067200002", DateTime: date(0, 9), DurationMins: 30,
			Reason: "Follow-up ECG", Status: appointment.StatusConfirmed,
		},
		{
			ID: "APT-1704067200002", PatientID: "PAT-1704067200003", DoctorID: "STF-1704067200003",
			DepartmentID: "DEPT-1704067200003", DateTime: date(0, 14), DurationMins: 20,
			Reason: "Vaccination", Status: appointment.StatusScheduled,
		},
		{
			ID: "APT-1704067200003", PatientID: "PAT-1704067200002", DoctorID: "STF-1704067200001",
			DepartmentID: "DEPT-1704067200001", DateTime: date(2, 11), DurationMins: 45,
			Reason: "Chest pain evaluation", Status: appointment.StatusCompleted,
		},
		{
			ID: "APT-1704067200004", PatientID: "PAT-1704067200001", DoctorID: "STF-1704067200002",
			DepartmentID: "DEPT-1704067200002", DateTime: date(5, 10), DurationMins: 30,
			Reason: "Stress test", Status: appointment.StatusCancelled,
		},
	}
	for i, a := range appointments {
		a.CreatedAt = now.AddDate(0, 0, -7+i)
		s.appointments[a.ID] = a
	}
}

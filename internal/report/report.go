// Package report computes the summary metrics behind the reports screen.
// Everything here is a pure function over already-loaded collections; loading
// and error handling live in the service layer.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/harborview/frontdesk/internal/domain"
	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
)

// Window is a trailing reporting interval anchored to "now".
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// Start returns the lower bound of the window. Unrecognized windows fall
// back to a week, matching the behavior the reports screen always had.
func (w Window) Start(now time.Time) time.Time {
	switch w {
	case WindowDay:
		return now.AddDate(0, 0, -1)
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	case WindowYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

type DepartmentActivity struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	AvgWaitMins int    `json:"avg_wait_mins"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type Metrics struct {
	TotalAppointments        int                  `json:"total_appointments"`
	CompletedAppointments    int                  `json:"completed_appointments"`
	CancelledAppointments    int                  `json:"cancelled_appointments"`
	TotalPatients            int                  `json:"total_patients"`
	NewPatients              int                  `json:"new_patients"`
	AppointmentsByDepartment []DepartmentActivity `json:"appointments_by_department"`
	AppointmentsByStatus     []StatusCount        `json:"appointments_by_status"`
	CompletionRate           int                  `json:"completion_rate"`
}

// newPatientWindow scopes the "new patients" card. It is a fixed trailing
// week regardless of the selected reporting window.
const newPatientWindow = 7 * 24 * time.Hour

// Aggregate computes the reporting payload for the given window, anchored at
// now. Appointments on or after the window start are counted, with no upper
// bound; future-dated appointments are included. Empty inputs degrade to
// zero-valued metrics, never an error.
func Aggregate(
	patients []*patient.Patient,
	appointments []*appointment.Appointment,
	departments []*department.Department,
	window Window,
	now time.Time,
) Metrics {
	start := window.Start(now)

	inWindow := make([]*appointment.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if !a.DateTime.Before(start) {
			inWindow = append(inWindow, a)
		}
	}

	byStatus := make(map[appointment.Status]int, 4)
	for _, a := range inWindow {
		byStatus[a.Status]++
	}

	byDepartment := make([]DepartmentActivity, 0, len(departments))
	for _, d := range departments {
		count := 0
		for _, a := range inWindow {
			if a.DepartmentID == d.ID {
				count++
			}
		}
		byDepartment = append(byDepartment, DepartmentActivity{
			Name:        d.Name,
			Count:       count,
			AvgWaitMins: d.AvgWaitMins,
		})
	}

	newPatients := 0
	weekAgo := now.Add(-newPatientWindow)
	for _, p := range patients {
		if !createdAt(p).Before(weekAgo) {
			newPatients++
		}
	}

	completed := byStatus[appointment.StatusCompleted]
	total := len(inWindow)
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return Metrics{
		TotalAppointments:        total,
		CompletedAppointments:    completed,
		CancelledAppointments:    byStatus[appointment.StatusCancelled],
		TotalPatients:            len(patients),
		NewPatients:              newPatients,
		AppointmentsByDepartment: byDepartment,
		AppointmentsByStatus: []StatusCount{
			{Status: "Completed", Count: completed},
			{Status: "Scheduled", Count: byStatus[appointment.StatusScheduled]},
			{Status: "Confirmed", Count: byStatus[appointment.StatusConfirmed]},
			{Status: "Cancelled", Count: byStatus[appointment.StatusCancelled]},
		},
		CompletionRate: rate,
	}
}

// TopDepartments returns the n busiest departments by appointment count,
// descending. The input slice is not modified.
func TopDepartments(byDepartment []DepartmentActivity, n int) []DepartmentActivity {
	out := make([]DepartmentActivity, len(byDepartment))
	copy(out, byDepartment)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// createdAt prefers the explicit CreatedAt field. Records written by the old
// front-desk client carry a zero CreatedAt but embed their creation time in
// the id; fall back to that so legacy patients still count as new.
func createdAt(p *patient.Patient) time.Time {
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt
	}
	if t, ok := domain.CreatedFromID(p.ID); ok {
		return t
	}
	return time.Time{}
}

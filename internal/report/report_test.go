package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
)

var now = time.Date(2026, time.August, 12, 12, 0, 0, 0, time.UTC)

func apt(id string, dt time.Time, status appointment.Status, departmentID string) *appointment.Appointment {
	return &appointment.Appointment{
		ID:           id,
		DateTime:     dt,
		Status:       status,
		DepartmentID: departmentID,
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		window Window
		want   time.Time
	}{
		{WindowDay, now.AddDate(0, 0, -1)},
		{WindowWeek, now.AddDate(0, 0, -7)},
		{WindowMonth, now.AddDate(0, -1, 0)},
		{WindowYear, now.AddDate(-1, 0, 0)},
		{Window("fortnight"), now.AddDate(0, 0, -7)},
		{Window(""), now.AddDate(0, 0, -7)},
	}
	for _, tt := range tests {
		if got := tt.window.Start(now); !got.Equal(tt.want) {
			t.Errorf("Window(%q).Start = %v, want %v", tt.window, got, tt.want)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil, nil, nil, WindowWeek, now)

	if m.TotalAppointments != 0 || m.CompletedAppointments != 0 || m.CancelledAppointments != 0 {
		t.Errorf("expected zero appointment counts, got %+v", m)
	}
	if m.TotalPatients != 0 || m.NewPatients != 0 {
		t.Errorf("expected zero patient counts, got %+v", m)
	}
	if m.CompletionRate != 0 {
		t.Errorf("CompletionRate = %d, want 0 for empty input", m.CompletionRate)
	}
	if len(m.AppointmentsByDepartment) != 0 {
		t.Errorf("expected no department rows, got %d", len(m.AppointmentsByDepartment))
	}
	for _, sc := range m.AppointmentsByStatus {
		if sc.Count != 0 {
			t.Errorf("status %s count = %d, want 0", sc.Status, sc.Count)
		}
	}
}

func TestAggregateCompletionRate(t *testing.T) {
	appointments := []*appointment.Appointment{
		apt("APT-1", now.Add(-time.Hour), appointment.StatusCompleted, ""),
		apt("APT-2", now.Add(-2*time.Hour), appointment.StatusCompleted, ""),
		apt("APT-3", now.Add(-3*time.Hour), appointment.StatusCancelled, ""),
	}

	m := Aggregate(nil, appointments, nil, WindowDay, now)

	if m.TotalAppointments != 3 {
		t.Fatalf("TotalAppointments = %d, want 3", m.TotalAppointments)
	}
	if m.CompletedAppointments != 2 {
		t.Errorf("CompletedAppointments = %d, want 2", m.CompletedAppointments)
	}
	if m.CancelledAppointments != 1 {
		t.Errorf("CancelledAppointments = %d, want 1", m.CancelledAppointments)
	}
	// 2/3 rounds to 67, not truncates to 66.
	if m.CompletionRate != 67 {
		t.Errorf("CompletionRate = %d, want 67", m.CompletionRate)
	}
}

func TestAggregateWindowFilter(t *testing.T) {
	appointments := []*appointment.Appointment{
		apt("APT-1", now.AddDate(0, 0, -8), appointment.StatusCompleted, ""),
		apt("APT-2", now.AddDate(0, 0, -6), appointment.StatusCompleted, ""),
		apt("APT-3", now, appointment.StatusScheduled, ""),
		// Future appointments count; the window has no upper bound.
		apt("APT-4", now.AddDate(0, 0, 3), appointment.StatusScheduled, ""),
	}

	m := Aggregate(nil, appointments, nil, WindowWeek, now)
	if m.TotalAppointments != 3 {
		t.Errorf("TotalAppointments = %d, want 3 (one out of window)", m.TotalAppointments)
	}

	m = Aggregate(nil, appointments, nil, WindowMonth, now)
	if m.TotalAppointments != 4 {
		t.Errorf("month TotalAppointments = %d, want 4", m.TotalAppointments)
	}
}

func TestAggregateWindowBoundaryInclusive(t *testing.T) {
	onBoundary := apt("APT-1", now.AddDate(0, 0, -7), appointment.StatusScheduled, "")

	m := Aggregate(nil, []*appointment.Appointment{onBoundary}, nil, WindowWeek, now)
	if m.TotalAppointments != 1 {
		t.Errorf("appointment exactly at window start should count, got %d", m.TotalAppointments)
	}
}

func TestAggregateStatusBuckets(t *testing.T) {
	appointments := []*appointment.Appointment{
		apt("APT-1", now, appointment.StatusCompleted, ""),
		apt("APT-2", now, appointment.StatusScheduled, ""),
		apt("APT-3", now, appointment.StatusConfirmed, ""),
		apt("APT-4", now, appointment.StatusCancelled, ""),
		// In-progress and unrecognized statuses count toward the total but
		// have no bucket of their own.
		apt("APT-5", now, appointment.StatusInProgress, ""),
		apt("APT-6", now, appointment.Status("no-show"), ""),
	}

	m := Aggregate(nil, appointments, nil, WindowWeek, now)

	if m.TotalAppointments != 6 {
		t.Fatalf("TotalAppointments = %d, want 6", m.TotalAppointments)
	}

	wantOrder := []string{"Completed", "Scheduled", "Confirmed", "Cancelled"}
	if len(m.AppointmentsByStatus) != len(wantOrder) {
		t.Fatalf("got %d status rows, want %d", len(m.AppointmentsByStatus), len(wantOrder))
	}
	sum := 0
	for i, sc := range m.AppointmentsByStatus {
		if sc.Status != wantOrder[i] {
			t.Errorf("status row %d = %s, want %s", i, sc.Status, wantOrder[i])
		}
		if sc.Count != 1 {
			t.Errorf("status %s count = %d, want 1", sc.Status, sc.Count)
		}
		sum += sc.Count
	}
	if sum > m.TotalAppointments {
		t.Errorf("bucket sum %d exceeds total %d", sum, m.TotalAppointments)
	}
}

func TestAggregateDepartments(t *testing.T) {
	departments := []*department.Department{
		{ID: "DEPT-1", Name: "Emergency", AvgWaitMins: 25},
		{ID: "DEPT-2", Name: "Cardiology", AvgWaitMins: 40},
		{ID: "DEPT-3", Name: "Radiology", AvgWaitMins: 15},
	}
	appointments := []*appointment.Appointment{
		apt("APT-1", now, appointment.StatusScheduled, "DEPT-1"),
		apt("APT-2", now, appointment.StatusScheduled, "DEPT-1"),
		apt("APT-3", now, appointment.StatusScheduled, "DEPT-2"),
		// Dangling department reference: counts toward the total only.
		apt("APT-4", now, appointment.StatusScheduled, "DEPT-gone"),
	}

	m := Aggregate(nil, appointments, departments, WindowWeek, now)

	if len(m.AppointmentsByDepartment) != 3 {
		t.Fatalf("got %d department rows, want 3 (zero-count rows included)", len(m.AppointmentsByDepartment))
	}

	byName := make(map[string]DepartmentActivity)
	sum := 0
	for _, d := range m.AppointmentsByDepartment {
		byName[d.Name] = d
		sum += d.Count
	}
	if byName["Emergency"].Count != 2 || byName["Cardiology"].Count != 1 || byName["Radiology"].Count != 0 {
		t.Errorf("department counts wrong: %+v", byName)
	}
	if byName["Cardiology"].AvgWaitMins != 40 {
		t.Errorf("AvgWaitMins not carried: %+v", byName["Cardiology"])
	}
	if sum > m.TotalAppointments {
		t.Errorf("department sum %d exceeds total %d", sum, m.TotalAppointments)
	}
}

func TestAggregateNewPatients(t *testing.T) {
	patients := []*patient.Patient{
		{ID: "PAT-a", CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "PAT-b", CreatedAt: now.AddDate(0, 0, -10)},
		// Legacy record: zero CreatedAt, creation millis embedded in the id.
		{ID: fmt.Sprintf("PAT-%d", now.AddDate(0, 0, -3).UnixMilli())},
		// Legacy record older than a week.
		{ID: fmt.Sprintf("PAT-%d", now.AddDate(0, 0, -20).UnixMilli())},
	}

	m := Aggregate(patients, nil, nil, WindowMonth, now)

	if m.TotalPatients != 4 {
		t.Errorf("TotalPatients = %d, want 4", m.TotalPatients)
	}
	// New patients is a fixed trailing week regardless of the month window.
	if m.NewPatients != 2 {
		t.Errorf("NewPatients = %d, want 2", m.NewPatients)
	}
}

func TestAggregatePatientsOnlyNoAppointments(t *testing.T) {
	patients := []*patient.Patient{
		{ID: "PAT-1", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "PAT-2", CreatedAt: now.AddDate(0, 0, -30)},
		{ID: "PAT-3", CreatedAt: now.AddDate(0, 0, -30)},
		{ID: "PAT-4", CreatedAt: now.AddDate(0, 0, -30)},
		{ID: "PAT-5", CreatedAt: now.AddDate(0, 0, -30)},
	}

	m := Aggregate(patients, nil, nil, WindowWeek, now)

	if m.TotalPatients != 5 {
		t.Errorf("TotalPatients = %d, want 5", m.TotalPatients)
	}
	if m.TotalAppointments != 0 || m.CompletionRate != 0 {
		t.Errorf("expected zero appointment metrics, got total=%d rate=%d",
			m.TotalAppointments, m.CompletionRate)
	}
}

func TestTopDepartments(t *testing.T) {
	rows := []DepartmentActivity{
		{Name: "Emergency", Count: 2},
		{Name: "Cardiology", Count: 8},
		{Name: "Pediatrics", Count: 5},
		{Name: "Radiology", Count: 5},
		{Name: "Oncology", Count: 0},
		{Name: "Neurology", Count: 9},
	}

	top := TopDepartments(rows, 5)

	if len(top) != 5 {
		t.Fatalf("got %d rows, want 5", len(top))
	}
	if top[0].Name != "Neurology" || top[1].Name != "Cardiology" {
		t.Errorf("wrong order: %s, %s", top[0].Name, top[1].Name)
	}
	// Ties keep input order.
	if top[2].Name != "Pediatrics" || top[3].Name != "Radiology" {
		t.Errorf("tie order not stable: %s, %s", top[2].Name, top[3].Name)
	}

	// Input slice untouched.
	if rows[0].Name != "Emergency" {
		t.Errorf("input slice reordered: %+v", rows[0])
	}
}

func TestTopDepartmentsFewerThanN(t *testing.T) {
	rows := []DepartmentActivity{{Name: "Emergency", Count: 1}}
	if top := TopDepartments(rows, 5); len(top) != 1 {
		t.Errorf("got %d rows, want 1", len(top))
	}
}

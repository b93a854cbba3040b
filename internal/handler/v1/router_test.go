package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/config"
	"github.com/harborview/frontdesk/internal/repository/memory"
	"github.com/harborview/frontdesk/internal/service"
	"github.com/harborview/frontdesk/pkg/metrics"
)

// One collector for the whole test binary; prometheus registration is global.
var testCollector = metrics.NewCollector("handlertest")

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T, seed bool) *gin.Engine {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	store := memory.NewStore(0)
	if seed {
		store.Seed()
	}

	log := zap.NewNop()
	auditSvc := service.NewAuditService(store.Audit(), testCollector, log)
	t.Cleanup(auditSvc.Shutdown)

	svcs := Services{
		Patients:     service.NewPatientService(store.Patients(), auditSvc, testCollector, log),
		Appointments: service.NewAppointmentService(store.Appointments(), store.Patients(), store.Staff(), auditSvc, testCollector, log),
		Departments:  service.NewDepartmentService(store.Departments(), store.Staff(), auditSvc, testCollector, log),
		Staff:        service.NewStaffService(store.Staff(), auditSvc, log),
		Reports:      service.NewReportService(store.Patients(), store.Appointments(), store.Departments(), testCollector, log, cfg.Reporting.TopDepartments),
		Dashboard:    service.NewDashboardService(store.Patients(), store.Appointments(), store.Departments(), log),
	}

	return NewRouter(cfg, log, testCollector, svcs)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := testRouter(t, false)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestPatientLifecycle(t *testing.T) {
	r := testRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/api/v1/patients", map[string]any{
		"name":          "Jane Doe",
		"date_of_birth": "1990-03-14T00:00:00Z",
		"gender":        "female",
		"phone":         "555-0101",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("no id in create response")
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/patients/"+created.Data.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/patients/"+created.Data.ID, map[string]any{
		"phone": "555-0199",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/patients/"+created.Data.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/patients/"+created.Data.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
}

func TestCreatePatientValidationResponse(t *testing.T) {
	r := testRouter(t, false)

	// Binding passes (all required fields present) but the service rejects
	// the values, reporting every failing field at once.
	w := doJSON(t, r, http.MethodPost, "/api/v1/patients", map[string]any{
		"name":          " ",
		"date_of_birth": "1990-03-14T00:00:00Z",
		"gender":        "robot",
		"blood_type":    "XYZ",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Fields) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(resp.Fields), resp.Fields)
	}
}

func TestAppointmentViewQuery(t *testing.T) {
	r := testRouter(t, true)

	today := time.Now().Format("2006-01-02")
	w := doJSON(t, r, http.MethodGet, "/api/v1/appointments?view=day&date="+today, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			ID          string `json:"id"`
			PatientName string `json:"patient_name"`
			StatusInfo  struct {
				Label string `json:"label"`
				Tone  string `json:"tone"`
			} `json:"status_info"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// The seed schedules two appointments on the current date.
	if len(resp.Data) != 2 {
		t.Fatalf("got %d appointments for today, want 2", len(resp.Data))
	}
	for _, a := range resp.Data {
		if a.PatientName == "" || a.PatientName == "Unknown Patient" {
			t.Errorf("appointment %s has unresolved patient name %q", a.ID, a.PatientName)
		}
		if a.StatusInfo.Label == "" {
			t.Errorf("appointment %s missing status info", a.ID)
		}
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/appointments?view=decade", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid view status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/appointments?view=day&date=today", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid date status = %d, want 400", w.Code)
	}
}

func TestAppointmentStatusRoute(t *testing.T) {
	r := testRouter(t, true)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/appointments/APT-1704067200001/status", map[string]any{
		"status": "completed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/appointments/APT-1704067200001/status", map[string]any{
		"status": "no-show",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status code = %d, want 400", w.Code)
	}
}

func TestDepartmentListIncludesStaffing(t *testing.T) {
	r := testRouter(t, true)

	w := doJSON(t, r, http.MethodGet, "/api/v1/departments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data []struct {
			Name        string `json:"name"`
			QueueLength int    `json:"queue_length"`
			QueueLoad   string `json:"queue_load"`
			StaffCount  int    `json:"staff_count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 4 {
		t.Fatalf("got %d departments, want 4", len(resp.Data))
	}
	for _, d := range resp.Data {
		if d.QueueLoad == "" {
			t.Errorf("department %s missing queue load", d.Name)
		}
	}
}

func TestReportOverviewEndpoint(t *testing.T) {
	r := testRouter(t, true)

	for _, rng := range []string{"day", "week", "month", "year", "bogus"} {
		w := doJSON(t, r, http.MethodGet, "/api/v1/reports/overview?range="+rng, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("range %s status = %d", rng, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/reports/overview?range=week", nil)
	var resp struct {
		Data struct {
			Range   string `json:"range"`
			Metrics struct {
				TotalAppointments int `json:"total_appointments"`
				TotalPatients     int `json:"total_patients"`
				NewPatients       int `json:"new_patients"`
				CompletionRate    int `json:"completion_rate"`
			} `json:"metrics"`
			TopDepartments []struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			} `json:"top_departments"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Data.Range != "week" {
		t.Errorf("range = %q", resp.Data.Range)
	}
	// Seed: four appointments within the trailing week, three patients,
	// one registered two days ago.
	if resp.Data.Metrics.TotalAppointments != 4 {
		t.Errorf("TotalAppointments = %d, want 4", resp.Data.Metrics.TotalAppointments)
	}
	if resp.Data.Metrics.TotalPatients != 3 || resp.Data.Metrics.NewPatients != 1 {
		t.Errorf("patients = %d/%d, want 3 total 1 new",
			resp.Data.Metrics.TotalPatients, resp.Data.Metrics.NewPatients)
	}
	if len(resp.Data.TopDepartments) == 0 {
		t.Error("no top departments")
	}
}

func TestDashboardEndpoint(t *testing.T) {
	r := testRouter(t, true)

	w := doJSON(t, r, http.MethodGet, "/api/v1/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data struct {
			TotalPatients      int `json:"total_patients"`
			TodaysAppointments int `json:"todays_appointments"`
			ActiveDepartments  int `json:"active_departments"`
			Queues             []struct {
				DepartmentName string `json:"department_name"`
				Load           string `json:"load"`
			} `json:"queues"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Data.TotalPatients != 3 || resp.Data.ActiveDepartments != 4 {
		t.Errorf("summary = %+v", resp.Data)
	}
	if resp.Data.TodaysAppointments != 2 {
		t.Errorf("TodaysAppointments = %d, want 2", resp.Data.TodaysAppointments)
	}
	if len(resp.Data.Queues) != 4 {
		t.Errorf("got %d queues, want 4", len(resp.Data.Queues))
	}
}

func TestScheduleRejectsUnknownPatient(t *testing.T) {
	r := testRouter(t, false)

	w := doJSON(t, r, http.MethodPost, "/api/v1/appointments", map[string]any{
		"patient_id": "PAT-missing",
		"date_time":  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body %s", w.Code, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := testRouter(t, false)

	w := doJSON(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("handlertest_http_requests_total")) {
		// The counter appears once any labeled request has completed; this
		// one may be first, so just check the endpoint serves the exposition
		// format.
		if !bytes.Contains(w.Body.Bytes(), []byte("# HELP")) {
			t.Error("metrics endpoint did not serve Prometheus exposition text")
		}
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	r := testRouter(t, false)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/%s", "nonexistent"), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/service"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func (h *AppointmentHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/appointments")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.PATCH("/:id/status", h.updateStatus)
	g.DELETE("/:id", h.delete)
}

func (h *AppointmentHandler) create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	a, err := h.svc.Schedule(c.Request.Context(), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, a)
}

func (h *AppointmentHandler) list(c *gin.Context) {
	q := &appointment.ListAppointmentsQuery{
		PatientID:    c.Query("patient_id"),
		DepartmentID: c.Query("department_id"),
		View:         appointment.View(c.Query("view")),
	}
	if raw := c.Query("status"); raw != "" {
		status := appointment.Status(raw)
		q.Status = &status
	}
	if raw := c.Query("date"); raw != "" {
		date, ok := parseDate(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date: expected YYYY-MM-DD or RFC 3339"})
			return
		}
		q.Date = date
	}

	details, err := h.svc.ListDetailed(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, details)
}

func (h *AppointmentHandler) get(c *gin.Context) {
	a, err := h.svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) update(c *gin.Context) {
	var req updateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	a, err := h.svc.UpdateAppointment(c.Request.Context(), c.Param("id"), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) updateStatus(c *gin.Context) {
	var req updateAppointmentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	a, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), appointment.Status(req.Status), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) delete(c *gin.Context) {
	requestID, ip := requestMeta(c)
	if err := h.svc.DeleteAppointment(c.Request.Context(), c.Param("id"), requestID, ip); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/harborview/frontdesk/internal/domain/staff"
	"github.com/harborview/frontdesk/internal/service"
)

type StaffHandler struct {
	svc *service.StaffService
}

func NewStaffHandler(svc *service.StaffService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

func (h *StaffHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/staff")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *StaffHandler) create(c *gin.Context) {
	var req createStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	m, err := h.svc.CreateStaff(c.Request.Context(), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, m)
}

func (h *StaffHandler) list(c *gin.Context) {
	q := &staff.ListStaffQuery{DepartmentID: c.Query("department_id")}
	if raw := c.Query("role"); raw != "" {
		role := staff.Role(raw)
		q.Role = &role
	}
	if raw := c.Query("status"); raw != "" {
		status := staff.AvailabilityStatus(raw)
		q.Status = &status
	}

	members, err := h.svc.ListStaff(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, members)
}

func (h *StaffHandler) get(c *gin.Context) {
	m, err := h.svc.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

func (h *StaffHandler) update(c *gin.Context) {
	var req updateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	m, err := h.svc.UpdateStaff(c.Request.Context(), c.Param("id"), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, m)
}

func (h *StaffHandler) delete(c *gin.Context) {
	requestID, ip := requestMeta(c)
	if err := h.svc.DeleteStaff(c.Request.Context(), c.Param("id"), requestID, ip); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

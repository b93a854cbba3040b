package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/harborview/frontdesk/internal/service"
)

type DepartmentHandler struct {
	svc *service.DepartmentService
}

func NewDepartmentHandler(svc *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

func (h *DepartmentHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/departments")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *DepartmentHandler) create(c *gin.Context) {
	var req createDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	d, err := h.svc.CreateDepartment(c.Request.Context(), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, d)
}

func (h *DepartmentHandler) list(c *gin.Context) {
	details, err := h.svc.ListDetailed(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, details)
}

func (h *DepartmentHandler) get(c *gin.Context) {
	d, err := h.svc.GetDepartment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

func (h *DepartmentHandler) update(c *gin.Context) {
	var req updateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	d, err := h.svc.UpdateDepartment(c.Request.Context(), c.Param("id"), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

func (h *DepartmentHandler) delete(c *gin.Context) {
	requestID, ip := requestMeta(c)
	if err := h.svc.DeleteDepartment(c.Request.Context(), c.Param("id"), requestID, ip); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

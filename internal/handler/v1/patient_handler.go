package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func (h *PatientHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/patients")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *PatientHandler) create(c *gin.Context) {
	var req createPatientRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	p, err := h.svc.Register(c.Request.Context(), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, p)
}

func (h *PatientHandler) list(c *gin.Context) {
	q := &patient.ListPatientsQuery{Search: c.Query("search")}

	patients, err := h.svc.ListPatients(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, patients)
}

func (h *PatientHandler) get(c *gin.Context) {
	p, err := h.svc.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PatientHandler) update(c *gin.Context) {
	var req updatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	requestID, ip := requestMeta(c)
	p, err := h.svc.UpdatePatient(c.Request.Context(), c.Param("id"), req.toCommand(), requestID, ip)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PatientHandler) delete(c *gin.Context) {
	requestID, ip := requestMeta(c)
	if err := h.svc.DeletePatient(c.Request.Context(), c.Param("id"), requestID, ip); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborview/frontdesk/internal/domain/appointment"
	"github.com/harborview/frontdesk/internal/domain/department"
	"github.com/harborview/frontdesk/internal/domain/patient"
	"github.com/harborview/frontdesk/internal/domain/staff"
	"github.com/harborview/frontdesk/internal/handler/middleware"
	"github.com/harborview/frontdesk/internal/repository/recordapi"
	"github.com/harborview/frontdesk/internal/service"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, department.ErrDepartmentNotFound),
		errors.Is(err, staff.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appointment.ErrDateTimeRequired),
		errors.Is(err, appointment.ErrInvalidDuration),
		errors.Is(err, appointment.ErrInvalidStatus),
		errors.Is(err, appointment.ErrInvalidView),
		errors.Is(err, patient.ErrNameRequired),
		errors.Is(err, patient.ErrInvalidGender),
		errors.Is(err, patient.ErrInvalidBloodType),
		errors.Is(err, patient.ErrInvalidDateOfBirth),
		errors.Is(err, department.ErrNameRequired),
		errors.Is(err, staff.ErrNameRequired),
		errors.Is(err, staff.ErrInvalidRole),
		errors.Is(err, staff.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, recordapi.ErrNotSupported):
		c.JSON(http.StatusNotImplemented, ErrorResponse{
			Error: err.Error(),
			Code:  "STORE_READ_ONLY",
		})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}

	return true
}

// requestMeta pulls the audit fields every mutating handler forwards.
func requestMeta(c *gin.Context) (requestID, ip string) {
	return c.GetString(middleware.RequestIDKey), c.ClientIP()
}

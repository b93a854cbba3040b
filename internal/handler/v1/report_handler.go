package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/harborview/frontdesk/internal/report"
	"github.com/harborview/frontdesk/internal/service"
)

type ReportHandler struct {
	reports   *service.ReportService
	dashboard *service.DashboardService
}

func NewReportHandler(reports *service.ReportService, dashboard *service.DashboardService) *ReportHandler {
	return &ReportHandler{reports: reports, dashboard: dashboard}
}

func (h *ReportHandler) Register(r *gin.RouterGroup) {
	r.GET("/reports/overview", h.overview)
	r.GET("/dashboard", h.summary)
}

// overview serves the reports screen. An unrecognized range falls back to
// a trailing week rather than erroring, so stale links keep working.
func (h *ReportHandler) overview(c *gin.Context) {
	window := report.Window(c.DefaultQuery("range", string(report.WindowWeek)))

	overview, err := h.reports.BuildOverview(c.Request.Context(), window)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, overview)
}

func (h *ReportHandler) summary(c *gin.Context) {
	summary, err := h.dashboard.Build(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, summary)
}

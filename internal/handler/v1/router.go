package v1

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harborview/frontdesk/internal/config"
	"github.com/harborview/frontdesk/internal/handler/middleware"
	"github.com/harborview/frontdesk/internal/service"
	"github.com/harborview/frontdesk/pkg/metrics"
)

// Services bundles everything the router needs so main wires it in one call.
type Services struct {
	Patients     *service.PatientService
	Appointments *service.AppointmentService
	Departments  *service.DepartmentService
	Staff        *service.StaffService
	Reports      *service.ReportService
	Dashboard    *service.DashboardService
}

func NewRouter(cfg *config.Config, log *zap.Logger, collector *metrics.Collector, svcs Services) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(collector))
	r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := r.Group("/api/v1")
	NewPatientHandler(svcs.Patients).Register(api)
	NewAppointmentHandler(svcs.Appointments).Register(api)
	NewDepartmentHandler(svcs.Departments).Register(api)
	NewStaffHandler(svcs.Staff).Register(api)
	NewReportHandler(svcs.Reports, svcs.Dashboard).Register(api)

	return r
}

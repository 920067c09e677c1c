package httpv1

import (
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func NewRouter(e *echo.Echo, m service.Monitoring, counters *metrics.Counters) {
	e.JSONSerializer = JSONSerializer{}
	e.Use(middleware.Recover())

	c := NewMonitoringController(m, counters)
	v1 := e.Group("/api/v1")

	v1.POST("/path", c.SelectPath)

	v1.POST("/logs/load", c.LoadLogs)
	v1.GET("/logs", c.QueryLogs)

	v1.POST("/monitoring/start", c.StartMonitoring)
	v1.POST("/monitoring/stop", c.StopMonitoring)

	v1.GET("/dashboard", c.Dashboard)

	v1.GET("/alerts", c.Alerts)
	v1.POST("/alerts/:id/read", c.MarkRead)
	v1.PUT("/alerts/visibility", c.SetAlertsVisible)

	v1.GET("/rules", c.Rules)
	v1.PUT("/rules", c.Reconfigure)

	v1.PUT("/buffer", c.ResizeBuffer)

	v1.GET("/notifications", c.Notifications)
}

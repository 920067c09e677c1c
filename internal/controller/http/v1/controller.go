package httpv1

import (
	"net/http"
	"strconv"

	logginghelper "github.com/Egor213/LogiWatch/internal/controller/common/logging"
	"github.com/Egor213/LogiWatch/internal/controller/http/validators"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
	"github.com/Egor213/LogiWatch/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type MonitoringController struct {
	monitoring service.Monitoring
	counters   *metrics.Counters
}

func NewMonitoringController(m service.Monitoring, cnt *metrics.Counters) *MonitoringController {
	return &MonitoringController{
		monitoring: m,
		counters:   cnt,
	}
}

func (c *MonitoringController) SelectPath(ctx echo.Context) error {
	var req SelectPathRequest
	if err := ctx.Bind(&req); err != nil {
		return c.fail(ctx, ErrBadRequest)
	}

	n, err := c.monitoring.SelectPath(ctx.Request().Context(), req.Path)
	if err != nil {
		return c.fail(ctx, err)
	}

	logginghelper.LogRequest(ctx.Path(), log.Fields{"path": req.Path, "loaded": n})
	return c.ok(ctx, http.StatusOK, LoadResponse{Loaded: n})
}

func (c *MonitoringController) LoadLogs(ctx echo.Context) error {
	n, err := c.monitoring.LoadLogs(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, err)
	}

	logginghelper.LogRequest(ctx.Path(), log.Fields{"loaded": n})
	return c.ok(ctx, http.StatusOK, LoadResponse{Loaded: n})
}

func (c *MonitoringController) StartMonitoring(ctx echo.Context) error {
	if err := c.monitoring.StartMonitoring(ctx.Request().Context()); err != nil {
		return c.fail(ctx, err)
	}
	logginghelper.LogRequest(ctx.Path(), nil)
	return c.ok(ctx, http.StatusOK, StatusResponse{Status: "monitoring"})
}

func (c *MonitoringController) StopMonitoring(ctx echo.Context) error {
	if err := c.monitoring.StopMonitoring(); err != nil {
		return c.fail(ctx, err)
	}
	logginghelper.LogRequest(ctx.Path(), nil)
	return c.ok(ctx, http.StatusOK, StatusResponse{Status: "stopped"})
}

func (c *MonitoringController) Dashboard(ctx echo.Context) error {
	return c.ok(ctx, http.StatusOK, c.monitoring.DashboardSnapshot())
}

func (c *MonitoringController) QueryLogs(ctx echo.Context) error {
	var filter repotypes.LogFilter
	if err := ctx.Bind(&filter); err != nil || filter.Limit < 0 {
		return c.fail(ctx, ErrBadRequest)
	}

	records, err := c.monitoring.QueryLogs(ctx.Request().Context(), filter)
	if err != nil {
		return c.fail(ctx, err)
	}
	return c.ok(ctx, http.StatusOK, NewLogsResponse(records))
}

func (c *MonitoringController) Alerts(ctx echo.Context) error {
	var q AlertsQuery
	if err := ctx.Bind(&q); err != nil {
		return c.fail(ctx, ErrBadRequest)
	}

	filter, err := validators.AlertFilter(q.Severity, q.Kind, q.Read)
	if err != nil {
		return c.fail(ctx, err)
	}

	alerts, err := c.monitoring.Alerts(ctx.Request().Context(), filter)
	if err != nil {
		return c.fail(ctx, err)
	}
	return c.ok(ctx, http.StatusOK, NewAlertsResponse(alerts))
}

func (c *MonitoringController) MarkRead(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return c.fail(ctx, ErrBadRequest)
	}

	if err := c.monitoring.MarkRead(ctx.Request().Context(), id); err != nil {
		return c.fail(ctx, err)
	}

	logginghelper.LogRequest(ctx.Path(), log.Fields{"id": id})
	return ctx.NoContent(c.count(ctx, http.StatusNoContent))
}

func (c *MonitoringController) SetAlertsVisible(ctx echo.Context) error {
	var req VisibilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.fail(ctx, ErrBadRequest)
	}

	c.monitoring.SetAlertsVisible(req.Visible)
	return ctx.NoContent(c.count(ctx, http.StatusNoContent))
}

func (c *MonitoringController) Rules(ctx echo.Context) error {
	return c.ok(ctx, http.StatusOK, c.monitoring.Rules())
}

func (c *MonitoringController) Reconfigure(ctx echo.Context) error {
	var rules domain.AlertRules
	if err := ctx.Bind(&rules); err != nil {
		return c.fail(ctx, ErrBadRequest)
	}
	if err := validators.Rules(rules); err != nil {
		return c.fail(ctx, err)
	}

	if err := c.monitoring.Reconfigure(ctx.Request().Context(), rules); err != nil {
		return c.fail(ctx, err)
	}

	logginghelper.LogRequest(ctx.Path(), log.Fields{"rules": rules})
	return c.ok(ctx, http.StatusOK, c.monitoring.Rules())
}

func (c *MonitoringController) ResizeBuffer(ctx echo.Context) error {
	var req BufferRequest
	if err := ctx.Bind(&req); err != nil {
		return c.fail(ctx, ErrBadRequest)
	}

	if err := c.monitoring.ResizeBuffer(ctx.Request().Context(), req.Capacity); err != nil {
		return c.fail(ctx, err)
	}

	logginghelper.LogRequest(ctx.Path(), log.Fields{"capacity": req.Capacity})
	return ctx.NoContent(c.count(ctx, http.StatusNoContent))
}

func (c *MonitoringController) Notifications(ctx echo.Context) error {
	return c.ok(ctx, http.StatusOK, NewAlertsResponse(c.monitoring.Notifications()))
}

func (c *MonitoringController) ok(ctx echo.Context, status int, body any) error {
	return ctx.JSON(c.count(ctx, status), body)
}

func (c *MonitoringController) fail(ctx echo.Context, err error) error {
	status, msg := mapError(err)
	if status >= http.StatusInternalServerError {
		logginghelper.LogError(ctx.Path(), err)
	} else {
		logginghelper.LogRejected(ctx.Path(), err)
	}
	return ctx.JSON(c.count(ctx, status), ErrorResponse{Error: msg})
}

func (c *MonitoringController) count(ctx echo.Context, status int) int {
	c.counters.APIRequests.Inc(ctx.Path(), strconv.Itoa(status))
	return status
}

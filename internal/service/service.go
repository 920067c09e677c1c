package service

import (
	"context"

	"github.com/Egor213/LogiWatch/internal/alert"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/repo"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
	"github.com/Egor213/LogiWatch/pkg/breaker"
)

// Monitoring is everything the presentation layer may ask of a session.
type Monitoring interface {
	SelectPath(ctx context.Context, path string) (int, error)
	LoadLogs(ctx context.Context) (int, error)
	StartMonitoring(ctx context.Context) error
	StopMonitoring() error
	DashboardSnapshot() domain.DashboardSnapshot
	QueryLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogRecord, error)
	Alerts(ctx context.Context, filter domain.AlertFilter) ([]domain.Alert, error)
	MarkRead(ctx context.Context, id int) error
	Rules() domain.AlertRules
	Reconfigure(ctx context.Context, rules domain.AlertRules) error
	ResizeBuffer(ctx context.Context, capacity int) error
	SetAlertsVisible(visible bool)
	Notifications() []domain.Alert
}

type Services struct {
	Monitoring
	session *Session
}

type ServicesDependencies struct {
	Repos    *repo.Repositories
	Counters *metrics.Counters
	Breaker  *breaker.Breaker
	Sinks    []alert.Sink
	Config   SessionConfig
}

func NewServices(deps ServicesDependencies) *Services {
	s := NewSession(deps.Config, deps.Repos, deps.Counters, deps.Breaker, deps.Sinks...)
	return &Services{
		Monitoring: s,
		session:    s,
	}
}

// Restore loads persisted settings and alerts into the session.
func (s *Services) Restore(ctx context.Context) {
	s.session.Restore(ctx)
}

func (s *Services) Close() {
	s.session.Close()
}

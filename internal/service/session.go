package service

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Egor213/LogiWatch/internal/alert"
	"github.com/Egor213/LogiWatch/internal/buffer"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/ingest"
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/monitor"
	"github.com/Egor213/LogiWatch/internal/parser"
	"github.com/Egor213/LogiWatch/internal/queue"
	"github.com/Egor213/LogiWatch/internal/repo"
	"github.com/Egor213/LogiWatch/internal/repo/repoerrs"
	"github.com/Egor213/LogiWatch/internal/repo/repotypes"
	"github.com/Egor213/LogiWatch/internal/sample"
	"github.com/Egor213/LogiWatch/pkg/breaker"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

const defaultTickInterval = time.Second

type SessionConfig struct {
	DefaultPath    string
	DemoOnEmpty    bool
	BufferCap      int
	TickInterval   time.Duration
	BatchSize      int
	QueueCapacity  int
	OverflowPolicy queue.Policy
	MaxFiles       int
	Monitor        monitor.Config
	Alerts         alert.Config
	Rules          domain.AlertRules
}

// Session owns the monitoring pipeline of one operator: the buffer, the file
// monitor, the raw-line queue, the alert engine and the ingestion ticker.
type Session struct {
	cfg      SessionConfig
	repos    *repo.Repositories
	counters *metrics.Counters
	breaker  *breaker.Breaker

	buf         *buffer.Bounded
	queue       *queue.Queue[domain.RawLine]
	monitor     *monitor.Monitor
	engine      *alert.Engine
	coordinator *ingest.Coordinator
	loader      *ingest.Loader
	inbox       *Inbox
	now         func() time.Time

	mu         sync.Mutex
	tickCancel context.CancelFunc
	tickDone   chan struct{}
}

func NewSession(cfg SessionConfig, repos *repo.Repositories, counters *metrics.Counters, brk *breaker.Breaker, sinks ...alert.Sink) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	if cfg.Rules.Validate() != nil {
		cfg.Rules = domain.DefaultAlertRules()
	}

	s := &Session{
		cfg:      cfg,
		repos:    repos,
		counters: counters,
		breaker:  brk,
		inbox:    &Inbox{},
		now:      time.Now,
	}

	s.queue = queue.New[domain.RawLine](cfg.QueueCapacity, cfg.OverflowPolicy)
	policy := string(cfg.OverflowPolicy)
	s.queue.OnDrop = func(n int) {
		for range n {
			counters.QueueDropped.Inc(policy)
		}
	}

	s.buf = buffer.New(cfg.BufferCap)
	s.engine = alert.NewEngine(cfg.Alerts, cfg.Rules, repos.Alert, counters,
		alert.WithBreaker(brk),
		alert.WithSink(append(alert.MultiSink{s.inbox}, sinks...)),
	)

	s.monitor = monitor.New(cfg.Monitor, s.queue, counters, monitor.WithAccept(parser.HasTimestamp))
	s.monitor.SetPath(cfg.DefaultPath)

	store := ingest.Store{Logs: repos.Log, Tx: repos.Tx, Breaker: brk}
	s.coordinator = ingest.NewCoordinator(cfg.BatchSize, s.queue, s.buf, store, s.engine, counters)
	s.loader = ingest.NewLoader(ingest.LoaderConfig{
		Extension: cfg.Monitor.Extension,
		MaxFiles:  cfg.MaxFiles,
	}, s.buf, store, counters)

	return s
}

// Restore applies persisted settings over the configured defaults and seeds
// the active alert list. Unreadable or malformed values keep the current
// setting.
func (s *Session) Restore(ctx context.Context) {
	if v, ok := s.setting(ctx, repotypes.KeyLogPath); ok && v != "" {
		s.monitor.SetPath(v)
	}

	if v, ok := s.setting(ctx, repotypes.KeyBufferCap); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			s.buf.Resize(n)
		} else {
			log.WithField("value", v).Warn("Ignoring malformed buffer capacity setting")
		}
	}

	if v, ok := s.setting(ctx, repotypes.KeyAlertRules); ok {
		var rules domain.AlertRules
		if err := json.Unmarshal([]byte(v), &rules); err != nil || rules.Validate() != nil {
			log.WithField("value", v).Warn("Ignoring malformed alert rules setting")
		} else {
			s.engine.SetRules(rules)
		}
	}

	if err := s.engine.Seed(ctx); err != nil {
		log.WithError(err).Warn("Could not load stored alerts")
	}

	log.WithFields(log.Fields{
		"path":       s.monitor.Path(),
		"buffer_cap": s.buf.Capacity(),
	}).Info("Session restored")
}

func (s *Session) setting(ctx context.Context, key string) (string, bool) {
	v, err := s.repos.Settings.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repoerrs.ErrNotFound) {
			log.WithFields(log.Fields{"key": key, "error": err}).Warn("Failed to read setting")
		}
		return "", false
	}
	return v, true
}

func (s *Session) saveSetting(ctx context.Context, key, value string) error {
	err := s.breaker.Do(func() error {
		return s.repos.Settings.Set(ctx, key, value)
	})
	if err != nil {
		s.counters.StoreFailures.Inc("set_setting")
		log.WithFields(log.Fields{"key": key, "error": err}).Error("Failed to save setting")
		return errorsUtils.WrapPathErr(ErrCannotSaveSettings)
	}
	return nil
}

// SelectPath switches the watched path and bulk-loads it. The path is
// persisted best-effort.
func (s *Session) SelectPath(ctx context.Context, path string) (int, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return 0, ErrEmptyPath
	}
	if _, err := os.Stat(path); err != nil && !strings.ContainsAny(path, "*?[{") {
		return 0, ErrPathNotFound
	}

	s.monitor.SetPath(path)
	_ = s.saveSetting(ctx, repotypes.KeyLogPath, path)

	return s.LoadLogs(ctx)
}

// LoadLogs replaces the buffer with the contents of the current path.
func (s *Session) LoadLogs(ctx context.Context) (int, error) {
	path := s.monitor.Path()
	if path == "" {
		if s.cfg.DemoOnEmpty {
			return s.loadDemo(), nil
		}
		return 0, ErrNoPath
	}

	n, err := s.loader.Load(ctx, path)
	if err == nil {
		return n, nil
	}

	if s.cfg.DemoOnEmpty {
		log.WithFields(log.Fields{"path": path, "error": err}).Warn("No usable logs, loading demo data")
		return s.loadDemo(), nil
	}
	if errors.Is(err, ingest.ErrNoValidLogs) {
		return 0, err
	}
	return 0, errorsUtils.WrapPathErr(err)
}

func (s *Session) loadDemo() int {
	records := sample.Generate(sample.DefaultCount, s.now(), nil)
	s.buf.Replace(records)
	return s.buf.Len()
}

// StartMonitoring starts the file monitor and the ingestion ticker. Both
// outlive ctx's cancellation; only StopMonitoring ends them.
func (s *Session) StartMonitoring(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.monitor.Path() == "" {
		return ErrNoPath
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if err := s.monitor.Start(runCtx); err != nil {
		cancel()
		if errors.Is(err, monitor.ErrAlreadyRunning) {
			return ErrAlreadyMonitoring
		}
		return errorsUtils.WrapPathErr(err)
	}

	s.tickCancel = cancel
	s.tickDone = make(chan struct{})
	go s.runTicker(runCtx, s.tickDone)

	log.WithField("path", s.monitor.Path()).Info("Monitoring started")
	return nil
}

func (s *Session) runTicker(ctx context.Context, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(s.cfg.TickInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.coordinator.Tick(ctx)
		}
	}
}

func (s *Session) StopMonitoring() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.monitor.Running() {
		return ErrNotMonitoring
	}

	err := s.monitor.Stop()
	s.tickCancel()
	<-s.tickDone
	s.tickCancel, s.tickDone = nil, nil

	if err != nil {
		log.WithError(err).Warn("Monitor stop timed out")
	}
	log.Info("Monitoring stopped")
	return nil
}

// Tick runs one ingestion cycle immediately.
func (s *Session) Tick(ctx context.Context) int {
	return s.coordinator.Tick(ctx)
}

func (s *Session) DashboardSnapshot() domain.DashboardSnapshot {
	snap := buildSnapshot(s.buf.Sorted(), s.now().Format(domain.DateLayout))
	snap.Monitoring = s.monitor.Running()
	snap.Path = s.monitor.Path()
	for _, a := range s.engine.Active() {
		if !a.Read {
			snap.UnreadAlerts++
		}
	}
	return snap
}

// QueryLogs reads from the store and falls back to the buffer when the
// store is unavailable.
func (s *Session) QueryLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.LogRecord, error) {
	records, err := s.repos.Log.QueryRecords(ctx, filter)
	if err == nil {
		return records, nil
	}

	s.counters.StoreFailures.Inc("query_records")
	log.WithError(err).Warn("Log query failed, answering from memory")
	return filterRecords(s.buf.Sorted(), filter), nil
}

// Alerts reads from the store and falls back to the active list.
func (s *Session) Alerts(ctx context.Context, filter domain.AlertFilter) ([]domain.Alert, error) {
	alerts, err := s.repos.Alert.ListAlerts(ctx, filter, 0)
	if err == nil {
		return alerts, nil
	}

	s.counters.StoreFailures.Inc("list_alerts")
	log.WithError(err).Warn("Alert query failed, answering from memory")

	out := []domain.Alert{}
	for _, a := range s.engine.Active() {
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Session) MarkRead(ctx context.Context, id int) error {
	inMemory := s.engine.MarkRead(id)

	err := s.repos.Alert.MarkRead(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repoerrs.ErrNotFound):
		if inMemory {
			return nil
		}
		return ErrAlertNotFound
	}

	s.counters.StoreFailures.Inc("mark_read")
	log.WithFields(log.Fields{"id": id, "error": err}).Error("Failed to mark alert as read")
	if inMemory {
		return nil
	}
	return errorsUtils.WrapPathErr(ErrCannotMarkRead)
}

func (s *Session) Rules() domain.AlertRules {
	return s.engine.Rules()
}

// Reconfigure swaps the alert rules; the next evaluation uses them.
func (s *Session) Reconfigure(ctx context.Context, rules domain.AlertRules) error {
	if err := rules.Validate(); err != nil {
		return errors.Join(ErrInvalidRules, err)
	}
	s.engine.SetRules(rules)

	raw, err := json.Marshal(rules)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if err := s.saveSetting(ctx, repotypes.KeyAlertRules, string(raw)); err != nil {
		log.Warn("Alert rules applied but not persisted")
	}
	return nil
}

func (s *Session) ResizeBuffer(ctx context.Context, capacity int) error {
	if capacity <= 0 {
		return ErrInvalidBufferCap
	}
	s.buf.Resize(capacity)
	if err := s.saveSetting(ctx, repotypes.KeyBufferCap, strconv.Itoa(capacity)); err != nil {
		log.Warn("Buffer capacity applied but not persisted")
	}
	return nil
}

func (s *Session) SetAlertsVisible(visible bool) {
	s.inbox.SetVisible(visible)
}

// Notifications returns and clears the alerts raised while the alert list
// was hidden.
func (s *Session) Notifications() []domain.Alert {
	return s.inbox.Drain()
}

func (s *Session) Close() {
	if s.monitor.Running() {
		_ = s.StopMonitoring()
	}
}

// Package alert turns ingested records into security alerts.
package alert

import (
	"context"
	"sync"
	"time"

	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/repo"
	"github.com/Egor213/LogiWatch/pkg/breaker"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultMaxActive = 100

type Config struct {
	// DedupWindow of zero suppresses a repeat on the same calendar date.
	DedupWindow time.Duration
	MaxActive   int
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithSink(s Sink) Option {
	return func(e *Engine) {
		e.sink = s
	}
}

func WithBreaker(b *breaker.Breaker) Option {
	return func(e *Engine) {
		e.breaker = b
	}
}

type Engine struct {
	mu     sync.Mutex
	rules  domain.AlertRules
	active []domain.Alert // newest first

	cfg      Config
	store    repo.Alert
	sink     Sink
	breaker  *breaker.Breaker
	counters *metrics.Counters
	now      func() time.Time
}

func NewEngine(cfg Config, rules domain.AlertRules, store repo.Alert, counters *metrics.Counters, opts ...Option) *Engine {
	if cfg.MaxActive <= 0 {
		cfg.MaxActive = DefaultMaxActive
	}
	e := &Engine{
		rules:    rules.Clone(),
		cfg:      cfg,
		store:    store,
		counters: counters,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Rules() domain.AlertRules {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rules.Clone()
}

func (e *Engine) SetRules(rules domain.AlertRules) {
	e.mu.Lock()
	e.rules = rules.Clone()
	e.mu.Unlock()
}

// Seed replaces the active list with the most recent stored alerts.
func (e *Engine) Seed(ctx context.Context) error {
	alerts, err := e.store.ListAlerts(ctx, domain.AlertFilter{}, e.cfg.MaxActive)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	e.mu.Lock()
	e.active = alerts
	e.mu.Unlock()
	return nil
}

// Active returns a copy of the in-memory alert list, newest first.
func (e *Engine) Active() []domain.Alert {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Alert(nil), e.active...)
}

// MarkRead flips the read flag of an active alert. It reports whether the
// alert was found.
func (e *Engine) MarkRead(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.active {
		if e.active[i].ID == id {
			e.active[i].Read = true
			return true
		}
	}
	return false
}

// Evaluate runs every rule against rec. recent is the buffer content that
// login failures are counted over. It returns the alerts that survived dedup.
func (e *Engine) Evaluate(ctx context.Context, rec domain.LogRecord, recent []domain.LogRecord) []domain.Alert {
	now := e.now()
	rules := e.Rules()

	var raised []domain.Alert
	for _, r := range ruleset {
		candidate, ok := r(rec, recent, rules, now)
		if !ok {
			continue
		}
		if a, ok := e.add(ctx, candidate, now); ok {
			raised = append(raised, a)
		}
	}
	return raised
}

func (e *Engine) add(ctx context.Context, a domain.Alert, now time.Time) (domain.Alert, bool) {
	a.CreatedAt = now

	e.mu.Lock()
	for _, existing := range e.active {
		if e.duplicate(existing, a) {
			e.mu.Unlock()
			e.counters.AlertsSuppressed.Inc(string(a.Kind))
			return domain.Alert{}, false
		}
	}
	e.active = append([]domain.Alert{a}, e.active...)
	if len(e.active) > e.cfg.MaxActive {
		e.active = e.active[:e.cfg.MaxActive]
	}
	e.mu.Unlock()

	e.counters.AlertsRaised.Inc(string(a.Kind), string(a.Severity))

	if id, err := e.persist(ctx, a); err != nil {
		e.counters.StoreFailures.Inc("append_alert")
		log.WithFields(log.Fields{
			"kind":  a.Kind,
			"user":  a.User,
			"error": err,
		}).Error("Failed to save alert")
	} else {
		a.ID = id
		e.setID(a, id)
	}

	if e.sink != nil && !e.sink.AlertsVisible() {
		if err := e.sink.Notify(ctx, a); err != nil {
			log.WithField("kind", a.Kind).Warnf("Alert notification failed: %v", err)
		}
	}

	log.WithFields(log.Fields{
		"kind":     a.Kind,
		"severity": a.Severity,
		"user":     a.User,
		"ip":       a.IP,
	}).Info("Alert raised")

	return a, true
}

func (e *Engine) persist(ctx context.Context, a domain.Alert) (int, error) {
	var id int
	err := e.breaker.Do(func() error {
		var err error
		id, err = e.store.AppendAlert(ctx, a)
		return err
	})
	return id, err
}

// setID records the store id on the active copy added by add.
func (e *Engine) setID(a domain.Alert, id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.active {
		x := &e.active[i]
		if x.ID == 0 && x.Kind == a.Kind && x.User == a.User && x.CreatedAt.Equal(a.CreatedAt) {
			x.ID = id
			return
		}
	}
}

func (e *Engine) duplicate(existing, candidate domain.Alert) bool {
	if existing.Kind != candidate.Kind || existing.User != candidate.User {
		return false
	}
	if e.cfg.DedupWindow <= 0 {
		return existing.Date == candidate.Date
	}

	at, okA := moment(existing)
	bt, okB := moment(candidate)
	if !okA || !okB {
		return existing.Date == candidate.Date
	}
	d := bt.Sub(at)
	if d < 0 {
		d = -d
	}
	return d < e.cfg.DedupWindow
}

func moment(a domain.Alert) (time.Time, bool) {
	return domain.LogRecord{Date: a.Date, Time: a.Time}.Moment()
}

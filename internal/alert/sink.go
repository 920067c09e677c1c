package alert

import (
	"context"
	"errors"

	"github.com/Egor213/LogiWatch/internal/domain"
)

// Sink receives freshly raised alerts.
type Sink interface {
	// AlertsVisible reports that the alert list is already on screen, so a
	// separate notification would be redundant.
	AlertsVisible() bool
	Notify(ctx context.Context, a domain.Alert) error
}

// MultiSink fans an alert out to every sink and joins their errors.
type MultiSink []Sink

func (m MultiSink) AlertsVisible() bool {
	for _, s := range m {
		if !s.AlertsVisible() {
			return false
		}
	}
	return len(m) > 0
}

func (m MultiSink) Notify(ctx context.Context, a domain.Alert) error {
	var errs []error
	for _, s := range m {
		if s.AlertsVisible() {
			continue
		}
		if err := s.Notify(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

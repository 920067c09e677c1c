package broker

import (
	"context"
	"time"

	"github.com/Egor213/LogiWatch/internal/domain"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// AlertEvent is the payload published for every raised alert.
type AlertEvent struct {
	EventID     string       `json:"event_id"`
	Source      string       `json:"source"`
	PublishedAt time.Time    `json:"published_at"`
	Alert       domain.Alert `json:"alert"`
}

// AlertPublisher forwards alerts to a message broker, keyed by event id.
type AlertPublisher struct {
	producer Producer
	source   string
	now      func() time.Time
}

func NewAlertPublisher(p Producer, source string) *AlertPublisher {
	return &AlertPublisher{
		producer: p,
		source:   source,
		now:      time.Now,
	}
}

// AlertsVisible is always false: the topic has no notion of a visible list.
func (p *AlertPublisher) AlertsVisible() bool {
	return false
}

func (p *AlertPublisher) Notify(ctx context.Context, a domain.Alert) error {
	ev := AlertEvent{
		EventID:     uuid.NewString(),
		Source:      p.source,
		PublishedAt: p.now().UTC(),
		Alert:       a,
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := p.producer.SendMessage(ctx, []byte(ev.EventID), value); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

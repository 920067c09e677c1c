package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Egor213/LogiWatch/internal/domain"
)

const inboxCapacity = 50

// Inbox collects alerts raised while the alert list is not on screen.
type Inbox struct {
	visible atomic.Bool

	mu      sync.Mutex
	pending []domain.Alert
}

func (i *Inbox) AlertsVisible() bool {
	return i.visible.Load()
}

func (i *Inbox) SetVisible(v bool) {
	i.visible.Store(v)
}

func (i *Inbox) Notify(_ context.Context, a domain.Alert) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.pending = append(i.pending, a)
	if extra := len(i.pending) - inboxCapacity; extra > 0 {
		i.pending = append([]domain.Alert(nil), i.pending[extra:]...)
	}
	return nil
}

// Drain returns pending notifications oldest first and empties the inbox.
func (i *Inbox) Drain() []domain.Alert {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := i.pending
	i.pending = nil
	return out
}

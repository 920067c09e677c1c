// Package queue is the bounded hand-off between the file monitor and the
// ingestion coordinator.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrFull = errors.New("queue is full")

type Policy string

const (
	// Block makes Push wait for room or for the context to end.
	Block Policy = "block"
	// DropOldest evicts the oldest queued item to make room.
	DropOldest Policy = "drop_oldest"
	// Reject refuses the new item with ErrFull.
	Reject Policy = "reject"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case Block, DropOldest, Reject:
		return p, nil
	case "":
		return Block, nil
	default:
		return "", fmt.Errorf("unknown overflow policy %q", s)
	}
}

const DefaultCapacity = 10000

// Queue is a multi-producer, single-consumer FIFO with a fixed capacity.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int
	size   int
	policy Policy
	space  chan struct{}

	// OnDrop is called with the number of items lost to the overflow policy.
	OnDrop func(n int)
}

func New[T any](capacity int, policy Policy) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if policy == "" {
		policy = Block
	}
	return &Queue[T]{
		items:  make([]T, capacity),
		policy: policy,
		space:  make(chan struct{}, 1),
	}
}

func (q *Queue[T]) Push(ctx context.Context, item T) error {
	for {
		q.mu.Lock()
		if q.size < len(q.items) {
			q.items[(q.head+q.size)%len(q.items)] = item
			q.size++
			room := q.size < len(q.items)
			q.mu.Unlock()
			if room {
				q.signal()
			}
			return nil
		}

		switch q.policy {
		case DropOldest:
			q.items[q.head] = item
			q.head = (q.head + 1) % len(q.items)
			q.mu.Unlock()
			q.dropped(1)
			return nil
		case Reject:
			q.mu.Unlock()
			q.dropped(1)
			return ErrFull
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.space:
		}
	}
}

// Drain removes up to max items without blocking.
func (q *Queue[T]) Drain(max int) []T {
	q.mu.Lock()
	n := q.size
	if max > 0 && n > max {
		n = max
	}
	if n == 0 {
		q.mu.Unlock()
		return nil
	}

	out := make([]T, n)
	var zero T
	for i := 0; i < n; i++ {
		idx := (q.head + i) % len(q.items)
		out[i] = q.items[idx]
		q.items[idx] = zero
	}
	q.head = (q.head + n) % len(q.items)
	q.size -= n
	q.mu.Unlock()

	q.signal()
	return out
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// signal wakes at most one blocked producer; it re-checks for room itself.
func (q *Queue[T]) signal() {
	select {
	case q.space <- struct{}{}:
	default:
	}
}

func (q *Queue[T]) dropped(n int) {
	if q.OnDrop != nil {
		q.OnDrop(n)
	}
}

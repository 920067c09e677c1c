// Package buffer keeps the most recent log records in memory.
package buffer

import (
	"sort"
	"sync"

	"github.com/Egor213/LogiWatch/internal/domain"
)

const DefaultCapacity = 10000

// Bounded holds records newest-first by insertion. After every write the
// slice is cut back to the capacity, dropping the oldest insertions.
type Bounded struct {
	mu       sync.RWMutex
	records  []domain.LogRecord
	capacity int
}

func New(capacity int) *Bounded {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bounded{capacity: capacity}
}

// Prepend inserts a batch given in arrival order, so the last element of
// batch becomes the newest record.
func (b *Bounded) Prepend(batch []domain.LogRecord) {
	if len(batch) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	merged := make([]domain.LogRecord, 0, len(batch)+len(b.records))
	for i := len(batch) - 1; i >= 0; i-- {
		merged = append(merged, batch[i])
	}
	merged = append(merged, b.records...)
	b.records = merged
	b.trim()
}

// Replace swaps the contents for records, which are taken as already newest-first.
func (b *Bounded) Replace(records []domain.LogRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records = append([]domain.LogRecord(nil), records...)
	b.trim()
}

// Resize changes the capacity and evicts immediately if needed.
func (b *Bounded) Resize(capacity int) {
	if capacity <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.capacity = capacity
	b.trim()
}

func (b *Bounded) trim() {
	if len(b.records) > b.capacity {
		clear(b.records[b.capacity:])
		b.records = b.records[:b.capacity]
	}
}

func (b *Bounded) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

func (b *Bounded) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.capacity
}

// Snapshot returns a copy in insertion order, newest first.
func (b *Bounded) Snapshot() []domain.LogRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.LogRecord(nil), b.records...)
}

// Sorted returns a copy in display order, (date, time) descending. Records
// with equal keys keep their insertion order.
func (b *Bounded) Sorted() []domain.LogRecord {
	out := b.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Newer(out[j])
	})
	return out
}

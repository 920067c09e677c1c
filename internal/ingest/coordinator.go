// Package ingest moves parsed records into the buffer, the store and the
// alert engine.
package ingest

import (
	"context"
	"time"

	"github.com/Egor213/LogiWatch/internal/buffer"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/parser"
	"github.com/Egor213/LogiWatch/internal/repo"
	"github.com/Egor213/LogiWatch/pkg/breaker"
	log "github.com/sirupsen/logrus"
)

const DefaultBatchSize = 100

type Source interface {
	Drain(max int) []domain.RawLine
}

type Evaluator interface {
	Evaluate(ctx context.Context, rec domain.LogRecord, recent []domain.LogRecord) []domain.Alert
}

// Store is the write side shared by the coordinator and the loader.
type Store struct {
	Logs    repo.Log
	Tx      repo.TxManager
	Breaker *breaker.Breaker
}

// Append writes records in one transaction, through the breaker when set.
func (s Store) Append(ctx context.Context, records []domain.LogRecord) error {
	return s.Breaker.Do(func() error {
		return s.Tx.Do(ctx, func(ctx context.Context) error {
			return s.Logs.AppendRecords(ctx, records)
		})
	})
}

type Coordinator struct {
	batchSize int
	src       Source
	buf       *buffer.Bounded
	store     Store
	engine    Evaluator
	counters  *metrics.Counters
	now       func() time.Time
}

func NewCoordinator(batchSize int, src Source, buf *buffer.Bounded, store Store, engine Evaluator, counters *metrics.Counters) *Coordinator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Coordinator{
		batchSize: batchSize,
		src:       src,
		buf:       buf,
		store:     store,
		engine:    engine,
		counters:  counters,
		now:       time.Now,
	}
}

// Tick drains one batch without blocking and returns how many records it
// ingested.
func (c *Coordinator) Tick(ctx context.Context) int {
	lines := c.src.Drain(c.batchSize)
	if len(lines) == 0 {
		return 0
	}

	now := c.now()
	records := make([]domain.LogRecord, 0, len(lines))
	for _, l := range lines {
		rec, ok := parser.ParseTail(l.Text)
		if !ok {
			c.counters.ParseMisses.Inc("tail")
			continue
		}
		rec.IngestedAt = now
		records = append(records, rec)
	}
	if len(records) == 0 {
		return 0
	}

	c.buf.Prepend(records)
	for _, rec := range records {
		c.counters.RecordsIngested.Inc(rec.Level)
	}

	if err := c.store.Append(ctx, records); err != nil {
		c.counters.StoreFailures.Inc("append_records")
		log.WithFields(log.Fields{
			"records": len(records),
			"error":   err,
		}).Error("Failed to persist ingested records")
	}

	if c.engine != nil {
		recent := c.buf.Snapshot()
		for _, rec := range records {
			c.engine.Evaluate(ctx, rec, recent)
		}
	}

	log.WithField("records", len(records)).Debug("Batch ingested")
	return len(records)
}

package ingest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogiWatch/internal/buffer"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/ingest"
	"github.com/Egor213/LogiWatch/internal/metrics"
	repomocks "github.com/Egor213/LogiWatch/internal/mocks/repository"
	"github.com/Egor213/LogiWatch/internal/queue"
	"github.com/Egor213/LogiWatch/pkg/breaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type evaluation struct {
	rec    domain.LogRecord
	recent int
}

type recordingEvaluator struct {
	calls []evaluation
}

func (r *recordingEvaluator) Evaluate(_ context.Context, rec domain.LogRecord, recent []domain.LogRecord) []domain.Alert {
	r.calls = append(r.calls, evaluation{rec: rec, recent: len(recent)})
	return nil
}

func passThroughTx(tx *repomocks.MockTxManager) *gomock.Call {
	return tx.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func push(t *testing.T, q *queue.Queue[domain.RawLine], lines ...string) {
	t.Helper()
	for _, l := range lines {
		require.NoError(t, q.Push(context.Background(), domain.RawLine{Source: "app.log", Text: l}))
	}
}

func TestCoordinator_Tick(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := repomocks.NewMockLog(ctrl)
	tx := repomocks.NewMockTxManager(ctrl)

	q := queue.New[domain.RawLine](10, queue.Block)
	buf := buffer.New(100)
	eval := &recordingEvaluator{}
	c := ingest.NewCoordinator(10, q, buf, ingest.Store{Logs: logs, Tx: tx}, eval, metrics.NewTestCounters())

	push(t, q,
		"2024-01-15 10:30:45 INFO user=alice login failed from IP=10.0.0.1",
		"no timestamp at all",
		"2024-01-15 10:31:00 WARN GET URL=/app/reports/daily user=bob",
	)

	passThroughTx(tx)
	logs.EXPECT().AppendRecords(gomock.Any(), gomock.Len(2)).Return(nil)

	n := c.Tick(context.Background())
	require.Equal(t, 2, n)

	snap := buf.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "bob", snap[0].User, "last line of the batch is newest")
	assert.Equal(t, domain.OpView, snap[0].Operation)
	assert.Equal(t, "/app/reports/daily", snap[0].URL)

	first := snap[1]
	assert.Equal(t, "alice", first.User)
	assert.Equal(t, "10.0.0.1", first.IP)
	assert.Equal(t, domain.OpLogin, first.Operation)
	assert.Equal(t, domain.StatusFailed, first.Status)
	assert.Equal(t, "INFO", first.Level)
	assert.False(t, first.IngestedAt.IsZero())

	require.Len(t, eval.calls, 2)
	assert.Equal(t, "alice", eval.calls[0].rec.User, "alerts are evaluated in arrival order")
	assert.Equal(t, 2, eval.calls[0].recent, "the buffer already holds the batch")
	assert.Equal(t, 0, q.Len())
}

func TestCoordinator_TickRespectsBatchSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := repomocks.NewMockLog(ctrl)
	tx := repomocks.NewMockTxManager(ctrl)

	q := queue.New[domain.RawLine](10, queue.Block)
	buf := buffer.New(100)
	c := ingest.NewCoordinator(2, q, buf, ingest.Store{Logs: logs, Tx: tx}, nil, metrics.NewTestCounters())

	push(t, q,
		"2024-01-15 10:00:01 INFO one",
		"2024-01-15 10:00:02 INFO two",
		"2024-01-15 10:00:03 INFO three",
	)

	passThroughTx(tx).Times(2)
	logs.EXPECT().AppendRecords(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assert.Equal(t, 2, c.Tick(context.Background()))
	assert.Equal(t, 1, c.Tick(context.Background()))
	assert.Equal(t, 0, c.Tick(context.Background()))
	assert.Equal(t, 3, buf.Len())
}

func TestCoordinator_StoreFailureKeepsBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := repomocks.NewMockLog(ctrl)
	tx := repomocks.NewMockTxManager(ctrl)

	q := queue.New[domain.RawLine](10, queue.Block)
	buf := buffer.New(100)
	eval := &recordingEvaluator{}
	b := breaker.New("store", breaker.WithFailureThreshold(1))
	c := ingest.NewCoordinator(10, q, buf, ingest.Store{Logs: logs, Tx: tx, Breaker: b}, eval, metrics.NewTestCounters())

	passThroughTx(tx)
	logs.EXPECT().AppendRecords(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	push(t, q, "2024-01-15 10:00:01 ERROR disk failure")
	assert.Equal(t, 1, c.Tick(context.Background()))

	// the breaker is open now, so the store is not called again
	push(t, q, "2024-01-15 10:00:02 ERROR disk failure again")
	assert.Equal(t, 1, c.Tick(context.Background()))

	assert.Equal(t, 2, buf.Len())
	assert.Len(t, eval.calls, 2)
}

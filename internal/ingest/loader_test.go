package ingest_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/LogiWatch/internal/buffer"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/ingest"
	"github.com/Egor213/LogiWatch/internal/metrics"
	repomocks "github.com/Egor213/LogiWatch/internal/mocks/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeLog(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func newLoader(t *testing.T, cfg ingest.LoaderConfig, capacity int) (*ingest.Loader, *buffer.Bounded, *repomocks.MockLog, *repomocks.MockTxManager) {
	ctrl := gomock.NewController(t)
	logs := repomocks.NewMockLog(ctrl)
	tx := repomocks.NewMockTxManager(ctrl)
	buf := buffer.New(capacity)
	return ingest.NewLoader(cfg, buf, ingest.Store{Logs: logs, Tx: tx}, metrics.NewTestCounters()), buf, logs, tx
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.log")
	writeLog(t, path, ""+
		"2024-01-14 09:00:00,123 [jboss1] [INFO] [Security] - user=bob login success from IP=10.0.0.2\n"+
		"\n"+
		"garbage without a timestamp\n"+
		"[2024-01-15] [08:15:00] [WARN] [Database] slow query user=ana\n"+
		"2024-01-15 07:00:00 ERROR plain fallback line\n", time.Now())

	l, buf, logs, tx := newLoader(t, ingest.LoaderConfig{}, 100)
	passThroughTx(tx)
	logs.EXPECT().AppendRecords(gomock.Any(), gomock.Len(3)).Return(nil)

	n, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	snap := buf.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "08:15:00", snap[0].Time, "records are ordered newest first")
	assert.Equal(t, "Database", snap[0].Category)
	assert.Equal(t, "07:00:00", snap[1].Time)
	assert.Equal(t, "jboss1", snap[2].Server)
	assert.Equal(t, domain.StatusSuccess, snap[2].Status)
}

func TestLoader_DirectoryNewestFilesAndCap(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		line := fmt.Sprintf("2024-01-1%d 10:00:00 INFO file %d\n", i+1, i)
		writeLog(t, filepath.Join(dir, fmt.Sprintf("f%d.log", i)), line, base.Add(time.Duration(i)*time.Minute))
	}
	writeLog(t, filepath.Join(dir, "notes.txt"), "2024-01-19 10:00:00 INFO ignored\n", time.Now())

	l, buf, logs, tx := newLoader(t, ingest.LoaderConfig{MaxFiles: 2}, 1)
	passThroughTx(tx)
	logs.EXPECT().AppendRecords(gomock.Any(), gomock.Len(2)).Return(nil)

	n, err := l.Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "buffer cap bounds the result")

	snap := buf.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "2024-01-14", snap[0].Date, "only the two newest files are read")
}

func TestLoader_PersistsRecordsBeyondBufferCap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.log")
	writeLog(t, path, ""+
		"2024-01-15 10:00:00,000 INFO [App] (main) user=a first\n"+
		"2024-01-15 12:00:00,000 INFO [App] (main) user=b second\n"+
		"2024-01-15 09:00:00,000 INFO [App] (main) user=c third\n"+
		"2024-01-15 13:00:00,000 INFO [App] (main) user=d fourth\n", time.Now())

	l, buf, logs, tx := newLoader(t, ingest.LoaderConfig{}, 2)
	passThroughTx(tx)

	var persisted []domain.LogRecord
	logs.EXPECT().AppendRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.LogRecord) error {
			persisted = records
			return nil
		})

	n, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, persisted, 4, "every parsed record reaches the store")

	users := make([]string, 0, len(persisted))
	for _, r := range persisted {
		users = append(users, r.User)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, users)

	snap := buf.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "d", snap[0].User)
	assert.Equal(t, "b", snap[1].User)
}

func TestLoader_NoValidLogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.log")
	writeLog(t, path, "nothing useful here\n", time.Now())

	l, buf, _, _ := newLoader(t, ingest.LoaderConfig{}, 10)
	buf.Replace([]domain.LogRecord{domain.NewRecord()})

	_, err := l.Load(context.Background(), path)
	assert.ErrorIs(t, err, ingest.ErrNoValidLogs)
	assert.Equal(t, 1, buf.Len(), "buffer is untouched")
}

func TestLoader_MissingPath(t *testing.T) {
	l, _, _, _ := newLoader(t, ingest.LoaderConfig{}, 10)

	_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_StoreFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	writeLog(t, path, "2024-01-15 10:00:00 INFO hello\n", time.Now())

	l, buf, logs, tx := newLoader(t, ingest.LoaderConfig{}, 10)
	passThroughTx(tx)
	logs.EXPECT().AppendRecords(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	n, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, buf.Len())
}

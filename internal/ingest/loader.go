package ingest

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Egor213/LogiWatch/internal/buffer"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	"github.com/Egor213/LogiWatch/internal/parser"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMaxFiles  = 5
	defaultExtension = ".log"
	maxLineSize      = 1 << 20
)

var ErrNoValidLogs = errors.New("no valid log lines found")

type LoaderConfig struct {
	Extension string
	MaxFiles  int
}

// Loader replaces the buffer with the contents of a file or directory,
// using the full grammar parser.
type Loader struct {
	cfg      LoaderConfig
	buf      *buffer.Bounded
	store    Store
	counters *metrics.Counters
	now      func() time.Time
}

func NewLoader(cfg LoaderConfig, buf *buffer.Bounded, store Store, counters *metrics.Counters) *Loader {
	if cfg.Extension == "" {
		cfg.Extension = defaultExtension
	}
	if cfg.MaxFiles <= 0 {
		cfg.MaxFiles = DefaultMaxFiles
	}
	return &Loader{
		cfg:      cfg,
		buf:      buf,
		store:    store,
		counters: counters,
		now:      time.Now,
	}
}

// Load persists every parsed record and returns the number now held by the
// buffer. It returns ErrNoValidLogs, leaving the buffer untouched, when
// nothing parsed.
func (l *Loader) Load(ctx context.Context, path string) (int, error) {
	files, err := l.files(path)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	now := l.now()
	var records []domain.LogRecord
	for _, f := range files {
		recs, err := l.readFile(f)
		if err != nil {
			log.WithField("file", f).Warnf("Skipping unreadable log file: %v", err)
			continue
		}
		for i := range recs {
			recs[i].IngestedAt = now
		}
		records = append(records, recs...)
	}

	if len(records) == 0 {
		return 0, ErrNoValidLogs
	}

	// A bulk load has no insertion history, so display order stands in for
	// it and the buffer keeps the newest records. The store gets all of them.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Newer(records[j])
	})

	l.buf.Replace(records)

	if err := l.store.Append(ctx, records); err != nil {
		l.counters.StoreFailures.Inc("append_records")
		log.WithFields(log.Fields{
			"records": len(records),
			"error":   err,
		}).Error("Failed to persist loaded records")
	}

	buffered := l.buf.Len()
	log.WithFields(log.Fields{
		"path":     path,
		"files":    len(files),
		"records":  len(records),
		"buffered": buffered,
	}).Info("Logs loaded")

	return buffered, nil
}

// files lists a directory's log files, most recently modified first.
func (l *Loader) files(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	names, err := doublestar.Glob(os.DirFS(path), "*"+l.cfg.Extension, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	type entry struct {
		path  string
		mtime time.Time
	}
	entries := make([]entry, 0, len(names))
	for _, n := range names {
		full := filepath.Join(path, n)
		fi, err := os.Stat(full)
		if err != nil {
			continue
		}
		entries = append(entries, entry{full, fi.ModTime()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].mtime.After(entries[j].mtime)
	})
	if len(entries) > l.cfg.MaxFiles {
		entries = entries[:l.cfg.MaxFiles]
	}

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.path
	}
	return out, nil
}

func (l *Loader) readFile(path string) ([]domain.LogRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []domain.LogRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, ok := parser.Parse(line)
		if !ok {
			l.counters.ParseMisses.Inc("bulk")
			continue
		}
		records = append(records, rec)
	}
	return records, sc.Err()
}

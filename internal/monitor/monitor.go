// Package monitor tails log files by polling their size and reading only
// the bytes appended since the previous poll.
package monitor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/metrics"
	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultErrorBackoff = 5 * time.Second
	defaultStopTimeout  = time.Second
	defaultExtension    = ".log"
)

var (
	ErrAlreadyRunning = errors.New("monitor already running")
	ErrStopTimeout    = errors.New("monitor did not stop in time")
	ErrFileMissing    = errors.New("watched file is missing")
)

// offsetMap maps a file to the size observed at its last read.
type offsetMap map[string]int64

type Config struct {
	Extension    string
	PollInterval time.Duration
	ErrorBackoff time.Duration
	StopTimeout  time.Duration
	UseNotify    bool
}

// Pusher receives every accepted line. *queue.Queue[domain.RawLine] satisfies it.
type Pusher interface {
	Push(ctx context.Context, line domain.RawLine) error
}

type Monitor struct {
	cfg      Config
	out      Pusher
	accept   func(string) bool
	counters *metrics.Counters

	path atomic.Value

	// Every run goroutine owns a fresh offsets map. This one backs the
	// exported Poll only.
	pollMu  sync.Mutex
	offsets offsetMap

	mu     sync.Mutex
	active atomic.Bool
	cancel context.CancelFunc
	done   chan struct{}
	wake   chan struct{}
}

type Option func(*Monitor)

// WithAccept drops lines for which fn returns false before they are queued.
func WithAccept(fn func(string) bool) Option {
	return func(m *Monitor) {
		m.accept = fn
	}
}

func New(cfg Config, out Pusher, counters *metrics.Counters, opts ...Option) *Monitor {
	if cfg.Extension == "" {
		cfg.Extension = defaultExtension
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.ErrorBackoff <= 0 {
		cfg.ErrorBackoff = defaultErrorBackoff
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = defaultStopTimeout
	}

	m := &Monitor{
		cfg:      cfg,
		out:      out,
		counters: counters,
		offsets:  make(offsetMap),
		wake:     make(chan struct{}, 1),
	}
	m.path.Store("")

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetPath changes the watched file, directory or glob. The running loop
// picks it up on its next cycle.
func (m *Monitor) SetPath(path string) {
	m.path.Store(path)
}

func (m *Monitor) Path() string {
	return m.path.Load().(string)
}

func (m *Monitor) Running() bool {
	return m.active.Load()
}

// Start launches the polling goroutine with a fresh offset map. A loop left
// behind by a timed-out Stop is already cancelled and shares nothing with the
// new one.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active.Load() {
		return ErrAlreadyRunning
	}

	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	m.active.Store(true)

	if m.cfg.UseNotify {
		m.startNotify(ctx)
	}

	go m.run(ctx, m.done)

	log.WithFields(log.Fields{
		"path":     m.Path(),
		"interval": m.cfg.PollInterval,
	}).Info("File monitor started")
	return nil
}

// Stop clears the active flag and waits up to StopTimeout for the loop to
// exit. A read already in progress is allowed to finish.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active.Swap(false) {
		return nil
	}
	m.cancel()

	select {
	case <-m.done:
		log.Info("File monitor stopped")
		return nil
	case <-time.After(m.cfg.StopTimeout):
		log.WithField("timeout", m.cfg.StopTimeout).Warn("File monitor still busy after stop")
		return ErrStopTimeout
	}
}

func (m *Monitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	state := make(offsetMap)
	for ctx.Err() == nil {
		wait := m.cfg.PollInterval
		if err := m.poll(ctx, state); err != nil {
			log.WithError(err).Warn("Monitor cycle failed, backing off")
			wait = m.cfg.ErrorBackoff
		}

		select {
		case <-ctx.Done():
			return
		case <-m.wake:
		case <-time.After(wait):
		}
	}
}

// Poll runs one monitoring cycle over every file behind the current path. It
// keeps its own offsets, separate from those of a running loop.
func (m *Monitor) Poll(ctx context.Context) error {
	m.pollMu.Lock()
	defer m.pollMu.Unlock()
	return m.poll(ctx, m.offsets)
}

func (m *Monitor) poll(ctx context.Context, state offsetMap) error {
	path := m.Path()
	if path == "" {
		return nil
	}

	files, err := listFiles(path, m.cfg.Extension)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	var errs []error
	for _, file := range files {
		if err := m.check(ctx, state, file); err != nil {
			errs = append(errs, err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	return errors.Join(errs...)
}

func (m *Monitor) check(ctx context.Context, state offsetMap, file string) error {
	info, err := os.Stat(file)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileMissing, file)
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	size := info.Size()
	last, seen := state[file]
	if !seen {
		state[file] = size
		return nil
	}
	if size == last {
		return nil
	}
	if size < last {
		log.WithFields(log.Fields{
			"file":   file,
			"offset": last,
			"size":   size,
		}).Info("File shrank, reading from the start")
		last = 0
	}

	data, err := readRange(file, last, size)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	state[file] = size

	return m.emit(ctx, file, data)
}

func (m *Monitor) emit(ctx context.Context, file string, data []byte) error {
	label := filepath.Base(file)
	for _, raw := range bytes.Split(data, []byte("\n")) {
		line := string(bytes.TrimSpace(raw))
		if line == "" {
			continue
		}
		if ctx.Err() != nil {
			return nil
		}
		m.counters.LinesRead.Inc(label)

		if m.accept != nil && !m.accept(line) {
			m.counters.ParseMisses.Inc("tail")
			continue
		}

		err := m.out.Push(ctx, domain.RawLine{Source: file, Text: line})
		if err != nil && ctx.Err() != nil {
			return nil
		}
		// Other push errors are overflow rejections already counted by the queue.
	}
	return nil
}

// readRange returns the bytes in [from, to) without loading the rest of the file.
func readRange(file string, from, to int64) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(from, io.SeekStart); err != nil {
		return nil, err
	}

	buf := make([]byte, to-from)
	n, err := io.ReadFull(f, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		// Truncated between Stat and Read; keep what was there.
		return buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}

package monitor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// startNotify subscribes to write events so the loop can poll early. Polling
// stays the only place offsets are read or written.
func (m *Monitor) startNotify(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.WithError(err).Warn("fsnotify unavailable, polling only")
		return
	}

	target := m.Path()
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		target = filepath.Dir(target)
	}
	if err := w.Add(target); err != nil {
		log.WithError(err).WithField("path", target).Warn("Cannot watch path, polling only")
		w.Close()
		return
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					select {
					case m.wake <- struct{}{}:
					default:
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.WithError(err).Debug("fsnotify error")
			}
		}
	}()
}

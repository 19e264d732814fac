package levels

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Dataset whenever its source file changes on disk.
// Remote sources cannot be watched.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dataset  *Dataset
	fetcher  Fetcher
	source   string
	debounce time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

func NewWatcher(dataset *Dataset, fetcher Fetcher, source string, logger *slog.Logger) (*Watcher, error) {
	if IsRemote(source) {
		return nil, fmt.Errorf("cannot watch remote source %s", source)
	}
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  watcher,
		dataset:  dataset,
		fetcher:  fetcher,
		source:   filepath.Clean(source),
		debounce: 250 * time.Millisecond,
		logger:   logger.With("source", source),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start watches the directory holding the source file, so that editors which
// replace the file instead of writing it in place are noticed as well.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.source)); err != nil {
		return fmt.Errorf("watch %s: %w", w.source, err)
	}
	w.running = true
	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and releases the underlying watcher. It is safe to
// call Stop on a watcher that was never started.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Error("Failed to close watcher", "error", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.source {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)
		case <-fire:
			fire = nil
			// the dataset logs failures itself and keeps the previous rows
			_ = w.dataset.Load(ctx, w.fetcher, w.source)
		}
	}
}

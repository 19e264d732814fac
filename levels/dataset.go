package levels

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"
)

type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]Level, error)
}

// Dataset is the in-memory row collection of one list. It is only ever
// replaced as a whole.
type Dataset struct {
	mu       sync.RWMutex
	rows     []Level
	version  uint64
	loadedAt time.Time
	logger   *slog.Logger
}

func NewDataset(logger *slog.Logger) *Dataset {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dataset{logger: logger}
}

// Load fetches source and swaps in the result. A failed fetch keeps the
// previous rows, is logged, and is returned for callers that want to report
// it further.
func (d *Dataset) Load(ctx context.Context, fetcher Fetcher, source string) error {
	l := d.logger.With("source", source)
	rows, err := fetcher.Fetch(ctx, source)
	if err != nil {
		l.Error("Failed to load level data", "error", err)
		return err
	}
	d.Replace(rows)
	l.Info("Loaded level data", "rows", len(rows))
	return nil
}

func (d *Dataset) Replace(rows []Level) {
	rows = slices.Clone(rows)
	d.mu.Lock()
	d.rows = rows
	d.version++
	d.loadedAt = time.Now()
	d.mu.Unlock()
}

// Snapshot returns a copy of the rows together with the version they belong
// to. The version starts at 0 and grows with every replacement.
func (d *Dataset) Snapshot() ([]Level, uint64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.rows), d.version
}

func (d *Dataset) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

func (d *Dataset) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rows)
}

func (d *Dataset) LoadedAt() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loadedAt
}

package levels

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, source string) ([]Level, error)

func (f fetchFunc) Fetch(ctx context.Context, source string) ([]Level, error) {
	return f(ctx, source)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestDatasetLoadReplacesRows(t *testing.T) {
	logger, _ := bufferLogger()
	d := NewDataset(logger)
	d.Replace([]Level{{Number: 1, Level: "old"}})

	fetcher := fetchFunc(func(context.Context, string) ([]Level, error) {
		return []Level{{Number: 1, Level: "a"}, {Number: 2, Level: "b"}}, nil
	})
	require.NoError(t, d.Load(context.Background(), fetcher, "x.json"))

	rows, version := d.Snapshot()
	assert.Equal(t, uint64(2), version)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Level)
}

func TestDatasetFailedLoadKeepsRows(t *testing.T) {
	logger, buf := bufferLogger()
	d := NewDataset(logger)
	d.Replace([]Level{{Number: 1, Level: "kept"}})

	failure := errors.New("connection refused")
	fetcher := fetchFunc(func(context.Context, string) ([]Level, error) {
		return nil, failure
	})

	var err error
	assert.NotPanics(t, func() {
		err = d.Load(context.Background(), fetcher, "https://example.invalid/levels.json")
	})
	assert.ErrorIs(t, err, failure)

	rows, version := d.Snapshot()
	assert.Equal(t, uint64(1), version)
	require.Len(t, rows, 1)
	assert.Equal(t, "kept", rows[0].Level)
	assert.Contains(t, buf.String(), "Failed to load level data")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestDatasetFailedFirstLoadStaysEmpty(t *testing.T) {
	logger, _ := bufferLogger()
	d := NewDataset(logger)
	fetcher := fetchFunc(func(context.Context, string) ([]Level, error) {
		return nil, ErrMalformed
	})
	assert.Error(t, d.Load(context.Background(), fetcher, "x.json"))
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, uint64(0), d.Version())
}

func TestSnapshotIsACopy(t *testing.T) {
	d := NewDataset(nil)
	d.Replace([]Level{{Level: "a"}})
	rows, _ := d.Snapshot()
	rows[0].Level = "changed"
	again, _ := d.Snapshot()
	assert.Equal(t, "a", again[0].Level)
}

func TestDatasetNullBodyKeepsRows(t *testing.T) {
	logger, _ := bufferLogger()
	d := NewDataset(logger)
	d.Replace([]Level{{Number: 1, Level: "kept"}})

	path := filepath.Join(t.TempDir(), "pemons.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	err := d.Load(context.Background(), NewLoader(), path)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, uint64(1), d.Version())
}

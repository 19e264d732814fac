package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/mariokirby1703/pemon-information-table/levels"
	"golang.org/x/sync/errgroup"
)

// Source fetches the current data of a level.
type Source interface {
	Level(ctx context.Context, id int) (levels.Level, error)
}

type SourceFunc func(ctx context.Context, id int) (levels.Level, error)

func (f SourceFunc) Level(ctx context.Context, id int) (levels.Level, error) {
	return f(ctx, id)
}

type Options struct {
	// IDs is the id list file, Output the dataset JSON file that is merged
	// into and rewritten.
	IDs         string
	Output      string
	Last        int
	Concurrency int
	Source      Source
	Variant     levels.Variant
	Out         io.Writer
}

type Summary struct {
	Processed int
	Added     int
	Updated   int
	Skipped   int
	Total     int
}

type fetchResult struct {
	level levels.Level
	err   error
}

// Run fetches every selected id and merges the results into the output file.
// Ids that fail to fetch keep their existing row; rows whose id is not
// selected stay untouched.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Source == nil {
		return Summary{}, errors.New("no level source")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	all, err := ReadIDFile(opts.IDs)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read ids: %w", err)
	}
	selected := Select(all, opts.Last)

	existing, err := readExisting(opts.Output)
	if err != nil {
		return Summary{}, err
	}
	byID := make(map[int]levels.Level, len(existing))
	for _, row := range existing {
		byID[row.ID] = row
	}

	fmt.Fprintf(out, "Processing %d of %d levels...\n", len(selected), len(all))
	results := make([]fetchResult, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))
	for i, entry := range selected {
		i, entry := i, entry
		g.Go(func() error {
			level, err := opts.Source.Level(gctx, entry.ID)
			results[i] = fetchResult{level: level, err: err}
			return nil
		})
	}
	g.Wait()
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Processed: len(selected)}
	processed := make(map[int]bool, len(selected))
	result := make(map[int]levels.Level, len(existing)+len(selected))
	for i, entry := range selected {
		processed[entry.ID] = true
		old, known := byID[entry.ID]
		res := results[i]
		if res.err != nil {
			fmt.Fprintf(out, "[!] Failed to fetch level %d: %v\n", entry.ID, res.err)
			if known {
				fmt.Fprintf(out, "[~] Skipped level %d\n", entry.ID)
				result[entry.ID] = old
				summary.Skipped++
			}
			continue
		}

		fresh := res.level
		fresh.Number = entry.Number
		if fresh.ID == 0 {
			fresh.ID = entry.ID
		}
		if !opts.Variant.Length {
			fresh.Length = ""
		}

		switch {
		case !known:
			if fresh.Objects == ObjectLimit {
				fmt.Fprintf(out, "[!] Warning: level %d has %d objects, it may have more\n", entry.ID, ObjectLimit)
			}
			fmt.Fprintf(out, "[+] Added level %d: %s by %s\n", entry.ID, fresh.Level, fresh.Creator)
			result[entry.ID] = fresh
			summary.Added++
		case Differs(old, fresh):
			merged := Merge(old, fresh)
			merged.Number = entry.Number
			fmt.Fprintf(out, "[~] Updated level %d: %s\n", entry.ID, merged.Level)
			result[entry.ID] = merged
			summary.Updated++
		default:
			old.Number = entry.Number
			result[entry.ID] = old
			summary.Skipped++
		}
	}

	for id, row := range byID {
		if !processed[id] {
			result[id] = row
		}
	}

	rows := make([]levels.Level, 0, len(result))
	for _, row := range result {
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Number != rows[j].Number {
			return rows[i].Number < rows[j].Number
		}
		return rows[i].ID < rows[j].ID
	})
	summary.Total = len(rows)

	if err := writeRows(opts.Output, rows); err != nil {
		return summary, err
	}
	fmt.Fprintf(out, "Added: %d, updated: %d, skipped: %d\n", summary.Added, summary.Updated, summary.Skipped)
	return summary, nil
}

// readExisting loads the current dataset. A missing file is an empty one.
func readExisting(path string) ([]levels.Level, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var rows []levels.Level
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

// writeRows replaces the file at path in one rename, so readers and file
// watchers never see a partial dataset.
func writeRows(path string, rows []levels.Level) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

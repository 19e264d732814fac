package builder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Entry is one level id of an id list. Number is the position of the id
// among all valid ids and becomes the row number.
type Entry struct {
	ID     int
	Number int
}

// ReadIDs reads one level id per line. Lines that are not plain digits are
// skipped without taking a number.
func ReadIDs(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.TrimLeft(line, "0123456789") != "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("level id %q: %w", line, err)
		}
		entries = append(entries, Entry{ID: id, Number: len(entries) + 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ids: %w", err)
	}
	return entries, nil
}

func ReadIDFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadIDs(f)
}

// Select keeps the last n entries (all when n <= 0) and drops repeated ids.
// A repeated id keeps the number of its last occurrence in the full list.
func Select(entries []Entry, n int) []Entry {
	last := make(map[int]int, len(entries))
	for _, e := range entries {
		last[e.ID] = e.Number
	}
	if n > 0 && n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	seen := make(map[int]bool, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, Entry{ID: e.ID, Number: last[e.ID]})
	}
	return out
}

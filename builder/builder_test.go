package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mariokirby1703/pemon-information-table/config"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingLevel() levels.Level {
	return levels.Level{
		Number:        3,
		Level:         "Bloodbath",
		Creator:       "Riot",
		ID:            10565740,
		Difficulty:    "Extreme Demon",
		Rating:        "Epic",
		UserCoins:     0,
		EstimatedTime: levels.IntPtr(120),
		Objects:       80000,
		PrimarySong:   "At the Speed of Light",
		Artist:        "Dimrain47",
		SongID:        levels.SongIDFromInt(467339),
		RateDate:      "2015-08-09",
	}
}

func TestMergeKeepsCuratedValues(t *testing.T) {
	old := existingLevel()
	fresh := levels.Level{
		Level:      "Bloodbath",
		Creator:    "-",
		ID:         10565740,
		Difficulty: "Extreme Demon",
		Rating:     "Epic",
		Objects:    ObjectLimit,
		SongID:     levels.SongIDFromString(""),
	}

	merged := Merge(old, fresh)
	assert.Empty(t, cmp.Diff(old, merged))
	assert.False(t, Differs(old, fresh))
}

func TestMergeTakesNewValues(t *testing.T) {
	old := existingLevel()
	fresh := old
	fresh.Number = 9
	fresh.Rating = "Legendary"
	fresh.Objects = 90000
	fresh.Creator = "Riot and more"
	fresh.EstimatedTime = nil

	assert.True(t, Differs(old, fresh))
	merged := Merge(old, fresh)
	assert.Equal(t, 3, merged.Number)
	assert.Equal(t, "Legendary", merged.Rating)
	assert.Equal(t, 90000, merged.Objects)
	assert.Equal(t, "Riot and more", merged.Creator)
	require.NotNil(t, merged.EstimatedTime)
	assert.Equal(t, 120, *merged.EstimatedTime)
}

func TestMergeNumberOnlyIsNoChange(t *testing.T) {
	old := existingLevel()
	fresh := old
	fresh.Number = 1
	assert.False(t, Differs(old, fresh))
}

func TestMergeObjects(t *testing.T) {
	old := existingLevel()
	old.Objects = 1000

	fresh := old
	fresh.Objects = 0
	assert.Equal(t, 1000, Merge(old, fresh).Objects)

	fresh.Objects = ObjectLimit
	assert.Equal(t, ObjectLimit, Merge(old, fresh).Objects)
	assert.True(t, Differs(old, fresh))
}

func TestMergeCreatorDash(t *testing.T) {
	old := existingLevel()
	old.Creator = ""
	fresh := old
	fresh.Creator = "-"
	assert.Equal(t, "-", Merge(old, fresh).Creator)

	old.Creator = "-"
	fresh.Creator = "Riot"
	assert.Equal(t, "Riot", Merge(old, fresh).Creator)
}

func TestMergeSongPlaceholders(t *testing.T) {
	old := existingLevel()
	old.SongID = levels.SongIDFromString(levels.SongNong)
	old.PrimarySong, old.Artist = "Custom", "Someone"
	fresh := old
	fresh.SongID = levels.SongIDFromInt(1)
	fresh.PrimarySong, fresh.Artist = "Other", "Other Artist"

	assert.False(t, Differs(old, fresh))
	assert.True(t, Merge(old, fresh).SongID.Is(levels.SongNong))

	old.SongID = levels.SongIDFromString(levels.SongUnknown)
	merged := Merge(old, fresh)
	assert.True(t, merged.SongID.Is(levels.SongUnknown))
	assert.Equal(t, "", merged.PrimarySong)
	assert.Equal(t, "", merged.Artist)
	assert.True(t, Differs(old, fresh))

	old.PrimarySong, old.Artist = "", ""
	assert.False(t, Differs(old, fresh))
}

func TestMergeOfficialSong(t *testing.T) {
	old := existingLevel()
	fresh := old
	fresh.SongID = levels.SongIDFromString(levels.SongOfficial)
	fresh.PrimarySong, fresh.Artist = "", ""

	merged := Merge(old, fresh)
	assert.True(t, merged.SongID.Is(levels.SongOfficial))
	assert.Equal(t, "At the Speed of Light", merged.PrimarySong)
}

func TestReadIDs(t *testing.T) {
	entries, err := ReadIDs(strings.NewReader("10\n\nabc\n 20 \n12a\n30\n"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{ID: 10, Number: 1}, {ID: 20, Number: 2}, {ID: 30, Number: 3}}, entries)
}

func TestSelect(t *testing.T) {
	entries := []Entry{{ID: 1, Number: 1}, {ID: 2, Number: 2}, {ID: 1, Number: 3}, {ID: 4, Number: 4}}
	assert.Equal(t, []Entry{{ID: 1, Number: 3}, {ID: 2, Number: 2}, {ID: 4, Number: 4}}, Select(entries, 0))
	assert.Equal(t, []Entry{{ID: 1, Number: 3}, {ID: 4, Number: 4}}, Select(entries, 2))
	assert.Equal(t, []Entry{{ID: 1, Number: 3}, {ID: 2, Number: 2}, {ID: 4, Number: 4}}, Select(entries, 10))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	ids := filepath.Join(dir, "ids.txt")
	output := filepath.Join(dir, "levels.json")
	writeFile(t, ids, "100\n200\n300\n400\n")

	existing := []levels.Level{
		{Number: 1, Level: "Unchanged", Creator: "A", ID: 100, Objects: 10, SongID: levels.SongIDFromInt(5)},
		{Number: 2, Level: "Old name", Creator: "B", ID: 200, Objects: 20, SongID: levels.SongIDFromInt(6)},
		{Number: 3, Level: "Failing", Creator: "C", ID: 300, Objects: 30},
		{Number: 9, Level: "Removed from ids", Creator: "D", ID: 900, Objects: 90},
	}
	data, err := json.Marshal(existing)
	require.NoError(t, err)
	writeFile(t, output, string(data))

	var calls atomic.Int32
	source := SourceFunc(func(ctx context.Context, id int) (levels.Level, error) {
		calls.Add(1)
		switch id {
		case 100:
			return levels.Level{Level: "Unchanged", Creator: "A", ID: 100, Objects: 10, SongID: levels.SongIDFromInt(5), Length: "Long"}, nil
		case 200:
			return levels.Level{Level: "New name", Creator: "B", ID: 200, Objects: 20}, nil
		case 400:
			return levels.Level{Level: "Brand <new>", Creator: "E", ID: 400, Objects: ObjectLimit}, nil
		}
		return levels.Level{}, errors.New("boom")
	})

	var out bytes.Buffer
	summary, err := Run(context.Background(), Options{IDs: ids, Output: output, Concurrency: 3, Source: source, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 4, Added: 1, Updated: 1, Skipped: 2, Total: 5}, summary)
	assert.EqualValues(t, 4, calls.Load())
	assert.Contains(t, out.String(), "Warning: level 400")

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Brand <new>")
	assert.Contains(t, string(raw), "\n  {\n")

	var rows []levels.Level
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 5)
	got := make([]int, len(rows))
	for i, row := range rows {
		got[i] = row.ID
	}
	assert.Equal(t, []int{100, 200, 300, 400, 900}, got)
	assert.Equal(t, "", rows[0].Length)
	assert.Equal(t, "New name", rows[1].Level)
	assert.True(t, rows[1].SongID.Equal(levels.SongIDFromInt(6)))
	assert.Equal(t, "Failing", rows[2].Level)
	assert.Equal(t, 4, rows[3].Number)
}

func TestRunLastAndMissingOutput(t *testing.T) {
	dir := t.TempDir()
	ids := filepath.Join(dir, "ids.txt")
	output := filepath.Join(dir, "levels.json")
	writeFile(t, ids, "1\n2\n3\n")

	source := SourceFunc(func(ctx context.Context, id int) (levels.Level, error) {
		return levels.Level{Level: "L", Creator: "C", ID: id, Length: "Tiny"}, nil
	})
	summary, err := Run(context.Background(), Options{
		IDs: ids, Output: output, Last: 1, Source: source, Variant: levels.Variant{Length: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)

	var rows []levels.Level
	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].ID)
	assert.Equal(t, 3, rows[0].Number)
	assert.Equal(t, "Tiny", rows[0].Length)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	assert.Error(t, err)

	source := SourceFunc(func(ctx context.Context, id int) (levels.Level, error) {
		return levels.Level{}, nil
	})
	_, err = Run(context.Background(), Options{IDs: filepath.Join(t.TempDir(), "missing.txt"), Source: source})
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	_, err := NewSource("other", config.Default().Builder)
	assert.Error(t, err)
	src, err := NewSource(SourceGD, config.Default().Builder)
	require.NoError(t, err)
	assert.NotNil(t, src)
}

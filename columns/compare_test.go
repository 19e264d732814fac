package columns

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareRankFollowsVocabulary(t *testing.T) {
	for i, a := range levels.Difficulties {
		for j, b := range levels.Difficulties {
			want := compareInts(i, j)
			assert.Equal(t, want, CompareRank(levels.Difficulties, a, b), "%s vs %s", a, b)
			assert.Equal(t, want, CompareRank(levels.Difficulties, strings.ToUpper(a), strings.ToLower(b)), "case %s vs %s", a, b)
		}
	}
}

func TestCompareRankUnknownSortsFirst(t *testing.T) {
	assert.Equal(t, -1, CompareRank(levels.Ratings, "Godlike", "Rated"))
	assert.Equal(t, 1, CompareRank(levels.Ratings, "Rated", ""))
	assert.Equal(t, 0, CompareRank(levels.Ratings, "???", "nope"))
}

func TestDifficultyColumnSortsShuffledRows(t *testing.T) {
	reg, err := NewRegistry(levels.Pemons())
	require.NoError(t, err)
	spec, ok := reg.Spec("difficulty")
	require.True(t, ok)

	var rows []levels.Level
	for _, d := range levels.Difficulties {
		rows = append(rows, levels.Level{Difficulty: strings.ToLower(d)}, levels.Level{Difficulty: d})
	}
	rand.New(rand.NewSource(1)).Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	sort.SliceStable(rows, func(i, j int) bool { return spec.Comparator(rows[i], rows[j]) < 0 })
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t,
			levels.Rank(levels.Difficulties, rows[i-1].Difficulty),
			levels.Rank(levels.Difficulties, rows[i].Difficulty))
	}
}

func TestCompareText(t *testing.T) {
	assert.Equal(t, 0, CompareText("Bloodbath", "bloodBATH"))
	assert.Negative(t, CompareText("apple", "Banana"))
	assert.Positive(t, CompareText("zodiac", "Acu"))
}

func TestCompareStripped(t *testing.T) {
	assert.Equal(t, 0, CompareStripped("At the Speed of Light", "At-the speed_of light!"))
	assert.Negative(t, CompareStripped("(a) song", "b-side"))
}

func TestCompareSongID(t *testing.T) {
	five := levels.SongIDFromInt(5)
	abc := levels.SongIDFromString("abc")
	xyz := levels.SongIDFromString("xyz")

	assert.Equal(t, -1, CompareSongID(five, abc))
	assert.Equal(t, 1, CompareSongID(abc, five))
	assert.Equal(t, -1, CompareSongID(abc, xyz))
	assert.Equal(t, 1, CompareSongID(levels.SongIDFromInt(900), levels.SongIDFromString("12")))
	assert.Equal(t, 0, CompareSongID(levels.SongIDFromInt(12), levels.SongIDFromString("12")))
	// empty strings are not numeric
	assert.Equal(t, -1, CompareSongID(levels.SongIDFromInt(1), levels.SongIDFromString("")))
}

func TestCompareRateDate(t *testing.T) {
	assert.Equal(t, -1, CompareRateDate("31/12/2023", "01/01/2024"))
	assert.Equal(t, 1, CompareRateDate("2/3/2024", "1/3/2024"))
	assert.Equal(t, 0, CompareRateDate("05/06/2024", "5/6/2024"))
	assert.Equal(t, -1, CompareRateDate("", "01/01/2020"))
}

func TestCompareOptional(t *testing.T) {
	assert.Equal(t, -1, CompareOptional(levels.IntPtr(59), levels.IntPtr(61)))
	assert.Equal(t, -1, CompareOptional(nil, levels.IntPtr(0)))
	assert.Equal(t, 0, CompareOptional(nil, nil))
}

func TestEstimatedTimeSortsBySeconds(t *testing.T) {
	reg, err := NewRegistry(levels.Pemons())
	require.NoError(t, err)
	spec, ok := reg.Spec("estimatedTime")
	require.True(t, ok)

	// "1m 5s" would sort after "10s" lexically
	a := levels.Level{EstimatedTime: levels.IntPtr(65)}
	b := levels.Level{EstimatedTime: levels.IntPtr(10)}
	assert.Equal(t, 1, spec.Comparator(a, b))
}

package builder

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mariokirby1703/pemon-information-table/levels"
)

// ObjectLimit is the highest object count the GD servers report. Levels above
// it are reported with exactly this value.
const ObjectLimit = 65535

// Merge folds freshly fetched data into an existing row. Fetched data only
// replaces what it actually knows about:
//   - empty strings and absent optional counters never overwrite
//   - an object count of 0, or the capped count over a larger known count, is ignored
//   - a NONG song keeps its song fields, an UNKNOWN song keeps its id and has
//     no song name or artist
//   - a "-" creator never replaces a real creator name
//
// The row number always stays the existing one.
func Merge(existing, fresh levels.Level) levels.Level {
	merged := existing

	merged.Level = mergeString(existing.Level, fresh.Level)
	merged.Creator = mergeCreator(existing.Creator, fresh.Creator)
	merged.ID = fresh.ID
	merged.Difficulty = mergeString(existing.Difficulty, fresh.Difficulty)
	merged.Rating = mergeString(existing.Rating, fresh.Rating)
	merged.UserCoins = fresh.UserCoins
	merged.Length = mergeString(existing.Length, fresh.Length)
	merged.EstimatedTime = mergeOptional(existing.EstimatedTime, fresh.EstimatedTime)
	merged.Checkpoints = mergeOptional(existing.Checkpoints, fresh.Checkpoints)
	merged.TwoPlayer = fresh.TwoPlayer
	merged.Songs = mergeOptional(existing.Songs, fresh.Songs)
	merged.SFX = mergeOptional(existing.SFX, fresh.SFX)
	merged.RateDate = mergeString(existing.RateDate, fresh.RateDate)
	merged.Showcase = mergeString(existing.Showcase, fresh.Showcase)

	if fresh.Objects != 0 && !(fresh.Objects == ObjectLimit && existing.Objects > ObjectLimit) {
		merged.Objects = fresh.Objects
	}

	switch {
	case existing.SongID.Is(levels.SongNong):
	case existing.SongID.Is(levels.SongUnknown):
		merged.PrimarySong, merged.Artist = "", ""
	default:
		merged.PrimarySong = mergeString(existing.PrimarySong, fresh.PrimarySong)
		merged.Artist = mergeString(existing.Artist, fresh.Artist)
		if !fresh.SongID.IsEmpty() {
			merged.SongID = fresh.SongID
		}
	}
	return merged
}

// Differs reports whether merging fresh into existing changes anything.
func Differs(existing, fresh levels.Level) bool {
	return !cmp.Equal(existing, Merge(existing, fresh), cmpopts.IgnoreFields(levels.Level{}, "Number"))
}

func mergeString(old, fresh string) string {
	if fresh == "" {
		return old
	}
	return fresh
}

func mergeCreator(old, fresh string) string {
	if fresh == "-" && old != "" && old != "-" {
		return old
	}
	return mergeString(old, fresh)
}

func mergeOptional(old, fresh *int) *int {
	if fresh == nil {
		return old
	}
	return fresh
}

package gdapi

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mariokirby1703/pemon-information-table/levels"
)

// LevelInfo is everything the GD servers tell about a level.
type LevelInfo struct {
	LevelID       int    `json:"levelID"`
	LevelName     string `json:"levelName"`
	Creator       string `json:"creator"`
	PlayerID      int    `json:"playerID"`
	AccountID     int    `json:"accountID"`
	Difficulty    string `json:"difficulty"`
	Rating        string `json:"rating"`
	Coins         int    `json:"coins"`
	VerifiedCoins bool   `json:"verifiedCoins"`
	EstimatedTime *int   `json:"estimatedTime,omitempty"`
	Objects       int    `json:"objects"`
	TwoPlayer     bool   `json:"twoPlayer"`
	OfficialSong  int    `json:"officialSong"`
	CustomSongID  int    `json:"customSongID"`
	PrimarySong   string `json:"primarySong"`
	Artist        string `json:"artist"`
	Songs         int    `json:"songs"`
	SFX           int    `json:"SFX"`
	Description   string `json:"description"`
	Downloads     int    `json:"downloads"`
	Likes         int    `json:"likes"`
	Length        string `json:"length"`
	Stars         int    `json:"awardedStars"`
	FeatureScore  int    `json:"featureScore"`
	EditorTime    int    `json:"editorTime"`
}

var demonNames = map[int]string{3: "Easy", 4: "Medium", 0: "Hard", 5: "Insane", 6: "Extreme"}

var difficultyNames = map[int]string{10: "Easy", 20: "Normal", 30: "Hard", 40: "Harder", 50: "Insane"}

var ratingNames = map[int]string{1: "Epic", 2: "Legendary", 3: "Mythic"}

// parseLevelDownload maps a downloadGJLevel22 response.
func parseLevelDownload(data string) (LevelInfo, error) {
	kv := parseKV(data)
	if kv["1"] == "" {
		return LevelInfo{}, fmt.Errorf("invalid data format: missing level id")
	}

	info := LevelInfo{
		LevelID:       atoi(kv["1"]),
		LevelName:     kv["2"],
		Description:   decodeDescription(kv["3"]),
		PlayerID:      atoi(kv["6"]),
		Downloads:     atoi(kv["10"]),
		OfficialSong:  atoi(kv["12"]),
		Likes:         int(math.Abs(float64(atoi(kv["14"])))),
		Stars:         atoi(kv["18"]),
		FeatureScore:  atoi(kv["19"]),
		TwoPlayer:     kv["31"] == "1",
		CustomSongID:  atoi(kv["35"]),
		Coins:         atoi(kv["37"]),
		VerifiedCoins: kv["38"] == "1",
		AccountID:     atoi(kv["41"]),
		Objects:       atoi(kv["45"]),
		EditorTime:    max(0, atoi(kv["46"])+atoi(kv["47"])),
		Songs:         countList(kv["52"]),
		SFX:           countList(kv["53"]),
	}

	lengthCode := atoi(kv["15"])
	if lengthCode >= 0 && lengthCode < len(levels.Lengths) {
		info.Length = levels.Lengths[lengthCode]
	} else {
		info.Length = "unknown(" + strconv.Itoa(lengthCode) + ")"
	}

	if kv["17"] == "1" {
		name, ok := demonNames[atoi(kv["43"])]
		if !ok {
			name = "Unknown"
		}
		info.Difficulty = name + " Demon"
	} else if name, ok := difficultyNames[atoi(kv["9"])]; ok {
		info.Difficulty = name
	} else {
		info.Difficulty = "N/A"
	}

	if name, ok := ratingNames[atoi(kv["42"])]; ok {
		info.Rating = name
	} else if info.FeatureScore > 0 {
		info.Rating = "Featured"
	} else if info.Stars > 0 {
		info.Rating = "Rated"
	}

	if frames, ok := kv["57"]; ok {
		seconds := int(math.Round(float64(atoi(frames)) / 240))
		info.EstimatedTime = &seconds
	}
	return info, nil
}

// SongID is the song id a dataset row stores: OFFICIAL for official songs,
// the custom song id, or an empty string when nothing is known.
func (i LevelInfo) SongID() levels.SongID {
	switch {
	case i.OfficialSong != 0:
		return levels.SongIDFromString(levels.SongOfficial)
	case i.CustomSongID > 0:
		return levels.SongIDFromInt(i.CustomSongID)
	default:
		return levels.SongIDFromString("")
	}
}

// Level converts the info into a dataset row. Estimated time and song counts
// are curated by hand in the datasets, so they stay absent here and merging
// keeps the curated values.
func (i LevelInfo) Level() levels.Level {
	return levels.Level{
		Level:       i.LevelName,
		Creator:     i.Creator,
		ID:          i.LevelID,
		Difficulty:  i.Difficulty,
		Rating:      i.Rating,
		UserCoins:   i.Coins,
		Length:      i.Length,
		Objects:     i.Objects,
		TwoPlayer:   i.TwoPlayer,
		PrimarySong: i.PrimarySong,
		Artist:      i.Artist,
		SongID:      i.SongID(),
	}
}

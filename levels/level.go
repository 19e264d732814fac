package levels

import (
	"fmt"
)

// Level is one row of a level list as stored in the dataset JSON files.
// Optional counters are pointers so that a missing value stays missing.
type Level struct {
	Number        int    `json:"number"`
	Level         string `json:"level"`
	Creator       string `json:"creator"`
	ID            int    `json:"ID"`
	Difficulty    string `json:"difficulty"`
	Rating        string `json:"rating"`
	UserCoins     int    `json:"userCoins"`
	Length        string `json:"length,omitempty"`
	EstimatedTime *int   `json:"estimatedTime,omitempty"`
	Objects       int    `json:"objects"`
	Checkpoints   *int   `json:"checkpoints,omitempty"`
	TwoPlayer     bool   `json:"twop"`
	PrimarySong   string `json:"primarySong"`
	Artist        string `json:"artist"`
	SongID        SongID `json:"songID"`
	Songs         *int   `json:"songs,omitempty"`
	SFX           *int   `json:"SFX,omitempty"`
	RateDate      string `json:"rateDate,omitempty"`
	Showcase      string `json:"showcase,omitempty"`
}

// Fields lists the json keys Get understands, in display order.
var Fields = []string{
	"number", "level", "creator", "ID", "difficulty", "rating", "userCoins",
	"length", "estimatedTime", "objects", "checkpoints", "twop",
	"primarySong", "artist", "songID", "songs", "SFX", "rateDate", "showcase",
}

// Get returns the value stored under the json key name. Numbers are returned
// as float64 and absent optional values as nil, which makes a Level usable as
// expression parameters.
func (l Level) Get(name string) (interface{}, error) {
	switch name {
	case "number":
		return float64(l.Number), nil
	case "level":
		return l.Level, nil
	case "creator":
		return l.Creator, nil
	case "ID":
		return float64(l.ID), nil
	case "difficulty":
		return l.Difficulty, nil
	case "rating":
		return l.Rating, nil
	case "userCoins":
		return float64(l.UserCoins), nil
	case "length":
		return l.Length, nil
	case "estimatedTime":
		return optional(l.EstimatedTime), nil
	case "objects":
		return float64(l.Objects), nil
	case "checkpoints":
		return optional(l.Checkpoints), nil
	case "twop":
		return l.TwoPlayer, nil
	case "primarySong":
		return l.PrimarySong, nil
	case "artist":
		return l.Artist, nil
	case "songID":
		if l.SongID.IsZero() {
			return nil, nil
		}
		if n, ok := l.SongID.Numeric(); ok {
			return n, nil
		}
		return l.SongID.String(), nil
	case "songs":
		return optional(l.Songs), nil
	case "SFX":
		return optional(l.SFX), nil
	case "rateDate":
		return l.RateDate, nil
	case "showcase":
		return l.Showcase, nil
	}
	return nil, fmt.Errorf("unknown level field %q", name)
}

func optional(v *int) interface{} {
	if v == nil {
		return nil
	}
	return float64(*v)
}

// IntPtr is a helper for building levels with optional counters.
func IntPtr(v int) *int {
	return &v
}

package levels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	SongOfficial = "OFFICIAL"
	SongNong     = "NONG"
	SongUnknown  = "UNKNOWN"
)

// SongID holds either a numeric newgrounds song id or a placeholder string
// such as OFFICIAL or NONG. The zero value is an absent id.
type SongID struct {
	num     int
	text    string
	isText  bool
	present bool
}

func SongIDFromInt(id int) SongID {
	return SongID{num: id, present: true}
}

func SongIDFromString(s string) SongID {
	return SongID{text: s, isText: true, present: true}
}

func (s SongID) IsZero() bool {
	return !s.present
}

// IsEmpty reports whether the id carries no information: absent or an empty
// string.
func (s SongID) IsEmpty() bool {
	return !s.present || (s.isText && strings.TrimSpace(s.text) == "")
}

// Numeric returns the numeric value of the id. Strings holding a decimal
// number count as numeric, the empty string does not.
func (s SongID) Numeric() (float64, bool) {
	if !s.present {
		return 0, false
	}
	if !s.isText {
		return float64(s.num), true
	}
	trimmed := strings.TrimSpace(s.text)
	if trimmed == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Is reports whether the id is the given placeholder string.
func (s SongID) Is(placeholder string) bool {
	return s.present && s.isText && s.text == placeholder
}

func (s SongID) Equal(other SongID) bool {
	return s == other
}

func (s SongID) String() string {
	switch {
	case !s.present:
		return ""
	case s.isText:
		return s.text
	default:
		return strconv.Itoa(s.num)
	}
}

func (s SongID) MarshalJSON() ([]byte, error) {
	switch {
	case !s.present:
		return []byte("null"), nil
	case s.isText:
		return json.Marshal(s.text)
	default:
		return []byte(strconv.Itoa(s.num)), nil
	}
}

func (s *SongID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = SongID{}
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("song id: %w", err)
		}
		*s = SongIDFromString(text)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("song id: %w", err)
	}
	id, err := num.Int64()
	if err != nil {
		f, ferr := num.Float64()
		if ferr != nil {
			return fmt.Errorf("song id %s is not a number: %w", num, ferr)
		}
		id = int64(f)
	}
	*s = SongIDFromInt(int(id))
	return nil
}

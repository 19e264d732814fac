package gdapi

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// parseKV parses the colon separated key:value blocks most GD endpoints
// answer with. Only the part before the first '#' is read and the first
// occurrence of a key wins.
func parseKV(data string) map[string]string {
	data, _, _ = strings.Cut(strings.TrimSpace(data), "#")
	parts := strings.Split(data, ":")
	out := make(map[string]string, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		key := parts[i]
		if key == "" {
			continue
		}
		if _, exists := out[key]; !exists {
			out[key] = parts[i+1]
		}
	}
	return out
}

// parseTildeKV parses song objects, whose pairs are separated by "~|~".
func parseTildeKV(data string) map[string]string {
	parts := strings.Split(strings.TrimSpace(data), "~|~")
	out := make(map[string]string, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		key := strings.TrimSpace(parts[i])
		if key != "" {
			out[key] = parts[i+1]
		}
	}
	return out
}

func atoi(value string) int {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return i
}

// countList counts the non empty entries of a comma separated id list.
func countList(value string) int {
	count := 0
	for _, item := range strings.Split(value, ",") {
		if strings.TrimSpace(item) != "" {
			count++
		}
	}
	return count
}

// decodeDescription decodes a base64 level description. URL safe and
// unpadded variants are accepted; anything else decodes to "".
func decodeDescription(value string) string {
	if value == "" {
		return ""
	}
	if b, err := base64.StdEncoding.DecodeString(value); err == nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(value)
	if pad := len(normalized) % 4; pad != 0 {
		normalized += strings.Repeat("=", 4-pad)
	}
	if b, err := base64.StdEncoding.DecodeString(normalized); err == nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return ""
}

type Song struct {
	ID     int
	Name   string
	Artist string
	Size   string
	Link   string
}

func parseSong(data string) (Song, error) {
	kv := parseTildeKV(data)
	var song Song
	var err error
	if song.ID, err = strconv.Atoi(kv["1"]); err != nil {
		return Song{}, fmt.Errorf("failed to convert song id: %w", err)
	}
	song.Name = kv["2"]
	song.Artist = kv["4"]
	song.Size = kv["5"]
	if link := kv["10"]; link != "" {
		song.Link, err = url.QueryUnescape(link)
		if err != nil {
			return Song{}, fmt.Errorf("failed to unescape level song: %w", err)
		}
	}
	return song, nil
}

// parseLevelSearch reads the creator and song sections of a getGJLevels21
// response. Creators are keyed by player id, songs by song id.
func parseLevelSearch(data string) (map[int]string, map[int]Song, error) {
	sections := strings.Split(strings.TrimSpace(data), "#")
	creators := make(map[int]string)
	songs := make(map[int]Song)
	if len(sections) < 2 {
		return nil, nil, fmt.Errorf("invalid data format: %s", data)
	}

	for _, chunk := range strings.Split(sections[1], "|") {
		cols := strings.Split(chunk, ":")
		if len(cols) < 2 {
			continue
		}
		if playerID, err := strconv.Atoi(cols[0]); err == nil {
			creators[playerID] = cols[1]
		}
	}

	if len(sections) < 3 || sections[2] == "" {
		return creators, songs, nil
	}
	for _, raw := range strings.Split(sections[2], "~:~") {
		song, err := parseSong(raw)
		if err != nil {
			return nil, nil, err
		}
		songs[song.ID] = song
	}
	return creators, songs, nil
}

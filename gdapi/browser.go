package gdapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mariokirby1703/pemon-information-table/levels"
)

const DefaultBrowserURL = "https://gdbrowser.com"

var browserRatings = map[int]string{1: "Rated", 2: "Featured", 3: "Epic", 4: "Legendary", 5: "Mythic"}

// flexInt accepts numbers and numeric strings. Anything else reads as 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

type browserLevel struct {
	ID           flexInt         `json:"id"`
	Name         string          `json:"name"`
	Author       string          `json:"author"`
	Difficulty   string          `json:"difficulty"`
	CP           flexInt         `json:"cp"`
	Coins        flexInt         `json:"coins"`
	Objects      flexInt         `json:"objects"`
	TwoPlayer    bool            `json:"twoPlayer"`
	Length       string          `json:"length"`
	OfficialSong flexInt         `json:"officialSong"`
	SongName     string          `json:"songName"`
	SongAuthor   string          `json:"songAuthor"`
	SongID       json.RawMessage `json:"songID"`
}

// BrowserClient reads levels from the GDBrowser JSON api.
type BrowserClient struct {
	baseURL string
	client  *http.Client
}

func NewBrowserClient(baseURL string, timeout time.Duration) *BrowserClient {
	if baseURL == "" {
		baseURL = DefaultBrowserURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BrowserClient{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{Timeout: timeout}}
}

func (c *BrowserClient) Level(ctx context.Context, id int) (levels.Level, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/level/%d", c.baseURL, id), nil)
	if err != nil {
		return levels.Level{}, fmt.Errorf("create request error: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return levels.Level{}, fmt.Errorf("fetch level %d: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return levels.Level{}, fmt.Errorf("%w: level %d returned %d", ErrStatus, id, resp.StatusCode)
	}

	var data browserLevel
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return levels.Level{}, fmt.Errorf("invalid json for level %d: %w", id, err)
	}
	return data.level(), nil
}

func (b browserLevel) level() levels.Level {
	return levels.Level{
		Level:       b.Name,
		Creator:     b.Author,
		ID:          int(b.ID),
		Difficulty:  b.Difficulty,
		Rating:      browserRatings[int(b.CP)],
		UserCoins:   int(b.Coins),
		Length:      b.Length,
		Objects:     int(b.Objects),
		TwoPlayer:   b.TwoPlayer,
		PrimarySong: b.SongName,
		Artist:      b.SongAuthor,
		SongID:      b.songID(),
	}
}

// songID is OFFICIAL for official songs, the numeric custom song id, or an
// empty string when GDBrowser sends something else.
func (b browserLevel) songID() levels.SongID {
	if b.OfficialSong != 0 {
		return levels.SongIDFromString(levels.SongOfficial)
	}
	raw := strings.Trim(string(bytes.TrimSpace(b.SongID)), `"`)
	if id, err := strconv.Atoi(raw); err == nil {
		return levels.SongIDFromInt(id)
	}
	return levels.SongIDFromString("")
}

package levels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

var (
	ErrMalformed = errors.New("malformed level data")
	ErrStatus    = errors.New("unexpected response status")
)

// Loader fetches level collections from local files or http(s) endpoints.
type Loader struct {
	Client *http.Client
}

func NewLoader() *Loader {
	return &Loader{Client: &http.Client{Timeout: 30 * time.Second}}
}

func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func (l *Loader) Fetch(ctx context.Context, source string) ([]Level, error) {
	if source == "" {
		return nil, fmt.Errorf("empty level source")
	}
	var body io.ReadCloser
	if IsRemote(source) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("create request error: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request level data error: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, source, resp.StatusCode)
		}
		body = resp.Body
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open level file: %w", err)
		}
		body = file
	}
	defer body.Close()

	var rows []Level
	if err := json.NewDecoder(body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, source, err)
	}
	// a JSON null decodes without error but is not a level array
	if rows == nil {
		return nil, fmt.Errorf("%w: %s: top level is not an array", ErrMalformed, source)
	}
	return rows, nil
}

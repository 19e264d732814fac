package gdapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"golang.org/x/time/rate"
)

const (
	DefaultServerURL = "https://www.boomlings.com/database"
	secret           = "Wmfd2893gb7"
)

var (
	ErrNotFound = errors.New("level not found")
	ErrBlocked  = errors.New("request blocked")
	ErrStatus   = errors.New("unexpected response status")
)

// RetryPolicy decides how often and how long the server client waits after
// failed requests.
type RetryPolicy struct {
	MaxAttempts   int
	BackoffBase   time.Duration
	BackoffCap    time.Duration
	JitterMin     time.Duration
	JitterMax     time.Duration
	ForbiddenWait time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   5,
		BackoffBase:   1500 * time.Millisecond,
		BackoffCap:    30 * time.Second,
		JitterMin:     200 * time.Millisecond,
		JitterMax:     800 * time.Millisecond,
		ForbiddenWait: 60 * time.Second,
	}
}

// Backoff is the wait before retry number attempt, doubling from
// BackoffBase up to BackoffCap.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	b := p.exponential()
	d := b.NextBackOff()
	for i := 1; i < attempt; i++ {
		d = b.NextBackOff()
	}
	return d
}

func (p RetryPolicy) exponential() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BackoffBase
	b.Multiplier = 2
	b.MaxInterval = p.BackoffCap
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// DefaultLimiter allows one request every 10.5 seconds, which stays below
// six requests per minute.
func DefaultLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(10500*time.Millisecond), 1)
}

// ServerClient talks to the official GD servers. All requests share one
// rate limiter and are retried according to the retry policy.
type ServerClient struct {
	baseURL  string
	client   *http.Client
	limiter  *rate.Limiter
	retry    RetryPolicy
	sleep    func(ctx context.Context, d time.Duration) error
	jitter   func(lo, hi time.Duration) time.Duration
	newTimer func() backoff.Timer
}

type ServerOption func(*ServerClient)

func WithHTTPClient(client *http.Client) ServerOption {
	return func(c *ServerClient) {
		c.client = client
	}
}

func WithLimiter(limiter *rate.Limiter) ServerOption {
	return func(c *ServerClient) {
		c.limiter = limiter
	}
}

func WithRetryPolicy(policy RetryPolicy) ServerOption {
	return func(c *ServerClient) {
		c.retry = policy
	}
}

func NewServerClient(baseURL string, opts ...ServerOption) *ServerClient {
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	c := &ServerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: DefaultLimiter(),
		retry:   DefaultRetryPolicy(),
		sleep:   sleepContext,
		jitter:  randomDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Level downloads a level and completes it with its creator name and song
// metadata.
func (c *ServerClient) Level(ctx context.Context, id int) (levels.Level, error) {
	info, err := c.LevelInfo(ctx, id)
	if err != nil {
		return levels.Level{}, err
	}
	return info.Level(), nil
}

func (c *ServerClient) LevelInfo(ctx context.Context, id int) (LevelInfo, error) {
	raw, err := c.post(ctx, "downloadGJLevel22.php", url.Values{"levelID": {strconv.Itoa(id)}})
	if err != nil {
		return LevelInfo{}, fmt.Errorf("download level %d: %w", id, err)
	}
	info, err := parseLevelDownload(raw)
	if err != nil {
		return LevelInfo{}, fmt.Errorf("parse level %d: %w", id, err)
	}

	var songs map[int]Song
	if search, err := c.post(ctx, "getGJLevels21.php", url.Values{"str": {strconv.Itoa(id)}, "type": {"0"}}); err == nil {
		var creators map[int]string
		if creators, songs, err = parseLevelSearch(search); err == nil {
			info.Creator = creators[info.PlayerID]
		}
	}
	if info.Creator == "" {
		info.Creator = c.userName(ctx, info.PlayerID)
	}

	if info.OfficialSong == 0 && info.CustomSongID > 0 {
		song, ok := songs[info.CustomSongID]
		if !ok || song.Name == "" || song.Artist == "" {
			if fetched, err := c.Song(ctx, info.CustomSongID); err == nil {
				song.Name = firstNonEmpty(song.Name, fetched.Name)
				song.Artist = firstNonEmpty(song.Artist, fetched.Artist)
			}
		}
		info.PrimarySong, info.Artist = song.Name, song.Artist
	}
	return info, nil
}

// userName looks a player up by user id and then by account id. Failures
// yield "".
func (c *ServerClient) userName(ctx context.Context, playerID int) string {
	if playerID == 0 {
		return ""
	}
	for _, field := range []string{"targetUserID", "targetAccountID"} {
		raw, err := c.post(ctx, "getGJUserInfo20.php", url.Values{field: {strconv.Itoa(playerID)}})
		if err != nil {
			continue
		}
		if name := parseKV(raw)["1"]; name != "" {
			return name
		}
	}
	return ""
}

func (c *ServerClient) Song(ctx context.Context, id int) (Song, error) {
	raw, err := c.post(ctx, "getGJSongInfo.php", url.Values{"songID": {strconv.Itoa(id)}})
	if err != nil {
		return Song{}, fmt.Errorf("song %d: %w", id, err)
	}
	return parseSong(raw)
}

func (c *ServerClient) post(ctx context.Context, endpoint string, form url.Values) (string, error) {
	form.Set("secret", secret)
	body := form.Encode()

	policy := &responseBackOff{BackOff: c.retry.exponential(), jitter: func() time.Duration {
		return c.jitter(c.retry.JitterMin, c.retry.JitterMax)
	}}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(max(c.retry.MaxAttempts-1, 0))), ctx)

	var text string
	attempt := 0
	op := func() error {
		attempt++
		policy.next = 0
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		if err := c.sleep(ctx, c.jitter(c.retry.JitterMin, c.retry.JitterMax)); err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.do(ctx, endpoint, body)
		if err != nil {
			return fmt.Errorf("request data error: %w", err)
		}

		status := resp.StatusCode
		switch {
		case status >= 200 && status < 400:
			if text, err = readText(resp); err != nil {
				return backoff.Permanent(err)
			}
			return nil
		case status == http.StatusTooManyRequests || status >= 500:
			resp.Body.Close()
			if status == http.StatusTooManyRequests {
				if after, ok := retryAfter(resp); ok {
					policy.next = after
				}
			}
			return fmt.Errorf("%w: %s returned %d", ErrStatus, endpoint, status)
		case status == http.StatusForbidden:
			resp.Body.Close()
			err := fmt.Errorf("%w: %s returned 403", ErrBlocked, endpoint)
			if attempt >= 2 {
				return backoff.Permanent(err)
			}
			policy.next = c.retry.ForbiddenWait
			return err
		default:
			resp.Body.Close()
			return backoff.Permanent(fmt.Errorf("%w: %s returned %d", ErrStatus, endpoint, status))
		}
	}

	var timer backoff.Timer
	if c.newTimer != nil {
		timer = c.newTimer()
	}
	if err := backoff.RetryNotifyWithTimer(op, b, nil, timer); err != nil {
		return "", err
	}
	return text, nil
}

// responseBackOff follows the exponential schedule unless the last response
// named its own wait, and adds jitter to every wait.
type responseBackOff struct {
	backoff.BackOff
	next   time.Duration
	jitter func() time.Duration
}

func (b *responseBackOff) NextBackOff() time.Duration {
	d := b.BackOff.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if b.next > 0 {
		d = b.next
	}
	return d + b.jitter()
}

func (b *responseBackOff) Reset() {
	b.next = 0
	b.BackOff.Reset()
}

func (c *ServerClient) do(ctx context.Context, endpoint, body string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "")
	req.Header.Set("Accept", "*/*")
	return c.client.Do(req)
}

func readText(resp *http.Response) (string, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("response read error: %w", err)
	}
	text := strings.TrimSpace(string(body))
	if text == "" || text == "-1" {
		return "", ErrNotFound
	}
	lower := strings.ToLower(text)
	if (strings.Contains(lower, "<html") || strings.Contains(lower, "<!doctype html")) && strings.Contains(lower, "cloudflare") {
		return "", fmt.Errorf("%w: cloudflare challenge", ErrBlocked)
	}
	return text, nil
}

// retryAfter reads a Retry-After header in seconds. A header that is not a
// number means 30 seconds.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 30 * time.Second, true
	}
	return time.Duration(max(seconds, 0) * float64(time.Second)), true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func randomDuration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rand.Int63n(int64(hi-lo)))
}

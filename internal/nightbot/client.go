package nightbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.nightbot.tv/1"

	errorBodyLimit = 512
)

// ErrNotFound is returned when the channel has never been registered with Nightbot.
var ErrNotFound = errors.New("nightbot channel not found")

type (
	// Command is a custom command. Message is nil when the entry has none,
	// an empty message is a valid value.
	Command struct {
		Name    string  `json:"name"`
		Message *string `json:"message"`
	}

	Client struct {
		http    *http.Client
		baseURL string
		limiter *rate.Limiter
	}

	Option func(*Client)

	channelResponse struct {
		Channel *struct {
			ID string `json:"_id"`
		} `json:"channel"`
	}

	commandsResponse struct {
		Commands []Command `json:"commands"`
	}
)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}

func NewClient(httpClient *http.Client, opts ...Option) *Client {
	res := &Client{
		http:    httpClient,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Commands returns the custom commands of the Nightbot channel bound to the
// given Twitch login name.
func (c *Client) Commands(ctx context.Context, login string) ([]Command, error) {
	channelID, err := c.channelID(ctx, login)
	if err != nil {
		return nil, err
	}

	var resp commandsResponse
	if err := c.get(ctx, "/commands", http.Header{"Nightbot-Channel": {channelID}}, &resp); err != nil {
		return nil, err
	}
	if resp.Commands == nil {
		return nil, errors.New("commands missing in nightbot response")
	}

	return resp.Commands, nil
}

func (c *Client) channelID(ctx context.Context, login string) (string, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" {
		return "", ErrNotFound
	}

	var resp channelResponse
	if err := c.get(ctx, "/channels/t/"+url.PathEscape(login), nil, &resp); err != nil {
		return "", err
	}
	if resp.Channel == nil || resp.Channel.ID == "" {
		return "", errors.New("channel id missing in nightbot response")
	}

	return resp.Channel.ID, nil
}

func (c *Client) get(ctx context.Context, path string, header http.Header, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("get %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("get %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

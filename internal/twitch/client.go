package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.twitch.tv/helix"
	TokenURL       = "https://id.twitch.tv/oauth2/token"

	errorBodyLimit = 512
)

// ErrNotFound is returned when no channel matches the requested name or id.
var ErrNotFound = errors.New("twitch channel not found")

type (
	User struct {
		ID          int64
		Login       string
		DisplayName string
	}

	Client struct {
		http     *http.Client
		clientID string
		baseURL  string
		limiter  *rate.Limiter
	}

	Option func(*Client)

	usersResponse struct {
		Data []struct {
			ID          string `json:"id"`
			Login       string `json:"login"`
			DisplayName string `json:"display_name"`
		} `json:"data"`
	}

	channelsResponse struct {
		Data []struct {
			BroadcasterID string `json:"broadcaster_id"`
			Title         string `json:"title"`
		} `json:"data"`
	}

	streamsResponse struct {
		Data []struct {
			UserID string `json:"user_id"`
			Type   string `json:"type"`
		} `json:"data"`
	}
)

// NewHTTPClient returns a client that authenticates every request with an
// app access token obtained through the client credentials flow. An empty
// tokenURL means TokenURL.
func NewHTTPClient(ctx context.Context, clientID, clientSecret, tokenURL string) *http.Client {
	if tokenURL == "" {
		tokenURL = TokenURL
	}
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return conf.Client(ctx)
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithRateLimit limits outgoing requests to rps per second.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}

func NewClient(httpClient *http.Client, clientID string, opts ...Option) *Client {
	res := &Client{
		http:     httpClient,
		clientID: clientID,
		baseURL:  DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

func (c *Client) ResolveName(ctx context.Context, name string) (User, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return User{}, ErrNotFound
	}
	return c.user(ctx, url.Values{"login": {name}})
}

func (c *Client) User(ctx context.Context, channelID int64) (User, error) {
	return c.user(ctx, url.Values{"id": {strconv.FormatInt(channelID, 10)}})
}

func (c *Client) DisplayName(ctx context.Context, channelID int64) (string, error) {
	u, err := c.User(ctx, channelID)
	if err != nil {
		return "", err
	}
	return u.DisplayName, nil
}

func (c *Client) LoginName(ctx context.Context, channelID int64) (string, error) {
	u, err := c.User(ctx, channelID)
	if err != nil {
		return "", err
	}
	if u.Login == "" {
		return "", fmt.Errorf("login name missing for channelID=%d", channelID)
	}
	return u.Login, nil
}

func (c *Client) Title(ctx context.Context, channelID int64) (string, error) {
	var resp channelsResponse
	if err := c.get(ctx, "/channels", url.Values{"broadcaster_id": {strconv.FormatInt(channelID, 10)}}, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("channel information for channelID=%d: %w", channelID, ErrNotFound)
	}
	return resp.Data[0].Title, nil
}

// IsLive reports whether the channel currently has an active stream.
func (c *Client) IsLive(ctx context.Context, channelID int64) (bool, error) {
	var resp streamsResponse
	if err := c.get(ctx, "/streams", url.Values{"user_id": {strconv.FormatInt(channelID, 10)}}, &resp); err != nil {
		return false, err
	}
	return len(resp.Data) > 0, nil
}

func (c *Client) user(ctx context.Context, query url.Values) (User, error) {
	var resp usersResponse
	if err := c.get(ctx, "/users", query, &resp); err != nil {
		return User{}, err
	}
	if len(resp.Data) == 0 {
		return User{}, ErrNotFound
	}

	data := resp.Data[0]
	id, err := strconv.ParseInt(data.ID, 10, 64)
	if err != nil {
		return User{}, fmt.Errorf("parse user id %q: %w", data.ID, err)
	}

	return User{ID: id, Login: data.Login, DisplayName: data.DisplayName}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("get %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

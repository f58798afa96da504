package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// Discord API base URL
	defaultAPIBaseURL = "https://discord.com/api/v10"

	// Default timeout for Discord API requests
	defaultRESTTimeout = 10 * time.Second

	// Max attempts when rate limited
	maxRetries = 3
)

// HTTPError is a non-success response from the Discord API.
type HTTPError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("discord %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Client calls the Discord REST API with a bot token.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithAPIBaseURL sets a custom Discord API base URL (for testing)
func WithAPIBaseURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Client
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultAPIBaseURL,
		httpClient: &http.Client{
			Timeout: defaultRESTTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ApplicationID returns the id of the application that owns the token.
func (c *Client) ApplicationID(ctx context.Context) (string, error) {
	var app struct {
		ID string `json:"id"`
	}

	if err := c.do(ctx, http.MethodGet, "/applications/@me", nil, &app); err != nil {
		return "", err
	}

	return app.ID, nil
}

// GatewayURL returns the websocket URL to connect the gateway to.
func (c *Client) GatewayURL(ctx context.Context) (string, error) {
	var gw struct {
		URL string `json:"url"`
	}

	if err := c.do(ctx, http.MethodGet, "/gateway/bot", nil, &gw); err != nil {
		return "", err
	}

	return gw.URL, nil
}

// RegisterCommands overwrites the application's slash commands. With a guild
// id the commands are registered on that guild only, which applies instantly.
func (c *Client) RegisterCommands(ctx context.Context, appID, guildID string, cmds []ApplicationCommand) error {
	path := "/applications/" + appID + "/commands"
	if guildID != "" {
		path = "/applications/" + appID + "/guilds/" + guildID + "/commands"
	}

	return c.do(ctx, http.MethodPut, path, cmds, nil)
}

// Respond sends the single callback allowed for an interaction.
func (c *Client) Respond(ctx context.Context, interactionID, token string, resp InteractionResponse) error {
	path := "/interactions/" + interactionID + "/" + token + "/callback"

	return c.do(ctx, http.MethodPost, path, resp, nil)
}

// do sends a JSON request with retry on rate limiting and decodes the
// response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var data []byte

	if body != nil {
		var err error

		data, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		var reader io.Reader
		if data != nil {
			reader = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Authorization", "Bot "+c.token)
		req.Header.Set("User-Agent", "DiscordBot (teamfinder, 1.0)")

		if data != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}

		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()

		if readErr != nil {
			return fmt.Errorf("read response: %w", readErr)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if out == nil || len(respBody) == 0 {
				return nil
			}

			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}

			return nil

		case resp.StatusCode == http.StatusTooManyRequests:
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryAfter(resp.Header.Get("Retry-After"))):
				continue
			}
		}

		return &HTTPError{Method: method, Path: path, Status: resp.StatusCode, Body: string(respBody)}
	}

	return fmt.Errorf("discord %s %s: rate limited after %d attempts", method, path, maxRetries)
}

// retryAfter parses a Retry-After header given in (possibly fractional)
// seconds. It defaults to one second.
func retryAfter(header string) time.Duration {
	if header == "" {
		return time.Second
	}

	seconds, err := strconv.ParseFloat(header, 64)
	if err != nil || seconds < 0 {
		return time.Second
	}

	return time.Duration(seconds * float64(time.Second))
}

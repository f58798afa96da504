package discord

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient("tok", WithAPIBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestClient_Respond(t *testing.T) {
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/interactions/42/itok/callback", r.URL.Path)
		assert.Equal(t, "Bot tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &gotBody))

		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Respond(context.Background(), "42", "itok", NewMessageResponse("hello"))
	require.NoError(t, err)

	assert.EqualValues(t, 4, gotBody["type"])
	assert.Equal(t, map[string]any{"content": "hello"}, gotBody["data"])
}

func TestClient_RegisterCommands(t *testing.T) {
	tests := []struct {
		name    string
		guildID string
		path    string
	}{
		{"global", "", "/applications/app/commands"},
		{"guild", "g1", "/applications/app/guilds/g1/commands"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []ApplicationCommand

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)

				data, _ := io.ReadAll(r.Body)
				assert.NoError(t, json.Unmarshal(data, &got))

				_, _ = w.Write(data)
			})

			cmds := []ApplicationCommand{{Name: "team", Description: "d", Type: CommandTypeChatInput}}
			require.NoError(t, c.RegisterCommands(context.Background(), "app", tt.guildID, cmds))
			assert.Equal(t, cmds, got)
		})
	}
}

func TestClient_ApplicationID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applications/@me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"1234","name":"bot"}`))
	})

	id, err := c.ApplicationID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1234", id)
}

func TestClient_GatewayURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gateway/bot", r.URL.Path)
		_, _ = w.Write([]byte(`{"url":"wss://gateway.example","shards":1}`))
	})

	url, err := c.GatewayURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "wss://gateway.example", url)
}

func TestClient_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Respond(context.Background(), "1", "t", NewMessageResponse("x")))
	assert.EqualValues(t, 2, calls.Load())
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := c.Respond(context.Background(), "1", "t", NewMessageResponse("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
	assert.EqualValues(t, maxRetries, calls.Load())
}

func TestClient_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"401: Unauthorized"}`))
	})

	err := c.Respond(context.Background(), "1", "t", NewMessageResponse("x"))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Contains(t, httpErr.Body, "Unauthorized")
}

func TestClient_RateLimitWaitHonorsContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Respond(ctx, "1", "t", NewMessageResponse("x"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, time.Second, retryAfter(""))
	assert.Equal(t, time.Second, retryAfter("soon"))
	assert.Equal(t, time.Duration(0), retryAfter("0"))
	assert.Equal(t, 1500*time.Millisecond, retryAfter("1.5"))
}

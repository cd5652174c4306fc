package opencode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planpilot/internal/config"
	"planpilot/internal/domain"
	"planpilot/internal/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(config.HostSettings{
		Directory:      "/work/app",
		RequestTimeout: 5 * time.Second,
		URL:            srv.URL + "/",
	})
	require.NoError(t, err)
	return c
}

func TestClient_SubmitContinuation(t *testing.T) {
	var got wirePromptRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/session/ses_1/prompt_async", r.URL.Path)
		assert.Equal(t, "/work/app", r.Header.Get(DirectoryHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.SubmitContinuation(context.Background(), domain.ContinuationRequest{
		Agent:     "build",
		Model:     domain.ModelRef{ProviderID: "anthropic", ModelID: "sonnet"},
		SessionID: "ses_1",
		Text:      "continue",
		Variant:   "high",
	})

	require.NoError(t, err)
	assert.Equal(t, "build", got.Agent)
	assert.Equal(t, &wireModel{ProviderID: "anthropic", ModelID: "sonnet"}, got.Model)
	assert.Equal(t, "high", got.Variant)
	assert.Equal(t, []wireTextPart{{Type: "text", Text: "continue"}}, got.Parts)
}

func TestClient_SubmitContinuationWithoutModel(t *testing.T) {
	var raw map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.SubmitContinuation(context.Background(), domain.ContinuationRequest{SessionID: "ses_1", Text: "go"}))

	assert.NotContains(t, raw, "model")
	assert.NotContains(t, raw, "agent")
}

func TestClient_HostError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `{"name":"MessageAbortedError","data":{"message":"aborted by user"}}`)
	})

	err := c.SubmitContinuation(context.Background(), domain.ContinuationRequest{SessionID: "ses_1", Text: "go"})

	var hostErr *ports.HostError
	require.True(t, errors.As(err, &hostErr))
	assert.Equal(t, "MessageAbortedError", hostErr.Name)
	assert.Equal(t, "aborted by user", hostErr.Message)
	assert.Equal(t, http.StatusBadRequest, hostErr.StatusCode)
}

func TestClient_UnnamedHostError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	err := c.Log(context.Background(), ports.LogInfo, "hello", nil)

	var hostErr *ports.HostError
	require.True(t, errors.As(err, &hostErr))
	assert.Empty(t, hostErr.Name)
	assert.Contains(t, hostErr.Error(), "status 502: boom")
}

func TestClient_RecentMessages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/session/ses_1/message", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		_, _ = fmt.Fprint(w, `[
			{"info":{"id":"msg_u","sessionID":"ses_1","role":"user","time":{"created":1767268800000},
				"agent":"build","model":{"providerID":"anthropic","modelID":"sonnet"},"variant":"high"},
			 "parts":[{"type":"text","text":"do it"}]},
			{"info":{"id":"msg_a","sessionID":"ses_1","role":"assistant","time":{"created":1767268801000,"completed":1767268805000},
				"mode":"build","providerID":"anthropic","modelID":"sonnet","finish":"stop"},
			 "parts":[]}
		]`)
	})

	msgs, err := c.RecentMessages(context.Background(), "ses_1", 20)

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.HostMessage{
		Agent:   "build",
		Created: time.UnixMilli(1767268800000).UTC(),
		ID:      "msg_u",
		Model:   domain.ModelRef{ProviderID: "anthropic", ModelID: "sonnet"},
		Role:    domain.RoleUser,
		Variant: "high",
	}, msgs[0])
	assert.Equal(t, "build", msgs[1].Agent)
	assert.Equal(t, "stop", msgs[1].Finish)
	assert.True(t, msgs[1].Terminal())

	conv := domain.ResolveConversation(msgs)
	assert.True(t, conv.Ready())
}

func TestClient_Log(t *testing.T) {
	var got wireLogRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/log", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = fmt.Fprint(w, "true")
	})

	require.NoError(t, c.Log(context.Background(), ports.LogWarn, "retry scheduled", map[string]any{"attempt": 1}))

	assert.Equal(t, "planpilot", got.Service)
	assert.Equal(t, "warn", got.Level)
	assert.Equal(t, "retry scheduled", got.Message)
	assert.Equal(t, float64(1), got.Extra["attempt"])
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(config.HostSettings{URL: " "})
	assert.Error(t, err)
}

func TestClient_Subscribe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/event", r.URL.Path)
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = fmt.Fprint(w, "data: {\"type\":\"server.connected\",\"properties\":{}}\n\n")
		_, _ = fmt.Fprint(w, "data: {\"type\":\"session.idle\",\"properties\":{\"sessionID\":\"ses_1\"}}\n\n")
		_, _ = fmt.Fprint(w, "data: not json\n\n")
		_, _ = fmt.Fprint(w, ": keepalive\n\n")
		_, _ = fmt.Fprint(w, "data: {\"type\":\"session.compacting\",\n")
		_, _ = fmt.Fprint(w, "data: \"properties\":{\"sessionID\":\"ses_2\"}}\n\n")
	})

	var events []domain.HostEvent
	err := c.Subscribe(context.Background(), func(_ context.Context, ev domain.HostEvent) {
		events = append(events, ev)
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.HostEvent{
		domain.NewIdleEvent("ses_1"),
		domain.NewCompactingEvent("ses_2"),
	}, events)
}

func TestStream_ReconnectsUntilCancelled(t *testing.T) {
	var (
		mu    sync.Mutex
		conns int
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		conns++
		n := conns
		mu.Unlock()
		_, _ = fmt.Fprintf(w, "data: {\"type\":\"session.idle\",\"properties\":{\"sessionID\":\"ses_%d\"}}\n\n", n)
	})

	var seen []string
	err := NewStream(c, time.Millisecond).Run(ctx, func(_ context.Context, ev domain.HostEvent) {
		seen = append(seen, ev.Session())
		if len(seen) == 3 {
			cancel()
		}
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ses_1", "ses_2", "ses_3"}, seen)
}

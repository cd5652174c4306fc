package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Prompt is a continuation the fake host received
type Prompt struct {
	Body      map[string]any
	SessionID string
}

// Text returns the concatenated text parts of the prompt
func (p Prompt) Text() string {
	parts, _ := p.Body["parts"].([]any)
	var sb strings.Builder
	for _, raw := range parts {
		part, _ := raw.(map[string]any)
		if text, ok := part["text"].(string); ok {
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// FakeHost imitates the assistant host's HTTP API: an SSE event stream,
// the message history of one session and the prompt endpoint.
type FakeHost struct {
	Prompts chan Prompt

	mu       sync.Mutex
	events   []string
	logs     []string
	messages string
	srv      *httptest.Server
}

// NewFakeHost starts a fake host. events are raw JSON payloads sent once to
// every stream subscriber; messages is the JSON history returned for any
// session.
func NewFakeHost(tb testing.TB, messages string, events ...string) *FakeHost {
	tb.Helper()

	h := &FakeHost{
		Prompts:  make(chan Prompt, 16),
		events:   events,
		messages: messages,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /event", h.serveEvents)
	mux.HandleFunc("GET /session/{id}/message", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, h.messages)
	})
	mux.HandleFunc("POST /session/{id}/prompt_async", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Prompts <- Prompt{Body: body, SessionID: r.PathValue("id")}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /log", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		h.mu.Lock()
		h.logs = append(h.logs, string(data))
		h.mu.Unlock()
		_, _ = io.WriteString(w, "true")
	})

	h.srv = httptest.NewServer(mux)
	tb.Cleanup(h.srv.Close)
	return h
}

// URL returns the base URL of the fake host
func (h *FakeHost) URL() string {
	return h.srv.URL
}

// Logs returns the raw bodies posted to /log
func (h *FakeHost) Logs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.logs...)
}

func (h *FakeHost) serveEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	flusher, _ := w.(http.Flusher)

	_, _ = io.WriteString(w, "data: {\"type\":\"server.connected\",\"properties\":{}}\n\n")
	for _, ev := range h.events {
		_, _ = fmt.Fprintf(w, "data: %s\n\n", ev)
	}
	if flusher != nil {
		flusher.Flush()
	}

	// Hold the stream open like the real host
	<-r.Context().Done()
}

// Package opencode talks to an OpenCode-style assistant host over its HTTP
// API: prompts and history over JSON requests, events over SSE.
package opencode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"planpilot/internal/config"
	"planpilot/internal/domain"
	"planpilot/internal/logging"
	"planpilot/internal/ports"
)

// DirectoryHeader scopes a request to a project directory on the host
const DirectoryHeader = "x-opencode-directory"

const logService = "planpilot"

// Client implements ports.Host against the host's HTTP API
type Client struct {
	baseURL   string
	directory string
	http      *http.Client
	stream    *http.Client
}

// Verify interface compliance at compile time
var _ ports.Host = (*Client)(nil)

// NewClient creates a client for the configured host
func NewClient(s config.HostSettings) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(s.URL), "/")
	if base == "" {
		return nil, fmt.Errorf("host URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid host URL %q: %w", s.URL, err)
	}

	return &Client{
		baseURL:   base,
		directory: s.Directory,
		http:      &http.Client{Timeout: s.RequestTimeout},
		// the event stream stays open indefinitely
		stream: &http.Client{},
	}, nil
}

// SubmitContinuation posts a prompt without waiting for the turn to finish
func (c *Client) SubmitContinuation(ctx context.Context, req domain.ContinuationRequest) error {
	body := wirePromptRequest{
		Agent:   req.Agent,
		Parts:   []wireTextPart{{Type: "text", Text: req.Text}},
		Variant: req.Variant,
	}
	if !req.Model.IsZero() {
		body.Model = &wireModel{ModelID: req.Model.ModelID, ProviderID: req.Model.ProviderID}
	}

	path := "/session/" + url.PathEscape(req.SessionID) + "/prompt_async"
	logging.Logger.Debug("Submitting continuation", "session", req.SessionID, "agent", req.Agent)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// RecentMessages returns up to limit of the session's latest messages
func (c *Client) RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.HostMessage, error) {
	path := "/session/" + url.PathEscape(sessionID) + "/message"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var raw []wireMessageWithParts
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	messages := make([]domain.HostMessage, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, m.Info.toDomain())
	}
	return messages, nil
}

// Log writes to the host's application log
func (c *Client) Log(ctx context.Context, level ports.LogLevel, message string, extra map[string]any) error {
	return c.do(ctx, http.MethodPost, "/log", wireLogRequest{
		Extra:   extra,
		Level:   string(level),
		Message: message,
		Service: logService,
	}, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.directory != "" {
		req.Header.Set(DirectoryHeader, c.directory)
	}
	return req, nil
}

// do sends a JSON request and decodes the response into out when it is
// non-nil
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeHostError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeHostError maps a failed response to a HostError. The host reports
// named errors as {"name": ..., "data": {"message": ...}}.
func decodeHostError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	hostErr := &ports.HostError{StatusCode: resp.StatusCode}

	var named wireError
	if err := json.Unmarshal(data, &named); err == nil && named.Name != "" {
		hostErr.Name = named.Name
		hostErr.Message = named.Data.Message
	}
	if hostErr.Message == "" {
		hostErr.Message = fmt.Sprintf("host returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return hostErr
}

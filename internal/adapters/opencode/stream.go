package opencode

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"planpilot/internal/domain"
	"planpilot/internal/logging"
)

// EventHandler receives decoded host events in arrival order
type EventHandler func(ctx context.Context, ev domain.HostEvent)

// Subscribe reads the host's event stream until it ends or ctx is done
func (c *Client) Subscribe(ctx context.Context, handle EventHandler) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/event", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.stream.Do(req)
	if err != nil {
		return fmt.Errorf("connect event stream: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decodeHostError(resp)
	}
	logging.Logger.Info("Event stream connected", "url", c.baseURL+"/event")

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var data []string
	flush := func() {
		if len(data) == 0 {
			return
		}
		payload := strings.Join(data, "\n")
		data = data[:0]

		ev, err := DecodeEvent([]byte(payload))
		if err != nil {
			logging.Logger.Warn("Dropping undecodable event", "error", err)
			return
		}
		if ev != nil {
			handle(ctx, ev)
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	flush()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read event stream: %w", err)
	}
	return nil
}

// Stream keeps an event subscription alive, reconnecting after a fixed
// delay whenever the connection drops
type Stream struct {
	client         *Client
	reconnectDelay time.Duration
}

// NewStream creates a reconnecting stream over client
func NewStream(client *Client, reconnectDelay time.Duration) *Stream {
	return &Stream{client: client, reconnectDelay: reconnectDelay}
}

// Run delivers events to handle until ctx is cancelled
func (s *Stream) Run(ctx context.Context, handle EventHandler) error {
	for {
		err := s.client.Subscribe(ctx, handle)
		if ctx.Err() != nil {
			logging.Logger.Info("Event stream stopped")
			return nil
		}
		if err != nil {
			logging.Logger.Warn("Event stream failed", "error", err, "retryIn", s.reconnectDelay)
		} else {
			logging.Logger.Info("Event stream closed by host", "retryIn", s.reconnectDelay)
		}

		timer := time.NewTimer(s.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

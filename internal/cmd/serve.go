package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"planpilot/internal/adapters/opencode"
	"planpilot/internal/logging"
	"planpilot/internal/ports"
)

// shutdownGrace bounds the goodbye log sent to the host
const shutdownGrace = 2 * time.Second

// ServeCmd runs the auto-continue loop against the host's event stream
type ServeCmd struct {
	Directory string `help:"Project directory sent to the host (overrides host.directory)"`
	URL       string `help:"Host base URL (overrides host.url)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings
	if s.URL != "" {
		settings.Host.URL = s.URL
	}
	if s.Directory != "" {
		settings.Host.Directory = s.Directory
	}

	client, err := cli.Container.NewHostClient()
	if err != nil {
		return fmt.Errorf("failed to create host client: %w", err)
	}
	svc, err := cli.Container.NewAutoContinueService(client)
	if err != nil {
		return fmt.Errorf("failed to create auto-continue service: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Serving auto-continue",
		"host", settings.Host.URL,
		"directory", settings.Host.Directory,
		"enabled", settings.AutoContinue.Enabled)
	if !cli.JSON() {
		fmt.Fprintf(cli.Out(), "planpilot following %s (Ctrl+C to stop)\n", settings.Host.URL)
	}
	_ = client.Log(ctx, ports.LogInfo, "planpilot auto-continue attached", map[string]any{
		"enabled": settings.AutoContinue.Enabled,
	})

	stream := opencode.NewStream(client, settings.Host.ReconnectDelay)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return stream.Run(gctx, svc.HandleEvent)
	})
	g.Go(func() error {
		<-gctx.Done()
		// Stops timers and cancels in-flight host calls
		svc.Close()
		return nil
	})

	err = g.Wait()
	logging.Logger.Info("Auto-continue stopped", "sessions", svc.Registry().Len(), "error", err)

	logCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	_ = client.Log(logCtx, ports.LogInfo, "planpilot auto-continue detached", nil)

	if err != nil {
		return fmt.Errorf("event stream failed: %w", err)
	}
	return nil
}

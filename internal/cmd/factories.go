package cmd

import (
	adapterclock "planpilot/internal/adapters/clock"
	"planpilot/internal/adapters/opencode"
	adapterstorage "planpilot/internal/adapters/storage"
	"planpilot/internal/config"
	"planpilot/internal/ports"
	"planpilot/internal/services"
	"planpilot/internal/theme"
)

// Container holds all dependencies for the application
type Container struct {
	Clock       ports.Clock
	Palette     *theme.Palette
	Settings    *config.Settings
	TaskService *services.TaskService

	// Internal - the store doubles as the auto-continue work reader
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(settings.DBPath)
	if err != nil {
		return nil, err
	}

	clk := adapterclock.NewSystem()

	return &Container{
		Clock:       clk,
		Palette:     theme.NewPalette(config.NewStatusConfig(settings.Display)),
		Settings:    settings,
		TaskService: services.NewTaskService(repo, clk),
		repo:        repo,
	}, nil
}

// NewHostClient creates the assistant host client
func (c *Container) NewHostClient() (*opencode.Client, error) {
	return opencode.NewClient(c.Settings.Host)
}

// NewAutoContinueService wires the auto-continue loop against host
func (c *Container) NewAutoContinueService(host ports.Host) (*services.AutoContinueService, error) {
	cfg := services.NewAutoContinueConfig(c.Settings.AutoContinue)
	registry := services.NewSessionRegistry(cfg.SessionIdleTTL)
	return services.NewAutoContinueService(c.repo, host, c.Clock, registry, cfg)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

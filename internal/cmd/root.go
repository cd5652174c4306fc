package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"planpilot/internal/config"
	"planpilot/internal/logging"
)

const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	ConfigFile  string           `name:"config" help:"Path to planpilot.yaml (overrides the search paths)" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Format      string           `help:"Output format: table or json" enum:"table,json" default:"table" short:"f"`
	Session     string           `help:"Host session id the command acts for" env:"PLANPILOT_SESSION_ID"`

	Plan   PlanCmd   `cmd:"plan" help:"Manage plans"`
	Step   StepCmd   `cmd:"step" help:"Manage the steps of a plan"`
	Goal   GoalCmd   `cmd:"goal" help:"Manage the goals of a step"`
	Active ActiveCmd `cmd:"active" help:"Manage the active plan of a session"`
	Next   NextCmd   `cmd:"next" help:"Show the next step the session should work on"`
	Serve  ServeCmd  `cmd:"serve" help:"Follow the host event stream and auto-continue active plans"`
	Config ConfigCmd `cmd:"config" help:"Manage the configuration file"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetOutput redirects command output (stdout by default)
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// Out returns the writer commands print to
func (c *CLI) Out() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// JSON reports whether machine readable output was requested
func (c *CLI) JSON() bool {
	return c.Format == "json"
}

// Settings returns the loaded configuration snapshot
func (c *CLI) Settings() *config.Settings {
	return c.settings
}

// AfterApply loads configuration, initializes logging and wires the container
func (c *CLI) AfterApply() error {
	settings, err := config.Load(c.ConfigFile)
	if err != nil {
		return err
	}
	c.settings = settings

	// Precedence: CLI flags > env vars > planpilot.yaml > defaults.
	// The file only applies when the flag is still at its default.
	if c.MaxLogFiles == defaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("PLANPILOT_MAX_LOG_FILES"); !hasEnv {
			c.MaxLogFiles = settings.MaxLogFiles
		}
	}
	if !c.Debug && settings.Debug {
		c.Debug = true
	}
	if c.DebugFile == "" {
		c.DebugFile = settings.DebugFile
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (hooks, host plugins) append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PLANPILOT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PLANPILOT_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != defaultMaxLogFiles {
		os.Setenv("PLANPILOT_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container opens the store, which logs through logging.Logger
	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

package cmd

import (
	"fmt"
	"path/filepath"

	"planpilot/internal/config"
)

// ConfigCmd manages planpilot.yaml
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"init" help:"Write a planpilot.yaml with every default"`
	Show ConfigShowCmd `cmd:"show" help:"Show the resolved locations and host settings" default:"1"`
}

// ConfigInitCmd writes the default configuration file
type ConfigInitCmd struct {
	Force bool   `help:"Overwrite an existing file"`
	Path  string `help:"Destination (defaults to $PLANPILOT_HOME/planpilot.yaml)" type:"path"`
}

// Run executes the init command
func (c *ConfigInitCmd) Run(cli *CLI) error {
	path := c.Path
	if path == "" {
		path = filepath.Join(cli.Container.Settings.Home, config.ConfigName+".yaml")
	}
	if err := config.WriteDefault(path, c.Force); err != nil {
		return err
	}
	fmt.Fprintf(cli.Out(), "Wrote %s\n", path)
	return nil
}

// ConfigShowCmd prints the effective settings that matter for operations
type ConfigShowCmd struct{}

// Run executes the show command
func (c *ConfigShowCmd) Run(cli *CLI) error {
	s := cli.Container.Settings
	ac := s.AutoContinue

	if cli.JSON() {
		return printJSON(cli.Out(), map[string]any{
			"auto_continue_enabled": ac.Enabled,
			"db_path":               s.DBPath,
			"home":                  s.Home,
			"host_url":              s.Host.URL,
			"retry_max_attempts":    ac.Retry.MaxAttempts,
		})
	}

	w := newTable(cli.Out())
	fmt.Fprintf(w, "home\t%s\n", s.Home)
	fmt.Fprintf(w, "db_path\t%s\n", s.DBPath)
	fmt.Fprintf(w, "host.url\t%s\n", s.Host.URL)
	fmt.Fprintf(w, "host.directory\t%s\n", s.Host.Directory)
	fmt.Fprintf(w, "auto_continue.enabled\t%t\n", ac.Enabled)
	fmt.Fprintf(w, "auto_continue.debounce\t%s\n", ac.Debounce)
	fmt.Fprintf(w, "auto_continue.retry\t%d attempts, delays %v\n", ac.Retry.MaxAttempts, ac.Retry.Delays)
	return w.Flush()
}

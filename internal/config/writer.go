package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const fileHeader = `# planpilot configuration
# Every key can be overridden with PLANPILOT_<KEY> (nested keys joined by "_").
`

// WriteDefault writes the default settings as YAML to path. An existing
// file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	path = ExpandPath(path)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	data, err := MarshalDefault()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MarshalDefault renders the default settings as a commented YAML document
func MarshalDefault() ([]byte, error) {
	v := newViper()
	tree := humanize(v.AllSettings())
	// Paths are resolved at load time
	delete(tree, "home")
	delete(tree, "db_path")

	body, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return append([]byte(fileHeader), body...), nil
}

// humanize renders durations as strings ("1.5s") so they read back through
// the duration decode hook
func humanize(node map[string]any) map[string]any {
	out := make(map[string]any, len(node))
	for k, val := range node {
		switch typed := val.(type) {
		case map[string]any:
			out[k] = humanize(typed)
		case time.Duration:
			out[k] = typed.String()
		case []time.Duration:
			strs := make([]string, len(typed))
			for i, d := range typed {
				strs[i] = d.String()
			}
			out[k] = strs
		default:
			out[k] = val
		}
	}
	return out
}

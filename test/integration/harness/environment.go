package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DefaultSessionID is the host session every environment acts for
const DefaultSessionID = "ses_integration"

// TestEnvironment provides an isolated test environment with its own PLANPILOT_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp PLANPILOT_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	home := filepath.Join(tb.TempDir(), ".planpilot")
	if err := os.MkdirAll(home, 0755); err != nil {
		tb.Fatalf("Failed to create home directory: %v", err)
	}

	return &TestEnvironment{
		Home:     home,
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out PLANPILOT_* variables and sets:
//   - PLANPILOT_HOME to the temp directory
//   - PLANPILOT_DEBUG to empty string (disables debug logging)
//   - PLANPILOT_SESSION_ID to DefaultSessionID
//   - HOME to the temp root, so no user planpilot.yaml is picked up
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+4+len(e.extraEnv))

	overrideKeys := map[string]bool{"HOME": true, "XDG_CONFIG_HOME": true}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "PLANPILOT_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"PLANPILOT_HOME="+e.Home,
		"PLANPILOT_DEBUG=",
		"PLANPILOT_SESSION_ID="+DefaultSessionID,
		"HOME="+e.TempDir(),
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "planpilot.db")
}

// TempDir returns the root temp directory used for this test environment.
func (e *TestEnvironment) TempDir() string {
	return filepath.Dir(e.Home)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

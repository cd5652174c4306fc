package integration_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planpilot/test/integration/harness"
)

const historyJSON = `[
	{"info":{"id":"msg_u","sessionID":"ses_integration","role":"user","time":{"created":1767268800000},
		"agent":"build","model":{"providerID":"anthropic","modelID":"sonnet"}},"parts":[]},
	{"info":{"id":"msg_a","sessionID":"ses_integration","role":"assistant",
		"time":{"created":1767268801000,"completed":1767268805000},"finish":"stop"},"parts":[]}
]`

func idleEvent(sessionID string) string {
	return fmt.Sprintf(`{"type":"session.idle","properties":{"sessionID":%q}}`, sessionID)
}

func TestServeContinuesActivePlan(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "plan", "add", "Migrate config",
		"--step", "Port loader to viper", "--activate")
	harness.AssertSuccess(t, result)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "goal", "add", "1", "Env overrides work"))

	host := harness.NewFakeHost(t, historyJSON, idleEvent(harness.DefaultSessionID))
	proc := harness.StartCommand(t, env, "serve", "--url", host.URL())

	var prompt harness.Prompt
	select {
	case prompt = <-host.Prompts:
	case <-time.After(20 * time.Second):
		res := proc.Stop()
		t.Fatalf("no continuation received.\nStdout: %s\nStderr: %s", res.Stdout, res.Stderr)
	}

	res := proc.Stop()
	harness.AssertSuccess(t, res)

	assert.Equal(t, harness.DefaultSessionID, prompt.SessionID)
	assert.Equal(t, "build", prompt.Body["agent"])
	text := prompt.Text()
	assert.Contains(t, text, `plan #1 "Migrate config"`)
	assert.Contains(t, text, "Port loader to viper")
	assert.Contains(t, text, "- [ ] #1 Env overrides work")

	require.NotEmpty(t, host.Logs())
	assert.Contains(t, host.Logs()[0], "auto-continue attached")
}

func TestServeIgnoresHumanSteps(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "plan", "add", "Review",
		"--step", "Sign off the design", "--executor", "human", "--activate")
	harness.AssertSuccess(t, result)

	host := harness.NewFakeHost(t, historyJSON, idleEvent(harness.DefaultSessionID))
	proc := harness.StartCommand(t, env, "serve", "--url", host.URL())

	select {
	case p := <-host.Prompts:
		proc.Stop()
		t.Fatalf("unexpected continuation: %s", p.Text())
	case <-time.After(2 * time.Second):
	}

	harness.AssertSuccess(t, proc.Stop())
}

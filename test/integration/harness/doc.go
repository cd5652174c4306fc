// Package harness provides utilities for integration testing the planpilot CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - PLANPILOT_HOME: Isolated per test (temp directory)
//   - PLANPILOT_DEBUG: Disabled to reduce noise
//   - PLANPILOT_SESSION_ID: Fixed per environment so active-plan commands work
package harness

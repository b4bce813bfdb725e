// Package harness provides utilities for integration testing the proot CLI.
// It handles binary compilation, environment isolation, a scripted stand-in
// for the gh CLI, and command execution.
//
// Environment variables managed:
//   - PROOT_HOME: Isolated per test (temp directory)
//   - PROOT_*: Inherited values are dropped
//   - PATH: Prefixed with the directory holding the fake gh
package harness

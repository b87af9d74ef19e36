// Package testutil provides fakes and helpers for testing movex components.
//
// Key components:
//   - ScriptedConsole: a types.Console that replays canned answers and records prompts
//   - RecordingRunner: an executor.Runner that records commands and fails on demand
//   - CountingFs: an afero.Fs wrapper that counts mutating calls
//   - WriteTree / ReadTree: declarative filesystem setup and inspection
//
// All test data should be defined inline, not in external files.
package testutil

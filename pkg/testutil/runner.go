package testutil

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/executor"
)

// privilegeCommands are skipped when matching a recorded command by program
var privilegeCommands = map[string]bool{"sudo": true, "doas": true}

// RecordingRunner records every command and answers from canned tables
// keyed by program name, ignoring any privilege prefix.
type RecordingRunner struct {
	Calls []executor.Command

	// Outputs maps a program to the stdout it produces
	Outputs map[string]string
	// Failures maps a program to the error it returns
	Failures map[string]error
}

// NewRecordingRunner creates a runner where every command succeeds
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{
		Outputs:  make(map[string]string),
		Failures: make(map[string]error),
	}
}

// WithOutput makes program print stdout
func (r *RecordingRunner) WithOutput(program, stdout string) *RecordingRunner {
	r.Outputs[program] = stdout
	return r
}

// FailOn makes program exit with status 1
func (r *RecordingRunner) FailOn(program string) *RecordingRunner {
	r.Failures[program] = errors.Newf(errors.ErrExternalTool, "%s failed", program).
		WithDetail("exit_code", 1)
	return r
}

// Run implements executor.Runner
func (r *RecordingRunner) Run(_ context.Context, cmd executor.Command) (executor.Result, error) {
	r.Calls = append(r.Calls, cmd)
	program := Program(cmd)

	result := executor.Result{Stdout: r.Outputs[program]}
	if err, ok := r.Failures[program]; ok {
		result.ExitCode = 1
		return result, err
	}
	return result, nil
}

// Programs lists the program of every recorded call, in order
func (r *RecordingRunner) Programs() []string {
	programs := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		programs = append(programs, Program(call))
	}
	return programs
}

// CommandLines lists every recorded call as a single string
func (r *RecordingRunner) CommandLines() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		lines = append(lines, strings.Join(call.Argv, " "))
	}
	return lines
}

// Program returns the base name of the program cmd runs, skipping a
// privilege prefix
func Program(cmd executor.Command) string {
	for _, arg := range cmd.Argv {
		if privilegeCommands[arg] {
			continue
		}
		return filepath.Base(arg)
	}
	return ""
}

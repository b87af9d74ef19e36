package executor

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	movexerrors "github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/rs/zerolog"
)

// Command describes one external process invocation
type Command struct {
	// Argv is the program followed by its arguments
	Argv []string
	// Dir is the working directory, empty for the current one
	Dir string
	// Stream copies the process output to the terminal while it runs
	Stream bool
	// ReadOnly commands still run in dry-run mode
	ReadOnly bool
}

// String renders the command line for logs and reports
func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// Result captures what a finished process produced
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	DryRun   bool
}

// Runner executes commands. Implementations must wait for the process to
// exit before returning.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// OSRunner runs commands with os/exec
type OSRunner struct {
	logger zerolog.Logger
	dryRun bool
	stdout io.Writer
	stderr io.Writer
}

// NewOSRunner creates a runner backed by real processes. In dry-run mode
// only ReadOnly commands are executed, the rest are logged.
func NewOSRunner(dryRun bool) *OSRunner {
	return &OSRunner{
		logger: logging.GetLogger("executor"),
		dryRun: dryRun,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects streamed output, mainly for tests
func (r *OSRunner) WithOutput(stdout, stderr io.Writer) *OSRunner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run executes cmd and waits for it to finish. A non-zero exit status is
// returned as an ErrExternalTool error carrying the exit code and stderr.
func (r *OSRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Argv) == 0 {
		return Result{}, movexerrors.New(movexerrors.ErrInvalidInput, "command requires a program name")
	}

	if r.dryRun && !cmd.ReadOnly {
		r.logger.Info().Str("command", cmd.String()).Msg("Dry run mode - command would be executed")
		return Result{DryRun: true}, nil
	}

	logging.LogCommand(cmd.Argv[0], cmd.Argv[1:])
	start := time.Now()

	proc := exec.CommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...)
	proc.Dir = cmd.Dir
	proc.Stdin = os.Stdin

	var stdout, stderr bytes.Buffer
	if cmd.Stream {
		proc.Stdout = io.MultiWriter(&stdout, r.stdout)
		proc.Stderr = io.MultiWriter(&stderr, r.stderr)
	} else {
		proc.Stdout = &stdout
		proc.Stderr = &stderr
	}

	err := proc.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		// -1 when the process never started or was killed
		ExitCode: proc.ProcessState.ExitCode(),
		Duration: time.Since(start),
	}

	if stdout.Len() > 0 {
		r.logger.Debug().Str("output", result.Stdout).Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		r.logger.Debug().Str("output", result.Stderr).Msg("Command stderr")
	}

	if err != nil {
		r.logger.Error().
			Err(err).
			Str("command", cmd.String()).
			Int("exit_code", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Command execution failed")

		return result, movexerrors.Wrapf(err, movexerrors.ErrExternalTool, "%s failed", cmd.Argv[0]).
			WithDetail("command", cmd.String()).
			WithDetail("exit_code", result.ExitCode).
			WithDetail("stderr", strings.TrimSpace(result.Stderr))
	}

	r.logger.Debug().
		Str("command", cmd.String()).
		Dur("duration", result.Duration).
		Msg("Command executed successfully")
	return result, nil
}

package expand

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/movex/pkg/config"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/executor"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/rs/zerolog"
)

// StepFailedError reports the step that stopped an expansion
type StepFailedError struct {
	Step types.ExpansionStep
	Err  error
}

func (e *StepFailedError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepFailedError) Unwrap() error {
	return e.Err
}

// growpart exits 1 and prints NOCHANGE when the partition already fills the disk
const growpartNoChange = "NOCHANGE"

// Expander runs the expansion sequence
type Expander struct {
	runner executor.Runner
	tools  config.Tools
	strict bool
	logger zerolog.Logger
}

// NewExpander creates an expander that runs commands through runner
func NewExpander(runner executor.Runner, cfg *config.Config) *Expander {
	return &Expander{
		runner: runner,
		tools:  cfg.Tools,
		strict: cfg.Expand.StrictCheck,
		logger: logging.GetLogger("expand"),
	}
}

// Commands returns the command line of every step for device, in order
func (e *Expander) Commands(device, disk, partition string) map[types.ExpansionStep][]string {
	return map[types.ExpansionStep][]string{
		types.StepUnmount:        e.tools.Privileged(e.tools.Umount, device),
		types.StepCheck:          e.tools.Privileged(e.tools.E2fsck, append(append([]string{}, e.tools.E2fsckArgs...), device)...),
		types.StepGrowPartition:  e.tools.Privileged(e.tools.Growpart, disk, partition),
		types.StepGrowFilesystem: e.tools.Privileged(e.tools.Resize2fs, append(append([]string{}, e.tools.Resize2fsArgs...), device)...),
	}
}

// Expand grows device to fill its disk. The returned report always lists
// all four steps in order, including skipped ones, unless device is not a
// partition, in which case nothing runs.
func (e *Expander) Expand(ctx context.Context, device string) (*types.ExpansionReport, error) {
	disk, partition, err := SplitPartition(device)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(e.logger, "expand")
	defer done()

	report := &types.ExpansionReport{Device: device, Disk: disk, Partition: partition}
	commands := e.Commands(device, disk, partition)

	var stopErr error
	for _, step := range types.ExpansionSteps {
		outcome := types.StepOutcome{Step: step, Command: commands[step]}

		if stopErr == nil {
			if err := ctx.Err(); err != nil {
				stopErr = err
			}
		}
		if stopErr != nil {
			outcome.Status = types.StepSkipped
			report.Outcomes = append(report.Outcomes, outcome)
			continue
		}

		start := time.Now()
		result, err := e.runner.Run(ctx, executor.Command{Argv: outcome.Command})
		outcome.Duration = time.Since(start)
		outcome.Err = err
		outcome.Status = e.classify(step, result, err)

		switch outcome.Status {
		case types.StepAdvisory:
			e.logger.Warn().Err(err).Str("step", string(step)).Msg("Step failed, continuing")
		case types.StepFailed:
			e.logger.Error().Err(err).Str("step", string(step)).Msg("Step failed, stopping")
			stopErr = errors.Wrapf(&StepFailedError{Step: step, Err: err}, errors.ErrStepFailed,
				"expansion stopped at %s", step).WithDetail("step", string(step))
		default:
			e.logger.Info().Str("step", string(step)).Str("status", string(outcome.Status)).Msg("Step finished")
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report, stopErr
}

// classify decides the status of a finished step
func (e *Expander) classify(step types.ExpansionStep, result executor.Result, err error) types.StepStatus {
	if err == nil {
		if result.DryRun {
			return types.StepDryRun
		}
		return types.StepSucceeded
	}

	switch step {
	case types.StepUnmount:
		return types.StepAdvisory
	case types.StepCheck:
		if e.strict {
			return types.StepFailed
		}
		return types.StepAdvisory
	case types.StepGrowPartition:
		if strings.Contains(result.Stdout, growpartNoChange) {
			return types.StepAdvisory
		}
		return types.StepFailed
	default:
		return types.StepFailed
	}
}

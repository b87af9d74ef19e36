package reconcile

import (
	"context"
	"fmt"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/filesystem"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options tunes a reconciliation pass
type Options struct {
	// DryRun shows conflicts but neither prompts nor writes
	DryRun bool
}

// Result records what a reconciliation pass did with every entry
type Result struct {
	Plan        *Plan
	DryRun      bool
	Identical   []string
	Copied      []string
	Overwritten []string
	// Skipped holds conflicting files left untouched
	Skipped     []string
	Unmergeable []string
}

// Applied returns every file written to the destination
func (r *Result) Applied() []string {
	return r.Outcome().Applied()
}

// Outcome converts the result for a deployment report
func (r *Result) Outcome() types.ConfigOutcome {
	return types.ConfigOutcome{
		Identical:   r.Identical,
		Copied:      r.Copied,
		Overwritten: r.Overwritten,
		Skipped:     r.Skipped,
		Unmergeable: r.Unmergeable,
	}
}

// DecideConflict maps the reply to a conflict prompt to an action. Only
// an explicit yes overwrites; everything else keeps the destination.
func DecideConflict(answer types.Answer) types.ReconcileAction {
	if answer == types.AnswerYes {
		return types.ActionOverwrite
	}
	return types.ActionSkip
}

// ActionFor returns the action for an entry that needs no operator input
func ActionFor(c types.Classification) types.ReconcileAction {
	switch c {
	case types.SourceOnly:
		return types.ActionCopy
	case types.Identical:
		return types.ActionNone
	default:
		// conflicts are decided by DecideConflict
		return types.ActionSkip
	}
}

// Reconcile classifies srcDir against dstDir and applies the result:
// identical files are reported, source-only files copied, and each
// conflicting file is shown as a diff and overwritten only when the
// operator answers y. A declined or unreadable answer skips that file
// and moves on to the next one.
func Reconcile(ctx context.Context, fs afero.Fs, srcDir, dstDir string, console types.Console, opts Options) (*Result, error) {
	logger := logging.GetLogger("reconcile")
	done := logging.LogOperationStart(logger, "reconcile")
	defer done()

	plan, err := Classify(fs, srcDir, dstDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Plan: plan, DryRun: opts.DryRun, Unmergeable: plan.Unmergeable}
	for _, name := range plan.Unmergeable {
		logger.Warn().Str("name", name).Str("dest", dstDir).Msg("Destination entry is not a regular file, leaving it alone")
	}

	for _, entry := range plan.Entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		action := ActionFor(entry.Classification)
		switch entry.Classification {
		case types.Identical:
			result.Identical = append(result.Identical, entry.Name)
			logger.Debug().Str("name", entry.Name).Msg("Identical file")
			continue
		case types.Conflicting:
			action = resolveConflict(fs, entry, console, opts, logger)
		}

		if action == types.ActionSkip {
			result.Skipped = append(result.Skipped, entry.Name)
			continue
		}

		if !opts.DryRun {
			if _, err := filesystem.CopyFile(fs, entry.SourcePath, entry.DestPath); err != nil {
				return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", entry.DestPath)
			}
		}

		if action == types.ActionOverwrite {
			result.Overwritten = append(result.Overwritten, entry.Name)
			logger.Info().Str("name", entry.Name).Bool("dry_run", opts.DryRun).Msg("Overwrote conflicting file")
		} else {
			result.Copied = append(result.Copied, entry.Name)
			logger.Info().Str("name", entry.Name).Bool("dry_run", opts.DryRun).Msg("Copied source-only file")
		}
	}

	return result, nil
}

func resolveConflict(fs afero.Fs, entry types.ReconciliationEntry, console types.Console, opts Options, logger zerolog.Logger) types.ReconcileAction {
	unified, err := Diff(fs, entry)
	if err != nil {
		logger.Warn().Err(err).Str("name", entry.Name).Msg("Cannot diff conflicting file")
		unified = ""
	}
	console.ShowDiff(entry.Name, unified)

	if opts.DryRun {
		return types.ActionSkip
	}

	reply, err := console.Ask(fmt.Sprintf("%q differs, replace it anyway? [y/n] ", entry.Name))
	if err != nil {
		logger.Warn().Err(err).Str("name", entry.Name).Msg("No answer, keeping destination file")
		return types.ActionSkip
	}
	answer := types.ParseAnswer(reply)
	if answer == types.AnswerInvalid {
		logger.Warn().Str("name", entry.Name).Str("reply", reply).Msg("Unrecognised answer, keeping destination file")
	}
	return DecideConflict(answer)
}

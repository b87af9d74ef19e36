package deploy

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/movex/pkg/config"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/filesystem"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/reconcile"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/spf13/afero"
)

// Options describes one deployment
type Options struct {
	Package    string
	SourceRoot string
	DestRoot   string
	// Force skips the top-level confirmation only
	Force  bool
	DryRun bool

	Layout  config.Layout
	FS      afero.Fs
	Console types.Console
}

func (o Options) validate() error {
	if strings.TrimSpace(o.Package) == "" {
		return errors.New(errors.ErrInvalidInput, "package name is required")
	}
	if o.SourceRoot == "" || o.DestRoot == "" {
		return errors.New(errors.ErrInvalidInput, "source and destination roots are required")
	}
	if o.FS == nil || o.Console == nil {
		return errors.New(errors.ErrInternal, "deploy requires a filesystem and a console")
	}
	return nil
}

// Skip reasons recorded in DeployResult.Skipped
const (
	ReasonNoSourceLaunch = "source launch directory not found"
	ReasonNoSourceConfig = "source config directory not found"
	ReasonNoDestConfig   = "destination config directory does not exist"
)

// DecideReplace maps the reply to the top-level confirmation. Anything but
// an explicit yes aborts the deployment as a usage error.
func DecideReplace(answer types.Answer) error {
	if answer == types.AnswerYes {
		return nil
	}
	return errors.Newf(errors.ErrUsage, "deployment not confirmed (answer: %s)", answer)
}

// Deploy copies the artifacts of opts.Package from opts.SourceRoot into
// opts.DestRoot. Preconditions are checked before anything is written:
// the destination marker directory and the source binaries must exist.
func Deploy(ctx context.Context, opts Options) (*types.DeployResult, error) {
	logger := logging.GetLogger("deploy")
	done := logging.LogOperationStart(logger, "deploy")
	defer done()

	if err := opts.validate(); err != nil {
		return nil, err
	}
	fs := opts.FS
	console := opts.Console

	marker := opts.Layout.Marker(opts.DestRoot)
	if !filesystem.IsDir(fs, marker) {
		return nil, errors.Newf(errors.ErrDestinationMissing, "%s does not exist", marker).
			WithDetail("path", marker)
	}

	src := opts.Layout.SourceArtifacts(opts.SourceRoot, opts.Package)
	dst := opts.Layout.DestArtifacts(opts.DestRoot, opts.Package)
	if !filesystem.IsDir(fs, src.Binaries) {
		return nil, errors.Newf(errors.ErrSourceMissing, "no build output for %s at %s", opts.Package, src.Binaries).
			WithDetail("path", src.Binaries)
	}

	console.Printf("source:      %s\n", src.Binaries)
	console.Printf("destination: %s\n", dst.Binaries)

	if !opts.Force && !opts.DryRun {
		reply, err := console.Ask(fmt.Sprintf("Replace %s in %s? [y/n] ", opts.Package, opts.DestRoot))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrUsage, "no confirmation received")
		}
		if err := DecideReplace(types.ParseAnswer(reply)); err != nil {
			return nil, err
		}
	}

	result := types.NewDeployResult(src, dst)
	result.DryRun = opts.DryRun
	copyOpts := filesystem.CopyOptions{DryRun: opts.DryRun}

	stats, err := filesystem.CopyTree(fs, src.Binaries, dst.Binaries, copyOpts)
	result.Binaries = stats
	if err != nil {
		return result, copyError(err, types.ArtifactBinaries)
	}
	logger.Info().Str("dest", dst.Binaries).Int("files", stats.Files).Msg("Binaries deployed")

	if filesystem.IsDir(fs, src.Launch) {
		stats, err := filesystem.CopyTree(fs, src.Launch, dst.Launch, copyOpts)
		result.Launch = &stats
		if err != nil {
			return result, copyError(err, types.ArtifactLaunch)
		}
		logger.Info().Str("dest", dst.Launch).Int("files", stats.Files).Msg("Launch files deployed")
	} else {
		result.Skipped[types.ArtifactLaunch] = ReasonNoSourceLaunch
	}

	switch {
	case !filesystem.IsDir(fs, src.Config):
		result.Skipped[types.ArtifactConfig] = ReasonNoSourceConfig
	case !filesystem.IsDir(fs, dst.Config):
		result.Skipped[types.ArtifactConfig] = ReasonNoDestConfig
		logger.Warn().Str("dest", dst.Config).Msg("Destination config directory missing, config files not deployed")
	default:
		reconciled, err := reconcile.Reconcile(ctx, fs, src.Config, dst.Config, console,
			reconcile.Options{DryRun: opts.DryRun})
		if reconciled != nil {
			outcome := reconciled.Outcome()
			result.Config = &outcome
		}
		if err != nil {
			return result, copyError(err, types.ArtifactConfig)
		}
	}

	for kind, reason := range result.Skipped {
		logger.Info().Str("artifact", string(kind)).Str("reason", reason).Msg("Artifact step skipped")
	}
	return result, nil
}

// copyError tags permission failures so the command layer can print a hint
func copyError(err error, kind types.ArtifactKind) error {
	if errors.IsErrorCode(err, errors.ErrPermission) || stderrors.Is(err, context.Canceled) {
		return err
	}
	if stderrors.Is(err, os.ErrPermission) {
		return errors.Wrapf(err, errors.ErrPermission, "permission denied while deploying %s", kind).
			WithDetail("artifact", string(kind))
	}
	return errors.Wrapf(err, errors.ErrFileWrite, "failed to deploy %s", kind).
		WithDetail("artifact", string(kind))
}

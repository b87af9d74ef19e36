package build

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/movex/pkg/config"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/executor"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Invoker cross-compiles a package
type Invoker interface {
	Build(ctx context.Context, srcRoot, pkg string) error
}

// ContainerInvoker runs the configured container command
type ContainerInvoker struct {
	fs     afero.Fs
	runner executor.Runner
	build  config.BuildConfig
	layout config.Layout
	logger zerolog.Logger
}

var _ Invoker = (*ContainerInvoker)(nil)

// NewContainerInvoker creates an invoker from the build and layout config
func NewContainerInvoker(fs afero.Fs, runner executor.Runner, cfg *config.Config) *ContainerInvoker {
	return &ContainerInvoker{
		fs:     fs,
		runner: runner,
		build:  cfg.Build,
		layout: cfg.Layout,
		logger: logging.GetLogger("build"),
	}
}

// Build checks that pkg exists under srcRoot/src and runs the build with
// srcRoot as working directory. Build output is streamed to the terminal.
// A failed build carries the configured host setup hint in its details.
func (c *ContainerInvoker) Build(ctx context.Context, srcRoot, pkg string) error {
	abs, err := filepath.Abs(srcRoot)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid source root %s", srcRoot)
	}

	manifest, err := FindPackage(c.fs, c.layout.PackageSources(abs), pkg)
	if err != nil {
		return err
	}
	c.logger.Info().Str("package", manifest.Name).Str("dir", manifest.Dir).Str("version", manifest.Version).Msg("Package found")

	argv := CommandLine(c.build.Command, map[string]string{
		"src":          abs,
		"package":      pkg,
		"build_base":   c.layout.BuildBase,
		"install_base": c.layout.InstallBase,
	})

	done := logging.LogOperationStart(c.logger, "build")
	defer done()

	if _, err := c.runner.Run(ctx, executor.Command{Argv: argv, Dir: abs, Stream: true}); err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool, "build of %s failed", pkg).
			WithDetail("package", pkg).
			WithDetail("hint", c.build.Hint)
	}
	return nil
}

// CommandLine substitutes {key} placeholders in every element of template
func CommandLine(template []string, vars map[string]string) []string {
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{"+key+"}", value)
	}
	replacer := strings.NewReplacer(pairs...)

	argv := make([]string, len(template))
	for i, arg := range template {
		argv[i] = replacer.Replace(arg)
	}
	return argv
}

// Hint returns the host setup hint attached to a failed build, if any
func Hint(err error) string {
	if hint, ok := errors.GetErrorDetails(err)["hint"].(string); ok {
		return hint
	}
	return ""
}

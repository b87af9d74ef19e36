package movex

import (
	"io"
	"os"

	"github.com/arthur-debert/movex/internal/version"
	"github.com/arthur-debert/movex/pkg/config"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/executor"
	"github.com/arthur-debert/movex/pkg/filesystem"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/arthur-debert/movex/pkg/ui/console"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Deps are the collaborators commands run against. Tests swap them for an
// in-memory filesystem, a scripted console and a recording runner.
type Deps struct {
	FS      afero.Fs
	Console types.Console
	// Out receives reports, Err receives hints and warnings
	Out io.Writer
	Err io.Writer
	// NewRunner is called once the --dry-run flag is known
	NewRunner func(dryRun bool) executor.Runner
	// LoadConfig defaults to config.LoadWithOverrides
	LoadConfig func(path string, overrides []string) (*config.Config, error)
}

// DefaultDeps wires the real filesystem, terminal and process runner
func DefaultDeps() Deps {
	return Deps{
		FS:      filesystem.NewOS(),
		Console: console.NewStd(),
		Out:     os.Stdout,
		Err:     os.Stderr,
		NewRunner: func(dryRun bool) executor.Runner {
			return executor.NewOSRunner(dryRun)
		},
		LoadConfig: config.LoadWithOverrides,
	}
}

// app holds global flag values and the loaded configuration for one run
type app struct {
	deps Deps

	verbosity  int
	configPath string
	overrides  []string
	dryRun     bool

	cfg    *config.Config
	runner executor.Runner
}

// NewRootCmd creates the root command over the real system
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(DefaultDeps())
}

// NewRootCmdWith creates the root command over deps
func NewRootCmdWith(deps Deps) *cobra.Command {
	initTemplateFormatting()

	if deps.LoadConfig == nil {
		deps.LoadConfig = config.LoadWithOverrides
	}
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "movex",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Newf(errors.ErrUsage, MsgUnknownCommand, args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Bool("dry_run", a.dryRun).Msg("Command started")
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrUsage, MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringArrayVar(&a.overrides, "set", nil, MsgFlagSet)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.SetOut(deps.Out)
	rootCmd.SetErr(deps.Err)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, MsgInvalidFlags)
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newMoveCmd(a))
	rootCmd.AddCommand(newExpandCmd(a))
	rootCmd.AddCommand(newBuildCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	installTopics(rootCmd)

	return rootCmd
}

// setup loads the configuration and builds the runner for this run
func (a *app) setup() error {
	cfg, err := a.deps.LoadConfig(a.configPath, a.overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.deps.NewRunner != nil {
		a.runner = a.deps.NewRunner(a.dryRun)
	}
	return nil
}

// positionalArgs wraps a cobra argument check so violations exit as usage errors
func positionalArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Wrap(err, errors.ErrUsage, MsgInvalidArguments)
		}
		return nil
	}
}

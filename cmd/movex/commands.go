package movex

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/movex/internal/version"
	"github.com/arthur-debert/movex/pkg/build"
	"github.com/arthur-debert/movex/pkg/config"
	"github.com/arthur-debert/movex/pkg/deploy"
	"github.com/arthur-debert/movex/pkg/devices"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/expand"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/paths"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/arthur-debert/movex/pkg/ui/console"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newMoveCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "move <package> <src_root> [dst_root]",
		Short:   MsgMoveShort,
		Long:    MsgMoveLong,
		Example: MsgMoveExample,
		GroupID: "core",
		Args:    positionalArgs(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, srcRoot := args[0], paths.ExpandHome(args[1])
			var userDst string
			if len(args) == 3 {
				userDst = paths.ExpandHome(args[2])
			}
			ctx := cmd.Context()

			selector := devices.NewSelector(a.deps.FS, a.runner, a.deps.Console, a.cfg)
			dstRoot, err := selector.Resolve(ctx, userDst, types.ModeMountpoint)
			if err != nil {
				return err
			}

			a.checkPackageDeclared(srcRoot, pkg)

			log.Info().
				Str("package", pkg).
				Str("src_root", srcRoot).
				Str("dst_root", dstRoot).
				Bool("force", force).
				Bool("dry_run", a.dryRun).
				Msg("Moving package")

			result, err := deploy.Deploy(ctx, deploy.Options{
				Package:    pkg,
				SourceRoot: srcRoot,
				DestRoot:   dstRoot,
				Force:      force,
				DryRun:     a.dryRun,
				Layout:     a.cfg.Layout,
				FS:         a.deps.FS,
				Console:    a.deps.Console,
			})
			console.RenderDeploy(a.deps.Out, result)
			if err != nil {
				if errors.IsErrorCode(err, errors.ErrPermission) {
					fmt.Fprintln(a.deps.Err, MsgHintPrefix+MsgPermissionHint)
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

// checkPackageDeclared warns when no package.xml in the workspace names pkg.
// Deployment still goes ahead: the build output may come from elsewhere.
func (a *app) checkPackageDeclared(srcRoot, pkg string) {
	srcDir := a.cfg.Layout.PackageSources(srcRoot)
	if _, err := build.FindPackage(a.deps.FS, srcDir, pkg); err != nil {
		log.Warn().Err(err).Str("package", pkg).Str("sources", srcDir).Msg("Package not declared in workspace")
		fmt.Fprintf(a.deps.Err, MsgMoveUndeclared, srcDir, pkg)
		fmt.Fprintf(a.deps.Err, MsgMoveNoCompile, srcRoot, pkg)
	}
}

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "expand [dev_path]",
		Short:   MsgExpandShort,
		Long:    MsgExpandLong,
		Example: MsgExpandExample,
		GroupID: "core",
		Args:    positionalArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userDev string
			if len(args) == 1 {
				userDev = args[0]
			}
			ctx := cmd.Context()

			selector := devices.NewSelector(a.deps.FS, a.runner, a.deps.Console, a.cfg)
			device, err := selector.Resolve(ctx, userDev, types.ModeName)
			if err != nil {
				return err
			}

			log.Info().Str("device", device).Bool("dry_run", a.dryRun).Msg("Expanding device")

			report, err := expand.NewExpander(a.runner, a.cfg).Expand(ctx, device)
			console.RenderExpansion(a.deps.Out, report)
			if err != nil {
				return err
			}
			if a.dryRun {
				fmt.Fprintln(a.deps.Out, MsgDryRunNotice)
			}
			return nil
		},
	}
}

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "build <src_root> <package>",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    positionalArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcRoot, pkg := paths.ExpandHome(args[0]), args[1]

			invoker := build.NewContainerInvoker(a.deps.FS, a.runner, a.cfg)
			if err := invoker.Build(cmd.Context(), srcRoot, pkg); err != nil {
				if hint := build.Hint(err); hint != "" {
					fmt.Fprintln(a.deps.Err, MsgHintPrefix+hint)
				}
				return err
			}

			if a.dryRun {
				fmt.Fprintln(a.deps.Out, MsgDryRunNotice)
				return nil
			}
			fmt.Fprintf(a.deps.Out, MsgBuildSucceeded, pkg)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var writePath string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    positionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := config.Render(a.cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrRenderConfig)
			}

			if writePath == "" || a.dryRun {
				fmt.Fprint(a.deps.Out, rendered)
				return nil
			}

			target := paths.ExpandHome(writePath)
			if err := a.deps.FS.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, MsgErrWriteConfig, target)
			}
			if err := afero.WriteFile(a.deps.FS, target, []byte(rendered), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteConfig, target).
					WithDetail("path", target)
			}
			fmt.Fprintf(a.deps.Out, MsgConfigWritten, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&writePath, "write", "", MsgFlagWrite)
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    positionalArgs(cobra.NoArgs),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version)
			if details {
				fmt.Fprintf(cmd.OutOrStdout(), MsgVersionDetails, version.Commit, version.Date)
			}
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, MsgFlagShowMore)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  positionalArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		GroupID:               "misc",
		PersistentPreRun:      func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:              "man",
		Short:            MsgManShort,
		Hidden:           true,
		Args:             positionalArgs(cobra.NoArgs),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, MsgErrManDir, dir)
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, MsgErrManGen)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}

// ManHeader is the header shared by every generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "MOVEX",
		Section: "1",
		Source:  "movex " + version.Version,
		Manual:  "movex manual",
	}
}

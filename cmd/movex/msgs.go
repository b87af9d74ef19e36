package movex

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Deploy cross-built ROS packages onto target root filesystems"
	MsgMoveShort       = "Copy a built package into a target root filesystem"
	MsgExpandShort     = "Grow a partition and its filesystem to fill the device"
	MsgBuildShort      = "Cross-compile a package in the build container"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgMoveUndeclared   = "warning: no package.xml under %s declares %s\n"
	MsgMoveNoCompile    = "note: move does not compile, run 'movex build %s %s' first if the sources changed\n"
	MsgConfigWritten    = "Configuration written to %s\n"
	MsgBuildSucceeded   = "Built %s\n"
	MsgManWritten       = "Man pages written to %s\n"
	MsgVersionFormat    = "movex version %s\n"
	MsgVersionDetails   = "  commit: %s\n  built:  %s\n"
	MsgHintPrefix       = "hint: "
	MsgPermissionHint   = "run as superuser / is the target disk mounted?"
	MsgUsageSuggestion  = "Run 'movex --help' for usage."
	MsgUnknownCommand   = "unknown command %q for movex"
	MsgNoCommand        = "no command specified"
	MsgInvalidArguments = "invalid arguments"
	MsgInvalidFlags     = "invalid flags"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration"
	MsgErrRenderConfig = "failed to render configuration"
	MsgErrWriteConfig  = "failed to write configuration to %s"
	MsgErrManDir       = "failed to create man page directory %s"
	MsgErrManGen       = "failed to generate man pages"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Report what would change without writing or running anything"
	MsgFlagConfig   = "Path to an additional TOML configuration file"
	MsgFlagSet      = "Override a configuration value, e.g. --set tools.privilege="
	MsgFlagForce    = "Skip the overall confirmation (config conflicts are still asked)"
	MsgFlagWrite    = "Write the configuration to this file instead of stdout"
	MsgFlagManDir   = "Directory the man pages are written to"
	MsgFlagShowMore = "Also print commit and build date"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/move-long.txt
	msgMoveLongRaw string
	MsgMoveLong    = strings.TrimSpace(msgMoveLongRaw)

	//go:embed msgs/move-example.txt
	msgMoveExampleRaw string
	MsgMoveExample    = strings.TrimRight(msgMoveExampleRaw, "\n")

	//go:embed msgs/expand-long.txt
	msgExpandLongRaw string
	MsgExpandLong    = strings.TrimSpace(msgExpandLongRaw)

	//go:embed msgs/expand-example.txt
	msgExpandExampleRaw string
	MsgExpandExample    = strings.TrimRight(msgExpandExampleRaw, "\n")

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)

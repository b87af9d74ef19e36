package devices

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/movex/pkg/config"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/executor"
	"github.com/arthur-debert/movex/pkg/filesystem"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Selector resolves the target path or device of an operation
type Selector struct {
	fs      afero.Fs
	runner  executor.Runner
	console types.Console
	tools   config.Tools
	prefix  string
	logger  zerolog.Logger
}

// NewSelector creates a selector. fs is used to test user-supplied paths,
// runner to list block devices and console to ask the operator.
func NewSelector(fs afero.Fs, runner executor.Runner, console types.Console, cfg *config.Config) *Selector {
	prefix := cfg.Layout.DevicePrefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Selector{
		fs:      fs,
		runner:  runner,
		console: console,
		tools:   cfg.Tools,
		prefix:  prefix,
		logger:  logging.GetLogger("devices"),
	}
}

// Resolve returns userPath unchanged when it exists. Otherwise the block
// devices are listed, the operator picks one and confirms it, and the
// field named by mode is returned.
func (s *Selector) Resolve(ctx context.Context, userPath string, mode types.SelectorMode) (string, error) {
	if userPath != "" {
		if filesystem.Exists(s.fs, userPath) {
			s.logger.Debug().Str("path", userPath).Msg("Using supplied path")
			return userPath, nil
		}
		s.logger.Warn().Str("path", userPath).Msg("Supplied path does not exist, falling back to device selection")
		s.console.Printf("%s does not exist, select a device instead\n", userPath)
	}

	devices, err := s.Enumerate(ctx)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", errors.New(errors.ErrNoSelection, "no block devices found")
	}

	labels := make([]string, len(devices))
	for i, device := range devices {
		labels[i] = device.Label()
	}

	idx, err := s.console.Choose(selectTitle(mode), labels)
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return "", err
		}
		return "", errors.Wrap(err, errors.ErrNoSelection, "device selection aborted")
	}
	if idx < 0 || idx >= len(devices) {
		return "", errors.New(errors.ErrNoSelection, "no device selected")
	}
	device := devices[idx]

	reply, err := s.console.Ask(fmt.Sprintf("Use %s? [y/n] ", device.Path))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrUsage, "no confirmation received")
	}
	answer := types.ParseAnswer(reply)
	if err := DecideSelection(answer); err != nil {
		if errors.IsErrorCode(err, errors.ErrUsage) {
			return "", errors.Wrapf(err, errors.ErrUsage, "invalid answer %q", reply)
		}
		return "", err
	}

	target, err := Target(device, mode)
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("device", device.Path).Str("mode", string(mode)).Str("target", target).Msg("Device selected")
	return target, nil
}

// Enumerate lists the block devices currently visible to the system
func (s *Selector) Enumerate(ctx context.Context) ([]types.Device, error) {
	argv := append([]string{s.tools.Lsblk}, s.tools.LsblkArgs...)
	result, err := s.runner.Run(ctx, executor.Command{Argv: argv, ReadOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExternalTool, "failed to list block devices")
	}

	devices, malformed := ParseDeviceList(result.Stdout, s.prefix)
	for _, line := range malformed {
		s.logger.Warn().Str("line", strings.TrimSpace(line)).Msg("Ignoring malformed device line")
	}
	s.logger.Debug().Int("count", len(devices)).Msg("Block devices listed")
	return devices, nil
}

func selectTitle(mode types.SelectorMode) string {
	if mode == types.ModeMountpoint {
		return "Select the mounted target filesystem"
	}
	return "Select the partition to expand"
}

// Test Type: Unit Test
// Description: Tests for the expansion sequencer with a recording runner

package expand

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/movex/pkg/config"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/testutil"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statuses(report *types.ExpansionReport) []types.StepStatus {
	var out []types.StepStatus
	for _, o := range report.Outcomes {
		out = append(out, o.Status)
	}
	return out
}

func TestExpand_RunsStepsInOrder(t *testing.T) {
	runner := testutil.NewRecordingRunner()
	expander := NewExpander(runner, config.Default())

	report, err := expander.Expand(context.Background(), "/dev/sda2")
	require.NoError(t, err)

	assert.Equal(t, types.ExpansionSteps, report.Steps())
	assert.True(t, report.Completed())
	assert.Equal(t, "/dev/sda", report.Disk)
	assert.Equal(t, "2", report.Partition)
	assert.Equal(t, []string{
		"sudo umount /dev/sda2",
		"sudo e2fsck -f -y /dev/sda2",
		"sudo growpart /dev/sda 2",
		"sudo resize2fs -f /dev/sda2",
	}, runner.CommandLines())
}

func TestExpand_UnmountFailureDoesNotBlockCheck(t *testing.T) {
	runner := testutil.NewRecordingRunner().FailOn("umount")
	expander := NewExpander(runner, config.Default())

	report, err := expander.Expand(context.Background(), "/dev/mmcblk0p2")
	require.NoError(t, err)

	assert.Equal(t, []string{"umount", "e2fsck", "growpart", "resize2fs"}, runner.Programs())
	assert.Equal(t, []types.StepStatus{
		types.StepAdvisory, types.StepSucceeded, types.StepSucceeded, types.StepSucceeded,
	}, statuses(report))
	assert.True(t, report.Completed())
	assert.Equal(t, "sudo growpart /dev/mmcblk0 2", runner.CommandLines()[2])
}

func TestExpand_CheckFailureIsAdvisoryByDefault(t *testing.T) {
	runner := testutil.NewRecordingRunner().FailOn("e2fsck")
	expander := NewExpander(runner, config.Default())

	report, err := expander.Expand(context.Background(), "/dev/sdb1")
	require.NoError(t, err)
	assert.Len(t, runner.Calls, 4)

	outcome, ok := report.Outcome(types.StepCheck)
	require.True(t, ok)
	assert.Equal(t, types.StepAdvisory, outcome.Status)
	assert.Error(t, outcome.Err)
}

func TestExpand_StrictCheckGates(t *testing.T) {
	cfg := config.Default()
	cfg.Expand.StrictCheck = true
	runner := testutil.NewRecordingRunner().FailOn("e2fsck")

	report, err := NewExpander(runner, cfg).Expand(context.Background(), "/dev/sdb1")
	require.Error(t, err)

	var stepErr *StepFailedError
	require.True(t, stderrors.As(err, &stepErr))
	assert.Equal(t, types.StepCheck, stepErr.Step)
	assert.Equal(t, []string{"umount", "e2fsck"}, runner.Programs())
	assert.Equal(t, []types.StepStatus{
		types.StepSucceeded, types.StepFailed, types.StepSkipped, types.StepSkipped,
	}, statuses(report))
}

func TestExpand_GrowFailureStopsSequence(t *testing.T) {
	runner := testutil.NewRecordingRunner().FailOn("growpart")
	expander := NewExpander(runner, config.Default())

	report, err := expander.Expand(context.Background(), "/dev/sda2")
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrStepFailed))
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))
	assert.Equal(t, "grow-partition", errors.GetErrorDetails(err)["step"])
	assert.Equal(t, []string{"umount", "e2fsck", "growpart"}, runner.Programs(), "resize2fs never runs")
	assert.Equal(t, types.ExpansionSteps, report.Steps(), "skipped steps are still recorded")
	assert.Equal(t, types.StepSkipped, report.Outcomes[3].Status)
	assert.False(t, report.Completed())
}

func TestExpand_FilesystemFailure(t *testing.T) {
	runner := testutil.NewRecordingRunner().FailOn("resize2fs")

	report, err := NewExpander(runner, config.Default()).Expand(context.Background(), "/dev/sda2")
	require.Error(t, err)

	var stepErr *StepFailedError
	require.True(t, stderrors.As(err, &stepErr))
	assert.Equal(t, types.StepGrowFilesystem, stepErr.Step)
	assert.Equal(t, types.StepSucceeded, report.Outcomes[2].Status, "earlier steps are not rolled back")
}

func TestExpand_GrowpartNoChange(t *testing.T) {
	runner := testutil.NewRecordingRunner().
		FailOn("growpart").
		WithOutput("growpart", "NOCHANGE: partition 2 is size 62332928. it cannot be grown\n")

	report, err := NewExpander(runner, config.Default()).Expand(context.Background(), "/dev/sda2")
	require.NoError(t, err)
	assert.Equal(t, types.StepAdvisory, report.Outcomes[2].Status)
	assert.Len(t, runner.Calls, 4)
}

func TestExpand_NotAPartition(t *testing.T) {
	runner := testutil.NewRecordingRunner()

	report, err := NewExpander(runner, config.Default()).Expand(context.Background(), "/dev/mmcblk0")
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotAPartition))
	assert.Equal(t, errors.ExitPrecondition, errors.ExitCode(err))
	assert.Empty(t, runner.Calls, "nothing runs before the device is validated")
}

func TestExpand_WithoutPrivilege(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.Privilege = ""
	runner := testutil.NewRecordingRunner()

	_, err := NewExpander(runner, cfg).Expand(context.Background(), "/dev/nvme0n1p3")
	require.NoError(t, err)
	assert.Equal(t, "growpart /dev/nvme0n1 3", runner.CommandLines()[2])
}

func TestExpand_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := testutil.NewRecordingRunner()

	report, err := NewExpander(runner, config.Default()).Expand(ctx, "/dev/sda2")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, runner.Calls)
	assert.Equal(t, []types.StepStatus{
		types.StepSkipped, types.StepSkipped, types.StepSkipped, types.StepSkipped,
	}, statuses(report))
}

func TestSplitPartition(t *testing.T) {
	tests := []struct {
		device    string
		disk      string
		partition string
		wantErr   bool
	}{
		{"/dev/sda2", "/dev/sda", "2", false},
		{"/dev/sdb12", "/dev/sdb", "12", false},
		{"/dev/mmcblk0p2", "/dev/mmcblk0", "2", false},
		{"/dev/nvme0n1p1", "/dev/nvme0n1", "1", false},
		{"/dev/loop0p3", "/dev/loop0", "3", false},
		{"sda1", "sda", "1", false},
		{"/dev/sda", "", "", true},
		{"/dev/mmcblk0", "", "", true},
		{"/dev/nvme0n1", "", "", true},
		{"/mnt/target", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			disk, partition, err := SplitPartition(tt.device)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrNotAPartition))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.disk, disk)
			assert.Equal(t, tt.partition, partition)
		})
	}
}

// Test Type: Unit Test
// Description: Tests for the line-based console adapter and report rendering

package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/arthur-debert/movex/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, Options{Format: ui.FormatText}), &out
}

func TestAsk(t *testing.T) {
	c, out := newTestConsole("y\r\nno newline")

	reply, err := c.Ask("Replace? [y/n] ")
	require.NoError(t, err)
	assert.Equal(t, "y", reply)
	assert.Equal(t, "Replace? [y/n] ", out.String())

	reply, err = c.Ask("again ")
	require.NoError(t, err)
	assert.Equal(t, "no newline", reply)

	_, err = c.Ask("closed ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestChoose_Numbered(t *testing.T) {
	options := []string{"sda 32G", "sdb 64G /mnt/target"}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"first", "1\n", 0, false},
		{"second with spaces", " 2 \n", 1, false},
		{"empty cancels", "\n", -1, false},
		{"out of range", "3\n", -1, true},
		{"not a number", "sdb\n", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			got, err := c.Choose("Select device", options)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out.String(), "1) sda 32G")
			assert.Contains(t, out.String(), "2) sdb 64G /mnt/target")
		})
	}
}

func TestChoose_Interactive(t *testing.T) {
	c, _ := newTestConsole("")
	c.interactive = true
	c.selectFn = func(title string, options []string) (string, error) {
		assert.Equal(t, "Select device", title)
		return options[1], nil
	}

	got, err := c.Choose("Select device", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestChoose_Empty(t *testing.T) {
	c, _ := newTestConsole("")
	_, err := c.Choose("Select device", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSelection))
}

func TestShowDiff_Plain(t *testing.T) {
	c, out := newTestConsole("")
	c.ShowDiff("b.yaml", "--- b.yaml\n+++ b.yaml\n-z\n+y")

	assert.Contains(t, out.String(), "b.yaml")
	assert.Contains(t, out.String(), "-z\n+y\n")
}

func TestRenderDiff(t *testing.T) {
	assert.Equal(t, "", RenderDiff("", ui.FormatTerminal))
	assert.Equal(t, "-a\n+b\n", RenderDiff("-a\n+b", ui.FormatText))
	assert.Contains(t, RenderDiff("-a\n+b\n", ui.FormatTerminal), "a")
}

func TestRenderDeploy(t *testing.T) {
	src := types.ArtifactSet{Package: "nav"}
	dst := types.ArtifactSet{Package: "nav", Binaries: "/t/usr/lib/nav", Config: "/t/usr/share/nav/config"}
	result := types.NewDeployResult(src, dst)
	result.DryRun = true
	result.Binaries = types.CopyStats{Files: 3, Overwritten: 1}
	result.Config = &types.ConfigOutcome{Identical: []string{"a.yaml"}, Skipped: []string{"b.yaml"}}
	result.Skipped[types.ArtifactLaunch] = "source launch directory not found"

	var out bytes.Buffer
	RenderDeploy(&out, result)

	text := out.String()
	assert.Contains(t, text, "dry run")
	assert.Contains(t, text, "Deployed nav")
	assert.Contains(t, text, "3 files (1 replaced)")
	assert.Contains(t, text, "identical")
	assert.Contains(t, text, "a.yaml")
	assert.Contains(t, text, "kept")
	assert.Contains(t, text, "source launch directory not found")
}

func TestRenderExpansion(t *testing.T) {
	report := &types.ExpansionReport{
		Device: "/dev/sda2", Disk: "/dev/sda", Partition: "2",
		Outcomes: []types.StepOutcome{
			{Step: types.StepUnmount, Status: types.StepAdvisory, Command: []string{"sudo", "umount", "/dev/sda2"}},
			{Step: types.StepCheck, Status: types.StepSucceeded},
			{Step: types.StepGrowPartition, Status: types.StepFailed},
			{Step: types.StepGrowFilesystem, Status: types.StepSkipped},
		},
	}

	var out bytes.Buffer
	RenderExpansion(&out, report)

	text := out.String()
	assert.Contains(t, text, "/dev/sda2")
	assert.Contains(t, text, "sudo umount /dev/sda2")
	assert.Less(t, strings.Index(text, "unmount"), strings.Index(text, "grow-filesystem"))
	assert.Contains(t, text, "skipped")
}

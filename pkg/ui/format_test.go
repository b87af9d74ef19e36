package ui_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/movex/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{"auto format", ui.FormatAuto, "auto"},
		{"terminal format", ui.FormatTerminal, "term"},
		{"text format", ui.FormatText, "text"},
		{"unknown format", ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"TERM", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, ui.IsTerminal(f))
	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(f))
	assert.Equal(t, ui.FormatTerminal, ui.FormatTerminal.Resolve(f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, ui.IsTerminal(nil))
}

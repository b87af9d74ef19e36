package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"layout.md":         {Data: []byte("# Layout\n\nbuild_arm64 holds binaries")},
		"devices.txt":       {Data: []byte("Devices are listed with lsblk")},
		"option-dry-run.md": {Data: []byte("Nothing is written")},
		"nested/config.txt": {Data: []byte("config lookup order")},
		"notes.json":        {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := Load(topicFS(), Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"config", "devices", "layout", "option-dry-run"}, m.Names())
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := Load(topicFS(), Options{Extensions: []string{".md"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"layout", "option-dry-run"}, m.Names())
	})
}

func TestManager_Get(t *testing.T) {
	m, err := Load(topicFS(), Options{})
	require.NoError(t, err)

	tests := []struct {
		name    string
		found   bool
		content string
	}{
		{"devices", true, "Devices are listed with lsblk"},
		{"--dry-run", true, "Nothing is written"},
		{"dry-run", true, "Nothing is written"},
		{"notes", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := m.Get(tt.name)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

func TestGlamourRenderer_PlainForText(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain words", r.Render("plain words", ".txt"))
}

func TestInstall(t *testing.T) {
	m, err := Load(topicFS(), Options{})
	require.NoError(t, err)

	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "app", Run: func(cmd *cobra.Command, args []string) {}}
		root.AddCommand(&cobra.Command{Use: "move", Short: "move things", Run: func(cmd *cobra.Command, args []string) {}})
		var out bytes.Buffer
		root.SetOut(&out)
		m.Install(root)
		return root, &out
	}

	t.Run("lists topics", func(t *testing.T) {
		root, out := newRoot()
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "General topics:")
		assert.Contains(t, out.String(), "  layout")
		assert.Contains(t, out.String(), "  --dry-run")
		assert.Contains(t, out.String(), "'app help <topic>'")
	})

	t.Run("shows a topic", func(t *testing.T) {
		root, out := newRoot()
		root.SetArgs([]string{"help", "devices"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Devices are listed with lsblk", out.String())
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newRoot()
		root.SetArgs([]string{"help", "move"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "move things")
	})
}

package filesystem_test

import (
	"testing"

	"github.com/arthur-debert/movex/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/a", "same", 0644)
	writeFile(t, fs, "/b", "same", 0600)

	da, err := filesystem.Digest(fs, "/a")
	require.NoError(t, err)
	db, err := filesystem.Digest(fs, "/b")
	require.NoError(t, err)

	assert.Len(t, da, 64)
	assert.Equal(t, da, db, "mode does not affect the digest")

	_, err = filesystem.Digest(fs, "/missing")
	assert.Error(t, err)
}

func TestSameContent(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/a", "x: 1\n", 0644)
	writeFile(t, fs, "/b", "x: 1\n", 0644)
	writeFile(t, fs, "/c", "x: 2\n", 0644)
	writeFile(t, fs, "/d", "x: 10\n", 0644)

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "/a", "/b", true},
		{"same size different bytes", "/a", "/c", false},
		{"different size", "/a", "/d", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			same, err := filesystem.SameContent(fs, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, same)
		})
	}
}

func TestPredicates(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/dir/file", "x", 0644)

	assert.True(t, filesystem.Exists(fs, "/dir"))
	assert.True(t, filesystem.IsDir(fs, "/dir"))
	assert.False(t, filesystem.IsDir(fs, "/dir/file"))
	assert.True(t, filesystem.IsRegular(fs, "/dir/file"))
	assert.False(t, filesystem.IsRegular(fs, "/dir"))
	assert.False(t, filesystem.Exists(fs, ""))
	assert.False(t, filesystem.Exists(fs, "/nope"))
}

func TestReadOnly(t *testing.T) {
	fs := filesystem.NewMemory()
	ro := filesystem.NewReadOnly(fs)

	err := ro.MkdirAll("/x", 0755)
	assert.Error(t, err)
}

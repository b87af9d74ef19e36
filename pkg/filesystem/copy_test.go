// Test Type: Unit Test
// Description: Tests for the merge copy over an in-memory filesystem

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), mode))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestCopyTree_MergesIntoExistingTree(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/src/bin/node", "new-node", 0755)
	writeFile(t, fs, "/src/bin/sub/helper", "helper", 0644)
	writeFile(t, fs, "/dst/bin/node", "old-node", 0644)
	writeFile(t, fs, "/dst/bin/keep", "keep", 0644)

	stats, err := filesystem.CopyTree(fs, "/src/bin", "/dst/bin", filesystem.CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Overwritten)
	assert.Equal(t, 1, stats.Directories)
	assert.Equal(t, int64(len("new-node")+len("helper")), stats.Bytes)

	assert.Equal(t, "new-node", readFile(t, fs, "/dst/bin/node"))
	assert.Equal(t, "helper", readFile(t, fs, "/dst/bin/sub/helper"))
	assert.Equal(t, "keep", readFile(t, fs, "/dst/bin/keep"), "destination-only files survive")

	info, err := fs.Stat("/dst/bin/node")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCopyTree_CreatesMissingDestination(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/src/launch/robot.launch", "<launch/>", 0644)

	stats, err := filesystem.CopyTree(fs, "/src/launch", "/dst/share/pkg/launch", filesystem.CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 0, stats.Overwritten)
	assert.True(t, filesystem.IsDir(fs, "/dst/share/pkg/launch"))
	assert.Equal(t, "<launch/>", readFile(t, fs, "/dst/share/pkg/launch/robot.launch"))
}

func TestCopyTree_DryRunWritesNothing(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/src/a", "aaa", 0644)
	writeFile(t, fs, "/src/d/b", "bb", 0644)
	writeFile(t, fs, "/dst/a", "old", 0644)

	stats, err := filesystem.CopyTree(fs, "/src", "/dst", filesystem.CopyOptions{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Overwritten)
	assert.Equal(t, 1, stats.Directories)
	assert.Equal(t, int64(5), stats.Bytes)
	assert.Equal(t, "old", readFile(t, fs, "/dst/a"))
	assert.False(t, filesystem.Exists(fs, "/dst/d"))
}

func TestCopyTree_MissingSource(t *testing.T) {
	fs := filesystem.NewMemory()

	_, err := filesystem.CopyTree(fs, "/nope", "/dst", filesystem.CopyOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceMissing))
}

func TestCopyTree_FileOverDirectoryFails(t *testing.T) {
	fs := filesystem.NewMemory()
	writeFile(t, fs, "/src/conf", "x", 0644)
	require.NoError(t, fs.MkdirAll("/dst/conf", 0755))

	_, err := filesystem.CopyTree(fs, "/src", "/dst", filesystem.CopyOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestCopyTree_FollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	fs := filesystem.NewOS()

	src := filepath.Join(root, "src")
	shared := filepath.Join(root, "shared")
	writeFile(t, fs, filepath.Join(shared, "lib.so"), "elf", 0644)
	writeFile(t, fs, filepath.Join(src, "real"), "real", 0644)
	require.NoError(t, os.Symlink(filepath.Join(src, "real"), filepath.Join(src, "alias")))
	require.NoError(t, os.Symlink(shared, filepath.Join(src, "libs")))

	dst := filepath.Join(root, "dst")
	stats, err := filesystem.CopyTree(fs, src, dst, filesystem.CopyOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Files)

	info, err := os.Lstat(filepath.Join(dst, "alias"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "symlinked files are copied as content")
	assert.Equal(t, "real", readFile(t, fs, filepath.Join(dst, "alias")))
	assert.Equal(t, "elf", readFile(t, fs, filepath.Join(dst, "libs", "lib.so")))
}

func TestCopyFile_RejectsDirectory(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/src/dir", 0755))

	_, err := filesystem.CopyFile(fs, "/src/dir", "/dst/dir")
	assert.Error(t, err)
}

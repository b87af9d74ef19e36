package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WriteTree creates files under root. Keys are slash-separated paths
// relative to root, values the file content.
func WriteTree(t *testing.T, fs afero.Fs, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

// ReadTree returns every regular file under root keyed by its relative
// slash-separated path. A missing root yields an empty map.
func ReadTree(t *testing.T, fs afero.Fs, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	if _, err := fs.Stat(root); err != nil {
		return files
	}
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

// ListDirs returns every directory under root, sorted
func ListDirs(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var dirs []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err == nil && info.IsDir() {
			dirs = append(dirs, path)
		}
		return err
	})
	require.NoError(t, err)
	sort.Strings(dirs)
	return dirs
}

// CountingFs wraps an afero.Fs and counts calls that can mutate it
type CountingFs struct {
	afero.Fs
	writes atomic.Int64
}

// NewCountingFs wraps fs
func NewCountingFs(fs afero.Fs) *CountingFs {
	return &CountingFs{Fs: fs}
}

// Writes returns the number of mutating calls seen so far
func (c *CountingFs) Writes() int64 {
	return c.writes.Load()
}

func (c *CountingFs) Create(name string) (afero.File, error) {
	c.writes.Add(1)
	return c.Fs.Create(name)
}

func (c *CountingFs) Mkdir(name string, perm os.FileMode) error {
	c.writes.Add(1)
	return c.Fs.Mkdir(name, perm)
}

func (c *CountingFs) MkdirAll(path string, perm os.FileMode) error {
	c.writes.Add(1)
	return c.Fs.MkdirAll(path, perm)
}

func (c *CountingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 {
		c.writes.Add(1)
	}
	return c.Fs.OpenFile(name, flag, perm)
}

func (c *CountingFs) Remove(name string) error {
	c.writes.Add(1)
	return c.Fs.Remove(name)
}

func (c *CountingFs) RemoveAll(path string) error {
	c.writes.Add(1)
	return c.Fs.RemoveAll(path)
}

func (c *CountingFs) Rename(oldname, newname string) error {
	c.writes.Add(1)
	return c.Fs.Rename(oldname, newname)
}

func (c *CountingFs) Chmod(name string, mode os.FileMode) error {
	c.writes.Add(1)
	return c.Fs.Chmod(name, mode)
}

func (c *CountingFs) Chown(name string, uid, gid int) error {
	c.writes.Add(1)
	return c.Fs.Chown(name, uid, gid)
}

func (c *CountingFs) Chtimes(name string, atime, mtime time.Time) error {
	c.writes.Add(1)
	return c.Fs.Chtimes(name, atime, mtime)
}

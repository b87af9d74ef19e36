package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/spf13/afero"
)

// CopyOptions tunes CopyTree
type CopyOptions struct {
	// DryRun counts what would be copied without writing anything
	DryRun bool
}

// CopyFile copies the content and permission bits of src to dst,
// creating or truncating dst. It returns the number of bytes copied.
func CopyFile(fs afero.Fs, src, dst string) (int64, error) {
	info, err := fs.Stat(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}
	if !info.Mode().IsRegular() {
		return 0, errors.Newf(errors.ErrFileAccess, "not a regular file: %s", src)
	}

	in, err := fs.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer func() {
		_ = in.Close()
	}()

	perm := info.Mode().Perm()
	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileWrite, "cannot open %s for writing", dst)
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}

	// OpenFile only applies perm on creation
	if err := fs.Chmod(dst, perm); err != nil {
		return n, errors.Wrapf(err, errors.ErrFileWrite, "cannot set mode on %s", dst)
	}
	return n, nil
}

// CopyTree merges the tree rooted at src into dst. Directories are
// created as needed, files present on both sides are overwritten and
// files that only exist under dst are left alone. Symlinks are followed.
func CopyTree(fs afero.Fs, src, dst string, opts CopyOptions) (types.CopyStats, error) {
	var stats types.CopyStats

	info, err := fs.Stat(src)
	if err != nil {
		return stats, errors.Wrapf(err, errors.ErrSourceMissing, "source tree %s is not accessible", src)
	}
	if !info.IsDir() {
		return stats, errors.Newf(errors.ErrSourceMissing, "source %s is not a directory", src)
	}

	// a trailing separator makes Lstat resolve a symlinked root
	root := strings.TrimSuffix(src, string(filepath.Separator)) + string(filepath.Separator)
	err = afero.Walk(fs, root, func(path string, entry os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if entry.Mode()&os.ModeSymlink != 0 {
			resolved, err := fs.Stat(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "dangling symlink %s", path)
			}
			if resolved.IsDir() {
				sub, err := CopyTree(fs, path, target, opts)
				stats.Add(sub)
				return err
			}
			entry = resolved
		}

		if entry.IsDir() {
			return mergeDir(fs, target, entry.Mode().Perm(), opts, &stats)
		}
		return mergeFile(fs, path, target, entry, opts, &stats)
	})
	if err != nil {
		return stats, fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}
	return stats, nil
}

func mergeDir(fs afero.Fs, target string, perm os.FileMode, opts CopyOptions, stats *types.CopyStats) error {
	existing, err := fs.Stat(target)
	if err == nil {
		if !existing.IsDir() {
			return errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", target)
		}
		return nil
	}

	stats.Directories++
	if opts.DryRun {
		return nil
	}
	if err := fs.MkdirAll(target, perm|0700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", target)
	}
	return nil
}

func mergeFile(fs afero.Fs, path, target string, entry os.FileInfo, opts CopyOptions, stats *types.CopyStats) error {
	if existing, err := lstat(fs, target); err == nil {
		if existing.IsDir() {
			return errors.Newf(errors.ErrFileWrite, "%s exists and is a directory", target)
		}
		stats.Overwritten++
	}

	stats.Files++
	if opts.DryRun {
		stats.Bytes += entry.Size()
		return nil
	}

	n, err := CopyFile(fs, path, target)
	stats.Bytes += n
	return err
}

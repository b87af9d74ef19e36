package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the operating system
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// Exists reports whether path exists on fs
func Exists(fs afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir reports whether path exists on fs and is a directory
func IsDir(fs afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegular reports whether path exists on fs and is a regular file,
// following symlinks
func IsRegular(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// lstat uses Lstat when the filesystem supports it
func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

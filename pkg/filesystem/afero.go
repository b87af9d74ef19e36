package filesystem

import (
	"github.com/spf13/afero"
)

// NewMemory creates an in-memory filesystem, mainly for tests and dry runs
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// NewReadOnly wraps fs so that every mutation fails. Dry runs use it to
// guarantee that planning code never writes.
func NewReadOnly(fs afero.Fs) afero.Fs {
	return afero.NewReadOnlyFs(fs)
}

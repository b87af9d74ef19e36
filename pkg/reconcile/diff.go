package reconcile

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/movex/pkg/types"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
)

// Diff returns a unified diff that turns the destination file of entry
// into the source file. Binary content yields a one-line notice instead.
func Diff(fs afero.Fs, entry types.ReconciliationEntry) (string, error) {
	dst, err := afero.ReadFile(fs, entry.DestPath)
	if err != nil {
		return "", err
	}
	src, err := afero.ReadFile(fs, entry.SourcePath)
	if err != nil {
		return "", err
	}

	if bytes.IndexByte(dst, 0) >= 0 || bytes.IndexByte(src, 0) >= 0 {
		return fmt.Sprintf("Binary files %s and %s differ\n", entry.DestPath, entry.SourcePath), nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(dst)),
		B:        difflib.SplitLines(string(src)),
		FromFile: entry.DestPath,
		ToFile:   entry.SourcePath,
		Context:  3,
	})
}

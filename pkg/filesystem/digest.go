package filesystem

import (
	"encoding/hex"
	"io"

	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

// Digest returns the hex BLAKE3 digest of the file content at path
func Digest(fs afero.Fs, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// SameContent reports whether a and b hold byte-for-byte equal content.
// Sizes are compared first so that most differences never hash.
func SameContent(fs afero.Fs, a, b string) (bool, error) {
	infoA, err := fs.Stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := fs.Stat(b)
	if err != nil {
		return false, err
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	digestA, err := Digest(fs, a)
	if err != nil {
		return false, err
	}
	digestB, err := Digest(fs, b)
	if err != nil {
		return false, err
	}
	return digestA == digestB, nil
}

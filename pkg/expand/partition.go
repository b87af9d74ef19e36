package expand

import (
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/movex/pkg/errors"
)

var (
	// mmcblk0p2, nvme0n1p1, loop0p1: the disk name ends in a digit so a
	// "p" separates the partition number
	separatedPartition = regexp.MustCompile(`^(.*\d)p(\d+)$`)
	// sda2, vdb1, xvda3
	plainPartition = regexp.MustCompile(`^(.*[a-z])(\d+)$`)
	// whole disks whose names end in a digit
	numberedDisk = regexp.MustCompile(`^(mmcblk|nvme\d+n|loop|nbd|md)\d+$`)
)

// SplitPartition derives the parent disk and partition number of a
// partition device path, e.g. /dev/sda2 -> (/dev/sda, 2) and
// /dev/mmcblk0p2 -> (/dev/mmcblk0, 2). Whole disks and paths without a
// trailing partition number are rejected with ErrNotAPartition.
func SplitPartition(device string) (disk, partition string, err error) {
	dir, base := filepath.Split(device)

	if !numberedDisk.MatchString(base) {
		if m := separatedPartition.FindStringSubmatch(base); m != nil {
			return dir + m[1], m[2], nil
		}
		if m := plainPartition.FindStringSubmatch(base); m != nil {
			return dir + m[1], m[2], nil
		}
	}
	return "", "", errors.Newf(errors.ErrNotAPartition, "%s is not a partition", device).
		WithDetail("device", device)
}
